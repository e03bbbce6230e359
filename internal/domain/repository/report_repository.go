package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// TopClientRow total facturado (pedidos COMPLETED) de un cliente.
type TopClientRow struct {
	Client entity.Client
	Total  decimal.Decimal
}

// TopVendorRow total facturado (pedidos COMPLETED) de un vendedor.
type TopVendorRow struct {
	Vendor entity.User
	Total  decimal.Decimal
}

// ReportRepository consultas de agregación de solo lectura.
type ReportRepository interface {
	// TopClients agrupa los pedidos COMPLETED por cliente, suma el total y
	// devuelve los limit mejores en orden descendente.
	TopClients(ctx context.Context, limit int) ([]TopClientRow, error)

	// TopVendors igual que TopClients pero agrupando por vendedor.
	TopVendors(ctx context.Context, limit int) ([]TopVendorRow, error)
}
