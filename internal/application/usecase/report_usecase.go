package usecase

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Límites de los reportes, heredados del contrato original.
const (
	topClientsLimit = 10
	topVendorsLimit = 3
)

// ReportUseCase reportes de agregación de solo lectura.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// BestClients devuelve hasta 10 clientes ordenados por total facturado
// descendente, contando solo pedidos COMPLETED.
func (uc *ReportUseCase) BestClients(ctx context.Context) ([]repository.TopClientRow, error) {
	return uc.reportRepo.TopClients(ctx, topClientsLimit)
}

// BestVendors devuelve hasta 3 vendedores ordenados por total facturado
// descendente, contando solo pedidos COMPLETED.
func (uc *ReportUseCase) BestVendors(ctx context.Context) ([]repository.TopVendorRow, error) {
	return uc.reportRepo.TopVendors(ctx, topVendorsLimit)
}
