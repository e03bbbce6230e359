package repository

import (
	"context"
	"time"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para pedidos.
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Order, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*entity.Order, error)
	ListByVendorAndStatus(ctx context.Context, vendorID, status string) ([]*entity.Order, error)
}
