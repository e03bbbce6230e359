package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ClientRepository puerto de persistencia para clientes.
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByEmail(ctx context.Context, email string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Client, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*entity.Client, error)
}
