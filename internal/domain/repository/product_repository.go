package repository

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Product, error)

	// Search busca por nombre con el término ya normalizado (sin tildes,
	// minúsculas). Devuelve como máximo limit resultados.
	Search(ctx context.Context, foldedTerm string, limit int) ([]*entity.Product, error)

	// DecrementExistence descuenta amount unidades de forma condicional:
	// solo si el stock actual alcanza. Devuelve domain.ErrNotFound si el
	// producto no existe y domain.ErrInsufficientStock si el stock no
	// alcanza. Dentro de una transacción esto hace el flujo de pedidos
	// todo-o-nada y evita la carrera de dos decrementos concurrentes.
	DecrementExistence(ctx context.Context, productID string, amount int64) error
}
