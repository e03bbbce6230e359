package usecase

import (
	"context"

	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción con repos atados a la
// tx. Si fn devuelve error se hace rollback: los decrementos de stock y la
// inserción del pedido son todo-o-nada.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
