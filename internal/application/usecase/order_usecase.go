package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// OrderUseCase flujo de pedidos: creación con descuento de stock atómico,
// consultas y mutaciones scoped por vendedor.
type OrderUseCase struct {
	txRunner   OrderTxRunner
	clientRepo repository.ClientRepository
	orderRepo  repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(txRunner OrderTxRunner, clientRepo repository.ClientRepository, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, clientRepo: clientRepo, orderRepo: orderRepo}
}

// Create ejecuta el flujo de fulfillment:
//  1. Resuelve el cliente (ErrNotFound si no existe) y verifica que
//     pertenezca al vendedor autenticado (ErrForbidden).
//  2. En una sola transacción, por cada línea en orden de entrada: resuelve
//     el producto (ErrNotFound), descuenta el stock de forma condicional
//     (ErrInsufficientStock si no alcanza) y toma nombre y precio como copia.
//  3. Inserta el pedido en la misma transacción, con total calculado en el
//     servidor y vendor = identidad del contexto.
//
// Si cualquier línea falla, la transacción completa se revierte: ningún
// producto queda con stock descontado sin su pedido correspondiente.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.OrderInput) (*entity.Order, error) {
	ident, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Amount <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	client, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.Vendor != ident.ID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		ClientID:  client.ID,
		Vendor:    ident.ID,
		Date:      now,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		total := decimal.Zero
		for _, item := range in.Items {
			product, err := productRepo.GetByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := productRepo.DecrementExistence(ctx, item.ProductID, item.Amount); err != nil {
				return err
			}
			order.Items = append(order.Items, entity.OrderItem{
				ProductID: product.ID,
				Amount:    item.Amount,
				Name:      product.Name,
				Price:     product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(item.Amount)))
		}
		order.Total = total
		return orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID devuelve un pedido del vendedor autenticado.
// ErrNotFound si no existe, ErrForbidden si pertenece a otro vendedor.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return uc.getOwned(ctx, id)
}

// List devuelve todos los pedidos sin filtrar por vendedor. Endpoint
// administrativo heredado del contrato original; se conserva documentado.
func (uc *OrderUseCase) List(ctx context.Context) ([]*entity.Order, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	return uc.orderRepo.List(ctx)
}

// ListByVendor devuelve los pedidos del vendedor autenticado.
func (uc *OrderUseCase) ListByVendor(ctx context.Context) ([]*entity.Order, error) {
	ident, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	return uc.orderRepo.ListByVendor(ctx, ident.ID)
}

// ListByStatus devuelve los pedidos del vendedor autenticado con el estado dado.
func (uc *OrderUseCase) ListByStatus(ctx context.Context, status string) ([]*entity.Order, error) {
	ident, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.orderRepo.ListByVendorAndStatus(ctx, ident.ID, status)
}

// UpdateStatus cambia el estado del pedido, con el mismo chequeo de dueño
// que GetByID. Las líneas y el total son inmutables una vez creado el
// pedido: solo el estado puede cambiar.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	order, err := uc.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.UpdateStatus(ctx, order.ID, status, order.UpdatedAt); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete elimina el pedido, con el mismo chequeo de dueño que GetByID.
// El stock descontado al crearlo no se restituye: un pedido eliminado no
// devuelve unidades al catálogo.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.getOwned(ctx, id)
	if err != nil {
		return err
	}
	return uc.orderRepo.Delete(ctx, order.ID)
}

func (uc *OrderUseCase) getOwned(ctx context.Context, id string) (*entity.Order, error) {
	ident, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Vendor != ident.ID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}
