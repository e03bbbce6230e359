package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCanceled  = "CANCELED"
)

// ValidOrderStatus indica si s es un estado de pedido reconocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// OrderItem es una línea de pedido. Name y Price son una copia tomada del
// producto en el momento de crear el pedido: cambios posteriores al catálogo
// no alteran pedidos ya facturados.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Amount    int64           `json:"amount"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// Order representa un pedido. Se crea únicamente a través del flujo de
// fulfillment (descuento de stock + inserción en una sola transacción).
// Tras la creación solo Status es mutable.
type Order struct {
	ID        string
	Items     []OrderItem // persistido como jsonb
	Total     decimal.Decimal
	ClientID  string
	Vendor    string // User.ID del vendedor dueño
	Date      time.Time
	Status    string // PENDING, COMPLETED, CANCELED
	CreatedAt time.Time
	UpdatedAt time.Time
}
