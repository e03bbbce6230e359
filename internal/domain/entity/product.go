package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. No tiene dueño: cualquier
// usuario autenticado puede crearlo, modificarlo o eliminarlo.
// Invariante: Existence >= 0 siempre (lo garantiza el decremento condicional
// del flujo de pedidos más un CHECK en la tabla).
type Product struct {
	ID        string
	Name      string
	Existence int64 // unidades en stock
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
