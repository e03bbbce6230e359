package dto

import "github.com/shopspring/decimal"

// ProductInput datos para crear o actualizar un producto.
type ProductInput struct {
	Name      string          `json:"name"`
	Existence int64           `json:"existence"`
	Price     decimal.Decimal `json:"price"`
}
