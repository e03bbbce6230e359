package dto

// OrderItemInput una línea de pedido: producto y cantidad solicitada.
// Nombre y precio se toman del producto en el servidor, no del caller.
type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Amount    int64  `json:"amount"`
}

// OrderInput datos para crear un pedido.
type OrderInput struct {
	ClientID string           `json:"client_id"`
	Items    []OrderItemInput `json:"items"`
	Status   string           `json:"status"` // opcional; por defecto PENDING
}
