package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// UserResolver expone un usuario. Nunca incluye el hash de password.
type UserResolver struct {
	u dto.UserResponse
}

func (r *UserResolver) ID() graphql.ID       { return graphql.ID(r.u.ID) }
func (r *UserResolver) Name() string         { return r.u.Name }
func (r *UserResolver) Lastname() string     { return r.u.Lastname }
func (r *UserResolver) Email() string        { return r.u.Email }
func (r *UserResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.u.CreatedAt}
}

// TokenResolver expone el token emitido en login.
type TokenResolver struct {
	token string
}

func (r *TokenResolver) Token() string { return r.token }

// ProductResolver expone un producto del catálogo.
type ProductResolver struct {
	p *entity.Product
}

func (r *ProductResolver) ID() graphql.ID   { return graphql.ID(r.p.ID) }
func (r *ProductResolver) Name() string     { return r.p.Name }
func (r *ProductResolver) Existence() int32 { return int32(r.p.Existence) }
func (r *ProductResolver) Price() float64   { return r.p.Price.InexactFloat64() }
func (r *ProductResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: r.p.CreatedAt}
}

// ClientResolver expone un cliente.
type ClientResolver struct {
	c *entity.Client
}

func (r *ClientResolver) ID() graphql.ID   { return graphql.ID(r.c.ID) }
func (r *ClientResolver) Name() string     { return r.c.Name }
func (r *ClientResolver) Lastname() string { return r.c.Lastname }
func (r *ClientResolver) Company() string  { return r.c.Company }
func (r *ClientResolver) Email() string    { return r.c.Email }
func (r *ClientResolver) Cellphone() *string {
	if r.c.Cellphone == "" {
		return nil
	}
	s := r.c.Cellphone
	return &s
}
func (r *ClientResolver) Vendor() graphql.ID { return graphql.ID(r.c.Vendor) }

// OrderItemResolver expone una línea de pedido.
type OrderItemResolver struct {
	item entity.OrderItem
}

func (r *OrderItemResolver) ProductID() graphql.ID { return graphql.ID(r.item.ProductID) }
func (r *OrderItemResolver) Amount() int32         { return int32(r.item.Amount) }
func (r *OrderItemResolver) Name() string          { return r.item.Name }
func (r *OrderItemResolver) Price() float64        { return r.item.Price.InexactFloat64() }

// OrderResolver expone un pedido. El campo client resuelve el registro
// referenciado sin chequeo de dueño: quien puede ver el pedido puede ver su
// cliente (incluye el listado administrativo getOrders).
type OrderResolver struct {
	o          *entity.Order
	clientRepo repository.ClientRepository
}

func (r *OrderResolver) ID() graphql.ID { return graphql.ID(r.o.ID) }

func (r *OrderResolver) Items() []*OrderItemResolver {
	items := make([]*OrderItemResolver, 0, len(r.o.Items))
	for _, item := range r.o.Items {
		items = append(items, &OrderItemResolver{item: item})
	}
	return items
}

func (r *OrderResolver) Total() float64 { return r.o.Total.InexactFloat64() }

func (r *OrderResolver) Client(ctx context.Context) (*ClientResolver, error) {
	client, err := r.clientRepo.GetByID(ctx, r.o.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return &ClientResolver{c: client}, nil
}

func (r *OrderResolver) Vendor() graphql.ID { return graphql.ID(r.o.Vendor) }
func (r *OrderResolver) Date() graphql.Time {
	return graphql.Time{Time: r.o.Date}
}
func (r *OrderResolver) Status() string { return r.o.Status }

// TopClientResolver una fila del reporte de mejores clientes.
type TopClientResolver struct {
	row repository.TopClientRow
}

func (r *TopClientResolver) Total() float64 { return r.row.Total.InexactFloat64() }
func (r *TopClientResolver) Client() *ClientResolver {
	c := r.row.Client
	return &ClientResolver{c: &c}
}

// TopVendorResolver una fila del reporte de mejores vendedores.
type TopVendorResolver struct {
	row repository.TopVendorRow
}

func (r *TopVendorResolver) Total() float64 { return r.row.Total.InexactFloat64() }
func (r *TopVendorResolver) Vendor() *UserResolver {
	u := r.row.Vendor
	return &UserResolver{u: dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Lastname:  u.Lastname,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}}
}
