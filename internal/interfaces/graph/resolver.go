package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Resolver raíz del schema. Cada método delega en el caso de uso
// correspondiente; la identidad viaja en el contexto (ver auth.Identity).
type Resolver struct {
	authUC     *auth.AuthUseCase
	productUC  *usecase.ProductUseCase
	clientUC   *usecase.ClientUseCase
	orderUC    *usecase.OrderUseCase
	reportUC   *usecase.ReportUseCase
	clientRepo repository.ClientRepository
}

// Deps dependencias del resolver raíz.
type Deps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	OrderUC    *usecase.OrderUseCase
	ReportUC   *usecase.ReportUseCase
	ClientRepo repository.ClientRepository
}

// NewResolver construye el resolver raíz.
func NewResolver(deps Deps) *Resolver {
	return &Resolver{
		authUC:     deps.AuthUC,
		productUC:  deps.ProductUC,
		clientUC:   deps.ClientUC,
		orderUC:    deps.OrderUC,
		reportUC:   deps.ReportUC,
		clientRepo: deps.ClientRepo,
	}
}

// NewSchema parsea el SDL contra el resolver raíz. Panic en arranque si el
// schema y el resolver no coinciden.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}

// ─── Inputs ───────────────────────────────────────────────────────────────────

// UserInput datos de registro (GraphQL input).
type UserInput struct {
	Name     string
	Lastname string
	Email    string
	Password string
}

// LoginInput credenciales (GraphQL input).
type LoginInput struct {
	Email    string
	Password string
}

// ProductInput datos de producto (GraphQL input).
type ProductInput struct {
	Name      string
	Existence int32
	Price     float64
}

// ClientInput datos de cliente (GraphQL input).
type ClientInput struct {
	Name      string
	Lastname  string
	Company   string
	Email     string
	Cellphone *string
}

// OrderItemInput línea de pedido (GraphQL input).
type OrderItemInput struct {
	ProductID graphql.ID
	Amount    int32
}

// OrderInput datos de pedido (GraphQL input).
type OrderInput struct {
	ClientID graphql.ID
	Items    []OrderItemInput
	Status   *string
}

// ─── Query: usuario ───────────────────────────────────────────────────────────

// GetUser perfil del usuario autenticado.
func (r *Resolver) GetUser(ctx context.Context) (*UserResolver, error) {
	user, err := r.authUC.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	return &UserResolver{u: *user}, nil
}

// ─── Query: productos ─────────────────────────────────────────────────────────

// GetProducts catálogo completo.
func (r *Resolver) GetProducts(ctx context.Context) ([]*ProductResolver, error) {
	products, err := r.productUC.List(ctx)
	if err != nil {
		return nil, err
	}
	return wrapProducts(products), nil
}

// GetProduct producto por ID.
func (r *Resolver) GetProduct(ctx context.Context, args struct{ ID graphql.ID }) (*ProductResolver, error) {
	product, err := r.productUC.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &ProductResolver{p: product}, nil
}

// SearchProduct búsqueda por nombre, insensible a mayúsculas y tildes.
func (r *Resolver) SearchProduct(ctx context.Context, args struct{ Term string }) ([]*ProductResolver, error) {
	products, err := r.productUC.Search(ctx, args.Term)
	if err != nil {
		return nil, err
	}
	return wrapProducts(products), nil
}

// ─── Query: clientes ──────────────────────────────────────────────────────────

// GetClients todos los clientes (administrativo, sin filtro por vendedor).
func (r *Resolver) GetClients(ctx context.Context) ([]*ClientResolver, error) {
	clients, err := r.clientUC.List(ctx)
	if err != nil {
		return nil, err
	}
	return wrapClients(clients), nil
}

// GetClientsVendor clientes del vendedor autenticado.
func (r *Resolver) GetClientsVendor(ctx context.Context) ([]*ClientResolver, error) {
	clients, err := r.clientUC.ListByVendor(ctx)
	if err != nil {
		return nil, err
	}
	return wrapClients(clients), nil
}

// GetClient cliente por ID, solo para su vendedor dueño.
func (r *Resolver) GetClient(ctx context.Context, args struct{ ID graphql.ID }) (*ClientResolver, error) {
	client, err := r.clientUC.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &ClientResolver{c: client}, nil
}

// ─── Query: pedidos ───────────────────────────────────────────────────────────

// GetOrders todos los pedidos (administrativo, sin filtro por vendedor).
func (r *Resolver) GetOrders(ctx context.Context) ([]*OrderResolver, error) {
	orders, err := r.orderUC.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.wrapOrders(orders), nil
}

// GetOrdersVendor pedidos del vendedor autenticado.
func (r *Resolver) GetOrdersVendor(ctx context.Context) ([]*OrderResolver, error) {
	orders, err := r.orderUC.ListByVendor(ctx)
	if err != nil {
		return nil, err
	}
	return r.wrapOrders(orders), nil
}

// GetOrder pedido por ID, solo para su vendedor dueño.
func (r *Resolver) GetOrder(ctx context.Context, args struct{ ID graphql.ID }) (*OrderResolver, error) {
	order, err := r.orderUC.GetByID(ctx, string(args.ID))
	if err != nil {
		return nil, err
	}
	return &OrderResolver{o: order, clientRepo: r.clientRepo}, nil
}

// GetOrdersByStatus pedidos del vendedor autenticado filtrados por estado.
func (r *Resolver) GetOrdersByStatus(ctx context.Context, args struct{ Status string }) ([]*OrderResolver, error) {
	orders, err := r.orderUC.ListByStatus(ctx, args.Status)
	if err != nil {
		return nil, err
	}
	return r.wrapOrders(orders), nil
}

// ─── Query: reportes ──────────────────────────────────────────────────────────

// GetBestClients hasta 10 clientes por total facturado (solo COMPLETED).
func (r *Resolver) GetBestClients(ctx context.Context) ([]*TopClientResolver, error) {
	rows, err := r.reportUC.BestClients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*TopClientResolver, 0, len(rows))
	for _, row := range rows {
		out = append(out, &TopClientResolver{row: row})
	}
	return out, nil
}

// GetBestVendors hasta 3 vendedores por total facturado (solo COMPLETED).
func (r *Resolver) GetBestVendors(ctx context.Context) ([]*TopVendorResolver, error) {
	rows, err := r.reportUC.BestVendors(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*TopVendorResolver, 0, len(rows))
	for _, row := range rows {
		out = append(out, &TopVendorResolver{row: row})
	}
	return out, nil
}

// ─── Mutation: auth ───────────────────────────────────────────────────────────

// RegisterUser registra un vendedor nuevo.
func (r *Resolver) RegisterUser(ctx context.Context, args struct{ Input UserInput }) (*UserResolver, error) {
	user, err := r.authUC.RegisterUser(ctx, dto.RegisterRequest{
		Name:     args.Input.Name,
		Lastname: args.Input.Lastname,
		Email:    args.Input.Email,
		Password: args.Input.Password,
	})
	if err != nil {
		return nil, err
	}
	return &UserResolver{u: *user}, nil
}

// Login emite el token de sesión (8 horas).
func (r *Resolver) Login(ctx context.Context, args struct{ Input LoginInput }) (*TokenResolver, error) {
	out, err := r.authUC.Login(ctx, dto.LoginRequest{
		Email:    args.Input.Email,
		Password: args.Input.Password,
	})
	if err != nil {
		return nil, err
	}
	return &TokenResolver{token: out.Token}, nil
}

// ─── Mutation: productos ──────────────────────────────────────────────────────

// CreateProduct alta de producto.
func (r *Resolver) CreateProduct(ctx context.Context, args struct{ Input ProductInput }) (*ProductResolver, error) {
	product, err := r.productUC.Create(ctx, toProductDTO(args.Input))
	if err != nil {
		return nil, err
	}
	return &ProductResolver{p: product}, nil
}

// UpdateProduct reemplaza los campos del producto.
func (r *Resolver) UpdateProduct(ctx context.Context, args struct {
	ID    graphql.ID
	Input ProductInput
}) (*ProductResolver, error) {
	product, err := r.productUC.Update(ctx, string(args.ID), toProductDTO(args.Input))
	if err != nil {
		return nil, err
	}
	return &ProductResolver{p: product}, nil
}

// DeleteProduct elimina un producto.
func (r *Resolver) DeleteProduct(ctx context.Context, args struct{ ID graphql.ID }) (string, error) {
	if err := r.productUC.Delete(ctx, string(args.ID)); err != nil {
		return "", err
	}
	return "Producto eliminado", nil
}

// ─── Mutation: clientes ───────────────────────────────────────────────────────

// CreateClient alta de cliente, vendor = identidad del contexto.
func (r *Resolver) CreateClient(ctx context.Context, args struct{ Input ClientInput }) (*ClientResolver, error) {
	client, err := r.clientUC.Create(ctx, toClientDTO(args.Input))
	if err != nil {
		return nil, err
	}
	return &ClientResolver{c: client}, nil
}

// UpdateClient reemplaza los campos del cliente, solo para su vendedor dueño.
func (r *Resolver) UpdateClient(ctx context.Context, args struct {
	ID    graphql.ID
	Input ClientInput
}) (*ClientResolver, error) {
	client, err := r.clientUC.Update(ctx, string(args.ID), toClientDTO(args.Input))
	if err != nil {
		return nil, err
	}
	return &ClientResolver{c: client}, nil
}

// DeleteClient elimina un cliente, solo para su vendedor dueño.
func (r *Resolver) DeleteClient(ctx context.Context, args struct{ ID graphql.ID }) (string, error) {
	if err := r.clientUC.Delete(ctx, string(args.ID)); err != nil {
		return "", err
	}
	return "Cliente eliminado", nil
}

// ─── Mutation: pedidos ────────────────────────────────────────────────────────

// CreateOrder flujo de fulfillment: descuento de stock + inserción atómicos.
func (r *Resolver) CreateOrder(ctx context.Context, args struct{ Input OrderInput }) (*OrderResolver, error) {
	in := dto.OrderInput{ClientID: string(args.Input.ClientID)}
	if args.Input.Status != nil {
		in.Status = *args.Input.Status
	}
	for _, item := range args.Input.Items {
		in.Items = append(in.Items, dto.OrderItemInput{
			ProductID: string(item.ProductID),
			Amount:    int64(item.Amount),
		})
	}
	order, err := r.orderUC.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return &OrderResolver{o: order, clientRepo: r.clientRepo}, nil
}

// UpdateOrder cambia el estado del pedido, solo para su vendedor dueño.
// Las líneas y el total son inmutables una vez creado el pedido.
func (r *Resolver) UpdateOrder(ctx context.Context, args struct {
	ID     graphql.ID
	Status string
}) (*OrderResolver, error) {
	order, err := r.orderUC.UpdateStatus(ctx, string(args.ID), args.Status)
	if err != nil {
		return nil, err
	}
	return &OrderResolver{o: order, clientRepo: r.clientRepo}, nil
}

// DeleteOrder elimina un pedido, solo para su vendedor dueño. No restituye stock.
func (r *Resolver) DeleteOrder(ctx context.Context, args struct{ ID graphql.ID }) (string, error) {
	if err := r.orderUC.Delete(ctx, string(args.ID)); err != nil {
		return "", err
	}
	return "Pedido eliminado", nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func toProductDTO(in ProductInput) dto.ProductInput {
	return dto.ProductInput{
		Name:      in.Name,
		Existence: int64(in.Existence),
		Price:     decimal.NewFromFloat(in.Price),
	}
}

func toClientDTO(in ClientInput) dto.ClientInput {
	out := dto.ClientInput{
		Name:     in.Name,
		Lastname: in.Lastname,
		Company:  in.Company,
		Email:    in.Email,
	}
	if in.Cellphone != nil {
		out.Cellphone = *in.Cellphone
	}
	return out
}

func wrapProducts(products []*entity.Product) []*ProductResolver {
	out := make([]*ProductResolver, 0, len(products))
	for _, p := range products {
		out = append(out, &ProductResolver{p: p})
	}
	return out
}

func wrapClients(clients []*entity.Client) []*ClientResolver {
	out := make([]*ClientResolver, 0, len(clients))
	for _, c := range clients {
		out = append(out, &ClientResolver{c: c})
	}
	return out
}

func (r *Resolver) wrapOrders(orders []*entity.Order) []*OrderResolver {
	out := make([]*OrderResolver, 0, len(orders))
	for _, o := range orders {
		out = append(out, &OrderResolver{o: o, clientRepo: r.clientRepo})
	}
	return out
}
