// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests de casos de uso y del schema GraphQL; reproduce las
// convenciones de los adaptadores PostgreSQL: (nil, nil) cuando un registro
// no existe, decremento de stock condicional y transacciones todo-o-nada.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/textutil"
)

// Store estado compartido por todos los repos en memoria.
type Store struct {
	mu       sync.Mutex
	txMu     sync.Mutex
	users    map[string]entity.User
	products map[string]entity.Product
	clients  map[string]entity.Client
	orders   map[string]entity.Order
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]entity.User),
		products: make(map[string]entity.Product),
		clients:  make(map[string]entity.Client),
		orders:   make(map[string]entity.Order),
	}
}

// Users devuelve el repo de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Products devuelve el repo de productos.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s} }

// Clients devuelve el repo de clientes.
func (s *Store) Clients() repository.ClientRepository { return &clientRepo{s} }

// Orders devuelve el repo de pedidos.
func (s *Store) Orders() repository.OrderRepository { return &orderRepo{s} }

// Reports devuelve el repo de reportes.
func (s *Store) Reports() repository.ReportRepository { return &reportRepo{s} }

// Tx devuelve el runner de transacciones de pedidos en memoria.
func (s *Store) Tx() *TxRunner { return &TxRunner{s: s} }

// TxRunner equivalente en memoria de la transacción de pedidos: toma un
// snapshot de productos y pedidos antes de ejecutar fn y lo restaura si fn
// devuelve error. Las transacciones se serializan entre sí.
type TxRunner struct {
	s *Store
}

// Run ejecuta fn con repos sobre el store; rollback por snapshot si fn falla.
func (t *TxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	t.s.mu.Lock()
	productsSnap := make(map[string]entity.Product, len(t.s.products))
	for k, v := range t.s.products {
		productsSnap[k] = v
	}
	ordersSnap := make(map[string]entity.Order, len(t.s.orders))
	for k, v := range t.s.orders {
		ordersSnap[k] = v
	}
	t.s.mu.Unlock()

	if err := fn(&productRepo{t.s}, &orderRepo{t.s}); err != nil {
		t.s.mu.Lock()
		t.s.products = productsSnap
		t.s.orders = ordersSnap
		t.s.mu.Unlock()
		return err
	}
	return nil
}

// ─── Usuarios ─────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// ─── Productos ────────────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[product.ID] = *product
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *productRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[product.ID] = *product
	return nil
}

func (r *productRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

func (r *productRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		p := p
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (r *productRepo) Search(_ context.Context, foldedTerm string, limit int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if strings.Contains(textutil.Fold(p.Name), foldedTerm) {
			p := p
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *productRepo) DecrementExistence(_ context.Context, productID string, amount int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Existence < amount {
		return domain.ErrInsufficientStock
	}
	p.Existence -= amount
	p.UpdatedAt = time.Now()
	r.s.products[productID] = p
	return nil
}

// ─── Clientes ─────────────────────────────────────────────────────────────────

type clientRepo struct{ s *Store }

func (r *clientRepo) Create(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clients {
		if c.Email == client.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.clients[client.ID] = *client
	return nil
}

func (r *clientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *clientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clients {
		if c.Email == email {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *clientRepo) Update(_ context.Context, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[client.ID] = *client
	return nil
}

func (r *clientRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.clients, id)
	return nil
}

func (r *clientRepo) List(_ context.Context) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(entity.Client) bool { return true }), nil
}

func (r *clientRepo) ListByVendor(_ context.Context, vendorID string) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(c entity.Client) bool { return c.Vendor == vendorID }), nil
}

func (r *clientRepo) collect(keep func(entity.Client) bool) []*entity.Client {
	var list []*entity.Client
	for _, c := range r.s.clients {
		if keep(c) {
			c := c
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// ─── Pedidos ──────────────────────────────────────────────────────────────────

type orderRepo struct{ s *Store }

func (r *orderRepo) Create(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o := *order
	o.Items = append([]entity.OrderItem(nil), order.Items...)
	r.s.orders[order.ID] = o
	return nil
}

func (r *orderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if o, ok := r.s.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (r *orderRepo) UpdateStatus(_ context.Context, id, status string, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	r.s.orders[id] = o
	return nil
}

func (r *orderRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.orders, id)
	return nil
}

func (r *orderRepo) List(_ context.Context) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(entity.Order) bool { return true }), nil
}

func (r *orderRepo) ListByVendor(_ context.Context, vendorID string) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(o entity.Order) bool { return o.Vendor == vendorID }), nil
}

func (r *orderRepo) ListByVendorAndStatus(_ context.Context, vendorID, status string) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(o entity.Order) bool { return o.Vendor == vendorID && o.Status == status }), nil
}

func (r *orderRepo) collect(keep func(entity.Order) bool) []*entity.Order {
	var list []*entity.Order
	for _, o := range r.s.orders {
		if keep(o) {
			o := o
			list = append(list, &o)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list
}

// ─── Reportes ─────────────────────────────────────────────────────────────────

type reportRepo struct{ s *Store }

func (r *reportRepo) TopClients(_ context.Context, limit int) ([]repository.TopClientRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	totals := make(map[string]repository.TopClientRow)
	for _, o := range r.s.orders {
		if o.Status != entity.OrderStatusCompleted {
			continue
		}
		client, ok := r.s.clients[o.ClientID]
		if !ok {
			continue
		}
		row := totals[o.ClientID]
		row.Client = client
		row.Total = row.Total.Add(o.Total)
		totals[o.ClientID] = row
	}
	rows := make([]repository.TopClientRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total.GreaterThan(rows[j].Total) })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *reportRepo) TopVendors(_ context.Context, limit int) ([]repository.TopVendorRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	totals := make(map[string]repository.TopVendorRow)
	for _, o := range r.s.orders {
		if o.Status != entity.OrderStatusCompleted {
			continue
		}
		vendor, ok := r.s.users[o.Vendor]
		if !ok {
			continue
		}
		row := totals[o.Vendor]
		row.Vendor = vendor
		row.Total = row.Total.Add(o.Total)
		totals[o.Vendor] = row
	}
	rows := make([]repository.TopVendorRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total.GreaterThan(rows[j].Total) })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
