package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
)

// Identidades fijas para los tests de scoping: dos vendedores distintos.
var (
	vendedorAna  = auth.Identity{ID: "vendor-ana", Email: "ana@ejemplo.com", Name: "Ana", Lastname: "García"}
	vendedorLuis = auth.Identity{ID: "vendor-luis", Email: "luis@ejemplo.com", Name: "Luis", Lastname: "Pérez"}
)

func ctxDe(ident auth.Identity) context.Context {
	return auth.WithIdentity(context.Background(), ident)
}

// fixture store en memoria con los casos de uso ya cableados.
type fixture struct {
	store     *memory.Store
	productUC *usecase.ProductUseCase
	clientUC  *usecase.ClientUseCase
	orderUC   *usecase.OrderUseCase
	reportUC  *usecase.ReportUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:     store,
		productUC: usecase.NewProductUseCase(store.Products()),
		clientUC:  usecase.NewClientUseCase(store.Clients()),
		orderUC:   usecase.NewOrderUseCase(store.Tx(), store.Clients(), store.Orders()),
		reportUC:  usecase.NewReportUseCase(store.Reports()),
	}
}

func (f *fixture) seedVendedor(t *testing.T, ident auth.Identity) {
	t.Helper()
	err := f.store.Users().Create(context.Background(), &entity.User{
		ID:        ident.ID,
		Name:      ident.Name,
		Lastname:  ident.Lastname,
		Email:     ident.Email,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func (f *fixture) seedProducto(t *testing.T, name string, existence int64, price string) *entity.Product {
	t.Helper()
	product, err := f.productUC.Create(context.Background(), dto.ProductInput{
		Name:      name,
		Existence: existence,
		Price:     decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return product
}

func (f *fixture) seedCliente(t *testing.T, ident auth.Identity, email string) *entity.Client {
	t.Helper()
	client, err := f.clientUC.Create(ctxDe(ident), dto.ClientInput{
		Name:     "Cliente",
		Lastname: "Prueba",
		Company:  "ACME",
		Email:    email,
	})
	require.NoError(t, err)
	return client
}
