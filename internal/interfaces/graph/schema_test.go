package graph_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/infrastructure/memory"
	"github.com/jhoicas/crm-api/internal/interfaces/graph"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	vendedorAna  = auth.Identity{ID: "vendor-ana", Email: "ana@ejemplo.com", Name: "Ana", Lastname: "García"}
	vendedorLuis = auth.Identity{ID: "vendor-luis", Email: "luis@ejemplo.com", Name: "Luis", Lastname: "Pérez"}
)

func ctxDe(ident auth.Identity) context.Context {
	return auth.WithIdentity(context.Background(), ident)
}

// newTestSchema cablea el schema completo contra el store en memoria.
func newTestSchema(t *testing.T) (*graphql.Schema, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "crm-api-test",
	})
	resolver := graph.NewResolver(graph.Deps{
		AuthUC:     authUC,
		ProductUC:  usecase.NewProductUseCase(store.Products()),
		ClientUC:   usecase.NewClientUseCase(store.Clients()),
		OrderUC:    usecase.NewOrderUseCase(store.Tx(), store.Clients(), store.Orders()),
		ReportUC:   usecase.NewReportUseCase(store.Reports()),
		ClientRepo: store.Clients(),
	})
	return graph.NewSchema(resolver), store
}

// exec ejecuta la operación y exige que no haya errores GraphQL.
func exec(t *testing.T, schema *graphql.Schema, ctx context.Context, query string) map[string]interface{} {
	t.Helper()
	resp := schema.Exec(ctx, query, "", nil)
	require.Empty(t, resp.Errors, "la operación no debe fallar: %v", resp.Errors)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

// execErr ejecuta la operación y exige que falle; devuelve el primer error.
func execErr(t *testing.T, schema *graphql.Schema, ctx context.Context, query string) string {
	t.Helper()
	resp := schema.Exec(ctx, query, "", nil)
	require.NotEmpty(t, resp.Errors, "la operación debe fallar")
	return resp.Errors[0].Error()
}

func crearProducto(t *testing.T, schema *graphql.Schema, name string, existence int, price string) string {
	t.Helper()
	data := exec(t, schema, context.Background(), fmt.Sprintf(`mutation {
		createProduct(input: {name: %q, existence: %d, price: %s}) { id }
	}`, name, existence, price))
	return data["createProduct"].(map[string]interface{})["id"].(string)
}

func crearCliente(t *testing.T, schema *graphql.Schema, ident auth.Identity, email string) string {
	t.Helper()
	data := exec(t, schema, ctxDe(ident), fmt.Sprintf(`mutation {
		createClient(input: {name: "Cliente", lastname: "Prueba", company: "ACME", email: %q}) { id }
	}`, email))
	return data["createClient"].(map[string]interface{})["id"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestSchema_RegisterUserYLogin(t *testing.T) {
	schema, _ := newTestSchema(t)
	ctx := context.Background()

	data := exec(t, schema, ctx, `mutation {
		registerUser(input: {name: "Ana", lastname: "García", email: "ana@ejemplo.com", password: "secreto123"}) {
			id name email
		}
	}`)
	user := data["registerUser"].(map[string]interface{})
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "ana@ejemplo.com", user["email"])

	data = exec(t, schema, ctx, `mutation {
		login(input: {email: "ana@ejemplo.com", password: "secreto123"}) { token }
	}`)
	token := data["login"].(map[string]interface{})["token"].(string)
	assert.NotEmpty(t, token)

	// Password incorrecto → error en el array errors.
	msg := execErr(t, schema, ctx, `mutation {
		login(input: {email: "ana@ejemplo.com", password: "malo"}) { token }
	}`)
	assert.Contains(t, msg, "credenciales")
}

func TestSchema_GetUser_SinIdentidad_Falla(t *testing.T) {
	schema, _ := newTestSchema(t)
	msg := execErr(t, schema, context.Background(), `{ getUser { id } }`)
	assert.Contains(t, msg, "autenticación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestSchema_ProductoCRUDYBusqueda(t *testing.T) {
	schema, _ := newTestSchema(t)
	ctx := context.Background()

	id := crearProducto(t, schema, "Camión rojo", 10, "49.9")
	crearProducto(t, schema, "Bicicleta", 3, "120")

	data := exec(t, schema, ctx, fmt.Sprintf(`{ getProduct(id: %q) { name existence price } }`, id))
	product := data["getProduct"].(map[string]interface{})
	assert.Equal(t, "Camión rojo", product["name"])
	assert.EqualValues(t, 10, product["existence"])

	// Búsqueda insensible a tildes y mayúsculas.
	data = exec(t, schema, ctx, `{ searchProduct(term: "CAMION") { name } }`)
	results := data["searchProduct"].([]interface{})
	require.Len(t, results, 1)
	assert.Equal(t, "Camión rojo", results[0].(map[string]interface{})["name"])

	data = exec(t, schema, ctx, fmt.Sprintf(`mutation {
		updateProduct(id: %q, input: {name: "Camión azul", existence: 8, price: 45}) { name existence }
	}`, id))
	updated := data["updateProduct"].(map[string]interface{})
	assert.Equal(t, "Camión azul", updated["name"])
	assert.EqualValues(t, 8, updated["existence"])

	data = exec(t, schema, ctx, fmt.Sprintf(`mutation { deleteProduct(id: %q) }`, id))
	assert.Equal(t, "Producto eliminado", data["deleteProduct"])

	msg := execErr(t, schema, ctx, fmt.Sprintf(`{ getProduct(id: %q) { id } }`, id))
	assert.Contains(t, msg, "no encontrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestSchema_Cliente_ScopingPorVendedor(t *testing.T) {
	schema, _ := newTestSchema(t)

	// Anónimo no puede crear clientes.
	msg := execErr(t, schema, context.Background(), `mutation {
		createClient(input: {name: "C", lastname: "P", company: "ACME", email: "c@acme.com"}) { id }
	}`)
	assert.Contains(t, msg, "autenticación")

	id := crearCliente(t, schema, vendedorAna, "cliente@acme.com")

	// El dueño lo lee; otro vendedor recibe acceso denegado.
	data := exec(t, schema, ctxDe(vendedorAna), fmt.Sprintf(`{ getClient(id: %q) { email vendor cellphone } }`, id))
	client := data["getClient"].(map[string]interface{})
	assert.Equal(t, "cliente@acme.com", client["email"])
	assert.Equal(t, vendedorAna.ID, client["vendor"])
	assert.Nil(t, client["cellphone"], "cellphone vacío se expone como null")

	execErr(t, schema, ctxDe(vendedorLuis), fmt.Sprintf(`{ getClient(id: %q) { id } }`, id))

	// getClientsVendor filtra por identidad.
	crearCliente(t, schema, vendedorLuis, "otro@acme.com")
	data = exec(t, schema, ctxDe(vendedorAna), `{ getClientsVendor { id } }`)
	assert.Len(t, data["getClientsVendor"].([]interface{}), 1)

	data = exec(t, schema, ctxDe(vendedorAna), `{ getClients { id } }`)
	assert.Len(t, data["getClients"].([]interface{}), 2, "lista administrativa sin filtro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestSchema_CreateOrder_FlujoCompleto(t *testing.T) {
	schema, store := newTestSchema(t)
	productID := crearProducto(t, schema, "Camión", 5, "10.5")
	clientID := crearCliente(t, schema, vendedorAna, "cliente@acme.com")

	data := exec(t, schema, ctxDe(vendedorAna), fmt.Sprintf(`mutation {
		createOrder(input: {clientId: %q, items: [{productId: %q, amount: 3}]}) {
			id total status
			items { name amount price }
			client { email }
		}
	}`, clientID, productID))
	order := data["createOrder"].(map[string]interface{})
	assert.InDelta(t, 31.5, order["total"], 0.001)
	assert.Equal(t, "PENDING", order["status"])
	items := order["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Camión", items[0].(map[string]interface{})["name"])
	assert.Equal(t, "cliente@acme.com", order["client"].(map[string]interface{})["email"])

	// Stock descontado 5−3=2.
	got, err := store.Products().GetByID(context.Background(), productID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Existence)

	// Segundo pedido de 3 unidades: stock insuficiente, nada cambia.
	msg := execErr(t, schema, ctxDe(vendedorAna), fmt.Sprintf(`mutation {
		createOrder(input: {clientId: %q, items: [{productId: %q, amount: 3}]}) { id }
	}`, clientID, productID))
	assert.Contains(t, msg, "insuficientes")

	got, err = store.Products().GetByID(context.Background(), productID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Existence)
}

func TestSchema_UpdateYDeleteOrder(t *testing.T) {
	schema, _ := newTestSchema(t)
	productID := crearProducto(t, schema, "Camión", 10, "10")
	clientID := crearCliente(t, schema, vendedorAna, "cliente@acme.com")

	data := exec(t, schema, ctxDe(vendedorAna), fmt.Sprintf(`mutation {
		createOrder(input: {clientId: %q, items: [{productId: %q, amount: 1}]}) { id }
	}`, clientID, productID))
	orderID := data["createOrder"].(map[string]interface{})["id"].(string)

	// Otro vendedor no puede mutar el pedido.
	execErr(t, schema, ctxDe(vendedorLuis), fmt.Sprintf(`mutation {
		updateOrder(id: %q, status: COMPLETED) { id }
	}`, orderID))

	data = exec(t, schema, ctxDe(vendedorAna), fmt.Sprintf(`mutation {
		updateOrder(id: %q, status: COMPLETED) { status }
	}`, orderID))
	assert.Equal(t, "COMPLETED", data["updateOrder"].(map[string]interface{})["status"])

	data = exec(t, schema, ctxDe(vendedorAna), `{ getOrdersByStatus(status: COMPLETED) { id } }`)
	assert.Len(t, data["getOrdersByStatus"].([]interface{}), 1)

	data = exec(t, schema, ctxDe(vendedorAna), fmt.Sprintf(`mutation { deleteOrder(id: %q) }`, orderID))
	assert.Equal(t, "Pedido eliminado", data["deleteOrder"])

	execErr(t, schema, ctxDe(vendedorAna), fmt.Sprintf(`{ getOrder(id: %q) { id } }`, orderID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestSchema_Reportes(t *testing.T) {
	schema, store := newTestSchema(t)
	seedVendedor := func(ident auth.Identity) {
		require.NoError(t, store.Users().Create(context.Background(), &entity.User{
			ID:        ident.ID,
			Name:      ident.Name,
			Lastname:  ident.Lastname,
			Email:     ident.Email,
			CreatedAt: time.Now(),
		}))
	}
	seedVendedor(vendedorAna)
	seedVendedor(vendedorLuis)

	productID := crearProducto(t, schema, "Camión", 100, "10")
	anaClient := crearCliente(t, schema, vendedorAna, "ana-cliente@acme.com")
	luisClient := crearCliente(t, schema, vendedorLuis, "luis-cliente@acme.com")

	completar := func(ident auth.Identity, clientID string, amount int) {
		data := exec(t, schema, ctxDe(ident), fmt.Sprintf(`mutation {
			createOrder(input: {clientId: %q, items: [{productId: %q, amount: %d}], status: PENDING}) { id }
		}`, clientID, productID, amount))
		orderID := data["createOrder"].(map[string]interface{})["id"].(string)
		exec(t, schema, ctxDe(ident), fmt.Sprintf(`mutation {
			updateOrder(id: %q, status: COMPLETED) { id }
		}`, orderID))
	}
	completar(vendedorAna, anaClient, 5)  // 50
	completar(vendedorLuis, luisClient, 2) // 20

	data := exec(t, schema, context.Background(), `{ getBestClients { total client { email } } }`)
	rows := data["getBestClients"].([]interface{})
	require.Len(t, rows, 2)
	top := rows[0].(map[string]interface{})
	assert.InDelta(t, 50, top["total"], 0.001)
	assert.Equal(t, "ana-cliente@acme.com", top["client"].(map[string]interface{})["email"])

	data = exec(t, schema, context.Background(), `{ getBestVendors { total vendor { email } } }`)
	vrows := data["getBestVendors"].([]interface{})
	require.Len(t, vrows, 2)
	assert.Equal(t, "ana@ejemplo.com", vrows[0].(map[string]interface{})["vendor"].(map[string]interface{})["email"])
}
