package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/application/auth"
	apphttp "github.com/jhoicas/crm-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/crm-api/pkg/jwt"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "crm-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthContext y un
// handler que reporta la identidad del contexto (o su ausencia).
func buildTestApp() *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	app.Get("/me", apphttp.AuthContext(testJWTSecret, log), func(c *fiber.Ctx) error {
		ident, ok := auth.FromContext(c.UserContext())
		return c.JSON(fiber.Map{
			"authenticated": ok,
			"id":            ident.ID,
			"email":         ident.Email,
		})
	})
	return app
}

func tokenValido(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana@ejemplo.com", "Ana", "García", testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthContext — autenticación opcional a nivel HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Token válido → la identidad queda en el contexto de la petición.
func TestAuthContext_TokenValido_AdjuntaIdentidad(t *testing.T) {
	app := buildTestApp()
	body := doRequest(t, app, tokenValido(t))

	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, testUserID, body["id"])
	assert.Equal(t, "ana@ejemplo.com", body["email"])
}

// Caso 2: Sin header Authorization → la petición continúa anónima, sin 401.
func TestAuthContext_SinHeader_PeticionAnonima(t *testing.T) {
	app := buildTestApp()
	body := doRequest(t, app, "")

	assert.Equal(t, false, body["authenticated"])
	assert.Empty(t, body["id"])
}

// Caso 3: Token malformado → anónima; el rechazo solo se registra en el log.
func TestAuthContext_TokenInvalido_PeticionAnonima(t *testing.T) {
	app := buildTestApp()
	body := doRequest(t, app, "Bearer token.invalido.aqui")

	assert.Equal(t, false, body["authenticated"])
}

// Caso 4: Token expirado → anónima, igual que un token inválido.
func TestAuthContext_TokenExpirado_PeticionAnonima(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana@ejemplo.com", "Ana", "García", testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp()
	body := doRequest(t, app, "Bearer "+tok)

	assert.Equal(t, false, body["authenticated"])
}

// Caso 5: Token firmado con otro secret → anónima.
func TestAuthContext_SecretIncorrecto_PeticionAnonima(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret-distinto", testUserID, "ana@ejemplo.com", "Ana", "García", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	body := doRequest(t, app, "Bearer "+tok)

	assert.Equal(t, false, body["authenticated"])
}

// Caso 6: Header sin el prefijo Bearer → se acepta el token crudo.
func TestAuthContext_TokenSinPrefijoBearer_AdjuntaIdentidad(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana@ejemplo.com", "Ana", "García", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	body := doRequest(t, app, tok)

	assert.Equal(t, true, body["authenticated"])
	assert.Equal(t, testUserID, body["id"])
}
