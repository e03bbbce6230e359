package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/crm-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema    *graphql.Schema
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API. Todo el contrato vive en /graphql;
// la autenticación es opcional a nivel HTTP (ver AuthContext).
func Router(app *fiber.App, deps RouterDeps) {
	gql := NewGraphQLHandler(deps.Schema)
	app.Post("/graphql", AuthContext(deps.JWTSecret, deps.Log), gql.Post)
}
