package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/crm-api/internal/application/dto"
)

// GraphQLHandler ejecuta operaciones GraphQL contra el schema.
type GraphQLHandler struct {
	schema *graphql.Schema
}

// NewGraphQLHandler construye el handler de /graphql.
func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// graphqlRequest cuerpo estándar de una petición GraphQL sobre HTTP.
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Post ejecuta la operación del cuerpo. Los errores de resolvers viajan en
// el array errors de la respuesta GraphQL; aquí solo se rechazan cuerpos
// que no son JSON válido.
func (h *GraphQLHandler) Post(c *fiber.Ctx) error {
	var req graphqlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
	}
	resp := h.schema.Exec(c.UserContext(), req.Query, req.OperationName, req.Variables)
	return c.JSON(resp)
}
