package dto

// ErrorResponse cuerpo de error HTTP (fuera del protocolo GraphQL).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
