package dto

// ClientInput datos para crear o actualizar un cliente.
type ClientInput struct {
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
}
