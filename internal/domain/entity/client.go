package entity

import "time"

// Client representa un cliente del CRM. Pertenece a exactamente un vendedor
// (Vendor = User.ID); lectura por ID, actualización y borrado están
// restringidos al vendedor dueño.
type Client struct {
	ID        string
	Name      string
	Lastname  string
	Company   string
	Email     string
	Cellphone string
	Vendor    string // User.ID del vendedor dueño
	CreatedAt time.Time
}
