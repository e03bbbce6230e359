package entity

import "time"

// User representa un vendedor del CRM. Inmutable después del registro;
// ninguna operación expuesta lo elimina.
type User struct {
	ID           string
	Name         string
	Lastname     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
