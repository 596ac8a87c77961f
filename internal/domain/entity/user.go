package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "ADMIN"
	RoleDealer = "DEALER"
	RoleClient = "CLIENT"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleDealer || s == RoleClient
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca se serializa en respuestas
	Role         string // ADMIN, DEALER, CLIENT
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
