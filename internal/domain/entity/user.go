package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User representa un usuario del sistema. El primer usuario se crea en el
// registro inicial (registro público abierto solo mientras no exista ninguno).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, cashier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
