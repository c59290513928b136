package entity

import "time"

// Roles válidos para User dentro de su tienda.
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

// User representa un usuario del panel (pertenece a una Store).
type User struct {
	ID           string
	StoreID      string // vacío para cuentas legacy sin tienda asignada
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // owner, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
