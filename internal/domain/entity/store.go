package entity

import "time"

// Store representa una tienda/comercio (tenant del sistema).
type Store struct {
	ID          string
	OwnerID     string
	Name        string
	Slug        string // identificador público único (URL del menú)
	Description string
	Phone       string // teléfono / WhatsApp
	Address     string
	Schedule    string // horario de atención en texto libre
	Status      string // active, suspended
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Estados de tienda.
const (
	StoreStatusActive    = "active"
	StoreStatusSuspended = "suspended"
)
