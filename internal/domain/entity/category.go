package entity

import "time"

// Category agrupa productos en el menú.
type Category struct {
	ID        string
	StoreID   string
	Name      string
	Position  int // orden de aparición en el menú
	CreatedAt time.Time
	UpdatedAt time.Time
}
