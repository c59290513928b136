package dto

import "time"

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Schedule    string    `json:"schedule,omitempty"`
	Status      string    `json:"status"`
	MenuURL     string    `json:"menu_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateStoreRequest cambios sobre la tienda propia (campos presentes).
type UpdateStoreRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Phone       *string `json:"phone" validate:"omitempty,max=40"`
	Address     *string `json:"address" validate:"omitempty,max=300"`
	Schedule    *string `json:"schedule" validate:"omitempty,max=200"`
}

// PublicStoreDTO datos públicos de la tienda en el menú.
type PublicStoreDTO struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Schedule    string `json:"schedule,omitempty"`
}

// MenuCategoryDTO categoría del menú con sus productos disponibles.
type MenuCategoryDTO struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}

// PublicMenuResponse menú público (destino del QR).
type PublicMenuResponse struct {
	Store      PublicStoreDTO    `json:"store"`
	Categories []MenuCategoryDTO `json:"categories"`
}
