package dto

import "time"

// RegisterRequest alta de comercio: crea la tienda y su usuario owner.
type RegisterRequest struct {
	StoreName string `json:"store_name" validate:"required,min=2,max=120"`
	Name      string `json:"name" validate:"omitempty,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse token JWT con el usuario y su tienda.
type AuthResponse struct {
	Token string        `json:"token"`
	User  UserResponse  `json:"user"`
	Store StoreResponse `json:"store"`
}
