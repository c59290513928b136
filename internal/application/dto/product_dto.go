package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariantDTO variante con recargo sobre el precio base.
type ProductVariantDTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name" validate:"required,max=100"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID  string              `json:"category_id" validate:"omitempty,uuid"`
	Name        string              `json:"name" validate:"required,min=1,max=200"`
	Description string              `json:"description" validate:"max=1000"`
	Price       decimal.Decimal     `json:"price" validate:"gte=0"`
	Variants    []ProductVariantDTO `json:"variants" validate:"omitempty,max=30,dive"`
	Available   *bool               `json:"available"`
}

// UpdateProductRequest entrada para actualizar un producto (campos presentes).
type UpdateProductRequest struct {
	CategoryID  *string              `json:"category_id"`
	Name        *string              `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string              `json:"description" validate:"omitempty,max=1000"`
	Price       *decimal.Decimal     `json:"price" validate:"omitempty,gte=0"`
	Variants    *[]ProductVariantDTO `json:"variants" validate:"omitempty,max=30,dive"`
	Available   *bool                `json:"available"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string              `json:"id"`
	CategoryID  string              `json:"category_id,omitempty"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Price       decimal.Decimal     `json:"price"`
	Variants    []ProductVariantDTO `json:"variants"`
	Available   bool                `json:"available"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Position int    `json:"position" validate:"gte=0"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
