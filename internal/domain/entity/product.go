package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariant opción con recargo sobre el precio base.
type ProductVariant struct {
	ID    string
	Name  string
	Price decimal.Decimal // recargo, no precio final
}

// Product producto del catálogo de una tienda.
type Product struct {
	ID          string
	StoreID     string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	Variants    []ProductVariant
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
