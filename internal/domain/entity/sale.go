package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleSource canal por el que ingresó la venta.
type SaleSource string

const (
	SaleSourceLocal    SaleSource = "local"
	SaleSourceWeb      SaleSource = "web"
	SaleSourceWhatsApp SaleSource = "whatsapp"
)

// SaleSources orden fijo de canales (reportes y desgloses).
var SaleSources = []SaleSource{SaleSourceLocal, SaleSourceWeb, SaleSourceWhatsApp}

// Valid informa si el canal es conocido.
func (s SaleSource) Valid() bool {
	switch s {
	case SaleSourceLocal, SaleSourceWeb, SaleSourceWhatsApp:
		return true
	}
	return false
}

// DeliveryMethod forma de entrega.
type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "retiro"
	DeliveryShipping DeliveryMethod = "delivery"
)

// Valid informa si el método de entrega es conocido.
func (m DeliveryMethod) Valid() bool {
	return m == DeliveryPickup || m == DeliveryShipping
}

// PaymentMethod medio de pago.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "efectivo"
	PaymentTransfer    PaymentMethod = "transferencia"
	PaymentMercadoPago PaymentMethod = "mercadopago"
)

// Valid informa si el medio de pago es conocido.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentMercadoPago:
		return true
	}
	return false
}

// SaleVariant recargo de una variante (ej. tamaño grande).
type SaleVariant struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// SaleItem línea de una venta. ProductID, ProductName y CategoryID son una foto
// del catálogo al momento de la venta; no se actualizan si el producto cambia.
type SaleItem struct {
	ID          string
	ProductID   string
	ProductName string
	CategoryID  string
	Quantity    int
	UnitPrice   decimal.Decimal
	Variants    []SaleVariant
	Subtotal    decimal.Decimal // (UnitPrice + Σ Variants.Price) * Quantity
	Notes       string
}

// SaleCustomer datos del cliente.
type SaleCustomer struct {
	Name  string
	Phone string
	Email string
}

// SaleDelivery entrega. Si Method es delivery, Address es obligatoria.
type SaleDelivery struct {
	Method  DeliveryMethod
	Address string
	Notes   string
}

// SalePayment medio de pago y monto cobrado (igual a Totals.Total).
type SalePayment struct {
	Method PaymentMethod
	Total  decimal.Decimal
}

// SaleTotals totales de la venta. Total = Subtotal - Discount.
type SaleTotals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// SaleMetadata timestamps gestionados por el servidor.
type SaleMetadata struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sale venta de una tienda (aggregate root, particionada por StoreID).
type Sale struct {
	ID          string
	OrderNumber string
	StoreID     string
	Source      SaleSource
	Customer    SaleCustomer
	Items       []SaleItem
	Delivery    SaleDelivery
	Payment     SalePayment
	Totals      SaleTotals
	Notes       string
	Metadata    SaleMetadata
}
