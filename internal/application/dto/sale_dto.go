package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleVariantDTO variante elegida en una línea (recargo sobre el precio unitario).
type SaleVariantDTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name" validate:"required,max=100"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

// SaleItemRequest línea de venta enviada por el cliente. El subtotal lo
// calcula el servidor; ID se conserva en las actualizaciones.
type SaleItemRequest struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"product_id" validate:"required,max=64"`
	ProductName string           `json:"product_name" validate:"required,max=200"`
	CategoryID  string           `json:"category_id" validate:"max=64"`
	Quantity    int              `json:"quantity" validate:"gt=0,lte=10000"`
	UnitPrice   decimal.Decimal  `json:"unit_price" validate:"gte=0"`
	Variants    []SaleVariantDTO `json:"variants" validate:"omitempty,dive"`
	Notes       string           `json:"notes" validate:"max=500"`
}

// SaleCustomerDTO datos del cliente.
type SaleCustomerDTO struct {
	Name  string `json:"name" validate:"required,max=120,singleline"`
	Phone string `json:"phone" validate:"max=40,singleline"`
	Email string `json:"email" validate:"omitempty,email,max=200"`
}

// SaleDeliveryDTO entrega; la dirección es obligatoria para delivery.
type SaleDeliveryDTO struct {
	Method  string `json:"method" validate:"required,oneof=retiro delivery"`
	Address string `json:"address" validate:"required_if=Method delivery,max=300"`
	Notes   string `json:"notes" validate:"max=500"`
}

// SalePaymentRequest medio de pago; el monto lo deriva el servidor.
type SalePaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=efectivo transferencia mercadopago"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	Source   string             `json:"source" validate:"required,oneof=local web whatsapp"`
	Customer SaleCustomerDTO    `json:"customer"`
	Items    []SaleItemRequest  `json:"items" validate:"required,min=1,max=200,dive"`
	Delivery SaleDeliveryDTO    `json:"delivery"`
	Payment  SalePaymentRequest `json:"payment"`
	Discount decimal.Decimal    `json:"discount" validate:"gte=0"`
	Notes    string             `json:"notes" validate:"max=1000"`
}

// UpdateSaleRequest parche parcial: sólo se aplican los campos presentes.
// ExpectedUpdatedAt, si viene, debe coincidir con el updated_at almacenado.
type UpdateSaleRequest struct {
	Source            *string             `json:"source"`
	Customer          *SaleCustomerDTO    `json:"customer"`
	Items             *[]SaleItemRequest  `json:"items"`
	Delivery          *SaleDeliveryDTO    `json:"delivery"`
	Payment           *SalePaymentRequest `json:"payment"`
	Discount          *decimal.Decimal    `json:"discount"`
	Notes             *string             `json:"notes"`
	ExpectedUpdatedAt *time.Time          `json:"expected_updated_at"`
}

// SaleItemResponse línea de venta con subtotal.
type SaleItemResponse struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"product_id"`
	ProductName string           `json:"product_name"`
	CategoryID  string           `json:"category_id,omitempty"`
	Quantity    int              `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Variants    []SaleVariantDTO `json:"variants"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
	Notes       string           `json:"notes,omitempty"`
}

// SalePaymentResponse medio de pago y monto cobrado.
type SalePaymentResponse struct {
	Method string          `json:"method"`
	Total  decimal.Decimal `json:"total"`
}

// SaleTotalsResponse totales de la venta.
type SaleTotalsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	StoreID     string              `json:"store_id"`
	Source      string              `json:"source"`
	Customer    SaleCustomerDTO     `json:"customer"`
	Items       []SaleItemResponse  `json:"items"`
	Delivery    SaleDeliveryDTO     `json:"delivery"`
	Payment     SalePaymentResponse `json:"payment"`
	Totals      SaleTotalsResponse  `json:"totals"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// SaleListRequest filtros del listado (query string). Fechas en formato
// YYYY-MM-DD, interpretadas en la zona horaria de la tienda.
type SaleListRequest struct {
	Customer       string `query:"customer" json:"customer,omitempty"`
	StartDate      string `query:"start_date" json:"start_date,omitempty"`
	EndDate        string `query:"end_date" json:"end_date,omitempty"`
	PaymentMethod  string `query:"payment_method" json:"payment_method"`
	DeliveryMethod string `query:"delivery_method" json:"delivery_method"`
	Source         string `query:"source" json:"source"`
	SortBy         string `query:"sort_by" json:"sort_by"`
	Limit          int    `query:"limit" json:"limit"`
}

// SaleStatsResponse estadísticas del conjunto listado.
type SaleStatsResponse struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalOrders       int             `json:"total_orders"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TodaySales        decimal.Decimal `json:"today_sales"`
}

// SaleListResponse ventas filtradas y ordenadas, con estadísticas y los
// criterios efectivamente aplicados.
type SaleListResponse struct {
	Items    []SaleResponse    `json:"items"`
	Stats    SaleStatsResponse `json:"stats"`
	Criteria SaleListRequest   `json:"criteria"`
}

// ExportRequest exportación del listado filtrado.
type ExportRequest struct {
	SaleListRequest
	Format          string `query:"format"`
	IncludeProducts bool   `query:"include_products"`
	IncludeStats    bool   `query:"include_stats"`
}

// ExportFile archivo generado listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
