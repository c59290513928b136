package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	dsales "github.com/jhoicas/tienda-api/internal/domain/sales"
)

// Versiones del documento guardado en sales.doc.
const (
	saleDocV1      = 1 // formato "sell" heredado, sólo lectura
	saleDocV2      = 2
	saleDocCurrent = saleDocV2
)

type saleVariantDoc struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type saleItemDoc struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"productId"`
	ProductName string           `json:"productName"`
	CategoryID  string           `json:"categoryId,omitempty"`
	Quantity    int              `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	Variants    []saleVariantDoc `json:"variants"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
	Notes       string           `json:"notes,omitempty"`
}

// saleDoc documento canónico (v2). id, storeId y metadata viven en columnas.
type saleDoc struct {
	OrderNumber string `json:"orderNumber"`
	Source      string `json:"source"`
	Customer    struct {
		Name  string `json:"name"`
		Phone string `json:"phone,omitempty"`
		Email string `json:"email,omitempty"`
	} `json:"customer"`
	Items    []saleItemDoc `json:"items"`
	Delivery struct {
		Method  string `json:"method"`
		Address string `json:"address,omitempty"`
		Notes   string `json:"notes,omitempty"`
	} `json:"delivery"`
	Payment struct {
		Method string          `json:"method"`
		Total  decimal.Decimal `json:"total"`
	} `json:"payment"`
	Totals struct {
		Subtotal decimal.Decimal `json:"subtotal"`
		Discount decimal.Decimal `json:"discount"`
		Total    decimal.Decimal `json:"total"`
	} `json:"totals"`
	Notes string `json:"notes,omitempty"`
}

// sellDocV1 documento heredado: cliente y entrega planos, productos sin ID
// de línea, códigos de medio de pago/entrega en inglés o español.
type sellDocV1 struct {
	OrderNumber  string `json:"orderNumber"`
	Channel      string `json:"channel"`
	ClientName   string `json:"clientName"`
	ClientPhone  string `json:"clientPhone"`
	DeliveryType string `json:"deliveryType"`
	Address      string `json:"address"`
	PaymentType  string `json:"paymentType"`
	Products     []struct {
		ProductID string          `json:"productId"`
		Name      string          `json:"name"`
		Category  string          `json:"category"`
		Quantity  int             `json:"quantity"`
		Price     decimal.Decimal `json:"price"`
		Variants  []struct {
			Name  string          `json:"name"`
			Price decimal.Decimal `json:"price"`
		} `json:"variants"`
	} `json:"products"`
	Discount decimal.Decimal `json:"discount"`
	Notes    string          `json:"notes"`
}

// encodeSaleDocument serializa siempre en la versión actual.
func encodeSaleDocument(s *entity.Sale) ([]byte, error) {
	var d saleDoc
	d.OrderNumber = s.OrderNumber
	d.Source = string(s.Source)
	d.Customer.Name = s.Customer.Name
	d.Customer.Phone = s.Customer.Phone
	d.Customer.Email = s.Customer.Email
	d.Items = make([]saleItemDoc, 0, len(s.Items))
	for _, it := range s.Items {
		vs := make([]saleVariantDoc, 0, len(it.Variants))
		for _, v := range it.Variants {
			vs = append(vs, saleVariantDoc{ID: v.ID, Name: v.Name, Price: v.Price})
		}
		d.Items = append(d.Items, saleItemDoc{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			CategoryID:  it.CategoryID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Variants:    vs,
			Subtotal:    it.Subtotal,
			Notes:       it.Notes,
		})
	}
	d.Delivery.Method = string(s.Delivery.Method)
	d.Delivery.Address = s.Delivery.Address
	d.Delivery.Notes = s.Delivery.Notes
	d.Payment.Method = string(s.Payment.Method)
	d.Payment.Total = s.Payment.Total
	d.Totals.Subtotal = s.Totals.Subtotal
	d.Totals.Discount = s.Totals.Discount
	d.Totals.Total = s.Totals.Total
	d.Notes = s.Notes
	return json.Marshal(d)
}

// decodeSaleDocument es el único punto de lectura de documentos: cualquier
// versión conocida se convierte al modelo de dominio con sus defaults
// aplicados y los montos recalculados. id, storeId y metadata los completa
// quien llama desde las columnas.
func decodeSaleDocument(version int, raw []byte) (*entity.Sale, error) {
	var s *entity.Sale
	switch version {
	case saleDocV2:
		var d saleDoc
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decodificar venta v2: %w", err)
		}
		s = fromSaleDoc(d)
	case saleDocV1:
		var d sellDocV1
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decodificar venta v1: %w", err)
		}
		s = fromSellDocV1(d)
	default:
		return nil, fmt.Errorf("versión de documento de venta desconocida: %d", version)
	}

	if !s.Source.Valid() {
		s.Source = entity.SaleSourceLocal
	}
	if !s.Delivery.Method.Valid() {
		s.Delivery.Method = entity.DeliveryPickup
	}
	if !s.Payment.Method.Valid() {
		s.Payment.Method = entity.PaymentCash
	}
	for i := range s.Items {
		if s.Items[i].ID == "" {
			s.Items[i].ID = fmt.Sprintf("item-%d", i+1)
		}
	}
	dsales.Recalculate(s)
	return s, nil
}

func fromSaleDoc(d saleDoc) *entity.Sale {
	items := make([]entity.SaleItem, 0, len(d.Items))
	for _, it := range d.Items {
		var vs []entity.SaleVariant
		for _, v := range it.Variants {
			vs = append(vs, entity.SaleVariant{ID: v.ID, Name: v.Name, Price: v.Price})
		}
		items = append(items, entity.SaleItem{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			CategoryID:  it.CategoryID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Variants:    vs,
			Notes:       it.Notes,
		})
	}
	return &entity.Sale{
		OrderNumber: d.OrderNumber,
		Source:      entity.SaleSource(d.Source),
		Customer:    entity.SaleCustomer{Name: d.Customer.Name, Phone: d.Customer.Phone, Email: d.Customer.Email},
		Items:       items,
		Delivery: entity.SaleDelivery{
			Method:  entity.DeliveryMethod(d.Delivery.Method),
			Address: d.Delivery.Address,
			Notes:   d.Delivery.Notes,
		},
		Payment: entity.SalePayment{Method: entity.PaymentMethod(d.Payment.Method)},
		Totals:  entity.SaleTotals{Discount: d.Totals.Discount},
		Notes:   d.Notes,
	}
}

func fromSellDocV1(d sellDocV1) *entity.Sale {
	items := make([]entity.SaleItem, 0, len(d.Products))
	for _, p := range d.Products {
		var vs []entity.SaleVariant
		for j, v := range p.Variants {
			vs = append(vs, entity.SaleVariant{ID: fmt.Sprintf("variant-%d", j+1), Name: v.Name, Price: v.Price})
		}
		items = append(items, entity.SaleItem{
			ProductID:   p.ProductID,
			ProductName: p.Name,
			CategoryID:  p.Category,
			Quantity:    p.Quantity,
			UnitPrice:   p.Price,
			Variants:    vs,
		})
	}
	return &entity.Sale{
		OrderNumber: d.OrderNumber,
		Source:      entity.SaleSource(strings.ToLower(d.Channel)),
		Customer:    entity.SaleCustomer{Name: d.ClientName, Phone: d.ClientPhone},
		Items:       items,
		Delivery:    legacyDelivery(d.DeliveryType, d.Address),
		Payment:     entity.SalePayment{Method: legacyPayment(d.PaymentType)},
		Totals:      entity.SaleTotals{Discount: d.Discount},
		Notes:       d.Notes,
	}
}

func legacyDelivery(kind, address string) entity.SaleDelivery {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "delivery", "envio", "envío", "shipping":
		return entity.SaleDelivery{Method: entity.DeliveryShipping, Address: address}
	default:
		return entity.SaleDelivery{Method: entity.DeliveryPickup}
	}
}

func legacyPayment(kind string) entity.PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "transfer", "transferencia":
		return entity.PaymentTransfer
	case "mercadopago", "mercado_pago", "mp":
		return entity.PaymentMercadoPago
	default:
		return entity.PaymentCash
	}
}
