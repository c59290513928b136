// Package export serializa listados de ventas a CSV y XLSX.
package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

const dateLayout = "02/01/2006 15:04"

var paymentLabels = map[entity.PaymentMethod]string{
	entity.PaymentCash:        "Efectivo",
	entity.PaymentTransfer:    "Transferencia",
	entity.PaymentMercadoPago: "Mercado Pago",
}

var deliveryLabels = map[entity.DeliveryMethod]string{
	entity.DeliveryPickup:   "Retiro",
	entity.DeliveryShipping: "Delivery",
}

var sourceLabels = map[entity.SaleSource]string{
	entity.SaleSourceLocal:    "Local",
	entity.SaleSourceWeb:      "Web",
	entity.SaleSourceWhatsApp: "WhatsApp",
}

func paymentLabel(m entity.PaymentMethod) string {
	if l, ok := paymentLabels[m]; ok {
		return l
	}
	return string(m)
}

func deliveryLabel(m entity.DeliveryMethod) string {
	if l, ok := deliveryLabels[m]; ok {
		return l
	}
	return string(m)
}

func sourceLabel(s entity.SaleSource) string {
	if l, ok := sourceLabels[s]; ok {
		return l
	}
	return string(s)
}

func formatDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(dateLayout)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// variantNames "Grande, Extra queso" o vacío.
func variantNames(vs []entity.SaleVariant) string {
	names := make([]string, 0, len(vs))
	for _, v := range vs {
		names = append(names, v.Name)
	}
	return strings.Join(names, ", ")
}
