// Package sales contiene la lógica pura del circuito de ventas: cálculo de
// subtotales y totales, filtrado, ordenamiento y estadísticas. No accede a
// persistencia; opera sobre colecciones ya cargadas en memoria.
package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ItemSubtotal devuelve (unitPrice + Σ variants.Price) * quantity.
// Una lista de variantes nil o vacía no suma recargo. No valida signos:
// la validación ocurre antes de llegar acá.
func ItemSubtotal(unitPrice decimal.Decimal, quantity int, variants []entity.SaleVariant) decimal.Decimal {
	unit := unitPrice
	for _, v := range variants {
		unit = unit.Add(v.Price)
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeTotals suma los subtotales de las líneas y aplica el descuento.
// Los subtotales se toman tal como vienen en items (ver Recalculate).
func ComputeTotals(items []entity.SaleItem, discount decimal.Decimal) entity.SaleTotals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal)
	}
	return entity.SaleTotals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}
}

// Recalculate re-deriva el subtotal de cada línea, los totales de la venta y
// el monto del pago. El descuento se conserva.
func Recalculate(s *entity.Sale) {
	for i := range s.Items {
		it := &s.Items[i]
		it.Subtotal = ItemSubtotal(it.UnitPrice, it.Quantity, it.Variants)
	}
	s.Totals = ComputeTotals(s.Items, s.Totals.Discount)
	s.Payment.Total = s.Totals.Total
}
