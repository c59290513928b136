package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/sales"
)

func TestItemSubtotal_ConVariante(t *testing.T) {
	got := sales.ItemSubtotal(dec("100"), 2, []entity.SaleVariant{{ID: "v1", Name: "Grande", Price: dec("20")}})
	assert.True(t, got.Equal(dec("240")), "got %s", got)
}

func TestItemSubtotal_SinVariantes(t *testing.T) {
	assert.True(t, sales.ItemSubtotal(dec("12.50"), 3, nil).Equal(dec("37.5")))
	assert.True(t, sales.ItemSubtotal(dec("12.50"), 3, []entity.SaleVariant{}).Equal(dec("37.5")))
}

func TestItemSubtotal_CantidadCero(t *testing.T) {
	assert.True(t, sales.ItemSubtotal(dec("99.99"), 0, nil).IsZero())
}

func TestComputeTotals_AplicaDescuento(t *testing.T) {
	items := []entity.SaleItem{{Subtotal: dec("240")}}
	tot := sales.ComputeTotals(items, dec("40"))

	assert.True(t, tot.Subtotal.Equal(dec("240")))
	assert.True(t, tot.Discount.Equal(dec("40")))
	assert.True(t, tot.Total.Equal(dec("200")))
}

func TestComputeTotals_SinItems(t *testing.T) {
	tot := sales.ComputeTotals(nil, decimal.Zero)
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.Total.IsZero())
}

func TestRecalculate_ReescribeSubtotalesYPago(t *testing.T) {
	s := &entity.Sale{
		Items: []entity.SaleItem{
			{Quantity: 2, UnitPrice: dec("100"), Variants: []entity.SaleVariant{{Price: dec("20")}}, Subtotal: dec("1")},
			{Quantity: 1, UnitPrice: dec("15.25")},
		},
		Totals:  entity.SaleTotals{Discount: dec("40"), Total: dec("999")},
		Payment: entity.SalePayment{Method: entity.PaymentTransfer, Total: dec("999")},
	}

	sales.Recalculate(s)

	assert.True(t, s.Items[0].Subtotal.Equal(dec("240")))
	assert.True(t, s.Items[1].Subtotal.Equal(dec("15.25")))
	assert.True(t, s.Totals.Subtotal.Equal(dec("255.25")))
	assert.True(t, s.Totals.Discount.Equal(dec("40")), "el descuento se conserva")
	assert.True(t, s.Totals.Total.Equal(dec("215.25")))
	assert.True(t, s.Payment.Total.Equal(s.Totals.Total))
	assert.Equal(t, entity.PaymentTransfer, s.Payment.Method)
}
