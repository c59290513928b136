package sales_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/sales"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers compartidos
// ──────────────────────────────────────────────────────────────────────────────

var testZone = time.FixedZone("ART", -3*60*60)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, testZone)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newSale arma una venta de una sola línea con totales ya recalculados.
func newSale(id, customer string, created time.Time, unit string, qty int) *entity.Sale {
	s := &entity.Sale{
		ID:          id,
		OrderNumber: "VTA-" + id,
		StoreID:     "store-1",
		Source:      entity.SaleSourceLocal,
		Customer:    entity.SaleCustomer{Name: customer},
		Items: []entity.SaleItem{{
			ID:          id + "-1",
			ProductID:   "prod-" + id,
			ProductName: "Producto " + id,
			Quantity:    qty,
			UnitPrice:   dec(unit),
		}},
		Delivery: entity.SaleDelivery{Method: entity.DeliveryPickup},
		Payment:  entity.SalePayment{Method: entity.PaymentCash},
		Metadata: entity.SaleMetadata{CreatedAt: created, UpdatedAt: created},
	}
	sales.Recalculate(s)
	return s
}

func ids(list []*entity.Sale) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}
