package sales

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Stats resumen derivado de un conjunto de ventas. Nunca se persiste ni se
// cachea: se recalcula cada vez que cambia el conjunto.
type Stats struct {
	TotalSales        decimal.Decimal
	TotalOrders       int
	AverageOrderValue decimal.Decimal
	TodaySales        decimal.Decimal
}

// ComputeStats recorre las ventas una sola vez. "Hoy" es el día calendario de
// now en now.Location(), desde las 00:00 inclusive.
func ComputeStats(sales []*entity.Sale, now time.Time) Stats {
	dayStart := StartOfDay(now)
	dayEnd := dayStart.AddDate(0, 0, 1)

	st := Stats{
		TotalSales:        decimal.Zero,
		AverageOrderValue: decimal.Zero,
		TodaySales:        decimal.Zero,
	}
	for _, s := range sales {
		st.TotalSales = st.TotalSales.Add(s.Totals.Total)
		st.TotalOrders++
		created := s.Metadata.CreatedAt
		if !created.Before(dayStart) && created.Before(dayEnd) {
			st.TodaySales = st.TodaySales.Add(s.Totals.Total)
		}
	}
	if st.TotalOrders > 0 {
		st.AverageOrderValue = st.TotalSales.Div(decimal.NewFromInt(int64(st.TotalOrders))).Round(2)
	}
	return st
}

// ProductStat unidades e ingresos acumulados de un producto.
type ProductStat struct {
	ProductID   string
	ProductName string
	Quantity    int
	Revenue     decimal.Decimal
}

// TopProducts devuelve los limit productos más vendidos por cantidad.
// Empates por nombre ascendente. Las líneas sin ProductID se agrupan por nombre.
func TopProducts(sales []*entity.Sale, limit int) []ProductStat {
	byKey := make(map[string]*ProductStat)
	var order []string
	for _, s := range sales {
		for _, it := range s.Items {
			key := it.ProductID
			if key == "" {
				key = "name:" + it.ProductName
			}
			ps, ok := byKey[key]
			if !ok {
				ps = &ProductStat{ProductID: it.ProductID, ProductName: it.ProductName, Revenue: decimal.Zero}
				byKey[key] = ps
				order = append(order, key)
			}
			ps.Quantity += it.Quantity
			ps.Revenue = ps.Revenue.Add(it.Subtotal)
		}
	}

	out := make([]ProductStat, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	slices.SortStableFunc(out, func(a, b ProductStat) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductName, b.ProductName)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ChannelStat pedidos y monto por canal de venta.
type ChannelStat struct {
	Source entity.SaleSource
	Orders int
	Total  decimal.Decimal
}

// ChannelBreakdown desglose por canal en el orden de entity.SaleSources.
// Incluye los canales sin ventas con cero.
func ChannelBreakdown(sales []*entity.Sale) []ChannelStat {
	idx := make(map[entity.SaleSource]int, len(entity.SaleSources))
	out := make([]ChannelStat, len(entity.SaleSources))
	for i, src := range entity.SaleSources {
		idx[src] = i
		out[i] = ChannelStat{Source: src, Total: decimal.Zero}
	}
	for _, s := range sales {
		i, ok := idx[s.Source]
		if !ok {
			continue
		}
		out[i].Orders++
		out[i].Total = out[i].Total.Add(s.Totals.Total)
	}
	return out
}
