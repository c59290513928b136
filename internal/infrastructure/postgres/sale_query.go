package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const saleColumns = `id, store_id, schema_version, doc, created_at, updated_at`

// buildSaleListQuery traduce SaleQuery a SQL parametrizado: rango sobre
// created_at, igualdad sobre las columnas de enumerados, orden por fecha
// descendente y límite. La búsqueda por cliente nunca llega acá.
func buildSaleListQuery(q repository.SaleQuery) (string, []any) {
	conditions := []string{"store_id = $1"}
	args := []any{q.StoreID}

	add := func(expr string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}
	if q.From != nil {
		add("created_at >= $%d", *q.From)
	}
	if q.To != nil {
		add("created_at <= $%d", *q.To)
	}
	if q.PaymentMethod != "" {
		add("payment_method = $%d", string(q.PaymentMethod))
	}
	if q.DeliveryMethod != "" {
		add("delivery_method = $%d", string(q.DeliveryMethod))
	}
	if q.Source != "" {
		add("source = $%d", string(q.Source))
	}

	parts := []string{
		"SELECT " + saleColumns + " FROM sales",
		"WHERE " + strings.Join(conditions, " AND "),
		"ORDER BY created_at DESC, id",
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		parts = append(parts, fmt.Sprintf("LIMIT $%d", len(args)))
	}
	return strings.Join(parts, " "), args
}
