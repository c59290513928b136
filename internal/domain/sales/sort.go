package sales

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// SortKey modo de ordenamiento de un listado de ventas.
type SortKey string

const (
	SortDateDesc    SortKey = "date-desc"
	SortDateAsc     SortKey = "date-asc"
	SortCustomerAsc SortKey = "customer-asc"
	SortTotalDesc   SortKey = "total-desc"
)

// ParseSortKey valida el modo recibido. Vacío equivale a date-desc.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case "":
		return SortDateDesc, true
	case SortDateDesc, SortDateAsc, SortCustomerAsc, SortTotalDesc:
		return k, true
	}
	return SortDateDesc, false
}

// Sort ordena in place con un sort estable: los empates conservan el orden
// de entrada. Un modo desconocido se trata como date-desc.
func Sort(sales []*entity.Sale, key SortKey) {
	switch key {
	case SortDateAsc:
		slices.SortStableFunc(sales, func(a, b *entity.Sale) int {
			return a.Metadata.CreatedAt.Compare(b.Metadata.CreatedAt)
		})
	case SortCustomerAsc:
		// collate.Collator no es seguro para uso concurrente: uno por llamada.
		col := collate.New(language.Spanish)
		slices.SortStableFunc(sales, func(a, b *entity.Sale) int {
			return col.CompareString(a.Customer.Name, b.Customer.Name)
		})
	case SortTotalDesc:
		slices.SortStableFunc(sales, func(a, b *entity.Sale) int {
			return b.Totals.Total.Cmp(a.Totals.Total)
		})
	default:
		slices.SortStableFunc(sales, func(a, b *entity.Sale) int {
			return b.Metadata.CreatedAt.Compare(a.Metadata.CreatedAt)
		})
	}
}
