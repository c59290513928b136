package sales

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// AllValues valor centinela que desactiva un filtro por enumerado.
const AllValues = "all"

// Criteria criterios de filtrado y orden de un listado de ventas.
// No se persiste: vive lo que dura una consulta.
type Criteria struct {
	CustomerSearch string     // substring del nombre del cliente, sin distinguir mayúsculas
	StartDate      *time.Time // día inicial inclusive (se usa el día en su Location)
	EndDate        *time.Time // día final inclusive, hasta las 23:59:59.999999999
	PaymentMethod  string     // "all" o un PaymentMethod
	DeliveryMethod string     // "all" o un DeliveryMethod
	Source         string     // "all" o un SaleSource
	SortBy         SortKey
}

// DefaultCriteria criterios sin filtros activos, ordenados por fecha descendente.
func DefaultCriteria() Criteria {
	return Criteria{
		PaymentMethod:  AllValues,
		DeliveryMethod: AllValues,
		Source:         AllValues,
		SortBy:         SortDateDesc,
	}
}

// Bounds devuelve los límites inclusivos sobre CreatedAt: inicio del día de
// StartDate y fin del día de EndDate. nil si el límite no está activo.
func (c Criteria) Bounds() (from, to *time.Time) {
	if c.StartDate != nil {
		f := StartOfDay(*c.StartDate)
		from = &f
	}
	if c.EndDate != nil {
		t := EndOfDay(*c.EndDate)
		to = &t
	}
	return from, to
}

// StartOfDay 00:00:00 del día de t en su Location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay último instante representable del día de t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func enumActive(v string) bool {
	return v != "" && v != AllValues
}

// Filter devuelve las ventas que cumplen TODOS los predicados activos.
// Siempre devuelve un slice nuevo; la entrada no se modifica.
func Filter(sales []*entity.Sale, c Criteria) []*entity.Sale {
	out := make([]*entity.Sale, 0, len(sales))
	if len(sales) == 0 {
		return out
	}

	fold := cases.Fold()
	search := searchKey(fold, strings.TrimSpace(c.CustomerSearch))
	from, to := c.Bounds()

	for _, s := range sales {
		if search != "" && !strings.Contains(searchKey(fold, s.Customer.Name), search) {
			continue
		}
		created := s.Metadata.CreatedAt
		if from != nil && created.Before(*from) {
			continue
		}
		if to != nil && created.After(*to) {
			continue
		}
		if enumActive(c.PaymentMethod) && string(s.Payment.Method) != c.PaymentMethod {
			continue
		}
		if enumActive(c.DeliveryMethod) && string(s.Delivery.Method) != c.DeliveryMethod {
			continue
		}
		if enumActive(c.Source) && string(s.Source) != c.Source {
			continue
		}
		out = append(out, s)
	}
	return out
}

// searchKey forma comparable de un texto: case folding y composición NFC, para
// que "García" coincida aunque llegue descompuesto (a + acento combinante).
func searchKey(fold cases.Caser, s string) string {
	return norm.NFC.String(fold.String(s))
}
