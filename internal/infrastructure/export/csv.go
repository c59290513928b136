package export

import (
	"strings"

	appsales "github.com/jhoicas/tienda-api/internal/application/sales"
)

var _ appsales.SalesExporter = (*CSVExporter)(nil)

var csvHeader = []string{"Fecha", "Cliente", "Total", "Método de pago", "Método de entrega"}

// CSVExporter una fila por venta. Los campos de texto van siempre entre
// comillas (comillas internas duplicadas); los montos van sin comillas.
// Las líneas se separan con \n sin salto final: N ventas → N+1 líneas.
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

func (e *CSVExporter) Format() string      { return "csv" }
func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// Export serializa las ventas en el orden recibido.
func (e *CSVExporter) Export(data appsales.ExportData) ([]byte, error) {
	lines := make([]string, 0, len(data.Sales)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, s := range data.Sales {
		lines = append(lines, strings.Join([]string{
			quote(formatDate(s.Metadata.CreatedAt, data.Location)),
			quote(s.Customer.Name),
			money(s.Totals.Total),
			quote(paymentLabel(s.Payment.Method)),
			quote(deliveryLabel(s.Delivery.Method)),
		}, ","))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// lineBreaks los saltos de línea dentro de un campo se reemplazan por un
// espacio: cada venta ocupa exactamente una línea.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func quote(s string) string {
	return `"` + strings.ReplaceAll(lineBreaks.Replace(s), `"`, `""`) + `"`
}
