package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	appsales "github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

var _ appsales.SalesExporter = (*XLSXExporter)(nil)

// Nombres de hoja.
const (
	SheetSummary = "Resumen"
	SheetDetail  = "Detalle"
	SheetStats   = "Estadisticas"
)

const moneyFormat = "#,##0.00"

var (
	summaryHeader = []any{"Fecha", "N° pedido", "Canal", "Cliente", "Teléfono", "Entrega", "Dirección", "Pago", "Subtotal", "Descuento", "Total"}
	detailHeader  = []any{"Fecha", "N° pedido", "Cliente", "Producto", "Variantes", "Cantidad", "Precio unitario", "Subtotal", "Notas"}
)

// XLSXExporter libro con la hoja Resumen siempre presente y las hojas Detalle
// y Estadisticas según las opciones del pedido.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (e *XLSXExporter) Format() string { return "xlsx" }
func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export arma el libro en memoria.
func (e *XLSXExporter) Export(data appsales.ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	w, err := newWorkbook(f)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	if err := w.summary(data); err != nil {
		return nil, err
	}
	if data.IncludeProducts {
		if err := w.detail(data); err != nil {
			return nil, err
		}
	}
	if data.IncludeStats {
		if err := w.stats(data); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

type workbook struct {
	f          *excelize.File
	boldStyle  int
	moneyStyle int
}

func newWorkbook(f *excelize.File) (*workbook, error) {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	format := moneyFormat
	m, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	return &workbook{f: f, boldStyle: bold, moneyStyle: m}, nil
}

// row escribe values a partir de la columna A de la fila indicada (1-based).
func (w *workbook) row(sheet string, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d de %s: %w", n, sheet, err)
	}
	return nil
}

func (w *workbook) header(sheet string, n int, values []any) error {
	if err := w.row(sheet, n, values); err != nil {
		return err
	}
	return w.f.SetRowStyle(sheet, n, n, w.boldStyle)
}

// moneyColumns aplica el formato de moneda a las columnas [from, to] de las filas [first, last].
func (w *workbook) moneyColumns(sheet string, from, to, first, last int) error {
	if last < first {
		return nil
	}
	start, err := excelize.CoordinatesToCellName(from, first)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(to, last)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, start, end, w.moneyStyle)
}

func (w *workbook) summary(data appsales.ExportData) error {
	const sheet = SheetSummary
	if err := w.header(sheet, 1, summaryHeader); err != nil {
		return err
	}
	for i, s := range data.Sales {
		address := ""
		if s.Delivery.Method == entity.DeliveryShipping {
			address = s.Delivery.Address
		}
		err := w.row(sheet, i+2, []any{
			formatDate(s.Metadata.CreatedAt, data.Location),
			s.OrderNumber,
			sourceLabel(s.Source),
			s.Customer.Name,
			s.Customer.Phone,
			deliveryLabel(s.Delivery.Method),
			address,
			paymentLabel(s.Payment.Method),
			s.Totals.Subtotal.InexactFloat64(),
			s.Totals.Discount.InexactFloat64(),
			s.Totals.Total.InexactFloat64(),
		})
		if err != nil {
			return err
		}
	}
	if err := w.moneyColumns(sheet, 9, 11, 2, len(data.Sales)+1); err != nil {
		return err
	}
	return w.f.SetColWidth(sheet, "A", "K", 16)
}

func (w *workbook) detail(data appsales.ExportData) error {
	const sheet = SheetDetail
	if _, err := w.f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := w.header(sheet, 1, detailHeader); err != nil {
		return err
	}
	n := 2
	for _, s := range data.Sales {
		date := formatDate(s.Metadata.CreatedAt, data.Location)
		for _, it := range s.Items {
			err := w.row(sheet, n, []any{
				date,
				s.OrderNumber,
				s.Customer.Name,
				it.ProductName,
				variantNames(it.Variants),
				it.Quantity,
				it.UnitPrice.InexactFloat64(),
				it.Subtotal.InexactFloat64(),
				it.Notes,
			})
			if err != nil {
				return err
			}
			n++
		}
	}
	if err := w.moneyColumns(sheet, 7, 8, 2, n-1); err != nil {
		return err
	}
	return w.f.SetColWidth(sheet, "A", "I", 16)
}

func (w *workbook) stats(data appsales.ExportData) error {
	const sheet = SheetStats
	if _, err := w.f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	st := data.Stats
	rows := [][]any{
		{"Ventas totales", st.TotalSales.InexactFloat64()},
		{"Cantidad de pedidos", st.TotalOrders},
		{"Ticket promedio", st.AverageOrderValue.InexactFloat64()},
		{"Ventas de hoy", st.TodaySales.InexactFloat64()},
	}
	if !data.GeneratedAt.IsZero() {
		rows = append(rows, []any{"Generado", formatDate(data.GeneratedAt, data.Location)})
	}
	if err := w.header(sheet, 1, []any{"Resumen"}); err != nil {
		return err
	}
	n := 2
	for _, r := range rows {
		if err := w.row(sheet, n, r); err != nil {
			return err
		}
		n++
	}

	n++
	if err := w.header(sheet, n, []any{"Producto", "Cantidad", "Ingresos"}); err != nil {
		return err
	}
	first := n + 1
	for _, p := range data.TopProducts {
		n++
		if err := w.row(sheet, n, []any{p.ProductName, p.Quantity, p.Revenue.InexactFloat64()}); err != nil {
			return err
		}
	}
	if err := w.moneyColumns(sheet, 3, 3, first, n); err != nil {
		return err
	}

	n += 2
	if err := w.header(sheet, n, []any{"Canal", "Pedidos", "Total"}); err != nil {
		return err
	}
	first = n + 1
	for _, c := range data.Channels {
		n++
		if err := w.row(sheet, n, []any{sourceLabel(c.Source), c.Orders, c.Total.InexactFloat64()}); err != nil {
			return err
		}
	}
	if err := w.moneyColumns(sheet, 3, 3, first, n); err != nil {
		return err
	}
	return w.f.SetColWidth(sheet, "A", "C", 22)
}
