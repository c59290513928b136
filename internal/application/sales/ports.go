package sales

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	dsales "github.com/jhoicas/tienda-api/internal/domain/sales"
)

// ExportData ventas ya filtradas y ordenadas, con los agregados que pueda
// necesitar el formato de salida.
type ExportData struct {
	Sales           []*entity.Sale
	Stats           dsales.Stats
	TopProducts     []dsales.ProductStat
	Channels        []dsales.ChannelStat
	IncludeProducts bool
	IncludeStats    bool
	Location        *time.Location // zona de la tienda para formatear fechas
	GeneratedAt     time.Time
}

// SalesExporter puerto de serialización de ventas (CSV, XLSX).
// Una entrada vacía nunca es error: produce sólo encabezados.
type SalesExporter interface {
	Format() string // extensión y valor del parámetro format: "csv", "xlsx"
	ContentType() string
	Export(data ExportData) ([]byte, error)
}
