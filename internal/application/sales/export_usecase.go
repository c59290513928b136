package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	dsales "github.com/jhoicas/tienda-api/internal/domain/sales"
)

const topProductsInExport = 10

// ExportUseCase exporta el listado filtrado en el formato pedido.
type ExportUseCase struct {
	sales     *SaleUseCase
	exporters map[string]SalesExporter
}

// NewExportUseCase registra los exportadores por formato.
func NewExportUseCase(sales *SaleUseCase, exporters ...SalesExporter) *ExportUseCase {
	m := make(map[string]SalesExporter, len(exporters))
	for _, e := range exporters {
		m[e.Format()] = e
	}
	return &ExportUseCase{sales: sales, exporters: m}
}

// Export aplica los mismos filtros y orden que el listado y serializa.
// Sin límite explícito exporta hasta el máximo configurado.
func (uc *ExportUseCase) Export(ctx context.Context, storeID string, in dto.ExportRequest) (*dto.ExportFile, error) {
	format := strings.ToLower(strings.TrimSpace(in.Format))
	if format == "" {
		format = "csv"
	}
	exp, ok := uc.exporters[format]
	if !ok {
		return nil, domain.FieldError("format", "Formato no soportado")
	}

	list, _, err := uc.sales.query(ctx, storeID, in.SaleListRequest, uc.sales.cfg.MaxListLimit)
	if err != nil {
		return nil, err
	}
	now := uc.sales.now().In(uc.sales.cfg.Location)

	data := ExportData{
		Sales:           list,
		IncludeProducts: in.IncludeProducts,
		IncludeStats:    in.IncludeStats,
		Location:        uc.sales.cfg.Location,
		GeneratedAt:     now,
	}
	if in.IncludeStats {
		data.Stats = dsales.ComputeStats(list, now)
		data.TopProducts = dsales.TopProducts(list, topProductsInExport)
		data.Channels = dsales.ChannelBreakdown(list)
	}

	content, err := exp.Export(data)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}
	return &dto.ExportFile{
		Filename:    ExportFilename(now, exp.Format()),
		ContentType: exp.ContentType(),
		Content:     content,
	}, nil
}

// ExportFilename ventas_<AAAA-MM-DD>.<ext> con la fecha de generación.
func ExportFilename(at time.Time, ext string) string {
	return "ventas_" + at.Format(dateLayout) + "." + ext
}
