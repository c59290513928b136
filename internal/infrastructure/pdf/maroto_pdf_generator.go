// Package pdf genera la tarjeta imprimible con el QR del menú público.
//
// Layout (ancho fijo, alto medido con MeasureMenuCard):
//
//	┌───────────────────────────┐
//	│  NOMBRE DE LA TIENDA      │  título, N líneas
//	│  [ Escaneá y pedí ]       │  badge
//	│        ▄▄▄▄▄▄▄            │
//	│        █ QR  █            │  QR → URL del menú
//	│        ▀▀▀▀▀▀▀            │
//	│  WhatsApp / Teléfono      │  cajas de info (0..5)
//	│  Dirección · Horario ...  │
//	└───────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
)

var _ catalog.MenuCardGenerator = (*MarotoMenuCardGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 196, Green: 69, Blue: 54}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const badgeText = "Escaneá el código y mirá el menú"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoMenuCardGenerator implementa catalog.MenuCardGenerator usando Maroto v2.
type MarotoMenuCardGenerator struct{}

// NewMarotoMenuCardGenerator construye el generador.
func NewMarotoMenuCardGenerator() *MarotoMenuCardGenerator { return &MarotoMenuCardGenerator{} }

// GenerateMenuCard mide la tarjeta y arma una única página de ese alto.
func (g *MarotoMenuCardGenerator) GenerateMenuCard(ctx context.Context, card catalog.MenuCard) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if card.MenuURL == "" {
		return nil, fmt.Errorf("pdf: URL del menú vacía")
	}
	l := MeasureMenuCard(card)

	cfg := config.NewBuilder().
		WithDimensions(l.Width, l.Height).
		WithLeftMargin(l.Margin).WithRightMargin(l.Margin).
		WithTopMargin(l.Margin).WithBottomMargin(l.Margin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: boxFontSize}).
		WithTitle("Menú "+card.StoreName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(titleRows(l)...)
	m.AddRows(badgeRow(l))
	m.AddRows(qrRow(l, card.MenuURL))
	for _, b := range l.Boxes {
		m.AddRows(infoBoxRows(l, b)...)
	}
	m.AddRows(row.New(l.FooterHeight))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRows(l CardLayout) []core.Row {
	rows := make([]core.Row, 0, len(l.TitleLines))
	for _, line := range l.TitleLines {
		rows = append(rows, row.New(l.TitleLineH).Add(col.New(12).Add(
			text.New(line, props.Text{
				Style: fontstyle.Bold, Size: titleFontSize, Align: align.Center, Color: colorPrimary,
			}),
		)))
	}
	return rows
}

func badgeRow(l CardLayout) core.Row {
	return row.New(l.BadgeHeight).Add(col.New(12).Add(
		text.New(badgeText, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2.5, Color: colorWhite,
		}),
	)).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func qrRow(l CardLayout, url string) core.Row {
	return row.New(l.QRHeight).Add(
		col.New(12).Add(code.NewQr(url, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

// infoBoxRows: etiqueta + líneas del valor + separación inferior.
func infoBoxRows(l CardLayout, b InfoBox) []core.Row {
	rows := []core.Row{
		row.New(labelHeight).Add(col.New(12).Add(
			text.New(b.Label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		)),
	}
	for _, line := range b.Lines {
		rows = append(rows, row.New(l.BoxLineH).Add(col.New(12).Add(
			text.New(line, props.Text{Size: boxFontSize, Color: colorGray}),
		)))
	}
	rows = append(rows, row.New(boxPadding))
	return rows
}
