package pdf_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
)

func fullCard() catalog.MenuCard {
	return catalog.MenuCard{
		StoreName:   "Café La Ñata",
		Description: "Cafetería de especialidad y pastelería casera.",
		Phone:       "+54 9 11 5555-5555",
		Address:     "Av. Corrientes 1234, CABA",
		Schedule:    "Lun a Sáb 8 a 20 h",
		MenuURL:     "https://menu.test/cafe-la-nata",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MeasureMenuCard
// ──────────────────────────────────────────────────────────────────────────────

func TestMeasureMenuCard_SumaBloques(t *testing.T) {
	l := pdf.MeasureMenuCard(fullCard())

	assert.Equal(t, pdf.CardWidth, l.Width)
	require.Len(t, l.Boxes, 5)

	want := 2*l.Margin + l.TitleHeight + l.BadgeHeight + l.QRHeight + l.FooterHeight
	for _, b := range l.Boxes {
		want += b.Height
	}
	assert.InDelta(t, want, l.Height, 1e-9)
}

func TestMeasureMenuCard_OmiteCajasVacias(t *testing.T) {
	l := pdf.MeasureMenuCard(catalog.MenuCard{StoreName: "Kiosco", MenuURL: "https://menu.test/kiosco"})
	require.Len(t, l.Boxes, 1)
	assert.Equal(t, "Menú online", l.Boxes[0].Label)
}

func TestMeasureMenuCard_TituloLargoCreceEnAlto(t *testing.T) {
	short := pdf.MeasureMenuCard(fullCard())

	long := fullCard()
	long.StoreName = strings.Repeat("Pastelería ", 8)
	tall := pdf.MeasureMenuCard(long)

	assert.Greater(t, len(tall.TitleLines), 1)
	assert.Greater(t, tall.Height, short.Height)
}

// ──────────────────────────────────────────────────────────────────────────────
// GenerateMenuCard
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateMenuCard_DevuelvePDF(t *testing.T) {
	out, err := pdf.NewMarotoMenuCardGenerator().GenerateMenuCard(context.Background(), fullCard())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateMenuCard_SinURL(t *testing.T) {
	card := fullCard()
	card.MenuURL = ""
	_, err := pdf.NewMarotoMenuCardGenerator().GenerateMenuCard(context.Background(), card)
	assert.Error(t, err)
}
