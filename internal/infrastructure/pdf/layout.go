package pdf

import (
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
)

// Medidas de la tarjeta en milímetros. El ancho es fijo; el alto se calcula.
const (
	CardWidth  = 100.0
	CardMargin = 6.0

	ptToMM      = 0.3528
	charWidthEm = 0.5 // ancho medio de un carácter helvetica respecto del tamaño de fuente
	lineSpacing = 1.3

	titleFontSize = 16.0
	boxFontSize   = 9.0
	labelHeight   = 4.0
	boxPadding    = 4.0
	badgeHeight   = 9.0
	qrHeight      = 58.0
	footerHeight  = 4.0
)

// InfoBox bloque de información debajo del QR (teléfono, dirección...).
type InfoBox struct {
	Label  string
	Lines  []string
	Height float64
}

// CardLayout resultado de medir la tarjeta: cada bloque con su alto y el alto
// total de la página.
type CardLayout struct {
	Width          float64
	Height         float64
	Margin         float64
	TitleLines     []string
	TitleLineH     float64
	TitleHeight    float64
	BadgeHeight    float64
	QRHeight       float64
	Boxes          []InfoBox
	BoxLineH       float64
	FooterHeight   float64
	ContentWidthMM float64
}

// MeasureMenuCard calcula el alto de la tarjeta sumando los bloques medidos:
// márgenes + título (líneas × alto de línea) + badge + QR + cajas de info + pie.
func MeasureMenuCard(card catalog.MenuCard) CardLayout {
	content := CardWidth - 2*CardMargin
	l := CardLayout{
		Width:          CardWidth,
		Margin:         CardMargin,
		BadgeHeight:    badgeHeight,
		QRHeight:       qrHeight,
		FooterHeight:   footerHeight,
		ContentWidthMM: content,
		TitleLineH:     lineHeight(titleFontSize),
		BoxLineH:       lineHeight(boxFontSize),
	}

	l.TitleLines = wrapText(strings.TrimSpace(card.StoreName), charsPerLine(content, titleFontSize))
	l.TitleHeight = float64(len(l.TitleLines)) * l.TitleLineH

	boxChars := charsPerLine(content, boxFontSize)
	for _, b := range []struct{ label, value string }{
		{"WhatsApp / Teléfono", card.Phone},
		{"Dirección", card.Address},
		{"Horario", card.Schedule},
		{"Sobre nosotros", card.Description},
		{"Menú online", card.MenuURL},
	} {
		v := strings.TrimSpace(b.value)
		if v == "" {
			continue
		}
		lines := wrapText(v, boxChars)
		l.Boxes = append(l.Boxes, InfoBox{
			Label:  b.label,
			Lines:  lines,
			Height: labelHeight + float64(len(lines))*l.BoxLineH + boxPadding,
		})
	}

	h := 2*l.Margin + l.TitleHeight + l.BadgeHeight + l.QRHeight + l.FooterHeight
	for _, b := range l.Boxes {
		h += b.Height
	}
	l.Height = h
	return l
}

func lineHeight(fontSize float64) float64 {
	return fontSize * ptToMM * lineSpacing
}

func charsPerLine(widthMM, fontSize float64) int {
	n := int(widthMM / (fontSize * ptToMM * charWidthEm))
	if n < 1 {
		n = 1
	}
	return n
}

// wrapText parte s en líneas de hasta width caracteres cortando en espacios.
// Las palabras más largas que una línea (URLs) se cortan donde caigan.
func wrapText(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	var lines []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
	}
	for _, w := range strings.Fields(s) {
		word := []rune(w)
		if len(cur) > 0 && len(cur)+1+len(word) > width {
			flush()
		}
		for len(word) > width {
			flush()
			lines = append(lines, string(word[:width]))
			word = word[width:]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, word...)
	}
	flush()
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
