package i18n

import (
	"strings"

	"github.com/abdullahdiaa/garabic"
	"golang.org/x/text/unicode/bidi"
)

// ShapeArabic prepares an Arabic string for display inside left-to-right
// widget layouts: logical-to-visual reordering first, then contextual glyph
// shaping. Callers shape exactly once per render.
func ShapeArabic(s string) string {
	if s == "" {
		return s
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.RightToLeft)); err != nil {
		return garabic.Shape(s)
	}
	order, err := p.Order()
	if err != nil {
		return garabic.Shape(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = bidi.ReverseString(text)
		}
		b.WriteString(text)
	}
	return garabic.Shape(b.String())
}
