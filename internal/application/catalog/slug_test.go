package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/application/catalog"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Café La Ñata":          "cafe-la-nata",
		"  Pizzería   Don José ": "pizzeria-don-jose",
		"Bar & Grill #1":        "bar-grill-1",
		"¡¡¡":                   "tienda",
		"":                      "tienda",
	}
	for in, want := range cases {
		assert.Equal(t, want, catalog.Slugify(in), in)
	}
}

func TestSlugify_Largo(t *testing.T) {
	s := catalog.Slugify(strings.Repeat("palabra ", 20))
	assert.LessOrEqual(t, len(s), 60)
	assert.False(t, strings.HasSuffix(s, "-"))
}
