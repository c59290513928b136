package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"hola mundo", "que tal"}, wrapText("hola mundo que tal", 10))
	assert.Equal(t, []string{""}, wrapText("", 10))
	assert.Equal(t, []string{"https://me", "nu.test/ab"}, wrapText("https://menu.test/ab", 10))
	for _, line := range wrapText(strings.Repeat("ñandú ", 30), 12) {
		assert.LessOrEqual(t, len([]rune(line)), 12)
	}
}
