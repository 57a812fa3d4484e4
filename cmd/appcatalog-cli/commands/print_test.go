package commands

import (
	"strings"
	"testing"

	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", formatCount(0))
	assert.Equal(t, "1,234,567", formatCount(1234567))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "Free", formatPrice(dtos.AppDTO{Price: decimal.Zero, Currency: "USD"}))
	assert.Equal(t, "1.50 USD", formatPrice(dtos.AppDTO{Price: decimal.RequireFromString("1.5"), Currency: "USD"}))
}

func TestPageFooter(t *testing.T) {
	t.Run("marks the current page and the gaps", func(t *testing.T) {
		assert.Equal(t, "page 10 of 20: 1 … 7 8 9 [10] 11 12 13 … 20 (200 apps)", pageFooter(10, 200, 10))
	})

	t.Run("single page", func(t *testing.T) {
		assert.Equal(t, "page 1 of 1: [1] (3 apps)", pageFooter(1, 3, 10))
	})
}

func TestRatingHistogram(t *testing.T) {
	t.Run("draws one line per non empty bin", func(t *testing.T) {
		out := ratingHistogram([]dtos.AppDTO{{Rating: 4.9}, {Rating: 4.8}, {Rating: 1.1}})
		lines := strings.Split(strings.TrimSpace(out), "\n")

		assert.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "1.00-1.25"))
		assert.True(t, strings.HasSuffix(lines[0], " 1"))
		assert.True(t, strings.HasPrefix(lines[1], "4.75-5.00"))
		assert.Equal(t, histogramWidth, strings.Count(lines[1], "█"))
	})

	t.Run("empty page", func(t *testing.T) {
		assert.Empty(t, ratingHistogram(nil))
	})
}
