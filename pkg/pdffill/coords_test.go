package pdffill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPDFY(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		topY          float64
		pageHeight    float64
		elementHeight float64
		want          float64
	}{
		{"letter page text field", 100, 792, 20, 672},
		{"top of page", 0, 792, 20, 772},
		{"bottom of page", 772, 792, 20, 0},
		{"a4 page", 50, 841.89, 30, 761.89},
		{"off page draws negative", 800, 792, 20, -28},
		{"zero height element", 100, 792, 0, 692},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPDFY(tt.topY, tt.pageHeight, tt.elementHeight)
			assert.InDelta(t, tt.want, got, 1e-9)
			// The mapping must be exactly invertible.
			assert.InDelta(t, tt.pageHeight, got+tt.topY+tt.elementHeight, 1e-9)
		})
	}
}

func TestDeviceY(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 120.0, deviceY(792, 672), 1e-9)
	assert.InDelta(t, 792.0, deviceY(792, 0), 1e-9)
}

func TestFontSizeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		height float64
		want   float64
	}{
		{"tiny field clamps to min", 5, 8},
		{"short field clamps to min", 13, 8},
		{"linear region", 15, 9},
		{"end-to-end scenario height", 20, 12},
		{"tall field clamps to max", 100, 12},
		{"zero height clamps to min", 0, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fontSizeFor(tt.height, DefaultFont)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, DefaultFont.MinSize)
			assert.LessOrEqual(t, got, DefaultFont.MaxSize)
		})
	}
}
