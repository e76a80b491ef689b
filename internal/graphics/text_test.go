package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeWidth(s string) float32 { return float32(len([]rune(s))) }

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float32
		want  []string
	}{
		{"fits", "golden dome", 20, []string{"golden dome"}},
		{"breaks", "the minarets glow softly", 12, []string{"the minarets", "glow softly"}},
		{"long word", "a luminescence b", 5, []string{"a", "luminescence", "b"}},
		{"collapses spaces", "  warm   light ", 20, []string{"warm light"}},
		{"paragraphs", "one\n\ntwo", 20, []string{"one", "", "two"}},
		{"empty", "", 20, []string{""}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WrapText(tc.text, tc.width, runeWidth))
		})
	}
}

func TestBakeFontAtlas(t *testing.T) {
	info, img, err := BakeFontAtlas(FaceRegular, 18)
	require.NoError(t, err)
	require.NotNil(t, img)

	assert.Equal(t, info.AtlasW, img.Bounds().Dx())
	assert.Equal(t, info.AtlasH, img.Bounds().Dy())
	assert.Zero(t, info.AtlasH&(info.AtlasH-1), "height is a power of two")
	assert.Positive(t, info.LineHeight)

	for _, r := range "SANA'A Nights•“”" {
		_, ok := info.Characters[r]
		assert.True(t, ok, "missing glyph %q", r)
	}
	space := info.Characters[' ']
	assert.Zero(t, space.Width)
	assert.Positive(t, space.Advance)
}

func TestAtlasMeasure(t *testing.T) {
	info, _, err := BakeFontAtlas(FaceBold, 24)
	require.NoError(t, err)

	w1, h1 := info.Measure("Dome", 1)
	w2, _ := info.Measure("Dome", 2)
	assert.Positive(t, w1)
	assert.Positive(t, h1)
	assert.InDelta(t, 2*w1, w2, 1e-3)

	wMissing, _ := info.Measure("中", 1)
	assert.Equal(t, float32(info.Characters[' '].Advance), wMissing)
}
