package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayoutDefaultWindow(t *testing.T) {
	l := ComputeLayout(1280, 800)

	assert.Equal(t, Rect{X: 1280 - 24 - 220, Y: 24, W: 220, H: 46}, l.Button)
	assert.Equal(t, Rect{X: 24, Y: 24, W: 420, H: 104}, l.Header)
	assert.Equal(t, float32(776), l.FooterY)
	assert.Equal(t, float32(672), l.PanelWidth)
	assert.Equal(t, float32(624), l.TextWidth())
}

func TestComputeLayoutNarrowWindow(t *testing.T) {
	l := ComputeLayout(500, 400)
	assert.Equal(t, float32(452), l.PanelWidth)
	assert.LessOrEqual(t, l.Header.X+l.Header.W, l.Button.X)

	tiny := ComputeLayout(10, 10)
	assert.Zero(t, tiny.PanelWidth)
	assert.Zero(t, tiny.TextWidth())
	assert.Zero(t, tiny.Header.W)
}

func TestButtonHitTest(t *testing.T) {
	o := New(nil)
	b := o.layout.Button
	assert.True(t, o.ButtonContains(float64(b.X+1), float64(b.Y+1)))
	assert.True(t, o.ButtonContains(float64(b.X+b.W/2), float64(b.Y+b.H/2)))
	assert.False(t, o.ButtonContains(float64(b.X+b.W), float64(b.Y)))
	assert.False(t, o.ButtonContains(10, 10))
}

func TestPanelSitsAboveFooterCentered(t *testing.T) {
	l := ComputeLayout(1280, 800)
	p := l.Panel(3, 15, 25)

	assert.Equal(t, float32(48+15+14+75), p.H)
	assert.Equal(t, float32(304), p.X)
	assert.Equal(t, float32(800-64)-p.H, p.Y)
	assert.Less(t, p.Y+p.H, l.FooterY)
}

func TestPaletteInDisplaySpace(t *testing.T) {
	assert.InDelta(t, 0xfb/255.0, titleColor.X(), 1e-6)
	assert.InDelta(t, 0.9, panelFill.W(), 1e-6)
	// the button blend lands between its two endpoints
	assert.Greater(t, buttonFill.Y(), rgba("#ea580c", 1).Y())
	assert.Less(t, buttonFill.Y(), rgba("#f59e0b", 1).Y())
}
