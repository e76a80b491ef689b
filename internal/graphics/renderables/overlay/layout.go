package overlay

// Rect is an axis-aligned box in window pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const (
	margin        = 24
	headerW       = 420
	headerH       = 104
	buttonW       = 220
	buttonH       = 46
	panelMaxW     = 672
	panelPadding  = 24
	panelBottom   = 64
	panelLabelGap = 14
)

// Layout places the fixed overlay elements for a viewport.
type Layout struct {
	Width, Height float32

	Header Rect
	Button Rect
	// FooterY is the baseline of the controls hint.
	FooterY float32
	// PanelWidth is the width of the description panel; its height follows the text.
	PanelWidth float32
}

// ComputeLayout arranges header top-left, button top-right and the panel
// centered above the footer. Narrow windows shrink the header and panel.
func ComputeLayout(width, height int) Layout {
	w, h := float32(width), float32(height)
	l := Layout{Width: w, Height: h}

	l.Button = Rect{X: w - margin - buttonW, Y: margin, W: buttonW, H: buttonH}
	hw := min(float32(headerW), max(0, l.Button.X-2*margin))
	l.Header = Rect{X: margin, Y: margin, W: hw, H: headerH}
	l.FooterY = h - margin
	l.PanelWidth = max(0, min(float32(panelMaxW), w-2*margin))
	return l
}

// TextWidth is the width available to wrapped description lines.
func (l Layout) TextWidth() float32 {
	return max(0, l.PanelWidth-2*panelPadding)
}

// Panel returns the description box for lines of body text.
func (l Layout) Panel(lines int, labelHeight, lineHeight float32) Rect {
	h := 2*panelPadding + labelHeight + panelLabelGap + float32(lines)*lineHeight
	return Rect{
		X: (l.Width - l.PanelWidth) / 2,
		Y: l.Height - panelBottom - h,
		W: l.PanelWidth,
		H: h,
	}
}
