// Package overlay draws the 2D interface over the finished frame: the title
// card, the description button, the description panel and the controls hint.
package overlay

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"sanaa-nights/internal/describe"
	"sanaa-nights/internal/graphics"
	renderer "sanaa-nights/internal/graphics/renderer"
	"sanaa-nights/internal/profiling"
)

const (
	Title       = "SANA'A NIGHTS"
	Subtitle    = "Procedural Voxel Art Interpretation"
	Inspiration = "Inspired by Al-Sabeen Mosque Architecture"
	ButtonIdle  = "Analyze Style"
	ButtonBusy  = "Consulting Gemini..."
	PanelLabel  = "ARCHITECTURAL INSIGHT"
	FooterHint  = "Interact to Rotate • Scroll to Zoom"
)

// Palette in display (sRGB) space: the overlay draws after the final encode.
var (
	cardFill     = rgba("#0f172a", 0.8)
	cardBorder   = rgba("#334155", 1)
	titleColor   = rgba("#fbbf24", 1)
	subtleText   = rgba("#cbd5e1", 1)
	faintText    = rgba("#cbd5e1", 0.6)
	buttonFill   = blend("#f59e0b", "#ea580c", 0.5, 1)
	buttonBorder = rgba("#fb923c", 1)
	busyFill     = rgba("#1e293b", 1)
	busyBorder   = rgba("#334155", 1)
	busyText     = rgba("#64748b", 1)
	panelFill    = rgba("#0f172a", 0.9)
	panelBorder  = rgba("#f59e0b", 0.3)
	bodyText     = rgba("#f1f5f9", 1)
	footerText   = rgba("#475569", 1)
	white        = rgba("#ffffff", 1)
)

func rgba(hex string, a float32) mgl32.Vec4 {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), a}
}

func blend(from, to string, t float64, a float32) mgl32.Vec4 {
	c1, _ := colorful.Hex(from)
	c2, _ := colorful.Hex(to)
	c := c1.BlendLab(c2, t).Clamped()
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), a}
}

// unitQuad covers [0,1]^2 as two triangles.
var unitQuad = []float32{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1}

// Overlay implements the interface renderable
type Overlay struct {
	state *describe.State

	title, body, small *graphics.FontRenderer

	panelShader *graphics.Shader
	vao, vbo    uint32
	projection  mgl32.Mat4

	layout Layout

	wrappedFor   string
	wrappedWidth float32
	wrapped      []string
}

// New creates an overlay reading descriptions from state
func New(state *describe.State) *Overlay {
	return &Overlay{
		state:  state,
		layout: ComputeLayout(graphics.WinWidth, graphics.WinHeight),
	}
}

// Init bakes the three font sizes and sets up the panel quad
func (o *Overlay) Init() error {
	var err error
	if o.title, err = newFont(graphics.FaceBold, 30); err != nil {
		return err
	}
	if o.body, err = newFont(graphics.FaceRegular, 18); err != nil {
		return err
	}
	if o.small, err = newFont(graphics.FaceRegular, 13); err != nil {
		return err
	}
	if o.panelShader, err = graphics.LoadShader("panel"); err != nil {
		return err
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(unitQuad)*4, gl.Ptr(unitQuad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	o.SetViewport(graphics.WinWidth, graphics.WinHeight)
	return nil
}

func newFont(face graphics.Face, px int) (*graphics.FontRenderer, error) {
	atlas, err := graphics.BuildFontAtlas(face, px)
	if err != nil {
		return nil, err
	}
	return graphics.NewFontRenderer(atlas)
}

// ButtonContains reports whether a click at window coordinates hits the button
func (o *Overlay) ButtonContains(x, y float64) bool {
	return o.layout.Button.Contains(float32(x), float32(y))
}

// Render draws the interface; the caller has enabled alpha blending
func (o *Overlay) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.overlay")()
	text, loading := o.state.Snapshot()
	l := o.layout

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	// header card
	o.drawRect(l.Header, cardFill, cardBorder, 8)
	x := l.Header.X + 16
	o.title.Render(Title, x, l.Header.Y+16+o.title.Atlas().LineHeight*0.8, 1, titleColor)
	o.small.Render(Subtitle, x, l.Header.Y+72, 1, subtleText)
	o.small.Render(Inspiration, x, l.Header.Y+90, 1, faintText)

	// button
	label, fill, border, color := ButtonIdle, buttonFill, buttonBorder, white
	if loading {
		label, fill, border, color = ButtonBusy, busyFill, busyBorder, busyText
	}
	b := l.Button
	o.drawRect(b, fill, border, b.H/2)
	lw, _ := o.small.Atlas().Measure(label, 1)
	o.small.Render(label, b.X+(b.W-lw)/2, b.Y+b.H/2+5, 1, color)

	if text != "" {
		o.drawPanel(text)
	}

	fw, _ := o.small.Atlas().Measure(FooterHint, 1)
	o.small.Render(FooterHint, (l.Width-fw)/2, l.FooterY, 1, footerText)

	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *Overlay) drawPanel(text string) {
	l := o.layout
	lines := o.wrap("“" + text + "”")
	lineH := o.body.Atlas().LineHeight * 1.4
	labelH := o.small.Atlas().LineHeight

	p := l.Panel(len(lines), labelH, lineH)
	o.drawRect(p, panelFill, panelBorder, 16)

	cx := p.X + p.W/2
	lw, _ := o.small.Atlas().Measure(PanelLabel, 1)
	y := p.Y + panelPadding + labelH*0.8
	o.small.Render(PanelLabel, cx-lw/2, y, 1, titleColor)

	y += panelLabelGap + lineH
	for _, line := range lines {
		w, _ := o.body.Atlas().Measure(line, 1)
		o.body.Render(line, cx-w/2, y, 1, bodyText)
		y += lineH
	}
}

func (o *Overlay) wrap(text string) []string {
	width := o.layout.TextWidth()
	if text == o.wrappedFor && width == o.wrappedWidth {
		return o.wrapped
	}
	atlas := o.body.Atlas()
	o.wrapped = graphics.WrapText(text, width, func(s string) float32 {
		w, _ := atlas.Measure(s, 1)
		return w
	})
	o.wrappedFor, o.wrappedWidth = text, width
	return o.wrapped
}

func (o *Overlay) drawRect(r Rect, fill, border mgl32.Vec4, radius float32) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	o.panelShader.Use()
	o.panelShader.SetMatrix4("projection", &o.projection[0])
	o.panelShader.SetVector4("rect", r.X, r.Y, r.W, r.H)
	o.panelShader.SetVector4("fillColor", fill[0], fill[1], fill[2], fill[3])
	o.panelShader.SetVector4("borderColor", border[0], border[1], border[2], border[3])
	o.panelShader.SetFloat("radius", min(radius, r.H/2, r.W/2))
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// SetViewport relayouts the interface for a new window size
func (o *Overlay) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	o.layout = ComputeLayout(width, height)
	o.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	for _, f := range []*graphics.FontRenderer{o.title, o.body, o.small} {
		if f != nil {
			f.SetViewport(width, height)
		}
	}
}

// Dispose cleans up OpenGL resources
func (o *Overlay) Dispose() {
	for _, f := range []*graphics.FontRenderer{o.title, o.body, o.small} {
		if f != nil {
			f.Dispose()
		}
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		gl.DeleteBuffers(1, &o.vbo)
	}
	if o.panelShader != nil {
		o.panelShader.Delete()
	}
}
