package graphics

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontCharacter describes a single character's placement and metrics within the atlas
type FontCharacter struct {
	// Pixel coordinates of the glyph in the atlas texture (top-left origin)
	AtlasX float32
	AtlasY float32
	// Glyph bitmap size in pixels
	Width  float32
	Height float32
	// Bearing (offset from baseline) in pixels
	BearingX float32
	BearingY float32
	// Advance in pixels
	Advance int
}

// FontAtlasInfo contains the OpenGL texture and per-glyph metadata
type FontAtlasInfo struct {
	TextureID  uint32
	AtlasW     int
	AtlasH     int
	LineHeight float32
	Characters map[rune]FontCharacter
}

// Face selects one of the bundled Go fonts.
type Face int

const (
	FaceRegular Face = iota
	FaceBold
)

func (f Face) ttf() []byte {
	if f == FaceBold {
		return gobold.TTF
	}
	return goregular.TTF
}

// atlasRunes is printable ASCII plus the typography the overlay uses.
func atlasRunes() []rune {
	runes := make([]rune, 0, 100)
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	return append(runes, '•', '“', '”', '‘', '’', '…', '—')
}

const atlasWidth = 512

// BakeFontAtlas rasterizes the glyph set into an alpha image without touching GL.
func BakeFontAtlas(face Face, fontPixels int) (*FontAtlasInfo, *image.Alpha, error) {
	f, err := opentype.Parse(face.ttf())
	if err != nil {
		return nil, nil, fmt.Errorf("parse font: %w", err)
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = ff.Close() }()

	runes := atlasRunes()
	padding := 1

	// First pass: pack rows to find the canvas height
	offsetX, offsetY, rowHeight := 0, 0, 0
	for _, r := range runes {
		dr, _, _, _, ok := ff.Glyph(fixed.P(0, 0), r)
		if !ok || dr.Dx() == 0 || dr.Dy() == 0 {
			continue
		}
		if offsetX+dr.Dx() > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		offsetX += dr.Dx() + padding
		rowHeight = max(rowHeight, dr.Dy())
	}
	atlasH := 1
	for atlasH < offsetY+rowHeight+padding {
		atlasH <<= 1
	}

	atlasImg := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH))
	characters := make(map[rune]FontCharacter, len(runes))

	// Second pass: render each glyph into the atlas and record metrics
	offsetX, offsetY, rowHeight = 0, 0, 0
	for _, r := range runes {
		dr, mask, maskp, advance, ok := ff.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		fc := FontCharacter{
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
		gw, gh := dr.Dx(), dr.Dy()
		if gw == 0 || gh == 0 || mask == nil {
			// Space or non-drawable glyph; still record advance
			characters[r] = fc
			continue
		}
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		draw.Draw(atlasImg, image.Rect(offsetX, offsetY, offsetX+gw, offsetY+gh), mask, maskp, draw.Src)

		fc.AtlasX, fc.AtlasY = float32(offsetX), float32(offsetY)
		fc.Width, fc.Height = float32(gw), float32(gh)
		characters[r] = fc

		offsetX += gw + padding
		rowHeight = max(rowHeight, gh)
	}

	m := ff.Metrics()
	info := &FontAtlasInfo{
		AtlasW:     atlasWidth,
		AtlasH:     atlasH,
		LineHeight: float32(m.Height.Round()),
		Characters: characters,
	}
	return info, atlasImg, nil
}

// BuildFontAtlas bakes the glyph set and uploads it as a single-channel texture.
func BuildFontAtlas(face Face, fontPixels int) (*FontAtlasInfo, error) {
	info, img, err := BakeFontAtlas(face, fontPixels)
	if err != nil {
		return nil, err
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	// Ensure tight byte alignment for single-channel upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(info.AtlasW), int32(info.AtlasH), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	info.TextureID = texture
	return info, nil
}

// Measure returns the width and tallest glyph height of text at scale.
func (a *FontAtlasInfo) Measure(text string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			// fall back to space advance if glyph missing
			width += float32(a.Characters[' '].Advance) * scale
			continue
		}
		width += float32(fc.Advance) * scale
		maxH = max(maxH, fc.Height*scale)
	}
	return width, maxH
}

// FontRenderer renders text strings using a prebuilt atlas
type FontRenderer struct {
	atlas       *FontAtlasInfo
	shader      *Shader
	projection  mgl32.Mat4
	vao         uint32
	vbo         uint32
	maxCharsCap int
}

// NewFontRenderer creates the renderer and compiles the text shader
func NewFontRenderer(atlas *FontAtlasInfo) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Characters) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := LoadShader("font")
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{
		atlas:       atlas,
		shader:      shader,
		maxCharsCap: 512,
	}
	fr.SetViewport(WinWidth, WinHeight)
	fr.initGL()
	return fr, nil
}

// Atlas exposes the glyph metrics for layout.
func (fr *FontRenderer) Atlas() *FontAtlasInfo { return fr.atlas }

// SetViewport resets the pixel-space projection, origin top-left.
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

func (fr *FontRenderer) initGL() {
	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// 6 verts per char, 4 floats per vert
	capFloats := fr.maxCharsCap * 6 * 4
	gl.BufferData(gl.ARRAY_BUFFER, capFloats*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Render draws text with its baseline starting at (x, y) in pixels.
func (fr *FontRenderer) Render(text string, x, y, scale float32, color mgl32.Vec4) {
	fr.RenderLines([]string{text}, x, y, 0, scale, color)
}

// RenderLines draws several lines in one pass. Each line sits lineStep
// pixels below the previous one.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec4) {
	vertices := make([]float32, 0, 256)
	y := yStart
	for _, line := range lines {
		vertices = fr.appendVertices(vertices, line, x, y, scale)
		y += lineStep
	}
	if len(vertices) == 0 {
		return
	}

	fr.shader.Use()
	fr.shader.SetVector4("textColor", color[0], color[1], color[2], color[3])
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.atlas.TextureID)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// orphan the buffer to avoid GPU stalls on dynamic updates
	size := len(vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))

	gl.BindVertexArray(0)
}

// Dispose releases the GL objects and the atlas texture.
func (fr *FontRenderer) Dispose() {
	gl.DeleteBuffers(1, &fr.vbo)
	gl.DeleteVertexArrays(1, &fr.vao)
	gl.DeleteTextures(1, &fr.atlas.TextureID)
	fr.shader.Delete()
}

func (fr *FontRenderer) appendVertices(vertices []float32, text string, x, y, scale float32) []float32 {
	a := fr.atlas
	for _, r := range text {
		fc, ok := a.Characters[r]
		if !ok {
			x += float32(a.Characters[' '].Advance) * scale
			continue
		}
		if fc.Width > 0 {
			xPos := x + fc.BearingX*scale
			yPos := y - fc.BearingY*scale
			w := fc.Width * scale
			h := fc.Height * scale

			u0 := fc.AtlasX / float32(a.AtlasW)
			v0 := fc.AtlasY / float32(a.AtlasH)
			u1 := u0 + fc.Width/float32(a.AtlasW)
			v1 := v0 + fc.Height/float32(a.AtlasH)

			vertices = append(vertices,
				xPos, yPos+h, u0, v1,
				xPos, yPos, u0, v0,
				xPos+w, yPos, u1, v0,

				xPos, yPos+h, u0, v1,
				xPos+w, yPos, u1, v0,
				xPos+w, yPos+h, u1, v1,
			)
		}
		x += float32(fc.Advance) * scale
	}
	return vertices
}
