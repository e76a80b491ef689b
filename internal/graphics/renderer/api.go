package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"sanaa-nights/internal/graphics"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *graphics.OrbitCamera
	// DT is the frame delta and Time the seconds since the first frame.
	DT   float64
	Time float64
	View mgl32.Mat4
	Proj mgl32.Mat4

	// Width and Height are the framebuffer size in pixels.
	Width  int
	Height int
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
