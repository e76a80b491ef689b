package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/graphics"
	"sanaa-nights/internal/graphics/postprocess"
	"sanaa-nights/internal/logging"
	"sanaa-nights/internal/profiling"
)

// Renderer draws the world renderables into the post-process target, then
// the overlay renderables straight to the screen.
type Renderer struct {
	world   []Renderable
	overlay []Renderable
	post    *postprocess.Pipeline
	camera  *graphics.OrbitCamera
	log     logging.Logger

	background mgl32.Vec3
	width      int
	height     int
	elapsed    float64
}

// Options wires a Renderer. World renderables go through post-processing,
// Overlay renderables are drawn on top of the final image.
type Options struct {
	Camera     *graphics.OrbitCamera
	Post       *postprocess.Pipeline
	Background mgl32.Vec3
	World      []Renderable
	Overlay    []Renderable
	Log        logging.Logger
}

// NewRenderer initializes every renderable. A failing Init is returned
// wrapped; nothing can be drawn without its shaders.
func NewRenderer(opts Options) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{
		world:      opts.World,
		overlay:    opts.Overlay,
		post:       opts.Post,
		camera:     opts.Camera,
		log:        opts.Log,
		background: opts.Background,
		width:      graphics.WinWidth,
		height:     graphics.WinHeight,
	}

	if r.log == nil {
		r.log = logging.NewNopLogger()
	}

	if err := r.post.Init(r.width, r.height); err != nil {
		return nil, fmt.Errorf("init post-process: %w", err)
	}
	for i, rb := range r.all() {
		if err := rb.Init(); err != nil {
			return nil, fmt.Errorf("init renderable %d (%T): %w", i, rb, err)
		}
		rb.SetViewport(r.width, r.height)
	}
	return r, nil
}

func (r *Renderer) all() []Renderable {
	out := make([]Renderable, 0, len(r.world)+len(r.overlay))
	out = append(out, r.world...)
	return append(out, r.overlay...)
}

// Render draws one frame
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()
	r.elapsed += dt

	ctx := RenderContext{
		Camera: r.camera,
		DT:     dt,
		Time:   r.elapsed,
		View:   r.camera.ViewMatrix(),
		Proj:   r.camera.ProjectionMatrix(),
		Width:  r.width,
		Height: r.height,
	}

	r.post.Begin(r.background)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	for _, rb := range r.world {
		rb.Render(ctx)
	}
	r.post.End(r.elapsed, config.GetBloom())

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	for _, rb := range r.overlay {
		rb.Render(ctx)
	}
	gl.Disable(gl.BLEND)
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	all := r.all()
	for i := len(all) - 1; i >= 0; i-- {
		all[i].Dispose()
	}
	r.post.Dispose()
}

// Camera returns the camera instance
func (r *Renderer) Camera() *graphics.OrbitCamera {
	return r.camera
}

// UpdateViewport propagates a resize. Render targets follow the framebuffer
// size; renderables get the window size, which is what cursor positions use.
// The two differ on high-DPI displays.
func (r *Renderer) UpdateViewport(fbWidth, fbHeight, winWidth, winHeight int) {
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	r.width, r.height = fbWidth, fbHeight
	r.camera.SetViewport(fbWidth, fbHeight)
	if err := r.post.Resize(fbWidth, fbHeight); err != nil {
		r.log.Errorf("post-process resize to %dx%d: %v", fbWidth, fbHeight, err)
	}
	for _, rb := range r.all() {
		rb.SetViewport(winWidth, winHeight)
	}
}
