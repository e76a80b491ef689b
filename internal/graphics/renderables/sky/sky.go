// Package sky draws the decoration around the voxels: a twinkling star shell
// and a slow cloud bank above the mountains.
package sky

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/graphics"
	renderer "sanaa-nights/internal/graphics/renderer"
	"sanaa-nights/internal/profiling"
	"sanaa-nights/internal/scene"
)

const floatsPerPoint = 5 // xyz + two per-point scalars

// pointBuffer is a VAO over interleaved position + two scalars.
type pointBuffer struct {
	vao, vbo uint32
	count    int32
}

func (p *pointBuffer) upload(data []float32) {
	p.count = int32(len(data) / floatsPerPoint)
	if p.count == 0 {
		return
	}
	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	stride := int32(floatsPerPoint * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (p *pointBuffer) dispose() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		gl.DeleteBuffers(1, &p.vbo)
		p.vao, p.vbo = 0, 0
	}
}

// packStars interleaves position, size and brightness.
func packStars(stars []scene.Star) []float32 {
	out := make([]float32, 0, len(stars)*floatsPerPoint)
	for _, s := range stars {
		out = append(out, s.Position[0], s.Position[1], s.Position[2], s.Size, s.Brightness)
	}
	return out
}

// packPuffs interleaves offset, size and opacity.
func packPuffs(puffs []scene.Puff) []float32 {
	out := make([]float32, 0, len(puffs)*floatsPerPoint)
	for _, p := range puffs {
		out = append(out, p.Offset[0], p.Offset[1], p.Offset[2], p.Size, p.Opacity)
	}
	return out
}

// Stars implements the star shell renderable. It must render before the
// voxels: it writes no depth.
type Stars struct {
	cfg    config.StarField
	stars  []scene.Star
	shader *graphics.Shader
	points pointBuffer
}

// NewStars scatters the configured star field using r.
func NewStars(cfg config.StarField, r scene.Ambient) *Stars {
	return &Stars{
		cfg:   cfg,
		stars: scene.GenerateStars(r, cfg.Count, cfg.Radius, cfg.Depth, cfg.Factor),
	}
}

// Init compiles the shader and uploads the points
func (s *Stars) Init() error {
	var err error
	if s.shader, err = graphics.LoadShader("stars"); err != nil {
		return err
	}
	s.points.upload(packStars(s.stars))
	return nil
}

// Render draws the stars additively behind everything
func (s *Stars) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.stars")()
	if s.points.count == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	s.shader.Use()
	s.shader.SetMatrix4("view", &ctx.View[0])
	s.shader.SetMatrix4("projection", &ctx.Proj[0])
	s.shader.SetFloat("time", float32(ctx.Time))
	s.shader.SetFloat("speed", s.cfg.Speed)
	s.shader.SetFloat("fadeNear", s.cfg.Radius)
	s.shader.SetFloat("fadeFar", s.cfg.Radius+s.cfg.Depth)

	gl.BindVertexArray(s.points.vao)
	gl.DrawArrays(gl.POINTS, 0, s.points.count)
	gl.BindVertexArray(0)

	gl.Disable(gl.PROGRAM_POINT_SIZE)
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	gl.Enable(gl.DEPTH_TEST)
}

// SetViewport is a no-op; star sizes are in pixels
func (s *Stars) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (s *Stars) Dispose() {
	s.points.dispose()
	if s.shader != nil {
		s.shader.Delete()
	}
}

// Cloud implements the translucent cloud bank. It renders after the voxels
// so it blends over them without writing depth.
type Cloud struct {
	cfg      config.Cloud
	puffs    []scene.Puff
	color    mgl32.Vec3
	shader   *graphics.Shader
	points   pointBuffer
	textures *graphics.TextureCache
	sprite   uint32
}

// NewCloud lays out the configured cloud bank using r.
func NewCloud(cfg config.Cloud, r scene.Ambient) *Cloud {
	return &Cloud{
		cfg:      cfg,
		puffs:    scene.GenerateCloud(r, cfg.Position, cfg.Width, cfg.Depth, cfg.Segments, cfg.Opacity),
		color:    mgl32.Vec3(scene.MustColor(cfg.Color).Vec()),
		textures: graphics.NewTextureCache(),
	}
}

// Init compiles the shader, uploads puffs and bakes the soft sprite
func (c *Cloud) Init() error {
	var err error
	if c.shader, err = graphics.LoadShader("cloud"); err != nil {
		return err
	}
	c.points.upload(packPuffs(c.puffs))
	c.sprite = c.textures.Get("cloud-puff", func() *image.RGBA {
		return graphics.RadialSprite(64, 1.6)
	})
	return nil
}

// Render draws the puffs with alpha blending
func (c *Cloud) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.cloud")()
	if c.points.count == 0 {
		return
	}

	gl.DepthMask(false)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	c.shader.Use()
	c.shader.SetMatrix4("view", &ctx.View[0])
	c.shader.SetMatrix4("projection", &ctx.Proj[0])
	c.shader.SetFloat("time", float32(ctx.Time))
	c.shader.SetFloat("drift", c.cfg.Speed)
	c.shader.SetFloat("viewportHeight", float32(ctx.Height))
	c.shader.SetVec3("cloudColor", c.color)
	c.shader.SetInt("sprite", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.sprite)
	gl.BindVertexArray(c.points.vao)
	gl.DrawArrays(gl.POINTS, 0, c.points.count)
	gl.BindVertexArray(0)

	gl.Disable(gl.PROGRAM_POINT_SIZE)
	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
}

// SetViewport is a no-op; sprite sizes follow the framebuffer height in the context
func (c *Cloud) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (c *Cloud) Dispose() {
	c.points.dispose()
	c.textures.Dispose()
	if c.shader != nil {
		c.shader.Delete()
	}
}
