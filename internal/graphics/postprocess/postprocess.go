// Package postprocess renders the scene into an HDR target and composites it
// to the screen with bloom, vignette and film grain.
package postprocess

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/graphics"
	"sanaa-nights/internal/profiling"
)

// Pipeline owns the offscreen targets and the three post passes.
type Pipeline struct {
	settings config.PostSettings

	width, height int
	bloomW, bloomH int

	sceneFBO   uint32
	sceneColor uint32
	sceneDepth uint32

	// bright pass writes ping[0]; blur alternates between the two
	pingFBO [2]uint32
	pingTex [2]uint32

	bright    *graphics.Shader
	blur      *graphics.Shader
	composite *graphics.Shader

	emptyVAO uint32
}

// New returns an uninitialized pipeline.
func New(settings config.PostSettings) *Pipeline {
	return &Pipeline{settings: settings}
}

// BloomSize is the blur target size for a viewport; it never drops below 1x1.
func BloomSize(width, height, downsample int) (int, int) {
	if downsample < 1 {
		downsample = 1
	}
	return max(1, width/downsample), max(1, height/downsample)
}

// Init compiles the passes and allocates targets for the viewport.
func (p *Pipeline) Init(width, height int) error {
	var err error
	if p.bright, err = graphics.LoadShaderFiles("fullscreen.vert", "bright.frag"); err != nil {
		return err
	}
	if p.blur, err = graphics.LoadShaderFiles("fullscreen.vert", "blur.frag"); err != nil {
		return err
	}
	if p.composite, err = graphics.LoadShaderFiles("fullscreen.vert", "composite.frag"); err != nil {
		return err
	}
	// core profile refuses draws without a bound VAO
	gl.GenVertexArrays(1, &p.emptyVAO)
	return p.Resize(width, height)
}

// Resize reallocates every target; a no-op when the size is unchanged.
func (p *Pipeline) Resize(width, height int) error {
	if width <= 0 || height <= 0 || (width == p.width && height == p.height) {
		return nil
	}
	p.releaseTargets()
	p.width, p.height = width, height
	p.bloomW, p.bloomH = BloomSize(width, height, p.settings.BloomDownsample)
	if err := p.allocate(); err != nil {
		// forget the size so the next Resize retries
		p.width, p.height = 0, 0
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return err
	}
	return nil
}

func (p *Pipeline) allocate() error {
	width, height := p.width, p.height

	gl.GenFramebuffers(1, &p.sceneFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.sceneFBO)
	p.sceneColor = newColorTexture(width, height)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.sceneColor, 0)

	gl.GenRenderbuffers(1, &p.sceneDepth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, p.sceneDepth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, p.sceneDepth)
	if err := checkFramebuffer("scene"); err != nil {
		return err
	}

	for i := range p.pingFBO {
		gl.GenFramebuffers(1, &p.pingFBO[i])
		gl.BindFramebuffer(gl.FRAMEBUFFER, p.pingFBO[i])
		p.pingTex[i] = newColorTexture(p.bloomW, p.bloomH)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.pingTex[i], 0)
		if err := checkFramebuffer(fmt.Sprintf("bloom %d", i)); err != nil {
			return err
		}
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

// Begin binds the HDR target and clears it to the background color.
func (p *Pipeline) Begin(background mgl32.Vec3) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.sceneFBO)
	gl.Viewport(0, 0, int32(p.width), int32(p.height))
	gl.ClearColor(background[0], background[1], background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End runs the post passes and leaves the default framebuffer bound.
func (p *Pipeline) End(time float64, bloom bool) {
	defer profiling.Track("postprocess.End")()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(p.emptyVAO)

	if bloom {
		p.runBloom()
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(p.width), int32(p.height))

	s := p.settings
	p.composite.Use()
	p.composite.SetInt("scene", 0)
	p.composite.SetInt("bloom", 1)
	p.composite.SetBool("bloomEnabled", bloom)
	p.composite.SetFloat("bloomIntensity", s.BloomIntensity)
	p.composite.SetFloat("vignetteOffset", s.VignetteOffset)
	p.composite.SetFloat("vignetteDarkness", s.VignetteDark)
	p.composite.SetFloat("grainOpacity", s.GrainOpacity)
	p.composite.SetFloat("time", float32(time))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.sceneColor)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, p.pingTex[0])
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(0)
}

func (p *Pipeline) runBloom() {
	s := p.settings
	gl.Viewport(0, 0, int32(p.bloomW), int32(p.bloomH))

	gl.BindFramebuffer(gl.FRAMEBUFFER, p.pingFBO[0])
	p.bright.Use()
	p.bright.SetInt("scene", 0)
	p.bright.SetFloat("threshold", s.BloomThreshold)
	p.bright.SetFloat("smoothing", s.BloomSmoothing)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.sceneColor)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	p.blur.Use()
	p.blur.SetInt("image", 0)
	p.blur.SetFloat("radius", s.BloomRadius)
	tx, ty := 1/float32(p.bloomW), 1/float32(p.bloomH)
	// each pass is horizontal into ping[1] then vertical back into ping[0]
	for range s.BlurPasses {
		p.blurInto(1, 0, tx, 0)
		p.blurInto(0, 1, 0, ty)
	}
}

func (p *Pipeline) blurInto(dst, src int, dx, dy float32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.pingFBO[dst])
	p.blur.SetVector2("direction", dx, dy)
	gl.BindTexture(gl.TEXTURE_2D, p.pingTex[src])
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

// Dispose releases every GL object.
func (p *Pipeline) Dispose() {
	p.releaseTargets()
	for _, s := range []*graphics.Shader{p.bright, p.blur, p.composite} {
		if s != nil {
			s.Delete()
		}
	}
	if p.emptyVAO != 0 {
		gl.DeleteVertexArrays(1, &p.emptyVAO)
	}
}

func (p *Pipeline) releaseTargets() {
	if p.sceneFBO == 0 {
		return
	}
	gl.DeleteFramebuffers(1, &p.sceneFBO)
	gl.DeleteTextures(1, &p.sceneColor)
	gl.DeleteRenderbuffers(1, &p.sceneDepth)
	gl.DeleteFramebuffers(2, &p.pingFBO[0])
	gl.DeleteTextures(2, &p.pingTex[0])
	p.sceneFBO = 0
}

func newColorTexture(width, height int) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA16F, int32(width), int32(height), 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return tex
}

func checkFramebuffer(name string) error {
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("%s framebuffer incomplete: 0x%x", name, status)
	}
	return nil
}
