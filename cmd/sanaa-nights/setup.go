package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/describe"
	"sanaa-nights/internal/graphics"
	"sanaa-nights/internal/graphics/postprocess"
	"sanaa-nights/internal/graphics/renderables/hud"
	"sanaa-nights/internal/graphics/renderables/overlay"
	"sanaa-nights/internal/graphics/renderables/sky"
	"sanaa-nights/internal/graphics/renderables/voxels"
	renderer "sanaa-nights/internal/graphics/renderer"
	"sanaa-nights/internal/input"
	"sanaa-nights/internal/instancing"
	"sanaa-nights/internal/logging"
	"sanaa-nights/internal/scene"
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(graphics.WinWidth, graphics.WinHeight, graphics.WindowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	// Disable V-Sync; the FPS limiter paces frames
	glfw.SwapInterval(0)
	return window, nil
}

// SceneComponents holds everything the loop drives
type SceneComponents struct {
	Renderer  *renderer.Renderer
	Camera    *graphics.OrbitCamera
	Overlay   *overlay.Overlay
	Input     *input.Manager
	Describer *describe.Service

	// requests scopes description calls to the lifetime of the scene
	requests       context.Context
	cancelRequests context.CancelFunc
}

// RequestDescription starts a background description unless one is running.
func (s *SceneComponents) RequestDescription() bool {
	return s.Describer.RequestAsync(s.requests)
}

// Dispose abandons a pending description request, waits for it to land and
// releases GL resources.
func (s *SceneComponents) Dispose() {
	if s.cancelRequests != nil {
		s.cancelRequests()
	}
	s.Describer.Wait()
	if s.Renderer != nil {
		s.Renderer.Dispose()
	}
}

func setupScene(ctx context.Context, log *logging.DefaultLogger) (*SceneComponents, error) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	env := config.DefaultEnvironment()
	genLog := log.With("scene")

	start := time.Now()
	voxelList, report := scene.NewGenerator(cfg).GenerateReport()
	genLog.Infof("generated %d voxels (%d lights) in %s", report.Total(), report.Lights, time.Since(start).Round(time.Microsecond))
	genLog.Debugf("phases: terrain=%d platform=%d walls=%d minarets=%d dome=%d",
		report.Terrain, report.Platform, report.Walls, report.Minarets, report.Dome)
	if lo, hi, ok := scene.Bounds(voxelList); ok {
		genLog.Debugf("bounds %v .. %v", lo, hi)
	}

	start = time.Now()
	groups := instancing.Build(voxelList)
	genLog.Infof("instance buffers: %d base, %d glow in %s", groups.All.Len(), groups.Light.Len(), time.Since(start).Round(time.Microsecond))

	camera := graphics.NewOrbitCamera(env.Camera, graphics.WinWidth, graphics.WinHeight)
	camera.AutoRotate = config.GetAutoRotate()

	describer := describe.FromCredentials(ctx, config.CredentialsFromEnv(), log.With("describe"))

	decor := scene.ProcessAmbient()
	ui := overlay.New(describer.State())
	stats := hud.New(hud.SceneInfo{
		Voxels:    report.Total(),
		Lights:    report.Lights,
		Instances: groups.All.Len() + groups.Light.Len(),
	})
	bg := scene.MustColor(env.Background)

	r, err := renderer.NewRenderer(renderer.Options{
		Camera:     camera,
		Post:       postprocess.New(env.Post),
		Background: mgl32.Vec3(bg.Vec()),
		World: []renderer.Renderable{
			sky.NewStars(env.Stars, decor),
			voxels.New(groups, env),
			sky.NewCloud(env.Cloud, decor),
		},
		Overlay: []renderer.Renderable{ui, stats},
		Log:     log.With("renderer"),
	})
	if err != nil {
		return nil, err
	}

	requests, cancel := context.WithCancel(ctx)
	return &SceneComponents{
		Renderer:       r,
		Camera:         camera,
		Overlay:        ui,
		Input:          input.NewManager(),
		Describer:      describer,
		requests:       requests,
		cancelRequests: cancel,
	}, nil
}
