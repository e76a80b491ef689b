package main

import (
	"context"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/input"
	"sanaa-nights/internal/logging"
	"sanaa-nights/internal/profiling"
)

const slowFrame = 16 * time.Millisecond

// SceneLoop drives one window: input, camera, rendering and pacing.
type SceneLoop struct {
	ctx    context.Context
	window *glfw.Window
	scene  *SceneComponents
	log    logging.Logger

	fpsLimiter *FPSLimiter
	lastTime   time.Time

	// set when the current left press landed on the button, so it does not orbit
	pressOnButton bool

	frames    int
	fpsWindow time.Time
}

func NewSceneLoop(ctx context.Context, window *glfw.Window, s *SceneComponents, log logging.Logger) *SceneLoop {
	now := time.Now()
	return &SceneLoop{
		ctx:        ctx,
		window:     window,
		scene:      s,
		log:        log,
		fpsLimiter: NewFPSLimiter(),
		lastTime:   now,
		fpsWindow:  now,
	}
}

func (l *SceneLoop) Run() {
	for !l.window.ShouldClose() {
		if l.ctx.Err() != nil {
			return
		}
		l.tick()
	}
}

func (l *SceneLoop) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(l.lastTime).Seconds()
	l.lastTime = startTick

	func() {
		defer profiling.Track("glfw.PollEvents")()
		glfw.PollEvents()
	}()

	in := l.scene.Input
	l.handleActions(in)
	l.updateCamera(in, dt)

	l.scene.Renderer.Render(dt)
	func() {
		defer profiling.Track("glfw.SwapBuffers")()
		l.window.SwapBuffers()
	}()

	if d := time.Since(startTick); d > slowFrame && config.GetProfiling() {
		l.log.Debugf("slow frame: %v. top tasks: %s", d, profiling.TopN(5))
	}

	in.PostUpdate()
	l.countFrame()
	l.fpsLimiter.Wait()
}

func (l *SceneLoop) handleActions(in *input.Manager) {
	if in.JustPressed(input.ActionQuit) {
		l.window.SetShouldClose(true)
	}

	if in.JustPressed(input.ActionOrbit) {
		x, y := in.Cursor()
		l.pressOnButton = l.scene.Overlay.ButtonContains(x, y)
		if l.pressOnButton {
			l.describe()
		}
	}
	if in.JustReleased(input.ActionOrbit) {
		l.pressOnButton = false
	}

	if in.JustPressed(input.ActionDescribe) {
		l.describe()
	}

	if in.JustPressed(input.ActionToggleBloom) {
		l.log.Infof("bloom: %v", config.ToggleBloom())
	}
	if in.JustPressed(input.ActionToggleAutoRotate) {
		on := config.ToggleAutoRotate()
		l.scene.Camera.AutoRotate = on
		l.log.Infof("auto-rotate: %v", on)
	}
	if in.JustPressed(input.ActionToggleProfiling) {
		l.log.Infof("profiling: %v", config.ToggleProfiling())
	}
}

func (l *SceneLoop) describe() {
	if !l.scene.RequestDescription() {
		l.log.Debugf("description already in flight")
	}
}

func (l *SceneLoop) updateCamera(in *input.Manager, dt float64) {
	defer profiling.Track("camera.Update")()
	cam := l.scene.Camera

	orbiting := in.IsActive(input.ActionOrbit) && !l.pressOnButton
	if orbiting {
		dx, dy := in.Drag()
		if dx != 0 || dy != 0 {
			_, h := l.window.GetSize()
			cam.Drag(dx, dy, h)
		}
	}
	if s := in.Scroll(); s != 0 {
		cam.Zoom(s)
	}

	// auto-rotation pauses while the user holds the scene
	if orbiting {
		return
	}
	cam.Update(dt)
}

func (l *SceneLoop) countFrame() {
	l.frames++
	elapsed := time.Since(l.fpsWindow)
	if elapsed < time.Second {
		return
	}
	fps := float64(l.frames) / elapsed.Seconds()
	if config.GetProfiling() {
		l.log.Infof("fps %.1f, frame top: %s", fps, profiling.TopN(5))
	} else {
		l.log.Debugf("fps %.1f", fps)
	}
	l.frames = 0
	l.fpsWindow = time.Now()
}
