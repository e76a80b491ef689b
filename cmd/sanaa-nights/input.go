package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, s *SceneComponents) {
	s.Input.Install(window)

	resize := func(w *glfw.Window) {
		fbW, fbH := w.GetFramebufferSize()
		winW, winH := w.GetSize()
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		s.Renderer.UpdateViewport(fbW, fbH, winW, winH)
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		resize(w)
	})
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		resize(w)
	})

	// the framebuffer may already differ from the requested size on high-DPI screens
	resize(window)
}
