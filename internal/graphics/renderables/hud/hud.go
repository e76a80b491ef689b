// Package hud draws the profiling readout toggled at runtime.
package hud

import (
	"time"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/graphics"
	renderer "sanaa-nights/internal/graphics/renderer"
	"sanaa-nights/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 13
	left       = 24
	top        = 160
	lineStep   = 17
	topTasks   = 8
)

var textColor = mgl32.Vec4{1, 1, 1, 0.85}

type HUD struct {
	info         SceneInfo
	stats        FrameStats
	fontRenderer *graphics.FontRenderer
}

func New(info SceneInfo) *HUD {
	return &HUD{info: info}
}

func (h *HUD) Init() error {
	atlas, err := graphics.BuildFontAtlas(graphics.FaceRegular, fontPixels)
	if err != nil {
		return err
	}
	h.fontRenderer, err = graphics.NewFontRenderer(atlas)
	if err != nil {
		return err
	}
	h.fontRenderer.SetViewport(graphics.WinWidth, graphics.WinHeight)
	return nil
}

// Stats exposes the frame history.
func (h *HUD) Stats() *FrameStats { return &h.stats }

func (h *HUD) Render(ctx renderer.RenderContext) {
	h.stats.Record(time.Duration(ctx.DT * float64(time.Second)))
	if !config.GetProfiling() {
		return
	}
	// trackers cover the current frame up to the overlay pass
	lines := Lines(&h.stats, h.info, profiling.TopN(topTasks))
	h.fontRenderer.RenderLines(lines, left, top, lineStep, 1, textColor)
}

func (h *HUD) SetViewport(width, height int) {
	if h.fontRenderer != nil && width > 0 && height > 0 {
		h.fontRenderer.SetViewport(width, height)
	}
}

func (h *HUD) Dispose() {
	if h.fontRenderer != nil {
		h.fontRenderer.Dispose()
	}
}
