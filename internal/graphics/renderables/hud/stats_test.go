package hud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStatsRolling(t *testing.T) {
	var s FrameStats
	assert.Zero(t, s.FPS())

	s.Record(10 * time.Millisecond)
	s.Record(20 * time.Millisecond)
	s.Record(30 * time.Millisecond)

	assert.Equal(t, 30*time.Millisecond, s.Last())
	assert.Equal(t, 10*time.Millisecond, s.Min())
	assert.Equal(t, 30*time.Millisecond, s.Max())
	assert.Equal(t, 20*time.Millisecond, s.Average())
	assert.InDelta(t, 50.0, s.FPS(), 1e-9)
}

func TestFrameStatsWindow(t *testing.T) {
	var s FrameStats
	s.Record(time.Second)
	for range historyLen {
		s.Record(10 * time.Millisecond)
	}
	// the slow frame has fallen out of the window
	assert.Len(t, s.history, historyLen)
	assert.Equal(t, 10*time.Millisecond, s.Max())
	assert.Equal(t, 10*time.Millisecond, s.Average())
}

func TestFrameStatsIgnoresNegative(t *testing.T) {
	var s FrameStats
	s.Record(-time.Millisecond)
	assert.Empty(t, s.history)
}

func TestLines(t *testing.T) {
	var s FrameStats
	s.Record(8 * time.Millisecond)

	lines := Lines(&s, SceneInfo{Voxels: 100, Lights: 6, Instances: 106}, "renderer.voxels:1.2ms, glfw.PollEvents:0.0ms")
	require.Len(t, lines, 5)
	assert.Equal(t, "FPS: 125", lines[0])
	assert.Contains(t, lines[1], "8.00ms")
	assert.Equal(t, "Voxels: 100 (6 lights) | Instances: 106", lines[3])
	assert.Equal(t, "renderer.voxels:1.2ms", lines[4])
}
