package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyEdges(t *testing.T) {
	m := NewManager()

	m.HandleKeyEvent(glfw.KeyB, glfw.Press)
	assert.True(t, m.JustPressed(ActionToggleBloom))
	assert.True(t, m.IsActive(ActionToggleBloom))

	m.PostUpdate()
	m.HandleKeyEvent(glfw.KeyB, glfw.Repeat)
	assert.False(t, m.JustPressed(ActionToggleBloom), "repeat is not a new press")
	assert.True(t, m.IsActive(ActionToggleBloom))

	m.HandleKeyEvent(glfw.KeyB, glfw.Release)
	assert.True(t, m.JustReleased(ActionToggleBloom))
	assert.False(t, m.IsActive(ActionToggleBloom))

	m.PostUpdate()
	assert.False(t, m.JustReleased(ActionToggleBloom))
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := NewManager()
	m.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		assert.False(t, m.IsActive(a))
	}
	assert.False(t, m.IsActive(ActionCount))
}

func TestRebinding(t *testing.T) {
	m := NewManager()
	m.UnbindKey(glfw.KeySpace)
	m.BindKey(glfw.KeyEnter, ActionDescribe)

	m.HandleKeyEvent(glfw.KeySpace, glfw.Press)
	assert.False(t, m.JustPressed(ActionDescribe))
	m.HandleKeyEvent(glfw.KeyEnter, glfw.Press)
	assert.True(t, m.JustPressed(ActionDescribe))
}

func TestDragOnlyWhileOrbitHeld(t *testing.T) {
	m := NewManager()
	m.HandleCursorPos(100, 100)
	m.HandleCursorPos(110, 105)
	dx, dy := m.Drag()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	m.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	m.HandleCursorPos(120, 100)
	m.HandleCursorPos(125, 90)
	dx, dy = m.Drag()
	assert.Equal(t, 15.0, dx)
	assert.Equal(t, -15.0, dy)

	x, y := m.Cursor()
	assert.Equal(t, 125.0, x)
	assert.Equal(t, 90.0, y)

	m.PostUpdate()
	dx, dy = m.Drag()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.True(t, m.IsActive(ActionOrbit), "held state survives the frame")
}

func TestScrollAccumulates(t *testing.T) {
	m := NewManager()
	m.HandleScroll(1)
	m.HandleScroll(2)
	m.HandleScroll(-0.5)
	assert.Equal(t, 2.5, m.Scroll())
	m.PostUpdate()
	assert.Zero(t, m.Scroll())
}
