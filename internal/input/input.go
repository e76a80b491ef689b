// Package input maps glfw keys and mouse buttons to scene actions and
// accumulates pointer motion between frames.
package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical control, independent of the key that triggers it.
type Action int

const (
	ActionDescribe Action = iota
	ActionToggleBloom
	ActionToggleAutoRotate
	ActionToggleProfiling
	ActionQuit
	ActionOrbit
	ActionCount // sentinel for array sizing
)

// Manager tracks action state with per-frame edge detection, plus the cursor
// and scroll wheel.
type Manager struct {
	mu sync.RWMutex

	keyToActions    map[glfw.Key][]Action
	buttonToActions map[glfw.MouseButton][]Action

	current      [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	cursorX, cursorY float64
	haveCursor       bool
	dragX, dragY     float64
	scroll           float64
}

// NewManager returns a manager with the default bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions:    make(map[glfw.Key][]Action),
		buttonToActions: make(map[glfw.MouseButton][]Action),
	}

	m.BindKey(glfw.KeySpace, ActionDescribe)
	m.BindKey(glfw.KeyB, ActionToggleBloom)
	m.BindKey(glfw.KeyR, ActionToggleAutoRotate)
	m.BindKey(glfw.KeyV, ActionToggleProfiling)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionOrbit)
	return m
}

// BindKey adds a binding; one key may drive several actions.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
	m.mu.Unlock()
}

// UnbindKey drops every action bound to key.
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	delete(m.keyToActions, key)
	m.mu.Unlock()
}

// BindMouseButton adds a mouse button binding.
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	m.buttonToActions[button] = append(m.buttonToActions[button], action)
	m.mu.Unlock()
}

// HandleKeyEvent feeds a glfw key event. Repeats count as held.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(m.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent feeds a glfw mouse button event.
func (m *Manager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply(m.buttonToActions[button], action == glfw.Press)
}

func (m *Manager) apply(actions []Action, pressed bool) {
	for _, a := range actions {
		if pressed && !m.current[a] {
			m.justPressed[a] = true
		}
		if !pressed && m.current[a] {
			m.justReleased[a] = true
		}
		m.current[a] = pressed
	}
}

// HandleCursorPos feeds a cursor move. Motion counts toward the drag only
// while the orbit button is held.
func (m *Manager) HandleCursorPos(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.haveCursor && m.current[ActionOrbit] {
		m.dragX += x - m.cursorX
		m.dragY += y - m.cursorY
	}
	m.cursorX, m.cursorY = x, y
	m.haveCursor = true
}

// HandleScroll feeds a wheel event; positive yoffset scrolls up.
func (m *Manager) HandleScroll(yoffset float64) {
	m.mu.Lock()
	m.scroll += yoffset
	m.mu.Unlock()
}

// Install registers the manager's callbacks on window.
func (m *Manager) Install(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		m.HandleCursorPos(x, y)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		m.HandleScroll(yoff)
	})
}

// PostUpdate clears per-frame edges and accumulated motion. Call it once at
// the end of every frame.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.justPressed[:])
	clear(m.justReleased[:])
	m.dragX, m.dragY = 0, 0
	m.scroll = 0
}

// IsActive reports whether action is held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current[action]
}

// JustPressed reports whether action went down this frame.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased reports whether action went up this frame.
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}

// Cursor returns the last known cursor position in window coordinates.
func (m *Manager) Cursor() (x, y float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cursorX, m.cursorY
}

// Drag returns cursor motion made with the orbit button held since the last PostUpdate.
func (m *Manager) Drag() (dx, dy float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dragX, m.dragY
}

// Scroll returns wheel motion since the last PostUpdate.
func (m *Manager) Scroll() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scroll
}
