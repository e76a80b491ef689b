package config

import "sync"

// RenderSettings holds runtime render toggles. The render thread reads them every
// frame while input callbacks flip them, so access goes through the lock.
type RenderSettings struct {
	mu         sync.RWMutex
	fpsLimit   int
	bloom      bool
	autoRotate bool
	profiling  bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:   120,
	bloom:      true,
	autoRotate: true,
}

// GetFPSLimit returns the frame cap; 0 means uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values below 0 disable the cap, values above 240 are clamped.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 240 {
		limit = 240
	}

	globalRenderSettings.fpsLimit = limit
}

// GetBloom returns whether the glow pass is composited
func GetBloom() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.bloom
}

// ToggleBloom flips the glow pass and returns the new state
func ToggleBloom() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.bloom = !globalRenderSettings.bloom
	return globalRenderSettings.bloom
}

// GetAutoRotate returns whether the camera drifts on its own
func GetAutoRotate() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.autoRotate
}

// ToggleAutoRotate flips camera auto rotation and returns the new state
func ToggleAutoRotate() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.autoRotate = !globalRenderSettings.autoRotate
	return globalRenderSettings.autoRotate
}

// GetProfiling returns whether per-frame timings are logged
func GetProfiling() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.profiling
}

// ToggleProfiling flips per-frame timing logs and returns the new state
func ToggleProfiling() bool {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.profiling = !globalRenderSettings.profiling
	return globalRenderSettings.profiling
}
