package scene

import (
	"math"
	"math/rand/v2"
)

// Two randomness sources live side by side here. SeedRandom is a stateless
// coordinate hash: every structural decision (mountain heights, building
// placement, everything in the mosque) derives from it and is reproducible.
// Ambient is ordinary process randomness, used only for decorative choices
// such as which building voxels become lit windows. Keeping them apart means
// the silhouette never changes between runs while the windows may.

// SeedRandom maps (x, z) to [0, 1) with the shader-style sine hash
// frac(sin(x*12.9898 + z*78.233) * 43758.5453).
func SeedRandom(x, z float64) float64 {
	s := math.Sin(x*12.9898+z*78.233) * 43758.5453
	return s - math.Floor(s)
}

// Noise samples the coordinate hash used for terrain and city layout.
func Noise(x, z float64) float64 {
	return SeedRandom(x, z)
}

// Ambient is a source of non-reproducible decorative randomness.
type Ambient interface {
	Float64() float64
}

type globalAmbient struct{}

func (globalAmbient) Float64() float64 { return rand.Float64() }

// ProcessAmbient returns the process-wide random source.
func ProcessAmbient() Ambient { return globalAmbient{} }

// NewSeededAmbient returns a reproducible source, for tests and screenshots.
func NewSeededAmbient(seed uint64) Ambient {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
