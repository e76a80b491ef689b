package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"sanaa-nights/internal/config"
)

const minPolar = 0.01

// OrbitCamera circles a target on a sphere. Angles are kept in float64 and
// only converted for the matrices.
type OrbitCamera struct {
	Target mgl32.Vec3

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	AutoRotate      bool
	AutoRotateSpeed float64
	RotateSpeed     float64
	ZoomSpeed       float64

	MinDistance float64
	MaxDistance float64
	MaxPolar    float64

	radius float64
	theta  float64 // azimuth around +Y, measured from +Z
	phi    float64 // angle from +Y
}

// NewOrbitCamera places the camera per settings, looking at its target.
func NewOrbitCamera(s config.CameraSettings, width, height int) *OrbitCamera {
	c := &OrbitCamera{
		Target:          mgl32.Vec3(s.Target),
		FOV:             s.FOV,
		NearPlane:       s.NearPlane,
		FarPlane:        s.FarPlane,
		AutoRotate:      true,
		AutoRotateSpeed: float64(s.AutoRotateSpeed),
		RotateSpeed:     float64(s.RotateSpeed),
		ZoomSpeed:       float64(s.ZoomSpeed),
		MinDistance:     float64(s.MinDistance),
		MaxDistance:     float64(s.MaxDistance),
		MaxPolar:        float64(s.MaxPolar),
	}
	c.SetViewport(width, height)

	off := mgl32.Vec3(s.Position).Sub(c.Target)
	c.radius = float64(off.Len())
	if c.radius > 0 {
		c.theta = math.Atan2(float64(off.X()), float64(off.Z()))
		c.phi = math.Acos(float64(mgl32.Clamp(off.Y()/off.Len(), -1, 1)))
	}
	c.clamp()
	return c
}

// SetViewport updates the aspect ratio; zero sizes are ignored.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Update advances auto-rotation by dt seconds. Speed 1 is a full turn every
// 60 seconds.
func (c *OrbitCamera) Update(dt float64) {
	if !c.AutoRotate || dt <= 0 {
		return
	}
	c.theta -= 2 * math.Pi / 60 * c.AutoRotateSpeed * dt
	c.theta = math.Remainder(c.theta, 2*math.Pi)
}

// Drag orbits by a pointer motion of (dx, dy) pixels in a viewport of the
// given height. Dragging the full height is one turn.
func (c *OrbitCamera) Drag(dx, dy float64, height int) {
	if height <= 0 {
		return
	}
	h := float64(height)
	c.theta -= 2 * math.Pi * dx / h * c.RotateSpeed
	c.phi -= 2 * math.Pi * dy / h * c.RotateSpeed
	c.clamp()
}

// Zoom dollies by scroll steps; positive steps move closer.
func (c *OrbitCamera) Zoom(steps float64) {
	if steps == 0 {
		return
	}
	c.radius *= math.Pow(0.95, steps*c.ZoomSpeed)
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	c.radius = max(c.MinDistance, min(c.MaxDistance, c.radius))
	maxPolar := c.MaxPolar
	if maxPolar <= 0 || maxPolar > math.Pi {
		maxPolar = math.Pi - minPolar
	}
	c.phi = max(minPolar, min(maxPolar, c.phi))
}

// Distance is the current distance to the target.
func (c *OrbitCamera) Distance() float64 { return c.radius }

// Angles returns the azimuth and polar angle in radians.
func (c *OrbitCamera) Angles() (theta, phi float64) { return c.theta, c.phi }

// Position is the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sp := math.Sin(c.phi)
	off := mgl32.Vec3{
		float32(c.radius * sp * math.Sin(c.theta)),
		float32(c.radius * math.Cos(c.phi)),
		float32(c.radius * sp * math.Cos(c.theta)),
	}
	return c.Target.Add(off)
}

// ViewMatrix looks from Position at Target with +Y up.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *OrbitCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
