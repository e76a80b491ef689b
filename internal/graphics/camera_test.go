package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"sanaa-nights/internal/config"
)

func newTestCamera() *OrbitCamera {
	return NewOrbitCamera(config.DefaultEnvironment().Camera, WinWidth, WinHeight)
}

func TestOrbitCameraStartsAtConfiguredPosition(t *testing.T) {
	c := newTestCamera()
	p := c.Position()
	assert.InDelta(t, 60, p.X(), 1e-3)
	assert.InDelta(t, 40, p.Y(), 1e-3)
	assert.InDelta(t, 60, p.Z(), 1e-3)
	assert.InDelta(t, float32(WinWidth)/float32(WinHeight), c.AspectRatio, 1e-6)
}

func TestOrbitCameraAutoRotateRate(t *testing.T) {
	c := newTestCamera()
	theta0, phi0 := c.Angles()
	d0 := c.Distance()

	// speed 0.5 turns a quarter circle in 30 seconds
	for range 30 * 60 {
		c.Update(1.0 / 60)
	}
	theta, phi := c.Angles()
	turned := math.Remainder(theta0-theta, 2*math.Pi)
	assert.InDelta(t, math.Pi/2, turned, 1e-6)
	assert.InDelta(t, phi0, phi, 1e-9)
	assert.InDelta(t, d0, c.Distance(), 1e-9)

	c.AutoRotate = false
	c.Update(10)
	theta2, _ := c.Angles()
	assert.Equal(t, theta, theta2)
}

func TestOrbitCameraFullTurnPeriod(t *testing.T) {
	tests := []struct {
		speed  float64
		period float64
	}{
		{speed: 1, period: 60},
		{speed: 0.5, period: 120},
	}
	for _, tt := range tests {
		c := newTestCamera()
		c.AutoRotate = true
		c.AutoRotateSpeed = tt.speed
		theta0, _ := c.Angles()

		// half the period is half a turn
		c.Update(tt.period / 2)
		theta, _ := c.Angles()
		assert.InDelta(t, math.Pi, math.Abs(math.Remainder(theta0-theta, 2*math.Pi)), 1e-9, "speed %v", tt.speed)
	}
}

func TestOrbitCameraZoomClamps(t *testing.T) {
	c := newTestCamera()
	d0 := c.Distance()

	c.Zoom(1)
	assert.InDelta(t, d0*0.95, c.Distance(), 1e-9)

	c.Zoom(500)
	assert.Equal(t, 20.0, c.Distance())

	c.Zoom(-500)
	assert.Equal(t, 150.0, c.Distance())
}

func TestOrbitCameraPolarClamp(t *testing.T) {
	c := newTestCamera()

	// dragging down raises the eye
	c.Drag(0, 10*WinHeight, WinHeight)
	_, phi := c.Angles()
	assert.Equal(t, minPolar, phi)

	c.Drag(0, -10*WinHeight, WinHeight)
	_, phi = c.Angles()
	assert.InDelta(t, math.Pi/2-0.1, phi, 1e-6)
	assert.Greater(t, c.Position().Y(), c.Target.Y(), "eye stays above the target plane")
}

func TestOrbitCameraDragFullHeightIsOneTurn(t *testing.T) {
	c := newTestCamera()
	theta0, _ := c.Angles()
	c.Drag(WinHeight, 0, WinHeight)
	theta, _ := c.Angles()
	assert.InDelta(t, 0, math.Remainder(theta-theta0, 2*math.Pi), 1e-9)

	c.Drag(WinHeight/4, 0, 0)
	theta2, _ := c.Angles()
	assert.Equal(t, theta, theta2, "zero height is ignored")
}

func TestOrbitCameraViewLooksAtTarget(t *testing.T) {
	c := newTestCamera()
	v := c.ViewMatrix()
	target := v.Mul4x1(c.Target.Vec4(1))
	// target lies on the view axis in front of the camera
	assert.InDelta(t, 0, target.X(), 1e-3)
	assert.InDelta(t, 0, target.Y(), 1e-3)
	assert.InDelta(t, -c.Distance(), target.Z(), 1e-2)
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, c.Target)
}
