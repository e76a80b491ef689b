package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStarsShell(t *testing.T) {
	stars := GenerateStars(NewSeededAmbient(3), 2000, 100, 50, 4)
	require.Len(t, stars, 2000)
	for _, s := range stars {
		p := s.Position
		d := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
		require.GreaterOrEqual(t, d, 100-1e-3)
		require.LessOrEqual(t, d, 150+1e-3)
		require.GreaterOrEqual(t, s.Size, float32(2))
		require.LessOrEqual(t, s.Size, float32(4))
		require.GreaterOrEqual(t, s.Brightness, float32(0.5))
	}
}

func TestGenerateStarsEmpty(t *testing.T) {
	assert.Nil(t, GenerateStars(NewSeededAmbient(1), 0, 100, 50, 4))
}

func TestGenerateCloudBank(t *testing.T) {
	center := [3]float32{0, 40, -50}
	puffs := GenerateCloud(NewSeededAmbient(5), center, 50, 5, 10, 0.3)
	require.Len(t, puffs, 10)
	for _, p := range puffs {
		assert.GreaterOrEqual(t, p.Offset[0], float32(-25))
		assert.LessOrEqual(t, p.Offset[0], float32(25))
		assert.InDelta(t, 40, p.Offset[1], 2.5)
		assert.InDelta(t, -50, p.Offset[2], 2.5)
		assert.LessOrEqual(t, p.Opacity, float32(0.3))
		assert.Positive(t, p.Size)
	}
}
