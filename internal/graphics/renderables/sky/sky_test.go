package sky

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/scene"
)

func TestPackStars(t *testing.T) {
	data := packStars([]scene.Star{
		{Position: [3]float32{1, 2, 3}, Size: 4, Brightness: 0.5},
		{Position: [3]float32{-1, 0, 9}, Size: 2, Brightness: 1},
	})
	assert.Equal(t, []float32{1, 2, 3, 4, 0.5, -1, 0, 9, 2, 1}, data)
}

func TestPackPuffsEmpty(t *testing.T) {
	assert.Empty(t, packPuffs(nil))
}

func TestNewUsesEnvironment(t *testing.T) {
	env := config.DefaultEnvironment()

	stars := NewStars(env.Stars, scene.NewSeededAmbient(1))
	require.Len(t, stars.stars, env.Stars.Count)

	cloud := NewCloud(env.Cloud, scene.NewSeededAmbient(1))
	require.Len(t, cloud.puffs, env.Cloud.Segments)
	assert.Equal(t, scene.MustColor(env.Cloud.Color).Vec(), [3]float32(cloud.color))
	for _, p := range cloud.puffs {
		assert.LessOrEqual(t, p.Opacity, env.Cloud.Opacity)
	}
}
