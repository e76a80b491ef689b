package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSceneConfig(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 120, c.GridSize)
	assert.Equal(t, 40, c.MosqueWidth)
	assert.Equal(t, 30, c.MosqueDepth)
	assert.Equal(t, 35, c.MinaretHeight)
	assert.Equal(t, "#fb923c", c.Palette.MinaretLight)
}

func TestValidateRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SceneConfig)
	}{
		{"zero grid", func(c *SceneConfig) { c.GridSize = 0 }},
		{"negative width", func(c *SceneConfig) { c.MosqueWidth = -4 }},
		{"flat minarets", func(c *SceneConfig) { c.MinaretHeight = c.PlatformTop }},
		{"negative dome", func(c *SceneConfig) { c.DomeRadius = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestSetFPSLimitClamps(t *testing.T) {
	prev := GetFPSLimit()
	t.Cleanup(func() { SetFPSLimit(prev) })

	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(1000)
	assert.Equal(t, 240, GetFPSLimit())
	SetFPSLimit(60)
	assert.Equal(t, 60, GetFPSLimit())
}

func TestTogglesFlip(t *testing.T) {
	before := GetBloom()
	assert.Equal(t, !before, ToggleBloom())
	assert.Equal(t, before, ToggleBloom())

	before = GetAutoRotate()
	assert.Equal(t, !before, ToggleAutoRotate())
	assert.Equal(t, before, ToggleAutoRotate())
}

func TestCredentialsFromEnvFallbacks(t *testing.T) {
	env := map[string]string{"GEMINI_API_KEY": "k2"}
	c := credentialsFrom(func(k string) string { return env[k] })
	assert.Equal(t, "k2", c.APIKey)
	assert.Equal(t, DefaultModel, c.Model)
	assert.True(t, c.HasAPIKey())

	env = map[string]string{"API_KEY": "k1", "GEMINI_API_KEY": "k2", "GEMINI_MODEL": "m"}
	c = credentialsFrom(func(k string) string { return env[k] })
	assert.Equal(t, "k1", c.APIKey)
	assert.Equal(t, "m", c.Model)

	c = credentialsFrom(func(string) string { return "" })
	assert.False(t, c.HasAPIKey())
}

func TestDefaultEnvironmentCameraBounds(t *testing.T) {
	env := DefaultEnvironment()
	assert.Less(t, env.Camera.MinDistance, env.Camera.MaxDistance)
	assert.Less(t, env.Camera.MaxPolar, float32(1.5708))
	assert.Len(t, env.PointLights, 3)
}
