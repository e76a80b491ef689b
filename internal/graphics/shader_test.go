package graphics

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedShadersPaired(t *testing.T) {
	entries, err := fs.ReadDir(shaderFS, "shaders")
	require.NoError(t, err)

	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = true
	}
	for _, frag := range []string{"font", "panel", "voxel", "stars", "cloud"} {
		assert.True(t, names[frag+".vert"], "%s.vert", frag)
		assert.True(t, names[frag+".frag"], "%s.frag", frag)
	}
	for _, pass := range []string{"bright", "blur", "composite"} {
		assert.True(t, names[pass+".frag"], "%s.frag", pass)
	}
	assert.True(t, names["fullscreen.vert"])

	for name := range names {
		src, err := shaderFS.ReadFile("shaders/" + name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(src), "#version 410 core"), name)
	}
}
