package scene

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanaa-nights/internal/config"
)

type constAmbient float64

func (c constAmbient) Float64() float64 { return float64(c) }

func hashVoxels(voxels []Voxel, withStyle bool) [32]byte {
	h := sha256.New()
	var buf [4]byte
	for _, v := range voxels {
		for _, p := range v.Position {
			binary.LittleEndian.PutUint32(buf[:], uint32(int32(p)))
			h.Write(buf[:])
		}
		if !withStyle {
			continue
		}
		for _, c := range v.Color.Vec() {
			binary.LittleEndian.PutUint32(buf[:], math.Float32bits(c))
			h.Write(buf[:])
		}
		if v.IsLight {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func TestSeedRandomRange(t *testing.T) {
	assert.Equal(t, 0.0, SeedRandom(0, 0))
	for x := -60; x < 60; x += 7 {
		for z := -60; z < 60; z += 5 {
			v := SeedRandom(float64(x)*0.2, float64(z)*0.2)
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
			require.Equal(t, v, Noise(float64(x)*0.2, float64(z)*0.2))
		}
	}
}

func TestGenerateDeterministicWithSeededAmbient(t *testing.T) {
	cfg := config.Default()
	var hashes [5][32]byte
	for i := range hashes {
		g := NewGenerator(cfg, WithAmbient(NewSeededAmbient(42)))
		hashes[i] = hashVoxels(g.Generate(), true)
	}
	for i := 1; i < len(hashes); i++ {
		assert.Equal(t, hashes[0], hashes[i], "run %d differs", i)
	}
}

func TestStructureIndependentOfAmbient(t *testing.T) {
	cfg := config.Default()
	a := NewGenerator(cfg, WithAmbient(NewSeededAmbient(1))).Generate()
	b := NewGenerator(cfg, WithAmbient(NewSeededAmbient(2))).Generate()
	require.Equal(t, len(a), len(b))
	assert.Equal(t, hashVoxels(a, false), hashVoxels(b, false))
}

func TestGenerateBoundsDefault(t *testing.T) {
	voxels := NewGenerator(config.Default()).Generate()
	require.NotEmpty(t, voxels)

	lo, hi, ok := Bounds(voxels)
	require.True(t, ok)
	assert.GreaterOrEqual(t, lo[0], -60)
	assert.GreaterOrEqual(t, lo[2], -60)
	assert.Less(t, hi[0], 60)
	assert.Less(t, hi[2], 60)
	assert.Equal(t, -1, lo[1], "city ground sits at y=-1")
}

func TestBoundsEmpty(t *testing.T) {
	_, _, ok := Bounds(nil)
	assert.False(t, ok)
}

func TestCityBuildingsAvoidFootprint(t *testing.T) {
	g := NewGenerator(config.Default(), WithAmbient(constAmbient(0.95)))
	buildings := 0
	for _, v := range g.Terrain() {
		x, y, z := v.Position[0], v.Position[1], v.Position[2]
		if z < farBandZ || y < 0 {
			continue
		}
		buildings++
		require.False(t, g.InFootprint(x, z), "building voxel at %v inside mosque footprint", v.Position)
		require.Greater(t, z, farBandZ)
	}
	assert.Positive(t, buildings)
}

func TestCityWindowsFollowAmbient(t *testing.T) {
	cfg := config.Default()

	dark := NewGenerator(cfg, WithAmbient(constAmbient(0))).Terrain()
	assert.Zero(t, CountLights(dark))

	g := NewGenerator(cfg, WithAmbient(constAmbient(0.95)))
	for _, v := range g.Terrain() {
		if v.Position[2] < farBandZ || v.Position[1] < 0 {
			continue
		}
		if v.Position[1] > windowMinY {
			require.True(t, v.IsLight, "voxel %v should be a lit window", v.Position)
			require.Equal(t, g.Colors().MinaretLight, v.Color)
		} else {
			require.False(t, v.IsLight)
			require.Equal(t, g.Colors().GroundCityLight, v.Color)
		}
	}
}

func TestMountainsAreSurfaceOnly(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(cfg)
	lo, hi := span(cfg.GridSize)

	columns := map[[2]int]int{}
	for _, v := range g.Terrain() {
		if v.Position[2] >= farBandZ {
			continue
		}
		assert.Equal(t, g.Colors().Mountain, v.Color)
		columns[[2]int{v.Position[0], v.Position[2]}]++
	}
	for col, n := range columns {
		if col[0] == lo || col[0] == hi-1 {
			continue
		}
		assert.Equal(t, 1, n, "interior mountain column %v", col)
	}
}

func TestOddGridIsCentered(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 7
	voxels := NewGenerator(cfg).Terrain()
	// the whole grid lies inside the mosque footprint, so only ground is emitted
	require.Len(t, voxels, 49)
	lo, hi, _ := Bounds(voxels)
	assert.Equal(t, [3]int{-3, -1, -3}, lo)
	assert.Equal(t, [3]int{3, -1, 3}, hi)
}

func TestPlatformAndWallCounts(t *testing.T) {
	g := NewGenerator(config.Default())

	platform := g.Platform()
	assert.Len(t, platform, 40*30*3)

	walls := g.Walls()
	// 759 interior roof columns, 177 border columns of 12 voxels each
	assert.Len(t, walls, 759+177*12)
	for _, v := range walls {
		x, y := v.Position[0], v.Position[1]
		if v.IsLight {
			assert.Zero(t, y%windowRowEvery)
			assert.Zero(t, x%windowColEvery)
		}
		if y == 14 {
			assert.False(t, v.IsLight, "roof voxel %v", v.Position)
		}
	}
}

func TestMinaretCaps(t *testing.T) {
	g := NewGenerator(config.Default())
	c := g.Colors()
	voxels := g.Minarets()
	assert.Len(t, voxels, 4*173+2*193)

	find := func(x, y, z int) (Voxel, bool) {
		for _, v := range voxels {
			if v.Position == [3]int{x, y, z} {
				return v, true
			}
		}
		return Voxel{}, false
	}

	cases := []struct {
		name   string
		x, z   int
		height int
	}{
		{"corner", -20, -15, 35},
		{"far corner", 19, 14, 35},
		{"inner", -10, -5, 40},
		{"inner right", 10, -5, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			capV, ok := find(tc.x, tc.height, tc.z)
			require.True(t, ok)
			assert.True(t, capV.IsLight)
			assert.Equal(t, c.Dome, capV.Color)

			tip, ok := find(tc.x, tc.height+1, tc.z)
			require.True(t, ok)
			assert.True(t, tip.IsLight)
			assert.Equal(t, c.MinaretLight, tip.Color)

			_, ok = find(tc.x+1, tc.height+1, tc.z)
			assert.False(t, ok, "tip is a single voxel")
		})
	}
}

func TestDomeIsShell(t *testing.T) {
	cfg := config.Default()
	g := NewGenerator(cfg)
	center := g.DomeCenter()
	dome := g.Dome()
	require.NotEmpty(t, dome)
	r := float64(cfg.DomeRadius)
	for _, v := range dome {
		dx := float64(v.Position[0] - center[0])
		dy := float64(v.Position[1] - center[1])
		dz := float64(v.Position[2] - center[2])
		d := math.Sqrt(dx*dx + dy*dy + dz*dz)
		require.Greater(t, d, r-domeShell)
		require.Less(t, d, r)
		require.GreaterOrEqual(t, dy, 0.0)
		require.False(t, v.IsLight)
	}
}

func TestGenerateReportMatchesPhases(t *testing.T) {
	g := NewGenerator(config.Default(), WithAmbient(NewSeededAmbient(9)))
	voxels, report := g.GenerateReport()
	assert.Equal(t, len(voxels), report.Total())
	assert.Equal(t, CountLights(voxels), report.Lights)
	assert.Equal(t, 40*30*3, report.Platform)
	assert.Equal(t, 4*173+2*193, report.Minarets)
}

func TestParseColorRejectsGarbage(t *testing.T) {
	_, err := ParseColor("not-a-color")
	assert.Error(t, err)

	c, err := ParseColor("#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 1.0, c.B, 1e-6)
}

func TestGenerateToleratesInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.SceneConfig)
	}{
		{"negative width", func(c *config.SceneConfig) { c.MosqueWidth = -4 }},
		{"negative depth", func(c *config.SceneConfig) { c.MosqueDepth = -30 }},
		{"negative grid", func(c *config.SceneConfig) { c.GridSize = -10 }},
		{"negative platform", func(c *config.SceneConfig) { c.PlatformTop = -3 }},
		{"negative dome", func(c *config.SceneConfig) { c.DomeRadius = -8 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

			g := NewGenerator(cfg, WithAmbient(constAmbient(0.5)))
			var voxels []Voxel
			var report Report
			require.NotPanics(t, func() { voxels, report = g.GenerateReport() })
			assert.Equal(t, len(voxels), report.Total())
		})
	}
}

func TestNegativeFootprintHasNoPlatform(t *testing.T) {
	cfg := config.Default()
	cfg.MosqueWidth = -4
	g := NewGenerator(cfg, WithAmbient(constAmbient(0.5)))
	assert.Empty(t, g.Platform())
	assert.Empty(t, g.Walls())
}
