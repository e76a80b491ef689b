package scene

import (
	"math"

	"sanaa-nights/internal/config"
)

const (
	// Rows with z below this belong to the mountain band.
	farBandZ = -20

	mountainScale     = 0.05
	mountainAmplitude = 40
	mountainFalloff   = 40
	mountainBase      = 5

	cityScale         = 0.2
	buildingThreshold = 0.6
	buildingMaxHeight = 8
	footprintMargin   = 2
	windowChance      = 0.9
	windowMinY        = 2

	wallInset      = 2
	wallBorder     = 4
	windowRowEvery = 4
	windowColEvery = 3

	balconyMinY  = 15
	balconyEvery = 8

	domeShell = 1.5
)

// innerMinarets are the two taller minarets flanking the prayer hall.
var innerMinarets = [2][2]int{{-10, -5}, {10, -5}}

// Generator lays out the mosque scene. The zero value is not usable; call NewGenerator.
type Generator struct {
	cfg     config.SceneConfig
	colors  Colors
	ambient Ambient
}

// Option customizes a Generator.
type Option func(*Generator)

// WithAmbient replaces the decorative random source.
func WithAmbient(a Ambient) Option {
	return func(g *Generator) {
		if a != nil {
			g.ambient = a
		}
	}
}

// NewGenerator parses the palette and prepares a generator for cfg.
func NewGenerator(cfg config.SceneConfig, opts ...Option) *Generator {
	p := cfg.Palette
	g := &Generator{
		cfg: cfg,
		colors: Colors{
			Sky:             MustColor(p.Sky),
			Mountain:        MustColor(p.Mountain),
			GroundCity:      MustColor(p.GroundCity),
			GroundCityLight: MustColor(p.GroundCityLight),
			MosqueBase:      MustColor(p.MosqueBase),
			MosqueAccent:    MustColor(p.MosqueAccent),
			Dome:            MustColor(p.Dome),
			MinaretLight:    MustColor(p.MinaretLight),
			MinaretShaft:    MustColor(p.MinaretShaft),
		},
		ambient: ProcessAmbient(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Colors returns the parsed palette.
func (g *Generator) Colors() Colors { return g.colors }

// Report counts what each phase emitted.
type Report struct {
	Terrain  int
	Platform int
	Walls    int
	Minarets int
	Dome     int
	Lights   int
}

// Total is the number of voxels across all phases.
func (r Report) Total() int {
	return r.Terrain + r.Platform + r.Walls + r.Minarets + r.Dome
}

// Generate runs every phase in order and returns the concatenated voxels.
func (g *Generator) Generate() []Voxel {
	v, _ := g.GenerateReport()
	return v
}

// GenerateReport is Generate plus per-phase counts.
func (g *Generator) GenerateReport() ([]Voxel, Report) {
	var r Report
	out := g.Terrain()
	r.Terrain = len(out)

	phases := []struct {
		run   func() []Voxel
		count *int
	}{
		{g.Platform, &r.Platform},
		{g.Walls, &r.Walls},
		{g.Minarets, &r.Minarets},
		{g.Dome, &r.Dome},
	}
	for _, p := range phases {
		v := p.run()
		*p.count = len(v)
		out = append(out, v...)
	}
	r.Lights = CountLights(out)
	return out, r
}

// span returns the half-open integer range of n cells centered on the origin.
func span(n int) (lo, hi int) {
	lo = -(n / 2)
	return lo, lo + n
}

// Terrain emits the mountain band behind the mosque and the city around it.
func (g *Generator) Terrain() []Voxel {
	lo, hi := span(g.cfg.GridSize)
	out := make([]Voxel, 0, max(0, g.cfg.GridSize)*max(0, g.cfg.GridSize)*2)
	for x := lo; x < hi; x++ {
		for z := lo; z < hi; z++ {
			if z < farBandZ {
				out = g.mountainColumn(out, x, z, lo, hi)
				continue
			}
			out = g.cityColumn(out, x, z)
		}
	}
	return out
}

// mountainColumn emits only the top voxel, plus full columns on the two side edges.
func (g *Generator) mountainColumn(out []Voxel, x, z, lo, hi int) []Voxel {
	dist := math.Abs(float64(z-farBandZ)) / mountainFalloff
	h := int(math.Floor(Noise(float64(x)*mountainScale, float64(z)*mountainScale)*mountainAmplitude*dist)) + mountainBase
	for y := 0; y < h; y++ {
		if y == h-1 || x == lo || x == hi-1 {
			out = append(out, Voxel{Position: [3]int{x, y, z}, Color: g.colors.Mountain})
		}
	}
	return out
}

func (g *Generator) cityColumn(out []Voxel, x, z int) []Voxel {
	cityNoise := Noise(float64(x)*cityScale, float64(z)*cityScale)
	out = append(out, Voxel{Position: [3]int{x, -1, z}, Color: g.colors.GroundCity})

	if cityNoise <= buildingThreshold || z <= farBandZ || g.InFootprint(x, z) {
		return out
	}
	h := int(math.Floor(cityNoise * buildingMaxHeight))
	for y := 0; y < h; y++ {
		// draw for every voxel so the ambient sequence does not depend on y
		lit := g.ambient.Float64() > windowChance && y > windowMinY
		v := Voxel{Position: [3]int{x, y, z}, Color: g.colors.GroundCityLight}
		if lit {
			v.Color = g.colors.MinaretLight
			v.IsLight = true
		}
		out = append(out, v)
	}
	return out
}

// InFootprint reports whether column (x, z) lies in the area kept clear of city buildings.
func (g *Generator) InFootprint(x, z int) bool {
	return math.Abs(float64(x)) < float64(g.cfg.MosqueWidth)/2+footprintMargin &&
		math.Abs(float64(z)) < float64(g.cfg.MosqueDepth)/2+footprintMargin
}

// Platform emits the solid slab under the mosque.
func (g *Generator) Platform() []Voxel {
	x0, x1 := span(g.cfg.MosqueWidth)
	z0, z1 := span(g.cfg.MosqueDepth)
	out := make([]Voxel, 0, max(0, x1-x0)*max(0, z1-z0)*max(0, g.cfg.PlatformTop+1))
	for x := x0; x < x1; x++ {
		for z := z0; z < z1; z++ {
			for y := 0; y <= g.cfg.PlatformTop; y++ {
				out = append(out, Voxel{Position: [3]int{x, y, z}, Color: g.colors.MosqueBase})
			}
		}
	}
	return out
}

// Walls emits the hollow prayer hall: window-studded border columns and a
// one-voxel roof over the interior.
func (g *Generator) Walls() []Voxel {
	x0, x1 := span(g.cfg.MosqueWidth)
	z0, z1 := span(g.cfg.MosqueDepth)
	halfW := float64(g.cfg.MosqueWidth) / 2
	halfD := float64(g.cfg.MosqueDepth) / 2
	base := g.cfg.PlatformTop
	top := base + g.cfg.WallHeight

	var out []Voxel
	for x := x0 + wallInset; x < x1-wallInset; x++ {
		for z := z0 + wallInset; z < z1-wallInset; z++ {
			border := math.Abs(float64(x)) > halfW-wallBorder || math.Abs(float64(z)) > halfD-wallBorder
			if !border {
				out = append(out, Voxel{Position: [3]int{x, top, z}, Color: g.colors.MosqueBase})
				continue
			}
			for y := base; y < top; y++ {
				window := y%windowRowEvery == 0 && x%windowColEvery == 0
				v := Voxel{Position: [3]int{x, y, z}, Color: g.colors.MosqueBase}
				if window {
					v.Color = g.colors.MinaretLight
					v.IsLight = true
				}
				out = append(out, v)
			}
		}
	}
	return out
}

// MinaretSite is the footprint corner and total height of one minaret.
type MinaretSite struct {
	X, Z   int
	Height int
}

// MinaretSites lists the four corner minarets followed by the two inner ones.
func (g *Generator) MinaretSites() []MinaretSite {
	x0, x1 := span(g.cfg.MosqueWidth)
	z0, z1 := span(g.cfg.MosqueDepth)
	h := g.cfg.MinaretHeight
	tall := h + g.cfg.InnerMinaretBoost
	return []MinaretSite{
		{X: x0, Z: z0, Height: h},
		{X: x1 - 1, Z: z0, Height: h},
		{X: x0, Z: z1 - 1, Height: h},
		{X: x1 - 1, Z: z1 - 1, Height: h},
		{X: innerMinarets[0][0], Z: innerMinarets[0][1], Height: tall},
		{X: innerMinarets[1][0], Z: innerMinarets[1][1], Height: tall},
	}
}

// Minarets emits every shaft with its balcony rings and glowing cap.
func (g *Generator) Minarets() []Voxel {
	var out []Voxel
	for _, s := range g.MinaretSites() {
		out = g.minaret(out, s)
	}
	return out
}

func (g *Generator) minaret(out []Voxel, s MinaretSite) []Voxel {
	shaft := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for y := g.cfg.PlatformTop; y < s.Height; y++ {
		for _, o := range shaft {
			out = append(out, Voxel{Position: [3]int{s.X + o[0], y, s.Z + o[1]}, Color: g.colors.MinaretShaft})
		}
		if y > balconyMinY && y%balconyEvery == 0 {
			out = g.balcony(out, s.X, y, s.Z)
		}
	}
	for _, o := range shaft {
		out = append(out, Voxel{Position: [3]int{s.X + o[0], s.Height, s.Z + o[1]}, Color: g.colors.Dome, IsLight: true})
	}
	return append(out, Voxel{Position: [3]int{s.X, s.Height + 1, s.Z}, Color: g.colors.MinaretLight, IsLight: true})
}

// balcony emits the 4x4 ring around a 2x2 shaft, leaving the shaft cells out.
func (g *Generator) balcony(out []Voxel, mx, y, mz int) []Voxel {
	for bx := -1; bx <= 2; bx++ {
		for bz := -1; bz <= 2; bz++ {
			if bx >= 0 && bx <= 1 && bz >= 0 && bz <= 1 {
				continue
			}
			out = append(out, Voxel{Position: [3]int{mx + bx, y, mz + bz}, Color: g.colors.MinaretLight, IsLight: true})
		}
	}
	return out
}

// DomeCenter is the local origin of the central dome shell.
func (g *Generator) DomeCenter() [3]int {
	return [3]int{0, g.cfg.PlatformTop + g.cfg.WallHeight, 0}
}

// Dome emits a hemispherical shell sitting on the roof.
func (g *Generator) Dome() []Voxel {
	r := g.cfg.DomeRadius
	c := g.DomeCenter()
	outer := float64(r)
	inner := outer - domeShell

	var out []Voxel
	for x := -r; x <= r; x++ {
		for y := 0; y <= r; y++ {
			for z := -r; z <= r; z++ {
				d := math.Sqrt(float64(x*x + y*y + z*z))
				if d < outer && d > inner {
					out = append(out, Voxel{Position: [3]int{c[0] + x, c[1] + y, c[2] + z}, Color: g.colors.Dome})
				}
			}
		}
	}
	return out
}

// Bounds returns the inclusive min and max corner over all voxel positions.
func Bounds(voxels []Voxel) (lo, hi [3]int, ok bool) {
	if len(voxels) == 0 {
		return lo, hi, false
	}
	lo, hi = voxels[0].Position, voxels[0].Position
	for _, v := range voxels[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return lo, hi, true
}

// CountLights returns how many voxels are light sources.
func CountLights(voxels []Voxel) int {
	n := 0
	for _, v := range voxels {
		if v.IsLight {
			n++
		}
	}
	return n
}
