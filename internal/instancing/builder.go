// Package instancing flattens generated voxels into the dense per-instance
// buffers the voxel renderable uploads.
package instancing

import (
	"runtime"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"

	"sanaa-nights/internal/scene"
)

const (
	// FloatsPerTransform is one column-major mat4.
	FloatsPerTransform = 16
	FloatsPerColor     = 3

	// LightBoost brightens light voxels in the base pass so they bloom.
	LightBoost = 1.5
	// GlowScale inflates the glow shell slightly so it wraps the base cube.
	GlowScale = 1.01

	defaultSpan = 4096
)

// InstanceGroup is one instanced draw: a transform and a color per instance.
type InstanceGroup struct {
	Transforms []float32
	Colors     []float32
	Scale      float32
}

// Len is the number of instances in the group.
func (g InstanceGroup) Len() int {
	return len(g.Colors) / FloatsPerColor
}

// Transform returns the mat4 of instance i.
func (g InstanceGroup) Transform(i int) mgl32.Mat4 {
	var m mgl32.Mat4
	copy(m[:], g.Transforms[i*FloatsPerTransform:(i+1)*FloatsPerTransform])
	return m
}

// Color returns the color of instance i.
func (g InstanceGroup) Color(i int) mgl32.Vec3 {
	o := i * FloatsPerColor
	return mgl32.Vec3{g.Colors[o], g.Colors[o+1], g.Colors[o+2]}
}

// Groups holds the two draws of the voxel scene. They own separate arrays.
type Groups struct {
	// All has every voxel in input order, lights boosted.
	All InstanceGroup
	// Light has only light voxels, slightly enlarged, raw color.
	Light InstanceGroup
}

// Builder fills instance groups, splitting large inputs across a worker pool.
type Builder struct {
	workers int
	span    int
}

// NewBuilder returns a builder using workers goroutines; values below one mean
// one per CPU.
func NewBuilder(workers int) *Builder {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Builder{workers: workers, span: defaultSpan}
}

// Build converts voxels with a default builder.
func Build(voxels []scene.Voxel) Groups {
	return NewBuilder(0).Build(voxels)
}

// Build converts voxels into the All and Light groups. Empty input yields
// empty groups.
func (b *Builder) Build(voxels []scene.Voxel) Groups {
	lights := make([]int, 0, len(voxels)/8)
	for i, v := range voxels {
		if v.IsLight {
			lights = append(lights, i)
		}
	}

	g := Groups{
		All:   newGroup(len(voxels), 1),
		Light: newGroup(len(lights), GlowScale),
	}

	var pool pond.Pool
	if b.workers > 1 && len(voxels) > b.span {
		pool = pond.NewPool(b.workers)
		defer pool.StopAndWait()
	}

	b.each(pool, len(voxels), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v := voxels[i]
			c := v.Color
			if v.IsLight {
				c = c.Scale(LightBoost)
			}
			g.All.put(i, translation(v.Position), c)
		}
	})

	glow := mgl32.Scale3D(GlowScale, GlowScale, GlowScale)
	b.each(pool, len(lights), func(lo, hi int) {
		for j := lo; j < hi; j++ {
			v := voxels[lights[j]]
			g.Light.put(j, translation(v.Position).Mul4(glow), v.Color)
		}
	})
	return g
}

// each runs fn over [0, n) in spans on pool, or inline when pool is nil or
// n fits one span. Spans write disjoint indices, so the result matches a
// sequential fill.
func (b *Builder) each(pool pond.Pool, n int, fn func(lo, hi int)) {
	if n == 0 {
		return
	}
	if pool == nil || n <= b.span {
		fn(0, n)
		return
	}

	group := pool.NewGroup()
	for lo := 0; lo < n; lo += b.span {
		hi := min(lo+b.span, n)
		group.Submit(func() {
			fn(lo, hi)
		})
	}
	group.Wait()
}

func newGroup(n int, scale float32) InstanceGroup {
	return InstanceGroup{
		Transforms: make([]float32, n*FloatsPerTransform),
		Colors:     make([]float32, n*FloatsPerColor),
		Scale:      scale,
	}
}

func (g *InstanceGroup) put(i int, m mgl32.Mat4, c scene.Color) {
	copy(g.Transforms[i*FloatsPerTransform:], m[:])
	o := i * FloatsPerColor
	g.Colors[o] = c.R
	g.Colors[o+1] = c.G
	g.Colors[o+2] = c.B
}

func translation(p [3]int) mgl32.Mat4 {
	return mgl32.Translate3D(float32(p[0]), float32(p[1]), float32(p[2]))
}
