package scene

import "math"

// Star is one point in the background shell.
type Star struct {
	Position   [3]float32
	Size       float32
	Brightness float32
}

// GenerateStars scatters count stars on uniformly random directions, each at
// a distance in [radius, radius+depth].
func GenerateStars(r Ambient, count int, radius, depth, factor float32) []Star {
	if count <= 0 {
		return nil
	}
	stars := make([]Star, count)
	for i := range stars {
		u := 2*r.Float64() - 1
		theta := 2 * math.Pi * r.Float64()
		ring := math.Sqrt(1 - u*u)
		dist := float64(radius) + float64(depth)*r.Float64()
		stars[i] = Star{
			Position: [3]float32{
				float32(ring * math.Cos(theta) * dist),
				float32(u * dist),
				float32(ring * math.Sin(theta) * dist),
			},
			Size:       factor * float32(0.5+0.5*r.Float64()),
			Brightness: float32(0.5 + 0.5*r.Float64()),
		}
	}
	return stars
}

// Puff is one soft sprite of a cloud bank.
type Puff struct {
	Offset  [3]float32
	Size    float32
	Opacity float32
}

// GenerateCloud spreads segments puffs along a bank width wide and depth
// thick, centered on center. Opacity scales every puff.
func GenerateCloud(r Ambient, center [3]float32, width, depth float32, segments int, opacity float32) []Puff {
	if segments <= 0 {
		return nil
	}
	puffs := make([]Puff, segments)
	step := width / float32(segments)
	for i := range puffs {
		// even spacing along x with jitter keeps the bank from clumping
		x := -width/2 + step*(float32(i)+float32(r.Float64()))
		puffs[i] = Puff{
			Offset: [3]float32{
				center[0] + x,
				center[1] + depth*float32(r.Float64()-0.5),
				center[2] + depth*float32(r.Float64()-0.5),
			},
			Size:    step * float32(1.5+r.Float64()),
			Opacity: opacity * float32(0.6+0.4*r.Float64()),
		}
	}
	return puffs
}
