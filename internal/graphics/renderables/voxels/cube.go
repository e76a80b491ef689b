package voxels

// cubeVertices is a unit cube centered on the origin: 36 vertices of
// position followed by normal, counter-clockwise when seen from outside.
var cubeVertices = buildCube()

type face struct {
	normal  [3]float32
	corners [4][3]float32 // counter-clockwise from outside
}

var cubeFaces = []face{
	{[3]float32{0, 0, 1}, [4][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	{[3]float32{0, 0, -1}, [4][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
	{[3]float32{1, 0, 0}, [4][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	{[3]float32{-1, 0, 0}, [4][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	{[3]float32{0, 1, 0}, [4][3]float32{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	{[3]float32{0, -1, 0}, [4][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
}

const floatsPerVertex = 6

func buildCube() []float32 {
	out := make([]float32, 0, len(cubeFaces)*6*floatsPerVertex)
	for _, f := range cubeFaces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			c := f.corners[i]
			out = append(out, c[0]*0.5, c[1]*0.5, c[2]*0.5, f.normal[0], f.normal[1], f.normal[2])
		}
	}
	return out
}
