package config

import "math"

// PointLight is a warm light source placed in world space.
type PointLight struct {
	Position  [3]float32
	Color     string
	Intensity float32
	// Range is the distance at which the light reaches zero; 0 means unbounded.
	Range float32
	Decay float32
}

// Environment collects everything around the voxels: lighting, fog, camera and
// post-process constants.
type Environment struct {
	Background string
	FogNear    float32
	FogFar     float32

	AmbientColor     string
	AmbientIntensity float32

	MoonPosition  [3]float32
	MoonColor     string
	MoonIntensity float32

	PointLights []PointLight

	// SceneOffset translates the whole voxel group.
	SceneOffset [3]float32
	Roughness   float32
	Metalness   float32

	GlowEmissive  string
	GlowIntensity float32

	Stars StarField
	Cloud Cloud

	Camera CameraSettings
	Post   PostSettings
}

// StarField drives the background star decoration.
type StarField struct {
	Count  int
	Radius float32
	Depth  float32
	Factor float32
	Speed  float32
}

// Cloud drives the soft cloud bank behind the mountains.
type Cloud struct {
	Position [3]float32
	Width    float32
	Depth    float32
	Segments int
	Opacity  float32
	Speed    float32
	Color    string
}

// CameraSettings bounds the orbit camera.
type CameraSettings struct {
	Position    [3]float32
	Target      [3]float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	MinDistance float32
	MaxDistance float32
	// MaxPolar is the largest angle from straight up; keeps the eye above the horizon.
	MaxPolar float32
	// AutoRotateSpeed uses orbit-control units: speed 1 is a full turn per 60 seconds, so 0.5 takes 120.
	AutoRotateSpeed float32
	RotateSpeed     float32
	ZoomSpeed       float32
}

// PostSettings configures the glow, vignette and grain passes.
type PostSettings struct {
	BloomThreshold  float32
	BloomSmoothing  float32
	BloomIntensity  float32
	BloomRadius     float32
	BlurPasses      int
	VignetteOffset  float32
	VignetteDark    float32
	GrainOpacity    float32
	BloomDownsample int
}

// DefaultEnvironment returns the moonlit night setup.
func DefaultEnvironment() Environment {
	return Environment{
		Background: DefaultPalette.Sky,
		FogNear:    40,
		FogFar:     140,

		AmbientColor:     "#a5b4fc",
		AmbientIntensity: 0.2,

		MoonPosition:  [3]float32{-50, 50, -20},
		MoonColor:     "#e0e7ff",
		MoonIntensity: 0.5,

		PointLights: []PointLight{
			{Position: [3]float32{0, 20, 0}, Color: "#fbbf24", Intensity: 2, Range: 50, Decay: 2},
			{Position: [3]float32{20, 10, 20}, Color: "#f97316", Intensity: 1, Range: 30, Decay: 2},
			{Position: [3]float32{-20, 10, -20}, Color: "#f97316", Intensity: 1, Range: 30, Decay: 2},
		},

		SceneOffset: [3]float32{0, -10, 0},
		Roughness:   0.8,
		Metalness:   0.1,

		GlowEmissive:  "#ffaa00",
		GlowIntensity: 3,

		Stars: StarField{Count: 5000, Radius: 100, Depth: 50, Factor: 4, Speed: 1},
		Cloud: Cloud{
			Position: [3]float32{0, 40, -50},
			Width:    50,
			Depth:    5,
			Segments: 10,
			Opacity:  0.3,
			Speed:    0.2,
			Color:    DefaultPalette.Mountain,
		},

		Camera: CameraSettings{
			Position:        [3]float32{60, 40, 60},
			Target:          [3]float32{0, 10, 0},
			FOV:             45,
			NearPlane:       0.1,
			FarPlane:        1000,
			MinDistance:     20,
			MaxDistance:     150,
			MaxPolar:        math.Pi/2 - 0.1,
			AutoRotateSpeed: 0.5,
			RotateSpeed:     1,
			ZoomSpeed:       1,
		},

		Post: PostSettings{
			BloomThreshold:  0.6,
			BloomSmoothing:  0.025,
			BloomIntensity:  1.5,
			BloomRadius:     0.4,
			BlurPasses:      5,
			VignetteOffset:  0.1,
			VignetteDark:    0.5,
			GrainOpacity:    0.02,
			BloomDownsample: 2,
		},
	}
}
