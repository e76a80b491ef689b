package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for configurations the generator cannot lay out.
var ErrInvalid = errors.New("invalid scene config")

// Palette holds the scene colors as sRGB hex strings.
type Palette struct {
	Sky             string
	Mountain        string
	GroundCity      string
	GroundCityLight string
	MosqueBase      string
	MosqueAccent    string
	Dome            string
	MinaretLight    string
	MinaretShaft    string
}

// DefaultPalette is the indigo night sky with warm mud-brick and cream stone.
var DefaultPalette = Palette{
	Sky:             "#1e1b4b",
	Mountain:        "#312e81",
	GroundCity:      "#7c2d12",
	GroundCityLight: "#9a3412",
	MosqueBase:      "#fefce8",
	MosqueAccent:    "#fde047",
	Dome:            "#fbbf24",
	MinaretLight:    "#fb923c",
	MinaretShaft:    "#fffbeb",
}

// SceneConfig describes the layout of the generated scene. It is built once at
// startup and never mutated.
type SceneConfig struct {
	GridSize      int
	MosqueWidth   int
	MosqueDepth   int
	MinaretHeight int

	// PlatformTop is the highest y of the solid platform slab (slab spans 0..PlatformTop).
	PlatformTop int
	WallHeight  int
	DomeRadius  int
	// InnerMinaretBoost is added to MinaretHeight for the two inner minarets.
	InnerMinaretBoost int

	Palette Palette
}

// Default returns the stock scene layout.
func Default() SceneConfig {
	return SceneConfig{
		GridSize:          120,
		MosqueWidth:       40,
		MosqueDepth:       30,
		MinaretHeight:     35,
		PlatformTop:       2,
		WallHeight:        12,
		DomeRadius:        9,
		InnerMinaretBoost: 5,
		Palette:           DefaultPalette,
	}
}

// Validate reports sizes that make no sense for the generator.
func (c SceneConfig) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid size %d", ErrInvalid, c.GridSize)
	case c.MosqueWidth <= 0 || c.MosqueDepth <= 0:
		return fmt.Errorf("%w: mosque footprint %dx%d", ErrInvalid, c.MosqueWidth, c.MosqueDepth)
	case c.MinaretHeight <= c.PlatformTop:
		return fmt.Errorf("%w: minaret height %d not above platform %d", ErrInvalid, c.MinaretHeight, c.PlatformTop)
	case c.PlatformTop < 0 || c.WallHeight < 0 || c.DomeRadius < 0:
		return fmt.Errorf("%w: negative structure size", ErrInvalid)
	}
	return nil
}
