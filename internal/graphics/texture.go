package graphics

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// RadialSprite draws a white disc whose alpha fades from the center to the
// rim. Larger falloff values give a harder core.
func RadialSprite(size int, falloff float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / (c + 0.5)
			a := 0.0
			if d < 1 {
				a = math.Pow(1-d, falloff)
			}
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(a * 255))})
		}
	}
	return img
}

// UploadTexture creates a clamped RGBA texture from img.
func UploadTexture(img *image.RGBA, filter int32) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)

	size := img.Rect.Size()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(size.X),
		int32(size.Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// TextureCache uploads generated textures once per key.
type TextureCache struct {
	mu       sync.RWMutex
	textures map[string]uint32
}

// NewTextureCache returns an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]uint32)}
}

// Get returns the texture for key, building and uploading it on first use.
func (c *TextureCache) Get(key string, build func() *image.RGBA) uint32 {
	c.mu.RLock()
	if tex, ok := c.textures[key]; ok {
		c.mu.RUnlock()
		return tex
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.textures[key]; ok {
		return tex
	}
	tex := UploadTexture(build(), gl.LINEAR)
	c.textures[key] = tex
	return tex
}

// Dispose deletes every cached texture.
func (c *TextureCache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, tex := range c.textures {
		gl.DeleteTextures(1, &tex)
		delete(c.textures, key)
	}
}
