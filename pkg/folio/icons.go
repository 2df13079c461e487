package folio

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// iconSet rasterizes the built-in SVG icons on demand and caches the
// resulting textures per key, size, and tint.
type iconSet struct {
	textures map[string]*sdl.Texture
}

var icons = iconSet{textures: make(map[string]*sdl.Texture)}

// Texture returns the icon texture for key at the given square size,
// tinted with the given color. Unknown keys return nil and the caller
// draws nothing.
func (s *iconSet) Texture(renderer *sdl.Renderer, key string, size int32, tint sdl.Color) *sdl.Texture {
	if size <= 0 {
		return nil
	}

	cacheKey := fmt.Sprintf("%s|%d|%02x%02x%02x", key, size, tint.R, tint.G, tint.B)
	if texture, ok := s.textures[cacheKey]; ok {
		return texture
	}

	source := constants.IconSource(key)
	if source == "" {
		return nil
	}

	texture := rasterizeIcon(renderer, source, size, tint)
	if texture != nil {
		s.textures[cacheKey] = texture
	}
	return texture
}

// Destroy releases every cached texture. Called on shutdown and when the
// theme accent changes.
func (s *iconSet) Destroy() {
	for key, texture := range s.textures {
		texture.Destroy()
		delete(s.textures, key)
	}
}

func rasterizeIcon(renderer *sdl.Renderer, source string, size int32, tint sdl.Color) *sdl.Texture {
	icon, err := oksvg.ReadIconStream(strings.NewReader(source))
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to parse icon", "error", err)
		return nil
	}

	// Override the fill so every icon takes the theme tint.
	fill := color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: 255}
	for i := range icon.SVGPaths {
		icon.SVGPaths[i].Style.FillerColor = fill
	}

	w, h := int(size), int(size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(w), int32(h), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to build icon surface", "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Warn("Failed to build icon texture", "error", err)
		return nil
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture
}

// drawIcon copies an icon texture at (x, y) with the given alpha, for
// icons that fade in with their card.
func drawIcon(renderer *sdl.Renderer, key string, x, y, size int32, tint sdl.Color, alpha uint8) {
	texture := icons.Texture(renderer, key, size, tint)
	if texture == nil {
		return
	}
	texture.SetAlphaMod(alpha)
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: size, H: size})
}
