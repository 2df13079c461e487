package internal

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
)

// lineSpacingRatio is the extra space between wrapped lines, as a fraction
// of the font height.
const lineSpacingRatio = 0.3

// TextWidth returns the rendered width of text in the given font, or 0 when
// measurement fails.
func TextWidth(font *ttf.Font, text string) int32 {
	if text == "" {
		return 0
	}
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

// FontLineHeight returns the height of one wrapped line including spacing.
func FontLineHeight(font *ttf.Font) int32 {
	_, h, err := font.SizeUTF8("Aj")
	if err != nil {
		h = 20
	}
	return int32(h) + int32(float32(h)*lineSpacingRatio)
}

// WrapText breaks text into lines that fit maxWidth in the given font.
// Explicit newlines are honored; words longer than a line are kept whole.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	if text == "" {
		return nil
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	var lines []string
	for _, paragraph := range strings.Split(normalized, "\n") {
		if paragraph == "" {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := current
			if candidate != "" {
				candidate += " "
			}
			candidate += word

			if TextWidth(font, candidate) > maxWidth && current != "" {
				lines = append(lines, current)
				current = word
			} else {
				current = candidate
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}

	return lines
}

// MultilineTextHeight returns the height WrapText'd content occupies.
func MultilineTextHeight(font *ttf.Font, text string, maxWidth int32) int32 {
	lines := WrapText(font, text, maxWidth)
	if len(lines) == 0 {
		return 0
	}
	return int32(len(lines)) * FontLineHeight(font)
}

// RenderMultilineText draws word-wrapped text and returns the drawn height.
// For TextAlignCenter x is the center line; for TextAlignRight x is the right
// edge; otherwise x is the left edge. Textures are created and destroyed per
// call; use RenderMultilineTextWithCache on hot paths.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	return renderMultiline(renderer, text, font, maxWidth, x, y, color, align, nil)
}

// RenderMultilineTextWithCache is RenderMultilineText with per-line texture
// caching. The cache owns the textures it stores.
func RenderMultilineTextWithCache(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign, cache *TextureCache) int32 {
	return renderMultiline(renderer, text, font, maxWidth, x, y, color, align, cache)
}

func renderMultiline(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign, cache *TextureCache) int32 {
	lines := WrapText(font, text, maxWidth)
	if len(lines) == 0 {
		return 0
	}

	lineHeight := FontLineHeight(font)
	currentY := y

	for _, line := range lines {
		if line == "" {
			currentY += lineHeight
			continue
		}

		texture, w, h := lineTexture(renderer, font, line, color, cache)
		if texture == nil {
			currentY += lineHeight
			continue
		}

		lineX := x
		switch align {
		case constants.TextAlignCenter:
			lineX = x - w/2
		case constants.TextAlignRight:
			lineX = x - w
		}

		renderer.Copy(texture, nil, &sdl.Rect{X: lineX, Y: currentY, W: w, H: h})
		if cache == nil {
			texture.Destroy()
		}
		currentY += lineHeight
	}

	return currentY - y
}

func lineTexture(renderer *sdl.Renderer, font *ttf.Font, line string, color sdl.Color, cache *TextureCache) (*sdl.Texture, int32, int32) {
	var key string
	if cache != nil {
		key = fmt.Sprintf("%s|%d|%02x%02x%02x%02x", line, font.Height(), color.R, color.G, color.B, color.A)
		if texture := cache.Get(key); texture != nil {
			_, _, w, h, err := texture.Query()
			if err == nil {
				return texture, w, h
			}
		}
	}

	surface, err := font.RenderUTF8Blended(line, color)
	if err != nil {
		return nil, 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0
	}

	if cache != nil {
		cache.Set(key, texture)
	}
	return texture, surface.W, surface.H
}
