package folio

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// pageTextCache holds textures for body text that stays stable between
// frames (bios, card descriptions). Destroyed on shutdown.
var pageTextCache = internal.NewTextureCache()

// renderText draws a single line at (x, y) and returns its size. Textures
// are created and destroyed per call; hot paths with stable strings go
// through the texture cache in renderTextCached instead.
func renderText(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color, x, y int32) (int32, int32) {
	if text == "" {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// renderTextAlpha is renderText with an alpha modulation, used while pages
// and cards fade in.
func renderTextAlpha(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color, x, y int32, alpha uint8) (int32, int32) {
	if text == "" || alpha == 0 {
		return 0, 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	texture.SetAlphaMod(alpha)
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// renderTextAligned anchors the line at x according to align: centered on
// x, or ending at x for right alignment.
func renderTextAligned(renderer *sdl.Renderer, text string, font *ttf.Font, color sdl.Color, x, y int32, align constants.TextAlign) (int32, int32) {
	if text == "" {
		return 0, 0
	}

	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}

	switch align {
	case constants.TextAlignCenter:
		x -= int32(w) / 2
	case constants.TextAlignRight:
		x -= int32(w)
	}
	return renderText(renderer, text, font, color, x, y)
}

// textWidth measures a line without drawing it.
func textWidth(font *ttf.Font, text string) int32 {
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// isRectVisible reports whether any part of the rect lies inside the
// viewport area. Pages cull off-screen cards with this while scrolled.
func isRectVisible(rect sdl.Rect, area sdl.Rect) bool {
	return rect.Y+rect.H > area.Y && rect.Y < area.Y+area.H &&
		rect.X+rect.W > area.X && rect.X < area.X+area.W
}

// isLineVisible is the one-dimensional version for text rows.
func isLineVisible(y, height int32, area sdl.Rect) bool {
	return y+height > area.Y && y < area.Y+area.H
}

func fillRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}

func drawRectOutline(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.DrawRect(&rect)
}

// drawCardFrame draws a filled card with a one-pixel border. Alpha applies
// to both so cards fade in as a unit during reveals.
func drawCardFrame(renderer *sdl.Renderer, rect sdl.Rect, background, border sdl.Color, alpha uint8) {
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(background.R, background.G, background.B, alpha)
	renderer.FillRect(&rect)
	borderAlpha := uint8(uint16(alpha) * 90 / 255)
	renderer.SetDrawColor(border.R, border.G, border.B, borderAlpha)
	renderer.DrawRect(&rect)
}

// drawBar draws a track with a fill fraction, used for skill bars.
func drawBar(renderer *sdl.Renderer, rect sdl.Rect, track, fill sdl.Color, progress float64) {
	fillRect(renderer, rect, track)
	if progress <= 0 {
		return
	}
	if progress > 1 {
		progress = 1
	}
	filled := rect
	filled.W = int32(float64(rect.W) * progress)
	fillRect(renderer, filled, fill)
}
