package internal

import "github.com/veandco/go-sdl2/sdl"

// DrawSmoothScrollbar fills a vertical bar with rounded ends. SDL has no
// antialiased primitives, so the rounding is approximated by narrowing the
// first and last rows along a quarter-circle.
func DrawSmoothScrollbar(renderer *sdl.Renderer, x, y, width, height int32, color sdl.Color) {
	if width <= 0 || height <= 0 {
		return
	}

	radius := width / 2
	if radius > height/2 {
		radius = height / 2
	}

	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	// Straight middle section
	if height > 2*radius {
		renderer.FillRect(&sdl.Rect{X: x, Y: y + radius, W: width, H: height - 2*radius})
	}

	// Rounded caps, one pixel row at a time
	for dy := int32(0); dy < radius; dy++ {
		inset := radius - isqrt32(radius*radius-(radius-dy-1)*(radius-dy-1))
		rowWidth := width - 2*inset
		if rowWidth <= 0 {
			continue
		}
		renderer.FillRect(&sdl.Rect{X: x + inset, Y: y + dy, W: rowWidth, H: 1})
		renderer.FillRect(&sdl.Rect{X: x + inset, Y: y + height - dy - 1, W: rowWidth, H: 1})
	}
}

func isqrt32(v int32) int32 {
	if v <= 0 {
		return 0
	}
	r := int32(1)
	for r*r <= v {
		r++
	}
	return r - 1
}
