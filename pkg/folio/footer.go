package folio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// FooterHelpItem is one button hint in the footer, like "B  Back".
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// footerHeight is the vertical space reserved for the hint bar.
func footerHeight() int32 {
	return internal.Scale32(48, internal.GetScaleFactor())
}

// renderFooter draws the hint bar along the bottom edge: each item as a
// button pill followed by its action text, laid out right to left so the
// most important hint sits at the right edge.
func renderFooter(window *internal.Window, items []FooterHelpItem) {
	if len(items) == 0 {
		return
	}

	renderer := window.Renderer
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	scale := internal.GetScaleFactor()

	height := footerHeight()
	top := window.GetHeight() - height
	fillRect(renderer, sdl.Rect{X: 0, Y: top, W: window.GetWidth(), H: height}, theme.CardColor)

	padding := internal.Scale32(24, scale)
	pillPad := internal.Scale32(8, scale)
	itemGap := internal.Scale32(22, scale)
	textGap := internal.Scale32(8, scale)
	fontHeight := int32(font.Height())
	textY := top + (height-fontHeight)/2

	x := window.GetWidth() - padding
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]

		helpWidth := textWidth(font, item.HelpText)
		x -= helpWidth
		renderText(renderer, item.HelpText, font, theme.HintColor, x, textY)

		buttonWidth := textWidth(font, item.ButtonName)
		pill := sdl.Rect{
			X: x - textGap - buttonWidth - 2*pillPad,
			Y: textY - pillPad/2,
			W: buttonWidth + 2*pillPad,
			H: fontHeight + pillPad,
		}
		fillRect(renderer, pill, theme.HighlightColor)
		renderText(renderer, item.ButtonName, font, theme.ButtonLabelColor, pill.X+pillPad, textY)

		x = pill.X - itemGap
	}
}
