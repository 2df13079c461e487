package folio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// infoRow is one label/value line of the info panel.
type infoRow struct {
	Label string
	Value string
}

// infoOverlay shows read-only label/value rows. The quick menu opens it
// with session diagnostics; the rows are a snapshot taken at open time.
type infoOverlay struct {
	visible bool
	title   string
	rows    []infoRow
}

func (o *infoOverlay) Show(title string, rows []infoRow) {
	o.visible = true
	o.title = title
	o.rows = rows
}

func (o *infoOverlay) Visible() bool { return o.visible }

// HandleInput dismisses on A/B/Start and swallows everything else.
func (o *infoOverlay) HandleInput(event internal.Event) bool {
	if !event.Pressed {
		return true
	}
	switch event.Button {
	case constants.VirtualButtonA, constants.VirtualButtonB, constants.VirtualButtonStart:
		o.visible = false
	}
	return true
}

// Render dims the page and draws the rows with the label column aligned to
// the widest label.
func (o *infoOverlay) Render(window *internal.Window) {
	if !o.visible {
		return
	}

	renderer := window.Renderer
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	fillRect(renderer, sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()},
		sdl.Color{R: 0, G: 0, B: 0, A: 170})

	labelFont := internal.Fonts.SmallFont
	valueFont := internal.Fonts.SmallFont
	titleFont := internal.Fonts.LargeFont

	pad := internal.UniformPadding(internal.Scale32(24, scale))
	gap := internal.Scale32(16, scale)
	rowHeight := int32(labelFont.Height()) + internal.Scale32(14, scale)
	titleHeight := int32(titleFont.Height()) + pad.Top

	var labelWidth int32
	for _, row := range o.rows {
		labelWidth = internal.Max32(labelWidth, textWidth(labelFont, row.Label))
	}

	panelWidth := internal.Min32(internal.Scale32(520, scale),
		window.GetWidth()-internal.Scale32(80, scale))
	panelHeight := titleHeight + rowHeight*int32(len(o.rows)) + pad.Vertical()

	panel := sdl.Rect{
		X: (window.GetWidth() - panelWidth) / 2,
		Y: (window.GetHeight() - panelHeight) / 2,
		W: panelWidth,
		H: panelHeight,
	}
	fillRect(renderer, panel, theme.CardColor)
	drawRectOutline(renderer, panel, theme.AccentColor)

	renderText(renderer, o.title, titleFont, theme.AccentColor,
		panel.X+pad.Left, panel.Y+pad.Top)

	y := panel.Y + pad.Top + titleHeight
	for _, row := range o.rows {
		renderText(renderer, row.Label, labelFont, theme.HintColor, panel.X+pad.Left, y)
		renderText(renderer, row.Value, valueFont, theme.TextColor,
			panel.X+pad.Left+labelWidth+gap, y)
		y += rowHeight
	}
}
