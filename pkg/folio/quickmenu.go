package folio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// quickMenuAction tells the shell what to run after a quick menu input.
type quickMenuAction int

const (
	quickMenuActionNone quickMenuAction = iota
	quickMenuActionResume
	quickMenuActionInfo
	quickMenuActionReload
	quickMenuActionSetLocale
	quickMenuActionQuit
)

// menuEntry is one row of the quick menu. Rows with options show the
// selected option on the right and cycle it with left/right instead of
// activating on A.
type menuEntry struct {
	id       string
	labelID  string
	options  []MessageOption
	optIndex int
}

// quickMenuOverlay is the Select-button menu: shell actions that have no
// nav route (reload, language, quit) in a small vertical list floating over
// the active page. While open it swallows every event.
type quickMenuOverlay struct {
	visible  bool
	entries  []menuEntry
	selected int

	inputDelay    time.Duration
	lastInputTime time.Time
}

func newQuickMenu() *quickMenuOverlay {
	return &quickMenuOverlay{
		entries: []menuEntry{
			{id: "resume", labelID: "menu.resume"},
			{id: "info", labelID: "menu.info"},
			{id: "reload", labelID: "menu.reload"},
			{id: "locale", labelID: "menu.language", options: []MessageOption{
				{DisplayName: "English", Value: "en"},
				{DisplayName: "Deutsch", Value: "de"},
			}},
			{id: "quit", labelID: "menu.quit"},
		},
		inputDelay: constants.DefaultInputDelay,
	}
}

// Open shows the menu with the first row selected and the language row
// synced to the active locale.
func (m *quickMenuOverlay) Open(locale string) {
	m.visible = true
	m.selected = 0
	m.lastInputTime = time.Now()

	for i := range m.entries {
		if m.entries[i].id != "locale" {
			continue
		}
		for j, opt := range m.entries[i].options {
			if opt.Value == locale {
				m.entries[i].optIndex = j
			}
		}
	}
}

func (m *quickMenuOverlay) Visible() bool { return m.visible }

// HandleInput consumes one event while the menu is open. The string carries
// the locale code for quickMenuActionSetLocale.
func (m *quickMenuOverlay) HandleInput(event internal.Event) (quickMenuAction, string) {
	if !event.Pressed {
		return quickMenuActionNone, ""
	}
	if time.Since(m.lastInputTime) < m.inputDelay {
		return quickMenuActionNone, ""
	}
	m.lastInputTime = time.Now()

	switch event.Button {
	case constants.VirtualButtonUp:
		m.moveSelection(-1)
	case constants.VirtualButtonDown:
		m.moveSelection(1)
	case constants.VirtualButtonLeft:
		return m.cycleOption(-1)
	case constants.VirtualButtonRight:
		return m.cycleOption(1)
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		return m.activate()
	case constants.VirtualButtonB, constants.VirtualButtonSelect:
		m.visible = false
		return quickMenuActionResume, ""
	}
	return quickMenuActionNone, ""
}

func (m *quickMenuOverlay) moveSelection(direction int) {
	count := len(m.entries)
	if count == 0 {
		return
	}
	m.selected = (m.selected + direction + count) % count
}

func (m *quickMenuOverlay) cycleOption(direction int) (quickMenuAction, string) {
	entry := &m.entries[m.selected]
	if len(entry.options) == 0 {
		return quickMenuActionNone, ""
	}
	entry.optIndex = (entry.optIndex + direction + len(entry.options)) % len(entry.options)

	if entry.id == "locale" {
		if code, ok := entry.options[entry.optIndex].Value.(string); ok {
			return quickMenuActionSetLocale, code
		}
	}
	return quickMenuActionNone, ""
}

func (m *quickMenuOverlay) activate() (quickMenuAction, string) {
	switch m.entries[m.selected].id {
	case "resume":
		m.visible = false
		return quickMenuActionResume, ""
	case "info":
		m.visible = false
		return quickMenuActionInfo, ""
	case "reload":
		m.visible = false
		return quickMenuActionReload, ""
	case "locale":
		return m.cycleOption(1)
	case "quit":
		m.visible = false
		return quickMenuActionQuit, ""
	}
	return quickMenuActionNone, ""
}

// Render dims the page and draws the centered menu panel.
func (m *quickMenuOverlay) Render(window *internal.Window) {
	if !m.visible {
		return
	}

	renderer := window.Renderer
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	fillRect(renderer, sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()},
		sdl.Color{R: 0, G: 0, B: 0, A: 170})

	font := internal.Fonts.MediumFont
	titleFont := internal.Fonts.LargeFont

	rowHeight := internal.Scale32(56, scale)
	pad := internal.UniformPadding(internal.Scale32(20, scale))
	titleHeight := int32(titleFont.Height()) + pad.Top

	panelWidth := internal.Min32(internal.Scale32(440, scale),
		window.GetWidth()-internal.Scale32(80, scale))
	panelHeight := titleHeight + rowHeight*int32(len(m.entries)) + pad.Vertical()

	panel := sdl.Rect{
		X: (window.GetWidth() - panelWidth) / 2,
		Y: (window.GetHeight() - panelHeight) / 2,
		W: panelWidth,
		H: panelHeight,
	}
	fillRect(renderer, panel, theme.CardColor)
	drawRectOutline(renderer, panel, theme.AccentColor)

	renderText(renderer, T("menu.title"), titleFont, theme.AccentColor,
		panel.X+pad.Left, panel.Y+pad.Top)

	y := panel.Y + pad.Top + titleHeight
	for i, entry := range m.entries {
		rowY := y + int32(i)*rowHeight
		textColor := theme.TextColor

		if i == m.selected {
			textColor = theme.HighlightedTextColor
			fillRect(renderer, sdl.Rect{
				X: panel.X + pad.Left/2,
				Y: rowY,
				W: panel.W - pad.Left,
				H: rowHeight - internal.Scale32(8, scale),
			}, theme.HighlightColor)
		}

		textY := rowY + (rowHeight-internal.Scale32(8, scale)-int32(font.Height()))/2
		renderText(renderer, T(entry.labelID), font, textColor, panel.X+pad.Left, textY)

		if len(entry.options) > 0 {
			value := "‹ " + entry.options[entry.optIndex].DisplayName + " ›"
			renderTextAligned(renderer, value, font, textColor,
				panel.X+panel.W-pad.Right, textY, constants.TextAlignRight)
		}
	}
}
