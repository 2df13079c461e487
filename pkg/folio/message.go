package folio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// MessageOption is one horizontally selectable choice under a message.
type MessageOption struct {
	// DisplayName is the text shown to the user
	DisplayName string
	// Value is the value reported when this option is chosen
	Value interface{}
}

// messageOverlay shows a message with options laid out as
// `<  One | Two  >`, selectable with left/right. It floats over the
// current page and is driven from the frame loop like everything else.
type messageOverlay struct {
	visible bool

	title         string
	message       string
	options       []MessageOption
	selectedIndex int
	disableBack   bool

	inputDelay    time.Duration
	lastInputTime time.Time
}

func newMessageOverlay() *messageOverlay {
	return &messageOverlay{
		inputDelay: constants.DefaultInputDelay,
	}
}

// Show opens the overlay with the given options; the first is selected.
func (m *messageOverlay) Show(title, message string, options []MessageOption) {
	m.visible = true
	m.title = title
	m.message = message
	m.options = options
	m.selectedIndex = 0
	m.lastInputTime = time.Now()
}

// ShowNotice opens the overlay with a single OK choice.
func (m *messageOverlay) ShowNotice(title, message string) {
	m.Show(title, message, []MessageOption{{DisplayName: "OK"}})
}

func (m *messageOverlay) Visible() bool { return m.visible }

// Selected returns the chosen option after a confirm.
func (m *messageOverlay) Selected() (int, interface{}) {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.options) {
		return -1, nil
	}
	return m.selectedIndex, m.options[m.selectedIndex].Value
}

// HandleInput consumes one event while the overlay is open.
func (m *messageOverlay) HandleInput(event internal.Event, _ time.Time) FormAction {
	if !event.Pressed {
		return FormActionNone
	}
	if time.Since(m.lastInputTime) < m.inputDelay {
		return FormActionNone
	}
	m.lastInputTime = time.Now()

	switch event.Button {
	case constants.VirtualButtonLeft:
		m.selectedIndex--
		if m.selectedIndex < 0 {
			m.selectedIndex = len(m.options) - 1
		}
	case constants.VirtualButtonRight:
		m.selectedIndex++
		if m.selectedIndex >= len(m.options) {
			m.selectedIndex = 0
		}
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		m.visible = false
		return FormActionConfirmed
	case constants.VirtualButtonB:
		if !m.disableBack {
			m.visible = false
			return FormActionCancelled
		}
	}
	return FormActionNone
}

// Render dims the page and draws the centered message with its options.
func (m *messageOverlay) Render(window *internal.Window) {
	if !m.visible {
		return
	}

	renderer := window.Renderer
	theme := internal.GetTheme()

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	fillRect(renderer, sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()},
		sdl.Color{R: 0, G: 0, B: 0, A: 170})

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()
	centerX := windowWidth / 2

	messageFont := internal.Fonts.SmallFont
	titleFont := internal.Fonts.MediumFont
	optionFont := internal.Fonts.MediumFont

	maxMessageWidth := int32(float64(windowWidth) * 0.75)
	if maxMessageWidth > 800 {
		maxMessageWidth = 800
	}

	titleHeight := int32(0)
	if m.title != "" {
		titleHeight = int32(titleFont.Height()) + 20
	}
	messageHeight := internal.MultilineTextHeight(messageFont, m.message, maxMessageWidth)
	spacing := int32(30)
	totalHeight := titleHeight + messageHeight + spacing + int32(optionFont.Height())
	startY := (windowHeight - totalHeight) / 2

	if m.title != "" {
		renderTextAligned(renderer, m.title, titleFont, theme.AccentColor,
			centerX, startY, constants.TextAlignCenter)
	}

	internal.RenderMultilineText(
		renderer,
		m.message,
		messageFont,
		maxMessageWidth,
		centerX,
		startY+titleHeight,
		theme.TextColor,
		constants.TextAlignCenter,
	)

	m.renderOptions(renderer, centerX, startY+titleHeight+messageHeight+spacing, optionFont)
}

func (m *messageOverlay) renderOptions(renderer *sdl.Renderer, centerX, y int32, font *ttf.Font) {
	theme := internal.GetTheme()

	arrowColor := theme.HintColor
	selectedColor := theme.TextColor
	unselectedColor := theme.HintColor
	separatorColor := theme.HighlightColor

	leftArrow := "<  "
	rightArrow := "  >"
	separator := "  |  "

	leftArrowWidth := textWidth(font, leftArrow)
	rightArrowWidth := textWidth(font, rightArrow)
	separatorWidth := textWidth(font, separator)

	var optionWidths []int32
	totalOptionsWidth := int32(0)
	for i, opt := range m.options {
		w := textWidth(font, opt.DisplayName)
		optionWidths = append(optionWidths, w)
		totalOptionsWidth += w
		if i < len(m.options)-1 {
			totalOptionsWidth += separatorWidth
		}
	}

	totalWidth := leftArrowWidth + totalOptionsWidth + rightArrowWidth
	x := centerX - totalWidth/2

	if len(m.options) > 1 {
		renderText(renderer, leftArrow, font, arrowColor, x, y)
	}
	x += leftArrowWidth

	for i, opt := range m.options {
		color := unselectedColor
		if i == m.selectedIndex {
			color = selectedColor
		}
		renderText(renderer, opt.DisplayName, font, color, x, y)
		x += optionWidths[i]

		if i < len(m.options)-1 {
			renderText(renderer, separator, font, separatorColor, x, y)
			x += separatorWidth
		}
	}

	if len(m.options) > 1 {
		renderText(renderer, rightArrow, font, arrowColor, x, y)
	}
}
