package folio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

type key struct {
	Rect        sdl.Rect
	LowerValue  string
	UpperValue  string
	SymbolValue string
}

type keyboardState int

const (
	lowerCase keyboardState = iota
	upperCase
	symbolsMode
)

// keyboardOverlay is the on-screen keyboard the contact form opens to edit
// a field. It floats over the page: a text echo line above a QWERTY grid,
// driven entirely by the D-Pad.
type keyboardOverlay struct {
	visible bool

	keys      []key
	rows      []internal.RowSpec
	state     keyboardState
	selRow    int
	selCol    int
	maxLength int
	multiline bool

	fieldLabel string
	value      []rune
	cursor     int

	cursorVisible   bool
	lastCursorBlink time.Time
	cursorBlinkRate time.Duration

	dims          internal.KeyboardDimensions
	sizes         internal.KeySizes
	backspaceRect sdl.Rect
	enterRect     sdl.Rect
	shiftRect     sdl.Rect
	symbolRect    sdl.Rect
	spaceRect     sdl.Rect
}

func newKeyboardOverlay() *keyboardOverlay {
	kb := &keyboardOverlay{
		keys:            createKeys(),
		rows:            createRowSpecs(),
		cursorBlinkRate: 500 * time.Millisecond,
	}
	return kb
}

func createKeys() []key {
	digits := []struct{ lower, symbol string }{
		{"1", "!"}, {"2", "@"}, {"3", "#"}, {"4", "$"}, {"5", "%"},
		{"6", "^"}, {"7", "&"}, {"8", "*"}, {"9", "("}, {"0", ")"},
	}
	letters := []struct{ lower, symbol string }{
		{"q", "~"}, {"w", "`"}, {"e", "€"}, {"r", "£"}, {"t", "|"},
		{"y", "\\"}, {"u", "{"}, {"i", "}"}, {"o", "["}, {"p", "]"},
		{"a", "-"}, {"s", "_"}, {"d", "="}, {"f", "+"}, {"g", "/"},
		{"h", ";"}, {"j", ":"}, {"k", "'"}, {"l", "\""},
		{"z", "<"}, {"x", ">"}, {"c", ","}, {"v", "."}, {"b", "?"},
		{"n", "!"}, {"m", "@"},
	}

	keys := make([]key, 0, len(digits)+len(letters))
	for _, d := range digits {
		keys = append(keys, key{LowerValue: d.lower, UpperValue: d.lower, SymbolValue: d.symbol})
	}
	for _, l := range letters {
		upper := string([]rune(l.lower)[0] - 32)
		keys = append(keys, key{LowerValue: l.lower, UpperValue: upper, SymbolValue: l.symbol})
	}
	return keys
}

func createRowSpecs() []internal.RowSpec {
	return []internal.RowSpec{
		{KeyIndices: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, RightKey: "backspace"},
		{KeyIndices: []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}},
		{KeyIndices: []int{20, 21, 22, 23, 24, 25, 26, 27, 28}, RightKey: "enter"},
		{KeyIndices: []int{29, 30, 31, 32, 33, 34, 35}, LeftKey: "shift", RightKey: "symbol"},
		{LeftKey: "space"},
	}
}

// Open shows the overlay editing the given field value. Multiline fields
// take Enter as a newline; single-line fields commit on it and report
// FormActionNextField so the form can advance.
func (kb *keyboardOverlay) Open(window *internal.Window, label, initial string, maxLength int, multiline bool) {
	kb.visible = true
	kb.fieldLabel = label
	kb.value = []rune(initial)
	kb.cursor = len(kb.value)
	kb.maxLength = maxLength
	kb.multiline = multiline
	kb.state = lowerCase
	kb.selRow = 1
	kb.selCol = 0
	kb.cursorVisible = true
	kb.lastCursorBlink = time.Now()
	if window != nil {
		kb.layoutRects(window.GetWidth(), window.GetHeight())
	}
}

func (kb *keyboardOverlay) Visible() bool { return kb.visible }

// Value returns the edited text.
func (kb *keyboardOverlay) Value() string { return string(kb.value) }

func (kb *keyboardOverlay) layoutRects(windowWidth, windowHeight int32) {
	kb.dims = internal.CalculateKeyboardDimensions(windowWidth, windowHeight)
	kb.sizes = internal.CalculateKeySizes(kb.dims, len(kb.rows))

	keyRects := make([]sdl.Rect, len(kb.keys))
	y := kb.dims.KeyboardStartY
	for _, row := range kb.rows {
		x := kb.dims.StartX

		switch row.LeftKey {
		case "shift":
			kb.shiftRect = sdl.Rect{X: x, Y: y, W: kb.sizes.ShiftWidth, H: kb.sizes.KeyHeight}
			x += kb.sizes.ShiftWidth + kb.sizes.KeySpacing
		case "space":
			kb.spaceRect = sdl.Rect{
				X: kb.dims.StartX + (kb.dims.KeyboardWidth-kb.sizes.SpaceWidth)/2,
				Y: y, W: kb.sizes.SpaceWidth, H: kb.sizes.KeyHeight,
			}
		}

		x = internal.LayoutRow(keyRects, row.KeyIndices, x, y,
			kb.sizes.KeyWidth, kb.sizes.KeyHeight, kb.sizes.KeySpacing)

		switch row.RightKey {
		case "backspace":
			kb.backspaceRect = sdl.Rect{X: x, Y: y, W: kb.sizes.BackspaceWidth, H: kb.sizes.KeyHeight}
		case "enter":
			kb.enterRect = sdl.Rect{X: x, Y: y, W: kb.sizes.EnterWidth, H: kb.sizes.KeyHeight}
		case "symbol":
			kb.symbolRect = sdl.Rect{X: x, Y: y, W: kb.sizes.SymbolWidth, H: kb.sizes.KeyHeight}
		}

		y += kb.sizes.KeyHeight + kb.sizes.KeySpacing
	}

	for i := range kb.keys {
		kb.keys[i].Rect = keyRects[i]
	}
}

// rowCells lists the selectable cells of a row, left to right. Ints index
// keys; strings name the special keys.
func (kb *keyboardOverlay) rowCells(row int) []interface{} {
	spec := kb.rows[row]
	cells := make([]interface{}, 0, len(spec.KeyIndices)+2)
	if spec.LeftKey != "" {
		cells = append(cells, spec.LeftKey)
	}
	for _, idx := range spec.KeyIndices {
		cells = append(cells, idx)
	}
	if spec.RightKey != "" {
		cells = append(cells, spec.RightKey)
	}
	return cells
}

func (kb *keyboardOverlay) selectedCell() interface{} {
	cells := kb.rowCells(kb.selRow)
	col := kb.selCol
	if col >= len(cells) {
		col = len(cells) - 1
	}
	return cells[col]
}

// HandleInput consumes one event while the overlay is open. The returned
// action is FormActionConfirmed when the user commits the text,
// FormActionCancelled when the edit is discarded, and FormActionNone while
// editing continues.
func (kb *keyboardOverlay) HandleInput(event internal.Event, _ time.Time) FormAction {
	if !event.Pressed {
		return FormActionNone
	}

	switch event.Button {
	case constants.VirtualButtonLeft:
		kb.moveSelection(0, -1)
	case constants.VirtualButtonRight:
		kb.moveSelection(0, 1)
	case constants.VirtualButtonUp:
		kb.moveSelection(-1, 0)
	case constants.VirtualButtonDown:
		kb.moveSelection(1, 0)
	case constants.VirtualButtonA:
		return kb.pressSelected()
	case constants.VirtualButtonB:
		kb.backspace()
	case constants.VirtualButtonX:
		kb.insert(" ")
	case constants.VirtualButtonL1:
		if kb.cursor > 0 {
			kb.cursor--
		}
	case constants.VirtualButtonR1:
		if kb.cursor < len(kb.value) {
			kb.cursor++
		}
	case constants.VirtualButtonSelect:
		kb.toggleShift()
	case constants.VirtualButtonY:
		kb.visible = false
		return FormActionCancelled
	case constants.VirtualButtonStart:
		kb.visible = false
		return FormActionConfirmed
	}
	return FormActionNone
}

func (kb *keyboardOverlay) moveSelection(dRow, dCol int) {
	if dRow != 0 {
		kb.selRow = (kb.selRow + dRow + len(kb.rows)) % len(kb.rows)
		cells := kb.rowCells(kb.selRow)
		if kb.selCol >= len(cells) {
			kb.selCol = len(cells) - 1
		}
		return
	}
	cells := kb.rowCells(kb.selRow)
	kb.selCol = (kb.selCol + dCol + len(cells)) % len(cells)
}

func (kb *keyboardOverlay) pressSelected() FormAction {
	switch cell := kb.selectedCell().(type) {
	case int:
		kb.insert(kb.keyValue(kb.keys[cell]))
		// A single shifted character drops back to lowercase, like a
		// phone keyboard.
		if kb.state == upperCase {
			kb.state = lowerCase
		}
	case string:
		switch cell {
		case "backspace":
			kb.backspace()
		case "enter":
			if kb.multiline {
				kb.insert("\n")
				break
			}
			kb.visible = false
			return FormActionNextField
		case "space":
			kb.insert(" ")
		case "shift":
			kb.toggleShift()
		case "symbol":
			kb.toggleSymbols()
		}
	}
	return FormActionNone
}

func (kb *keyboardOverlay) keyValue(k key) string {
	switch kb.state {
	case upperCase:
		return k.UpperValue
	case symbolsMode:
		return k.SymbolValue
	default:
		return k.LowerValue
	}
}

func (kb *keyboardOverlay) insert(text string) {
	if kb.maxLength > 0 && len(kb.value)+len([]rune(text)) > kb.maxLength {
		return
	}
	runes := []rune(text)
	kb.value = append(kb.value[:kb.cursor], append(runes, kb.value[kb.cursor:]...)...)
	kb.cursor += len(runes)
}

func (kb *keyboardOverlay) backspace() {
	if kb.cursor == 0 {
		return
	}
	kb.value = append(kb.value[:kb.cursor-1], kb.value[kb.cursor:]...)
	kb.cursor--
}

func (kb *keyboardOverlay) toggleShift() {
	if kb.state == upperCase {
		kb.state = lowerCase
	} else {
		kb.state = upperCase
	}
}

func (kb *keyboardOverlay) toggleSymbols() {
	if kb.state == symbolsMode {
		kb.state = lowerCase
	} else {
		kb.state = symbolsMode
	}
}

// Render draws the dimmed backdrop, the text echo, and the key grid.
func (kb *keyboardOverlay) Render(window *internal.Window) {
	if !kb.visible {
		return
	}

	renderer := window.Renderer
	theme := internal.GetTheme()

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	fillRect(renderer, sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()},
		sdl.Color{R: 0, G: 0, B: 0, A: 170})

	kb.renderTextInput(renderer, theme)
	kb.renderKeys(renderer, theme)
}

func (kb *keyboardOverlay) renderTextInput(renderer *sdl.Renderer, theme internal.Theme) {
	rect := kb.dims.TextInputRect()
	fillRect(renderer, rect, theme.CardColor)
	drawRectOutline(renderer, rect, theme.AccentColor)

	font := internal.Fonts.MediumFont
	pad := int32(12)

	renderText(renderer, kb.fieldLabel, internal.Fonts.SmallFont, theme.HintColor,
		rect.X+pad, rect.Y-int32(internal.Fonts.SmallFont.Height())-6)

	textY := rect.Y + (rect.H-int32(font.Height()))/2

	// Keep the cursor in view by showing the tail when the text overflows.
	shown := string(kb.value)
	for textWidth(font, shown) > rect.W-2*pad && len(shown) > 1 {
		shown = string([]rune(shown)[1:])
	}
	w, _ := renderText(renderer, shown, font, theme.TextColor, rect.X+pad, textY)

	if time.Since(kb.lastCursorBlink) > kb.cursorBlinkRate {
		kb.cursorVisible = !kb.cursorVisible
		kb.lastCursorBlink = time.Now()
	}
	if kb.cursorVisible {
		fillRect(renderer, sdl.Rect{X: rect.X + pad + w + 2, Y: textY, W: 3, H: int32(font.Height())},
			theme.AccentColor)
	}
}

func (kb *keyboardOverlay) renderKeys(renderer *sdl.Renderer, theme internal.Theme) {
	selected := kb.selectedCell()

	for i, k := range kb.keys {
		isSelected := false
		if idx, ok := selected.(int); ok && idx == i {
			isSelected = true
		}
		kb.renderKey(renderer, theme, k.Rect, kb.keyValue(k), isSelected, false)
	}

	shiftActive := kb.state == upperCase
	symbolActive := kb.state == symbolsMode
	kb.renderKey(renderer, theme, kb.backspaceRect, "⌫", selected == "backspace", false)
	kb.renderKey(renderer, theme, kb.enterRect, "⏎", selected == "enter", false)
	kb.renderKey(renderer, theme, kb.shiftRect, "⇧", selected == "shift", shiftActive)
	kb.renderKey(renderer, theme, kb.symbolRect, "#+=", selected == "symbol", symbolActive)
	kb.renderKey(renderer, theme, kb.spaceRect, "␣", selected == "space", false)
}

func (kb *keyboardOverlay) renderKey(renderer *sdl.Renderer, theme internal.Theme, rect sdl.Rect, label string, selected, active bool) {
	if rect.W == 0 {
		return
	}

	background := theme.CardColor
	text := theme.TextColor
	switch {
	case selected:
		background = theme.AccentColor
		text = theme.BackgroundColor
	case active:
		background = theme.HighlightColor
	}

	fillRect(renderer, rect, background)
	drawRectOutline(renderer, rect, theme.HighlightColor)

	font := internal.Fonts.SmallFont
	renderTextAligned(renderer, label, font, text,
		rect.X+rect.W/2, rect.Y+(rect.H-int32(font.Height()))/2, constants.TextAlignCenter)
}
