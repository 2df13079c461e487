package internal

import "github.com/veandco/go-sdl2/sdl"

// KeyboardDimensions holds calculated positioning for the on-screen keyboard
// overlay. The overlay covers the lower part of the window with the edited
// field echoed directly above the key grid.
type KeyboardDimensions struct {
	WindowWidth     int32
	WindowHeight    int32
	KeyboardWidth   int32
	KeyboardHeight  int32
	StartX          int32
	TextInputY      int32
	KeyboardStartY  int32
	TextInputHeight int32
}

// CalculateKeyboardDimensions computes the overlay geometry from the window
// size. The key grid uses 90% of the width and 45% of the height, anchored
// to the bottom.
func CalculateKeyboardDimensions(windowWidth, windowHeight int32) KeyboardDimensions {
	keyboardWidth := (windowWidth * 90) / 100
	keyboardHeight := (windowHeight * 45) / 100
	textInputHeight := windowHeight / 10
	startX := (windowWidth - keyboardWidth) / 2
	keyboardStartY := windowHeight - keyboardHeight - 10
	textInputY := keyboardStartY - textInputHeight - 10

	return KeyboardDimensions{
		WindowWidth:     windowWidth,
		WindowHeight:    windowHeight,
		KeyboardWidth:   keyboardWidth,
		KeyboardHeight:  keyboardHeight,
		StartX:          startX,
		TextInputY:      textInputY,
		KeyboardStartY:  keyboardStartY,
		TextInputHeight: textInputHeight,
	}
}

// KeyboardRect returns the key grid area rectangle.
func (d KeyboardDimensions) KeyboardRect() sdl.Rect {
	return sdl.Rect{X: d.StartX, Y: d.KeyboardStartY, W: d.KeyboardWidth, H: d.KeyboardHeight}
}

// TextInputRect returns the edited-field echo rectangle.
func (d KeyboardDimensions) TextInputRect() sdl.Rect {
	return sdl.Rect{X: d.StartX, Y: d.TextInputY, W: d.KeyboardWidth, H: d.TextInputHeight}
}

// KeySizes holds the calculated sizes for different key types.
type KeySizes struct {
	KeyWidth       int32
	KeyHeight      int32
	KeySpacing     int32
	BackspaceWidth int32
	ShiftWidth     int32
	SymbolWidth    int32
	EnterWidth     int32
	SpaceWidth     int32
}

// CalculateKeySizes computes key sizes for the QWERTY grid.
func CalculateKeySizes(dims KeyboardDimensions, numRows int) KeySizes {
	keyWidth := dims.KeyboardWidth / 12
	keyHeight := dims.KeyboardHeight / int32(numRows)
	keySpacing := int32(3)

	return KeySizes{
		KeyWidth:       keyWidth,
		KeyHeight:      keyHeight,
		KeySpacing:     keySpacing,
		BackspaceWidth: keyWidth * 2,
		ShiftWidth:     keyWidth * 2,
		SymbolWidth:    keyWidth * 2,
		EnterWidth:     keyWidth + keyWidth/2,
		SpaceWidth:     keyWidth * 8,
	}
}

// RowSpec defines a single row in the keyboard layout.
type RowSpec struct {
	// KeyIndices are the indices into the Keys array for regular keys in this row
	KeyIndices []int
	// LeftKey is the special key on the left (shift, etc.) - empty string if none
	LeftKey string
	// RightKey is the special key on the right (backspace, enter, symbol) - empty string if none
	RightKey string
}

// MaxRowWidth finds the maximum width among a slice of row widths.
func MaxRowWidth(widths ...int32) int32 {
	max := widths[0]
	for _, w := range widths[1:] {
		if w > max {
			max = w
		}
	}
	return max
}

// CalculateRowWidth computes the width of a row given its components.
func CalculateRowWidth(numKeys int, keyWidth, keySpacing int32, leftWidth, rightWidth int32) int32 {
	width := int32(numKeys)*keyWidth + int32(numKeys-1)*keySpacing
	if leftWidth > 0 {
		width += leftWidth + keySpacing
	}
	if rightWidth > 0 {
		width += rightWidth + keySpacing
	}
	return width
}

// LayoutRow positions keys for a single row.
// Returns the next X position after this row.
func LayoutRow(
	keyRects []sdl.Rect,
	indices []int,
	x, y int32,
	keyWidth, keyHeight, keySpacing int32,
) int32 {
	for _, idx := range indices {
		if idx >= 0 && idx < len(keyRects) {
			keyRects[idx] = sdl.Rect{X: x, Y: y, W: keyWidth, H: keyHeight}
		}
		x += keyWidth + keySpacing
	}
	return x
}
