package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the app. The default palette is the
// built-in dark portfolio look; device profiles (see platform/brick) replace
// it with hardware-appropriate colors and fonts.
type Theme struct {
	AccentColor          sdl.Color // Nav indicator, bar fills, pill backgrounds
	HighlightColor       sdl.Color // Focused item background
	ButtonLabelColor     sdl.Color // Button label text inside footer pills
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on focused/highlighted items
	HintColor            sdl.Color // Secondary text, help hints, card categories
	BackgroundColor      sdl.Color // Screen background color
	CardColor            sdl.Color // Card and form field backgrounds
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the app.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// DefaultTheme returns the built-in dark portfolio palette, used when no
// device profile is selected.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		AccentColor:          HexToColor(0x64FFDA),
		HighlightColor:       HexToColor(0x64FFDA),
		ButtonLabelColor:     HexToColor(0x0A192F),
		TextColor:            HexToColor(0xE6F1FF),
		HighlightedTextColor: HexToColor(0x0A192F),
		HintColor:            HexToColor(0x8892B0),
		BackgroundColor:      HexToColor(0x0A192F),
		CardColor:            HexToColor(0x112240),
		FontPath:             fontPath,
	}
}
