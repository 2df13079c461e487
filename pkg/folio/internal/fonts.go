package internal

import (
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the loaded UI fonts at the standard sizes.
type FontSet struct {
	SmallFont  *ttf.Font // Body text, metadata, footer pills
	MediumFont *ttf.Font // Section titles, nav links, card titles
	LargeFont  *ttf.Font // Page titles
	XLargeFont *ttf.Font // Home hero headline
}

// FontSizes selects the point sizes for a FontSet, in reference-resolution
// units (scaled to the actual window at load time).
type FontSizes struct {
	Small  int
	Medium int
	Large  int
	XLarge int
}

// DefaultFontSizes are tuned for the 1024x768 reference layout.
var DefaultFontSizes = FontSizes{
	Small:  18,
	Medium: 24,
	Large:  34,
	XLarge: 46,
}

// Fonts is the active font set. Valid after Init and until SDLCleanup.
var Fonts FontSet

// fallbackFontPaths are tried in order when the theme does not name a usable
// font. The DejaVu entry covers most desktop Linux installs.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

func initFonts(sizes FontSizes) {
	path := resolveFontPath(GetTheme().FontPath)
	if path == "" {
		GetInternalLogger().Error("No usable UI font found", "theme_font", GetTheme().FontPath)
		os.Exit(1)
	}

	scale := GetScaleFactor()
	open := func(size int) *ttf.Font {
		scaled := int(float32(size) * scale)
		if scaled < 8 {
			scaled = 8
		}
		font, err := ttf.OpenFont(path, scaled)
		if err != nil {
			GetInternalLogger().Error("Failed to open font", "path", path, "size", scaled, "error", err)
			os.Exit(1)
		}
		return font
	}

	Fonts = FontSet{
		SmallFont:  open(sizes.Small),
		MediumFont: open(sizes.Medium),
		LargeFont:  open(sizes.Large),
		XLargeFont: open(sizes.XLarge),
	}

	GetInternalLogger().Debug("Fonts loaded", "path", path, "scale", scale)
}

func resolveFontPath(themePath string) string {
	if themePath != "" {
		if _, err := os.Stat(themePath); err == nil {
			return themePath
		}
		GetInternalLogger().Warn("Theme font not found, trying fallbacks", "path", themePath)
	}
	for _, candidate := range fallbackFontPaths {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont, Fonts.XLargeFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
