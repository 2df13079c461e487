// Package brick provides the device profile for Brick-class retro handhelds,
// the hardware the portfolio kiosk ships on.
package brick

import (
	"os"
	"strings"

	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// DefaultFontPath is where the stock firmware installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Rounded.ttf"

// InitBrickTheme creates the kiosk theme for the handheld, using the device
// font when fontPath is empty.
func InitBrickTheme(fontPath string) internal.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}

	return internal.Theme{
		AccentColor:          internal.HexToColor(0x64FFDA),
		HighlightColor:       internal.HexToColor(0x64FFDA),
		ButtonLabelColor:     internal.HexToColor(0x0A192F),
		TextColor:            internal.HexToColor(0xE6F1FF),
		HighlightedTextColor: internal.HexToColor(0x0A192F),
		HintColor:            internal.HexToColor(0x8892B0),
		BackgroundColor:      internal.HexToColor(0x0A192F),
		CardColor:            internal.HexToColor(0x112240),
		FontPath:             fontPath,
		BackgroundImagePath:  backgroundPath(),
	}
}

// IsBrickDevice reports whether the process is running on the handheld
// rather than a desktop. The firmware always exports PLATFORM and mounts
// the SD card at the same place.
func IsBrickDevice() bool {
	if os.Getenv("PLATFORM") != "" {
		return true
	}
	_, err := os.Stat("/mnt/SDCARD/System")
	return err == nil
}

// PowerDevicePath returns the evdev device exposing the power button.
// The TG5050 revision moves it to event2; everything else uses event1.
func PowerDevicePath() string {
	platform := strings.ToUpper(os.Getenv("PLATFORM"))
	if strings.Contains(platform, "TG5050") {
		return "/dev/input/event2"
	}
	return "/dev/input/event1"
}

func backgroundPath() string {
	candidates := []string{
		"/mnt/SDCARD/System/skin/folio-bg.png",
		"/mnt/SDCARD/System/skin/background.png",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
