package internal

import (
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
)

var window *Window

// Init brings up the SDL subsystems, input processing, window, and fonts.
// The power button handler is only started outside dev mode and when the
// device profile names an input device.
func Init(title string, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO |
		img.INIT_PNG | img.INIT_JPG | img.INIT_TIF | img.INIT_WEBP |
		sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("Image subsystem init incomplete", "error", err)
	}

	InitInputProcessor()

	window = initWindow(title, showBackground, winOpts.WithDefaults())

	initFonts(DefaultFontSizes)

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		window.initPowerButtonHandling(pbc)
	}
}

func SDLCleanup() {
	window.closeWindow()
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
