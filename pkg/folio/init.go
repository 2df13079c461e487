// Package folio is a single-binary portfolio site for embedded Linux
// handhelds: a handful of pages (home, about, projects, services, telegram,
// contact) behind a path-based router, navigated with a controller rather
// than a mouse.
//
// The package handles SDL initialization, input processing, theming, content
// loading, and the page transition machinery. Call Init once, run the
// returned App, then Close before exit.
package folio

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/platform/brick"
)

// Options configures folio initialization. Anything left zero falls back to
// the persisted config file, which is created with defaults on first run.
type Options struct {
	WindowTitle    string // Window title in windowed mode; defaults to the profile name
	ConfigPath     string // Shell config file; empty runs on in-memory defaults
	ContentPath    string // Overrides the content file named in the config
	Locale         string // Overrides the UI locale named in the config
	Fullscreen     bool   // Force fullscreen regardless of config
	ShowBackground bool   // Whether to render the theme background image
}

// Init loads configuration and portfolio content, brings up the SDL
// subsystems, theming, and input handling, and returns the assembled app.
// Must be called before any other folio functions.
func Init(options Options) (*App, error) {
	config, err := LoadConfig(options.ConfigPath)
	if err != nil {
		return nil, err
	}

	if options.ContentPath != "" {
		config.Site.ContentPath = options.ContentPath
	}
	if options.Locale != "" {
		config.Site.Locale = options.Locale
	}
	if options.Fullscreen {
		config.Window.Fullscreen = true
	}

	if config.Logging.Path != "" {
		internal.SetLogPath(config.Logging.Path)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
		internal.SetLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
		internal.SetRawLogLevel(config.Logging.Level)
	}

	// Set face button flip preference before input mapping is loaded
	internal.SetFlipFaceButtons(config.Input.FlipFaceButtons)

	pbc := internal.PowerButtonConfig{}
	var theme internal.Theme

	if brick.IsBrickDevice() {
		theme = brick.InitBrickTheme(config.Appearance.FontPath)
		pbc = internal.PowerButtonConfig{
			ButtonCode:      116,
			DevicePath:      brick.PowerDevicePath(),
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   "/mnt/SDCARD/System/bin/suspend.sh",
			ShutdownCommand: "/sbin/poweroff",
		}
	} else {
		theme = internal.DefaultTheme(config.Appearance.FontPath)
	}

	if accent, ok := config.Appearance.AccentHex(); ok {
		theme.AccentColor = internal.HexToColor(accent)
	}
	if config.Appearance.BackgroundPath != "" {
		theme.BackgroundImagePath = config.Appearance.BackgroundPath
	}
	internal.SetTheme(theme)

	if config.Site.ContentPath != "" {
		localesDir = filepath.Join(filepath.Dir(config.Site.ContentPath), "locales")
	}
	initLocales(config.Site.Locale)

	content, err := LoadContent(config.Site.ContentPath)
	if err != nil {
		return nil, err
	}

	// The windowed dev build sizes itself from these variables; honor the
	// config when the environment does not already pin a size.
	if constants.IsDevMode() {
		if os.Getenv(constants.WindowWidthEnvVar) == "" && config.Window.Width > 0 {
			os.Setenv(constants.WindowWidthEnvVar, strconv.Itoa(int(config.Window.Width)))
		}
		if os.Getenv(constants.WindowHeightEnvVar) == "" && config.Window.Height > 0 {
			os.Setenv(constants.WindowHeightEnvVar, strconv.Itoa(int(config.Window.Height)))
		}
	}

	title := options.WindowTitle
	if title == "" {
		title = content.Profile.Name
	}
	if title == "" {
		title = "Folio"
	}

	winOpts := internal.WindowOptions{Fullscreen: config.Window.Fullscreen}
	internal.Init(title, options.ShowBackground, winOpts, pbc)

	app := newApp(config, content, config.Site.ContentPath)

	if constants.IsDevMode() {
		app.EnableContentWatch()
	}

	return app, nil
}

// Close releases all SDL resources and shuts down the framework. Must be
// called before program exit to prevent resource leaks.
func Close() {
	icons.Destroy()
	pageTextCache.Destroy()
	internal.SDLCleanup()
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetRawLogLevel parses and sets the application log level from a string
// (e.g. "debug", "info", "error"). Call after Init to override the
// configured level.
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
