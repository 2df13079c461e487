package folio

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the shell settings that are not portfolio content: window
// geometry, locale, appearance, and logging. Everything has a working
// default so the binary runs with no config file at all.
type Config struct {
	Window     WindowConfig     `toml:"window"`
	Site       SiteConfig       `toml:"site"`
	Appearance AppearanceConfig `toml:"appearance"`
	Input      InputConfig      `toml:"input"`
	Logging    LoggingConfig    `toml:"logging"`
}

type WindowConfig struct {
	Width      int32 `toml:"width"`
	Height     int32 `toml:"height"`
	Fullscreen bool  `toml:"fullscreen"`
}

type SiteConfig struct {
	ContentPath  string `toml:"content_path"`
	Locale       string `toml:"locale"`
	DefaultRoute string `toml:"default_route"`
}

type AppearanceConfig struct {
	Accent         string `toml:"accent"`
	FontPath       string `toml:"font_path"`
	BackgroundPath string `toml:"background_path"`
}

type InputConfig struct {
	FlipFaceButtons bool `toml:"flip_face_buttons"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

// DefaultConfig returns the settings a fresh install runs with.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
		},
		Site: SiteConfig{
			ContentPath:  "content.toml",
			Locale:       "en",
			DefaultRoute: "/",
		},
		Appearance: AppearanceConfig{
			Accent: "#64FFDA",
		},
		Logging: LoggingConfig{
			Level: "info",
			Path:  filepath.Join("logs", "folio.log"),
		},
	}
}

var accentPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// AccentHex parses the configured accent into a 0xRRGGBB value. The second
// return is false when no valid accent is configured.
func (a AppearanceConfig) AccentHex() (uint32, bool) {
	if !accentPattern.MatchString(a.Accent) {
		return 0, false
	}
	value, err := strconv.ParseUint(strings.TrimPrefix(a.Accent, "#"), 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(value), true
}

// Validate rejects values the renderer cannot recover from at runtime.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("folio: window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	if c.Appearance.Accent != "" && !accentPattern.MatchString(c.Appearance.Accent) {
		return fmt.Errorf("folio: accent %q is not a hex color", c.Appearance.Accent)
	}
	return nil
}

// LoadConfig reads the shell config. Missing files are created from the
// defaults; fields absent from the file keep their default values. An
// empty path returns the defaults without touching disk.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if writeErr := writeDefaultConfig(path, config); writeErr != nil {
			return nil, NewInfrastructureError("write_default_config", writeErr)
		}
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, NewInfrastructureError("load_config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func writeDefaultConfig(path string, config *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(config)
}
