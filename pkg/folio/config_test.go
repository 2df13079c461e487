package folio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, "/", config.Site.DefaultRoute)
	assert.Equal(t, "en", config.Site.Locale)
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.toml")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int32(1024), config.Window.Width)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.Site.ContentPath, reloaded.Site.ContentPath)
	assert.Equal(t, config.Appearance.Accent, reloaded.Appearance.Accent)
}

func TestLoadConfigKeepsDefaultsForAbsentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.toml")
	partial := "[site]\nlocale = \"de\"\n"
	require.NoError(t, os.WriteFile(path, []byte(partial), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "de", config.Site.Locale)
	assert.Equal(t, int32(1024), config.Window.Width)
	assert.Equal(t, "/", config.Site.DefaultRoute)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"short accent", func(c *Config) { c.Appearance.Accent = "#FFF" }},
		{"non-hex accent", func(c *Config) { c.Appearance.Accent = "green" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestValidateAcceptsAccentWithoutHash(t *testing.T) {
	config := DefaultConfig()
	config.Appearance.Accent = "aabbcc"
	assert.NoError(t, config.Validate())
}

func TestAccentHex(t *testing.T) {
	tests := []struct {
		accent string
		value  uint32
		ok     bool
	}{
		{"#64FFDA", 0x64FFDA, true},
		{"aabbcc", 0xAABBCC, true},
		{"", 0, false},
		{"#FFF", 0, false},
		{"not-a-color", 0, false},
	}

	for _, tt := range tests {
		appearance := AppearanceConfig{Accent: tt.accent}
		value, ok := appearance.AccentHex()
		assert.Equal(t, tt.ok, ok, "accent %q", tt.accent)
		assert.Equal(t, tt.value, value, "accent %q", tt.accent)
	}
}
