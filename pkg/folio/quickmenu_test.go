package folio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// openMenuForTest opens the menu with the debounce disabled so consecutive
// synthetic presses register.
func openMenuForTest(locale string) *quickMenuOverlay {
	m := newQuickMenu()
	m.Open(locale)
	m.inputDelay = 0
	return m
}

func menuIndex(m *quickMenuOverlay, id string) int {
	for i, entry := range m.entries {
		if entry.id == id {
			return i
		}
	}
	return -1
}

func TestQuickMenuOpensOnFirstRow(t *testing.T) {
	m := openMenuForTest("de")
	require.True(t, m.Visible())
	assert.Equal(t, 0, m.selected)

	idx := menuIndex(m, "locale")
	require.NotEqual(t, -1, idx)
	locale := m.entries[idx]
	assert.Equal(t, "de", locale.options[locale.optIndex].Value,
		"language row reflects the active locale")
}

func TestQuickMenuSelectionWraps(t *testing.T) {
	m := openMenuForTest("en")

	m.HandleInput(pressEvent(constants.VirtualButtonUp))
	assert.Equal(t, len(m.entries)-1, m.selected)

	m.HandleInput(pressEvent(constants.VirtualButtonDown))
	assert.Equal(t, 0, m.selected)
}

func TestQuickMenuResumeCloses(t *testing.T) {
	m := openMenuForTest("en")

	action, _ := m.HandleInput(pressEvent(constants.VirtualButtonA))
	assert.Equal(t, quickMenuActionResume, action)
	assert.False(t, m.Visible())
}

func TestQuickMenuActivatesRows(t *testing.T) {
	tests := []struct {
		id   string
		want quickMenuAction
	}{
		{"info", quickMenuActionInfo},
		{"reload", quickMenuActionReload},
		{"quit", quickMenuActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			m := openMenuForTest("en")
			idx := menuIndex(m, tt.id)
			require.NotEqual(t, -1, idx)
			m.selected = idx

			action, _ := m.HandleInput(pressEvent(constants.VirtualButtonA))
			assert.Equal(t, tt.want, action)
			assert.False(t, m.Visible())
		})
	}
}

func TestQuickMenuLocaleCycling(t *testing.T) {
	m := openMenuForTest("en")
	m.selected = menuIndex(m, "locale")
	require.NotEqual(t, -1, m.selected)

	action, code := m.HandleInput(pressEvent(constants.VirtualButtonRight))
	assert.Equal(t, quickMenuActionSetLocale, action)
	assert.Equal(t, "de", code)

	action, code = m.HandleInput(pressEvent(constants.VirtualButtonRight))
	assert.Equal(t, quickMenuActionSetLocale, action)
	assert.Equal(t, "en", code, "cycling wraps around")

	assert.True(t, m.Visible(), "cycling keeps the menu open")
}

func TestQuickMenuLeftRightIgnoredOnPlainRows(t *testing.T) {
	m := openMenuForTest("en")

	action, _ := m.HandleInput(pressEvent(constants.VirtualButtonRight))
	assert.Equal(t, quickMenuActionNone, action)
	assert.True(t, m.Visible())
}

func TestQuickMenuBackCloses(t *testing.T) {
	m := openMenuForTest("en")

	action, _ := m.HandleInput(pressEvent(constants.VirtualButtonB))
	assert.Equal(t, quickMenuActionResume, action)
	assert.False(t, m.Visible())
}

func TestQuickMenuDebouncesRapidPresses(t *testing.T) {
	m := newQuickMenu()
	m.Open("en")

	// Open stamps the input clock, so an immediate press is dropped.
	m.HandleInput(pressEvent(constants.VirtualButtonDown))
	assert.Equal(t, 0, m.selected)
}

func TestQuickMenuReleaseIgnored(t *testing.T) {
	m := openMenuForTest("en")

	action, _ := m.HandleInput(internal.Event{Button: constants.VirtualButtonA, Pressed: false})
	assert.Equal(t, quickMenuActionNone, action)
	assert.True(t, m.Visible())
}

func TestInfoOverlayDismiss(t *testing.T) {
	overlay := &infoOverlay{}
	overlay.Show("Session", []infoRow{{Label: "Uptime", Value: "1s"}})
	require.True(t, overlay.Visible())

	assert.True(t, overlay.HandleInput(pressEvent(constants.VirtualButtonUp)),
		"unrelated input is swallowed, not passed through")
	assert.True(t, overlay.Visible())

	overlay.HandleInput(pressEvent(constants.VirtualButtonB))
	assert.False(t, overlay.Visible())
}
