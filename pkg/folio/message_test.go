package folio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

func openMessageForTest(options []MessageOption) *messageOverlay {
	m := newMessageOverlay()
	m.Show("Title", "Body", options)
	m.inputDelay = 0
	return m
}

func TestMessageOverlayConfirmReportsSelection(t *testing.T) {
	m := openMessageForTest([]MessageOption{
		{DisplayName: "Send", Value: true},
		{DisplayName: "Cancel", Value: false},
	})

	action := m.HandleInput(pressEvent(constants.VirtualButtonA), time.Now())

	assert.Equal(t, FormActionConfirmed, action)
	assert.False(t, m.Visible())
	index, value := m.Selected()
	assert.Equal(t, 0, index)
	assert.Equal(t, true, value)
}

func TestMessageOverlaySelectionWraps(t *testing.T) {
	m := openMessageForTest([]MessageOption{
		{DisplayName: "One"}, {DisplayName: "Two"}, {DisplayName: "Three"},
	})

	m.HandleInput(pressEvent(constants.VirtualButtonLeft), time.Now())
	index, _ := m.Selected()
	assert.Equal(t, 2, index, "left from the first option wraps to the last")

	m.HandleInput(pressEvent(constants.VirtualButtonRight), time.Now())
	index, _ = m.Selected()
	assert.Equal(t, 0, index)
}

func TestMessageOverlayBackCancels(t *testing.T) {
	m := openMessageForTest([]MessageOption{{DisplayName: "OK"}})

	action := m.HandleInput(pressEvent(constants.VirtualButtonB), time.Now())

	assert.Equal(t, FormActionCancelled, action)
	assert.False(t, m.Visible())
}

func TestMessageOverlayDisableBackSwallowsB(t *testing.T) {
	m := openMessageForTest([]MessageOption{{DisplayName: "OK"}})
	m.disableBack = true

	action := m.HandleInput(pressEvent(constants.VirtualButtonB), time.Now())

	assert.Equal(t, FormActionNone, action)
	assert.True(t, m.Visible())
}

func TestMessageOverlayDebouncesRapidInput(t *testing.T) {
	m := newMessageOverlay()
	m.Show("Title", "Body", []MessageOption{{DisplayName: "OK"}})

	// Show stamps the input clock, so an immediate press is dropped.
	action := m.HandleInput(pressEvent(constants.VirtualButtonA), time.Now())

	assert.Equal(t, FormActionNone, action)
	require.True(t, m.Visible())
}

func TestMessageOverlayIgnoresReleases(t *testing.T) {
	m := openMessageForTest([]MessageOption{{DisplayName: "OK"}})

	action := m.HandleInput(internal.Event{Button: constants.VirtualButtonA, Pressed: false}, time.Now())

	assert.Equal(t, FormActionNone, action)
	assert.True(t, m.Visible())
}
