package folio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

func newTestNavBar() *NavBar {
	table := router.NewTable("/")
	table.Register("/", 0)
	table.Register("/about", 1)
	table.Register("/projects", 2)
	table.Register("/contact", 3)
	return NewNavBar(table, func(path string) string { return path })
}

func TestNavBarMarksExactlyOneLink(t *testing.T) {
	bar := newTestNavBar()

	bar.SetCurrent("/about")
	assert.Equal(t, "/about", bar.CurrentPath())

	bar.SetCurrent("/projects")
	assert.Equal(t, "/projects", bar.CurrentPath())
}

func TestNavBarRootMapsToDefault(t *testing.T) {
	bar := newTestNavBar()

	bar.SetCurrent("")
	assert.Equal(t, "/", bar.CurrentPath())

	bar.SetCurrent("/")
	assert.Equal(t, "/", bar.CurrentPath())
}

func TestNavBarSetCurrentIsIdempotent(t *testing.T) {
	bar := newTestNavBar()

	bar.SetCurrent("/contact")
	first := bar.CurrentPath()
	bar.SetCurrent("/contact")
	bar.SetCurrent("/contact")

	assert.Equal(t, first, bar.CurrentPath())
}

func TestNavBarUnknownPathClearsCurrent(t *testing.T) {
	bar := newTestNavBar()

	bar.SetCurrent("/about")
	bar.SetCurrent("/missing")

	assert.Equal(t, "", bar.CurrentPath())
}

func TestNavBarFocusWraps(t *testing.T) {
	bar := newTestNavBar()
	require.Equal(t, "/", bar.FocusedPath())

	bar.FocusNext()
	assert.Equal(t, "/about", bar.FocusedPath())

	bar.FocusPrev()
	bar.FocusPrev()
	assert.Equal(t, "/contact", bar.FocusedPath(), "focus wraps left past the first link")

	for i := 0; i < 4; i++ {
		bar.FocusNext()
	}
	assert.Equal(t, "/contact", bar.FocusedPath(), "focus wraps right around the bar")
}

func TestNavBarSnapFocus(t *testing.T) {
	bar := newTestNavBar()

	bar.SetCurrent("/projects")
	bar.SnapFocus()
	assert.Equal(t, "/projects", bar.FocusedPath())

	// Without a current link, focus stays put.
	bar.SetCurrent("/missing")
	bar.SnapFocus()
	assert.Equal(t, "/projects", bar.FocusedPath())
}

func TestNavLabelIDs(t *testing.T) {
	assert.Equal(t, "nav.home", navLabelID("/"))
	assert.Equal(t, "nav.telegram", navLabelID("/telegram"))
	assert.Equal(t, "/other", navLabelID("/other"))
}
