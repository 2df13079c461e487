package folio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	initLocales("en")
	content, err := LoadContent("")
	require.NoError(t, err)
	return newApp(DefaultConfig(), content, "")
}

func TestAppRegistersEveryRoute(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, 6, app.table.Len())
	assert.Equal(t, 6, app.registry.Len())
	for _, route := range app.table.Routes() {
		assert.True(t, app.registry.Has(route.PageID), route.Path)
	}
}

func TestNavigateResolvesAndRecords(t *testing.T) {
	app := newTestApp(t)

	app.Navigate("/", false)
	require.Equal(t, "/", app.CurrentPath())
	assert.True(t, app.history.IsEmpty())

	app.Navigate("/about", true)
	assert.Equal(t, "/about", app.CurrentPath())
	require.Equal(t, 1, app.history.Len())

	// The departed path is what Back returns to.
	app.Back()
	assert.Equal(t, "/", app.CurrentPath())
	assert.True(t, app.history.IsEmpty())
}

func TestNavigateUnknownPathFallsBackToDefault(t *testing.T) {
	app := newTestApp(t)

	app.Navigate("/missing", false)
	assert.Equal(t, "/", app.CurrentPath())
	assert.Equal(t, PageHome, app.engine.Current())
}

func TestNavigateEmptyPathShowsDefault(t *testing.T) {
	app := newTestApp(t)

	app.Navigate("", false)
	assert.Equal(t, "/", app.CurrentPath())
	assert.Equal(t, "/", app.navBar.CurrentPath())
}

func TestNavigateSamePathDoesNotRecord(t *testing.T) {
	app := newTestApp(t)

	app.Navigate("/projects", false)
	app.Navigate("/projects", true)
	app.Navigate("/projects", true)

	assert.True(t, app.history.IsEmpty(), "repeat navigation must not grow history")
	assert.Equal(t, "/projects", app.CurrentPath())
}

func TestNavigateWithoutRecordingKeepsHistory(t *testing.T) {
	app := newTestApp(t)

	app.Navigate("/", false)
	app.Navigate("/about", true)
	app.Navigate("/services", false)

	require.Equal(t, 1, app.history.Len())
	app.Back()
	assert.Equal(t, "/", app.CurrentPath())
}

func TestBackWithEmptyHistoryIsNoOp(t *testing.T) {
	app := newTestApp(t)
	app.Navigate("/", false)

	app.Back()
	assert.Equal(t, "/", app.CurrentPath())
}

func TestNavigateResetsScrollOnRepeatVisit(t *testing.T) {
	app := newTestApp(t)
	app.Navigate("/about", false)

	page := app.registry.Get(PageAbout).(*aboutPage)
	page.targetScrollY = 400
	page.scrollY = 400
	page.maxScroll = 1000

	app.Navigate("/about", true)
	assert.Equal(t, int32(0), page.targetScrollY)
	assert.Equal(t, int32(0), page.scrollY)
}

func TestNavigateSyncsIndicator(t *testing.T) {
	app := newTestApp(t)

	app.Navigate("/telegram", false)
	assert.Equal(t, "/telegram", app.navBar.CurrentPath())
	assert.Equal(t, "/telegram", app.navBar.FocusedPath(), "focus snaps to the new page")
}

func TestNavigateCountsStats(t *testing.T) {
	app := newTestApp(t)
	Stats().Reset()

	app.Navigate("/", false)
	app.Navigate("/about", true)
	app.Navigate("/about", true)

	assert.Equal(t, int64(3), Stats().Navigations.Load())
}

func TestCyclePageWraps(t *testing.T) {
	app := newTestApp(t)
	app.Navigate("/", false)

	app.cyclePage(-1)
	assert.Equal(t, "/contact", app.CurrentPath())

	app.cyclePage(1)
	assert.Equal(t, "/", app.CurrentPath())
}

func TestReloadContentReachesEveryPage(t *testing.T) {
	app := newTestApp(t)

	fresh, err := LoadContent("")
	require.NoError(t, err)
	fresh.Profile.Name = "Updated"

	app.content = fresh
	for _, route := range app.table.Routes() {
		page, ok := app.registry.Get(route.PageID).(contentAware)
		require.True(t, ok, "page %s must accept content reloads", route.Path)
		page.SetContent(fresh)
	}

	home := app.registry.Get(PageHome).(*homePage)
	assert.Equal(t, "Updated", home.content.Profile.Name)
}

func TestSetLocaleRebuildsNavLabels(t *testing.T) {
	app := newTestApp(t)
	t.Cleanup(func() { initLocales("en") })
	app.Navigate("/projects", false)

	app.setLocale("de")

	assert.Equal(t, "de", app.config.Site.Locale)
	assert.Equal(t, "/projects", app.navBar.CurrentPath(), "current marker survives the rebuild")

	var label string
	for _, link := range app.navBar.links {
		if link.Path == "/projects" {
			label = link.Label
		}
	}
	assert.Equal(t, "Projekte", label)
}

func TestSetLocaleSamePathNoRebuild(t *testing.T) {
	app := newTestApp(t)
	bar := app.navBar

	app.setLocale("en")
	assert.Same(t, bar, app.navBar, "switching to the active locale is a no-op")
}

func TestSessionRowsSnapshot(t *testing.T) {
	app := newTestApp(t)
	Stats().Reset()

	app.Navigate("/", false)
	app.Navigate("/about", true)
	app.Navigate("/about", true)

	rows := app.sessionRows()
	require.Len(t, rows, 8)

	byLabel := make(map[string]string, len(rows))
	for _, row := range rows {
		byLabel[row.Label] = row.Value
	}
	assert.Equal(t, "3", byLabel[T("info.navigations")])
	assert.Equal(t, "/about (2)", byLabel[T("info.most_visited")])
	assert.Equal(t, "en", byLabel[T("info.locale")])
	assert.Equal(t, T("info.builtin_content"), byLabel[T("info.content")])
}

func TestQuickMenuQuitStopsTheLoop(t *testing.T) {
	app := newTestApp(t)
	app.running = true
	app.quickMenu.Open(app.config.Site.Locale)
	app.quickMenu.inputDelay = 0
	app.quickMenu.selected = menuIndex(app.quickMenu, "quit")

	app.routeEvent(pressEvent(constants.VirtualButtonA), time.Now())

	assert.False(t, app.running)
	assert.False(t, app.quickMenu.Visible())
}

func TestQuickMenuOpensSessionInfo(t *testing.T) {
	app := newTestApp(t)
	app.quickMenu.Open(app.config.Site.Locale)
	app.quickMenu.inputDelay = 0
	app.quickMenu.selected = menuIndex(app.quickMenu, "info")

	app.routeEvent(pressEvent(constants.VirtualButtonA), time.Now())

	assert.False(t, app.quickMenu.Visible())
	assert.True(t, app.sessionInfo.Visible())
}
