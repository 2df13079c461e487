package folio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

// Route page IDs, one per registered path.
const (
	PageHome router.PageID = iota
	PageAbout
	PageProjects
	PageServices
	PageTelegram
	PageContact
)

// contentAware pages accept reloaded content in development mode.
type contentAware interface {
	SetContent(*Content)
}

// overlayRenderer pages draw overlays above the nav bar and footer.
type overlayRenderer interface {
	RenderOverlays(window *internal.Window)
}

// App owns the whole shell: the route table, the page registry, the
// transition engine, the navigation bar, and the frame loop that drives
// them.
type App struct {
	config      *Config
	content     *Content
	contentPath string

	table    *router.Table
	history  *router.History
	registry *Registry
	engine   *Engine
	navBar   *NavBar

	currentPath string
	watcher     *contentWatcher

	quickMenu   *quickMenuOverlay
	sessionInfo *infoOverlay

	directional   internal.DirectionalInput
	inputDelay    time.Duration
	lastInputTime time.Time

	targetTexture *sdl.Texture
	targetW       int32
	targetH       int32

	lastCompleted uint64
	startedAt     time.Time
	running       bool
}

func newApp(config *Config, content *Content, contentPath string) *App {
	app := &App{
		config:      config,
		content:     content,
		contentPath: contentPath,
		history:     router.NewHistory(),
		registry:    NewRegistry(),
		quickMenu:   newQuickMenu(),
		sessionInfo: &infoOverlay{},
		directional: internal.NewDirectionalInput(),
		inputDelay:  constants.DefaultInputDelay,
		startedAt:   time.Now(),
	}

	app.table = router.NewTable(config.Site.DefaultRoute)
	app.table.
		Register("/", PageHome).
		Register("/about", PageAbout).
		Register("/projects", PageProjects).
		Register("/services", PageServices).
		Register("/telegram", PageTelegram).
		Register("/contact", PageContact)

	navigate := func(path string) { app.Navigate(path, true) }
	app.registry.Add(newHomePage(PageHome, content, navigate))
	app.registry.Add(newAboutPage(PageAbout, content))
	app.registry.Add(newProjectsPage(PageProjects, content))
	app.registry.Add(newServicesPage(PageServices, content))
	app.registry.Add(newTelegramPage(PageTelegram, content))
	app.registry.Add(newContactPage(PageContact, content))

	app.engine = NewEngine(app.registry)
	app.navBar = NewNavBar(app.table, func(path string) string { return T(navLabelID(path)) })

	return app
}

// Navigate resolves the path and performs the page swap. When
// recordHistory is true and the path actually changes, the departed path
// is pushed so Back can return to it. Unresolvable paths fall back to the
// default route; a missing page abandons the navigation with no side
// effects at all.
func (a *App) Navigate(path string, recordHistory bool) {
	now := time.Now()
	id, canonical := a.table.Resolve(path)

	if !a.engine.NavigateTo(id, now) {
		internal.GetLogger().Debug("Navigation abandoned, page missing",
			"path", path, "page", int(id))
		return
	}

	if recordHistory && canonical != a.currentPath && a.currentPath != "" {
		a.history.Push(a.currentPath)
	}

	// Scroll resets on every successful navigation, repeat visits
	// included.
	if page := a.registry.Get(id); page != nil {
		page.ResetScroll()
	}

	a.currentPath = canonical
	a.navBar.SetCurrent(canonical)
	a.navBar.SnapFocus()
	Stats().Navigations.Inc()
	Stats().CountVisit(canonical)

	internal.GetLogger().Info("Navigated", "path", canonical, "record_history", recordHistory)
}

// Back returns to the most recently departed path, outside of history
// recording. With nothing to go back to it does nothing.
func (a *App) Back() {
	path, ok := a.history.Pop()
	if !ok {
		return
	}
	a.Navigate(path, false)
}

// CurrentPath returns the canonical path currently displayed.
func (a *App) CurrentPath() string {
	return a.currentPath
}

// Run shows the default route and drives the frame loop until quit.
func (a *App) Run() {
	window := internal.GetWindow()
	a.running = true

	a.Navigate(a.config.Site.DefaultRoute, false)

	for a.running {
		now := time.Now()
		a.handleEvents(now)
		a.update(now)
		a.render(window, now)
	}

	a.shutdown()
}

func (a *App) handleEvents(now time.Time) {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			a.running = false
			return

		case *sdl.ControllerDeviceEvent, *sdl.JoyDeviceAddedEvent, *sdl.JoyDeviceRemovedEvent:
			processor.HandleDeviceEvent(event)

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent,
			*sdl.JoyButtonEvent, *sdl.JoyAxisEvent, *sdl.JoyHatEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil {
				continue
			}

			a.directional.SetHeld(inputEvent.Button, inputEvent.Pressed)

			if inputEvent.Pressed {
				if time.Since(a.lastInputTime) < a.inputDelay {
					continue
				}
				a.lastInputTime = time.Now()
			}

			a.routeEvent(*inputEvent, now)
		}
	}
}

// routeEvent sends the event through the shell overlays, then the active
// page, then the shell bindings. The first consumer wins.
func (a *App) routeEvent(event internal.Event, now time.Time) {
	if a.sessionInfo.Visible() {
		a.sessionInfo.HandleInput(event)
		return
	}
	if a.quickMenu.Visible() {
		a.handleQuickMenu(event)
		return
	}

	if page := a.registry.Get(a.engine.Current()); page != nil {
		if page.HandleInput(event, now) {
			return
		}
	}
	if !event.Pressed {
		return
	}

	switch event.Button {
	case constants.VirtualButtonLeft:
		a.navBar.FocusPrev()
	case constants.VirtualButtonRight:
		a.navBar.FocusNext()
	case constants.VirtualButtonA:
		a.Navigate(a.navBar.FocusedPath(), true)
	case constants.VirtualButtonB:
		a.Back()
	case constants.VirtualButtonL1:
		a.cyclePage(-1)
	case constants.VirtualButtonR1:
		a.cyclePage(1)
	case constants.VirtualButtonSelect:
		a.quickMenu.Open(a.config.Site.Locale)
	case constants.VirtualButtonMenu:
		a.running = false
	}
}

func (a *App) handleQuickMenu(event internal.Event) {
	action, value := a.quickMenu.HandleInput(event)
	switch action {
	case quickMenuActionInfo:
		a.sessionInfo.Show(T("info.title"), a.sessionRows())
	case quickMenuActionReload:
		a.reloadContent()
	case quickMenuActionSetLocale:
		a.setLocale(value)
	case quickMenuActionQuit:
		a.running = false
	}
}

// setLocale switches the UI language at runtime. Nav labels are rebuilt
// because they are rendered from cached strings.
func (a *App) setLocale(locale string) {
	if locale == "" || locale == a.config.Site.Locale {
		return
	}
	a.config.Site.Locale = locale
	initLocales(locale)

	a.navBar = NewNavBar(a.table, func(path string) string { return T(navLabelID(path)) })
	a.navBar.SetCurrent(a.currentPath)
	a.navBar.SnapFocus()
	internal.GetLogger().Info("Locale switched", "locale", locale)
}

func (a *App) sessionRows() []infoRow {
	stats := Stats()
	contentPath := a.contentPath
	if contentPath == "" {
		contentPath = T("info.builtin_content")
	}
	mostVisited := "-"
	if path, count := stats.MostVisited(); count > 0 {
		mostVisited = path + " (" + formatCount(count) + ")"
	}
	return []infoRow{
		{Label: T("info.uptime"), Value: time.Since(a.startedAt).Round(time.Second).String()},
		{Label: T("info.navigations"), Value: formatCount(stats.Navigations.Load())},
		{Label: T("info.most_visited"), Value: mostVisited},
		{Label: T("info.transitions"), Value: formatCount(stats.Transitions.Load())},
		{Label: T("info.submits"), Value: formatCount(stats.FormSubmits.Load())},
		{Label: T("info.reloads"), Value: formatCount(stats.ContentLoads.Load())},
		{Label: T("info.locale"), Value: a.config.Site.Locale},
		{Label: T("info.content"), Value: contentPath},
	}
}

// cyclePage jumps to the previous or next route in registration order,
// wrapping at the ends.
func (a *App) cyclePage(delta int) {
	routes := a.table.Routes()
	if len(routes) == 0 {
		return
	}
	index := 0
	for i, route := range routes {
		if route.Path == a.currentPath {
			index = i
			break
		}
	}
	index = (index + delta + len(routes)) % len(routes)
	a.Navigate(routes[index].Path, true)
}

func (a *App) update(now time.Time) {
	a.engine.Update(now)

	if completed := a.engine.Completed(); completed != a.lastCompleted {
		Stats().Transitions.Add(int64(completed - a.lastCompleted))
		a.lastCompleted = completed
	}

	if page := a.registry.Get(a.engine.Current()); page != nil {
		page.Update(now)
	}

	// Held directions repeat into the active page, for smooth scrolling.
	switch a.directional.Update() {
	case internal.DirectionUp:
		a.routeEvent(internal.Event{Button: constants.VirtualButtonUp, Pressed: true}, now)
	case internal.DirectionDown:
		a.routeEvent(internal.Event{Button: constants.VirtualButtonDown, Pressed: true}, now)
	}

	if a.watcher != nil && a.watcher.TakeDirty() {
		a.reloadContent()
	}
}

func (a *App) reloadContent() {
	content, err := LoadContent(a.contentPath)
	if err != nil {
		internal.GetLogger().Warn("Content reload failed, keeping previous content", "error", err)
		return
	}

	a.content = content
	for _, route := range a.table.Routes() {
		if page, ok := a.registry.Get(route.PageID).(contentAware); ok {
			page.SetContent(content)
		}
	}
	Stats().ContentLoads.Inc()
	internal.GetLogger().Info("Content reloaded", "path", a.contentPath)
}

func (a *App) render(window *internal.Window, now time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G,
		theme.BackgroundColor.B, 255)
	renderer.Clear()
	window.RenderBackground()

	navHeight := a.navBar.Height()
	area := sdl.Rect{
		X: 0,
		Y: navHeight,
		W: window.GetWidth(),
		H: window.GetHeight() - navHeight - footerHeight(),
	}

	a.renderActivePage(window, area, now)
	a.navBar.Render(window, a.content.Profile.Name, now)

	var hints []FooterHelpItem
	page := a.registry.Get(a.engine.Current())
	if page != nil {
		hints = page.FooterHints()
	}
	renderFooter(window, hints)

	if overlay, ok := page.(overlayRenderer); ok {
		overlay.RenderOverlays(window)
	}

	a.quickMenu.Render(window)
	a.sessionInfo.Render(window)

	window.Present()
}

// renderActivePage draws the current page into an offscreen target, then
// composites it with the transition's fade and slide. Rendering to a
// texture is what lets a whole page fade as one unit.
func (a *App) renderActivePage(window *internal.Window, area sdl.Rect, now time.Time) {
	page := a.registry.Get(a.engine.Current())
	if page == nil {
		return
	}

	renderer := window.Renderer
	if !a.ensureTarget(renderer, area.W, area.H) {
		// No render-to-texture support; draw the page directly without
		// transition compositing.
		renderer.SetClipRect(&area)
		page.Render(window, area, now)
		renderer.SetClipRect(nil)
		return
	}

	previous := renderer.GetRenderTarget()
	renderer.SetRenderTarget(a.targetTexture)
	renderer.SetDrawColor(0, 0, 0, 0)
	renderer.Clear()
	page.Render(window, sdl.Rect{X: 0, Y: 0, W: area.W, H: area.H}, now)
	renderer.SetRenderTarget(previous)

	progress := a.engine.PhaseProgress(now)
	alpha := uint8(255)
	offset := int32(0)
	switch a.engine.State() {
	case TransitionExiting:
		alpha = uint8(255 * (1 - progress))
		offset = -int32(progress * 20)
	case TransitionEntering:
		alpha = uint8(255 * easeOutCubic(progress))
		offset = int32((1 - easeOutCubic(progress)) * 30)
	}

	a.targetTexture.SetAlphaMod(alpha)
	renderer.Copy(a.targetTexture, nil, &sdl.Rect{X: area.X, Y: area.Y + offset, W: area.W, H: area.H})
}

func (a *App) ensureTarget(renderer *sdl.Renderer, w, h int32) bool {
	if a.targetTexture != nil && a.targetW == w && a.targetH == h {
		return true
	}
	if a.targetTexture != nil {
		a.targetTexture.Destroy()
		a.targetTexture = nil
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_TARGET, w, h)
	if err != nil {
		internal.GetInternalLogger().Warn("Could not create page target texture", "error", err)
		return false
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	a.targetTexture = texture
	a.targetW, a.targetH = w, h
	return true
}

// EnableContentWatch starts reloading the content file on change. Used in
// development mode.
func (a *App) EnableContentWatch() {
	if a.contentPath == "" || a.watcher != nil {
		return
	}
	watcher, err := startContentWatcher(a.contentPath)
	if err != nil {
		internal.GetLogger().Warn("Content watching unavailable", "error", err)
		return
	}
	a.watcher = watcher
}

func (a *App) shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	if a.targetTexture != nil {
		a.targetTexture.Destroy()
		a.targetTexture = nil
	}

	internal.GetLogger().Info("Session finished", Stats().Snapshot()...)
}
