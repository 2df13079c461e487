package folio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

// Page is one screen of the site. The registry keeps every page alive for
// the whole run; the transition engine flips which one is active.
type Page interface {
	ID() router.PageID

	// Activate marks the page visible and clears transient state left over
	// from the previous visit. It does not start animations; that is
	// Trigger's job.
	Activate()

	// Deactivate marks the page hidden.
	Deactivate()

	// Trigger starts the page's entrance animations. Called exactly once
	// per activation, never on repeated navigation to an already-active
	// page. Pages without animations keep this empty.
	Trigger(now time.Time)

	// HandleInput reacts to a virtual button event while the page is
	// active. Returns true when the event was consumed.
	HandleInput(event internal.Event, now time.Time) bool

	// Update advances per-frame page state.
	Update(now time.Time)

	// Render draws the page into the content area between the nav bar and
	// the footer.
	Render(window *internal.Window, area sdl.Rect, now time.Time)

	// ResetScroll jumps the viewport back to the top. The shell calls it
	// on every successful navigation, including repeat navigation to the
	// page already on screen.
	ResetScroll()

	// ContentHeight reports the page's full drawn height so the shell can
	// clamp scrolling. Zero means the page fits the viewport.
	ContentHeight() int32

	// FooterHints lists the button hints the footer shows while the page
	// is active.
	FooterHints() []FooterHelpItem
}

// Registry maps page IDs to pages and doubles as the rendering surface the
// transition engine drives. A nil entry or unknown ID reports absent, which
// makes the engine abandon the navigation.
type Registry struct {
	pages map[router.PageID]Page
}

func NewRegistry() *Registry {
	return &Registry{pages: make(map[router.PageID]Page)}
}

// Add registers a page under its own ID, replacing any previous page with
// that ID.
func (r *Registry) Add(page Page) {
	r.pages[page.ID()] = page
}

// Get returns the page for id, or nil.
func (r *Registry) Get(id router.PageID) Page {
	return r.pages[id]
}

// Has reports whether a page exists for id.
func (r *Registry) Has(id router.PageID) bool {
	return r.pages[id] != nil
}

// Activate marks the page visible.
func (r *Registry) Activate(id router.PageID) {
	if page := r.pages[id]; page != nil {
		page.Activate()
	}
}

// Deactivate marks the page hidden.
func (r *Registry) Deactivate(id router.PageID) {
	if page := r.pages[id]; page != nil {
		page.Deactivate()
	}
}

// Trigger fires the page's entrance animations. Unknown IDs are skipped
// silently; the navigation itself already succeeded.
func (r *Registry) Trigger(id router.PageID, now time.Time) {
	if page := r.pages[id]; page != nil {
		page.Trigger(now)
	}
}

// Len reports how many pages are registered.
func (r *Registry) Len() int {
	return len(r.pages)
}

// basePage carries the state every page shares: identity, the active flag,
// and smooth scrolling. Pages embed it and override what they need.
type basePage struct {
	id     router.PageID
	active bool

	scrollY       int32
	targetScrollY int32
	maxScroll     int32
	contentHeight int32

	scrollSpeed          int32
	scrollAnimationSpeed float32
}

func newBasePage(id router.PageID) basePage {
	return basePage{
		id:                   id,
		scrollSpeed:          85,
		scrollAnimationSpeed: 0.15,
	}
}

func (p *basePage) ID() router.PageID { return p.id }

func (p *basePage) Activate() {
	p.active = true
	p.ResetScroll()
}

func (p *basePage) Deactivate() { p.active = false }

func (p *basePage) Trigger(time.Time) {}

func (p *basePage) ResetScroll() {
	p.scrollY = 0
	p.targetScrollY = 0
}

func (p *basePage) ContentHeight() int32 { return p.contentHeight }

// Update eases the viewport toward the scroll target.
func (p *basePage) Update(time.Time) {
	p.scrollY += int32(float32(p.targetScrollY-p.scrollY) * p.scrollAnimationSpeed)
	if diff := p.targetScrollY - p.scrollY; diff > -1 && diff < 1 {
		p.scrollY = p.targetScrollY
	}
}

// HandleInput covers the scrolling shared by every page.
func (p *basePage) HandleInput(event internal.Event, _ time.Time) bool {
	if !event.Pressed {
		return false
	}
	switch event.Button {
	case constants.VirtualButtonDown:
		p.scrollBy(p.scrollSpeed)
		return true
	case constants.VirtualButtonUp:
		p.scrollBy(-p.scrollSpeed)
		return true
	}
	return false
}

func (p *basePage) scrollBy(delta int32) {
	p.targetScrollY = internal.Clamp32(p.targetScrollY+delta, 0, p.maxScroll)
}

// renderScrollbar draws the scroll position along the right edge of the
// viewport. Pages call it after their content so the bar sits on top.
func (p *basePage) renderScrollbar(renderer *sdl.Renderer, area sdl.Rect) {
	if p.maxScroll <= 0 {
		return
	}

	scale := internal.GetScaleFactor()
	barWidth := int32(6 * scale)
	trackY := area.Y + int32(8*scale)
	trackHeight := area.H - int32(16*scale)
	if trackHeight <= 0 {
		return
	}

	// Handle height proportional to the visible share of the content,
	// clamped so it stays grabbable but never dwarfs the track.
	total := p.maxScroll + area.H
	handleHeight := int32(float64(trackHeight) * float64(area.H) / float64(total))
	handleHeight = internal.Max32(handleHeight, int32(20*scale))
	handleHeight = internal.Min32(handleHeight, trackHeight/3)

	var handleY int32
	switch {
	case p.scrollY >= p.maxScroll:
		handleY = trackHeight - handleHeight
	case p.scrollY <= 0:
		handleY = 0
	default:
		handleY = int32(float64(p.scrollY) * float64(trackHeight-handleHeight) / float64(p.maxScroll))
	}

	theme := internal.GetTheme()
	barX := area.X + area.W - barWidth - int32(6*scale)

	track := theme.CardColor
	internal.DrawSmoothScrollbar(renderer, barX, trackY, barWidth, trackHeight,
		sdl.Color{R: track.R, G: track.G, B: track.B, A: 140})
	internal.DrawSmoothScrollbar(renderer, barX, trackY+handleY, barWidth, handleHeight,
		theme.HintColor)
}

// pageInsets is the interior spacing every page lays its content out with.
// Pages with a taller header (the home hero) add to Top on their own.
func pageInsets(scale float32) internal.Padding {
	return internal.Padding{
		Top:    internal.Scale32(30, scale),
		Right:  internal.Scale32(48, scale),
		Bottom: internal.Scale32(40, scale),
		Left:   internal.Scale32(48, scale),
	}
}

// setContentHeight records the drawn height and the resulting scroll range
// for the given viewport.
func (p *basePage) setContentHeight(height, viewport int32) {
	p.contentHeight = height
	p.maxScroll = internal.Max32(0, height-viewport)
	if p.targetScrollY > p.maxScroll {
		p.targetScrollY = p.maxScroll
	}
}

func (p *basePage) FooterHints() []FooterHelpItem {
	return []FooterHelpItem{
		{ButtonName: "A", HelpText: T("footer.select")},
		{ButtonName: "B", HelpText: T("footer.back")},
	}
}
