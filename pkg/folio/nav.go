package folio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

// NavLink is one entry in the top navigation bar.
type NavLink struct {
	Path  string
	Label string
}

// NavBar renders the site's navigation and keeps exactly one link marked
// current. Focus is the controller cursor; current is the page actually on
// screen. The two coincide after a navigation but diverge while the user
// browses the bar.
type NavBar struct {
	links       []NavLink
	defaultPath string
	current     int
	focused     int

	barHeight int32
}

// NewNavBar builds the bar from the route table, one link per registered
// route in registration order. Labels come from the localizer.
func NewNavBar(table *router.Table, label func(path string) string) *NavBar {
	bar := &NavBar{
		defaultPath: table.DefaultPath(),
		current:     -1,
		focused:     0,
		barHeight:   64,
	}
	for _, route := range table.Routes() {
		bar.links = append(bar.links, NavLink{Path: route.Path, Label: label(route.Path)})
	}
	return bar
}

// SetCurrent marks exactly the link whose path equals the given path; the
// root path maps to the default route's link. Every other link is cleared.
// Calling it repeatedly with the same path changes nothing.
func (n *NavBar) SetCurrent(path string) {
	if path == "" || path == "/" {
		path = n.defaultPath
	}
	n.current = -1
	for i, link := range n.links {
		if link.Path == path {
			n.current = i
			break
		}
	}
}

// CurrentPath returns the path of the link marked current, or "" when no
// link matches.
func (n *NavBar) CurrentPath() string {
	if n.current < 0 || n.current >= len(n.links) {
		return ""
	}
	return n.links[n.current].Path
}

// FocusNext moves the controller cursor right, wrapping.
func (n *NavBar) FocusNext() {
	if len(n.links) == 0 {
		return
	}
	n.focused = (n.focused + 1) % len(n.links)
}

// FocusPrev moves the controller cursor left, wrapping.
func (n *NavBar) FocusPrev() {
	if len(n.links) == 0 {
		return
	}
	n.focused = (n.focused - 1 + len(n.links)) % len(n.links)
}

// FocusedPath returns the path under the controller cursor.
func (n *NavBar) FocusedPath() string {
	if len(n.links) == 0 {
		return ""
	}
	return n.links[n.focused].Path
}

// SnapFocus moves the cursor onto the current link, so focus follows
// navigations that did not originate from the bar (back button, deep link).
func (n *NavBar) SnapFocus() {
	if n.current >= 0 {
		n.focused = n.current
	}
}

// Height is the bar's reserved vertical space.
func (n *NavBar) Height() int32 {
	return internal.Scale32(n.barHeight, internal.GetScaleFactor())
}

// Render draws the bar across the top of the window: site name on the
// left, links spread on the right, the current link underlined in the
// accent color and the focused link shown with a highlight pill.
func (n *NavBar) Render(window *internal.Window, siteName string, _ time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	font := internal.Fonts.MediumFont
	scale := internal.GetScaleFactor()

	height := n.Height()
	fillRect(renderer, sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: height}, theme.CardColor)

	padding := internal.Scale32(24, scale)
	textY := (height - int32(font.Height())) / 2

	renderText(renderer, siteName, internal.Fonts.LargeFont, theme.AccentColor,
		padding, (height-int32(internal.Fonts.LargeFont.Height()))/2)

	linkGap := internal.Scale32(28, scale)
	x := window.GetWidth() - padding
	// Lay the links out right to left so the bar hugs the right edge.
	for i := len(n.links) - 1; i >= 0; i-- {
		link := n.links[i]
		w := textWidth(font, link.Label)
		x -= w

		color := theme.HintColor
		if i == n.current {
			color = theme.AccentColor
		} else if i == n.focused {
			color = theme.TextColor
		}

		if i == n.focused {
			pill := sdl.Rect{
				X: x - internal.Scale32(10, scale),
				Y: textY - internal.Scale32(6, scale),
				W: w + internal.Scale32(20, scale),
				H: int32(font.Height()) + internal.Scale32(12, scale),
			}
			renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
			fillRect(renderer, pill, sdl.Color{R: theme.HighlightColor.R, G: theme.HighlightColor.G, B: theme.HighlightColor.B, A: 70})
		}

		renderText(renderer, link.Label, font, color, x, textY)

		if i == n.current {
			underline := sdl.Rect{
				X: x,
				Y: textY + int32(font.Height()) + internal.Scale32(4, scale),
				W: w,
				H: internal.Scale32(3, scale),
			}
			fillRect(renderer, underline, theme.AccentColor)
		}

		x -= linkGap
	}
}

// navLabelID maps a route path to its i18n message ID.
func navLabelID(path string) string {
	switch path {
	case "/":
		return "nav.home"
	case "/about":
		return "nav.about"
	case "/projects":
		return "nav.projects"
	case "/services":
		return "nav.services"
	case "/telegram":
		return "nav.telegram"
	case "/contact":
		return "nav.contact"
	default:
		return path
	}
}
