package folio

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

// homePage is the landing screen: greeting, name, the cycling typed role
// line, and the metric counters.
type homePage struct {
	basePage
	content  *Content
	navigate func(path string)

	triggeredAt time.Time
	counters    []counterAnim
	typing      typingAnim
}

func newHomePage(id router.PageID, content *Content, navigate func(path string)) *homePage {
	return &homePage{
		basePage: newBasePage(id),
		content:  content,
		navigate: navigate,
	}
}

func (p *homePage) SetContent(content *Content) {
	p.content = content
	if !p.triggeredAt.IsZero() {
		p.Trigger(p.triggeredAt)
	}
}

// Trigger restarts the counters and the typing loop for a fresh visit.
func (p *homePage) Trigger(now time.Time) {
	p.triggeredAt = now
	p.counters = p.counters[:0]
	for _, metric := range p.content.Home.Metrics {
		p.counters = append(p.counters, newCounterAnim(metric.Target, now))
	}
	p.typing = newTypingAnim(p.content.Home.TypingPhrases, now)
}

func (p *homePage) Render(window *internal.Window, area sdl.Rect, now time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	insets := pageInsets(scale)
	x := area.X + insets.Left
	y := area.Y + insets.Top + internal.Scale32(30, scale) - p.scrollY

	greeting := p.content.Home.Greeting
	if greeting == "" {
		greeting = "Hi, I'm"
	}
	if isLineVisible(y, int32(internal.Fonts.MediumFont.Height()), area) {
		renderText(renderer, greeting, internal.Fonts.MediumFont, theme.HintColor, x, y)
	}
	y += int32(internal.Fonts.MediumFont.Height()) + internal.Scale32(10, scale)

	if isLineVisible(y, int32(internal.Fonts.XLargeFont.Height()), area) {
		renderText(renderer, p.content.Profile.Name, internal.Fonts.XLargeFont, theme.TextColor, x, y)
	}
	y += int32(internal.Fonts.XLargeFont.Height()) + internal.Scale32(14, scale)

	// The typed role line with its blinking caret.
	typed := p.typing.Text(now)
	if isLineVisible(y, int32(internal.Fonts.LargeFont.Height()), area) {
		w, _ := renderText(renderer, typed, internal.Fonts.LargeFont, theme.AccentColor, x, y)
		if p.typing.CursorVisible(now) {
			caret := sdl.Rect{
				X: x + w + internal.Scale32(4, scale),
				Y: y,
				W: internal.Scale32(4, scale),
				H: int32(internal.Fonts.LargeFont.Height()),
			}
			fillRect(renderer, caret, theme.AccentColor)
		}
	}
	y += int32(internal.Fonts.LargeFont.Height()) + internal.Scale32(24, scale)

	if p.content.Profile.Tagline != "" {
		maxWidth := area.W - insets.Horizontal()
		drawn := internal.RenderMultilineTextWithCache(renderer, p.content.Profile.Tagline,
			internal.Fonts.MediumFont, maxWidth, x, y, theme.HintColor, constants.TextAlignLeft, pageTextCache)
		y += drawn + internal.Scale32(40, scale)
	}

	y += internal.Scale32(20, scale)
	y = p.renderMetrics(window, area, x, y, now)

	p.setContentHeight(y+p.scrollY-area.Y+insets.Bottom, area.H)
	p.renderScrollbar(renderer, area)
}

// renderMetrics draws the counter row and returns the y below it.
func (p *homePage) renderMetrics(window *internal.Window, area sdl.Rect, x, y int32, now time.Time) int32 {
	renderer := window.Renderer
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	metrics := p.content.Home.Metrics
	if len(metrics) == 0 {
		return y
	}

	columnWidth := (area.W - 2*(x-area.X)) / int32(len(metrics))
	numberFont := internal.Fonts.LargeFont
	labelFont := internal.Fonts.SmallFont

	for i, metric := range metrics {
		value := 0
		if i < len(p.counters) {
			value = p.counters[i].Value(now)
		}
		text := fmt.Sprintf("%d%s", value, metric.Suffix)

		cx := x + int32(i)*columnWidth
		if !isLineVisible(y, int32(numberFont.Height())+int32(labelFont.Height()), area) {
			continue
		}
		renderText(renderer, text, numberFont, theme.AccentColor, cx, y)
		renderText(renderer, metric.Label, labelFont, theme.HintColor,
			cx, y+int32(numberFont.Height())+internal.Scale32(6, scale))
	}

	return y + int32(numberFont.Height()) + int32(labelFont.Height()) + internal.Scale32(30, scale)
}

// HandleInput adds the call-to-action: A jumps straight to the projects.
func (p *homePage) HandleInput(event internal.Event, now time.Time) bool {
	if event.Pressed && event.Button == constants.VirtualButtonX && p.navigate != nil {
		p.navigate("/projects")
		return true
	}
	return p.basePage.HandleInput(event, now)
}

func (p *homePage) FooterHints() []FooterHelpItem {
	return []FooterHelpItem{
		{ButtonName: "◀ ▶", HelpText: T("footer.navigate")},
		{ButtonName: "X", HelpText: T("home.view_work")},
	}
}
