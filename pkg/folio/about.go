package folio

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

// aboutPage shows the bio, a column of quick facts, and the skill bars.
// The bars fill with a stagger when the page activates.
type aboutPage struct {
	basePage
	content *Content

	triggeredAt time.Time
	skills      staggerAnim
}

func newAboutPage(id router.PageID, content *Content) *aboutPage {
	return &aboutPage{
		basePage: newBasePage(id),
		content:  content,
	}
}

func (p *aboutPage) SetContent(content *Content) {
	p.content = content
}

func (p *aboutPage) Trigger(now time.Time) {
	p.triggeredAt = now
	p.skills = newSkillAnim(now)
}

func (p *aboutPage) Render(window *internal.Window, area sdl.Rect, now time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	insets := pageInsets(scale)
	x := area.X + insets.Left
	maxWidth := area.W - insets.Horizontal()
	y := area.Y + insets.Top - p.scrollY

	y = p.renderHeader(renderer, T("nav.about"), x, y, area)

	if p.content.About.Bio != "" {
		if isLineVisible(y, internal.MultilineTextHeight(internal.Fonts.MediumFont, p.content.About.Bio, maxWidth), area) {
			internal.RenderMultilineTextWithCache(renderer, p.content.About.Bio,
				internal.Fonts.MediumFont, maxWidth, x, y, theme.TextColor, constants.TextAlignLeft, pageTextCache)
		}
		y += internal.MultilineTextHeight(internal.Fonts.MediumFont, p.content.About.Bio, maxWidth)
		y += internal.Scale32(28, scale)
	}

	y = p.renderFacts(renderer, x, y, area)
	y = p.renderSkills(renderer, x, y, maxWidth, area, now)

	p.setContentHeight(y+p.scrollY-area.Y+insets.Bottom, area.H)
	p.renderScrollbar(renderer, area)
}

func (p *aboutPage) renderHeader(renderer *sdl.Renderer, title string, x, y int32, area sdl.Rect) int32 {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()
	font := internal.Fonts.LargeFont

	if isLineVisible(y, int32(font.Height()), area) {
		renderText(renderer, title, font, theme.TextColor, x, y)
		underline := sdl.Rect{
			X: x,
			Y: y + int32(font.Height()) + internal.Scale32(6, scale),
			W: internal.Scale32(56, scale),
			H: internal.Scale32(4, scale),
		}
		fillRect(renderer, underline, theme.AccentColor)
	}
	return y + int32(font.Height()) + internal.Scale32(28, scale)
}

// renderFacts draws the label/value rows in two columns, labels dimmed.
func (p *aboutPage) renderFacts(renderer *sdl.Renderer, x, y int32, area sdl.Rect) int32 {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()
	font := internal.Fonts.SmallFont

	labelWidth := int32(0)
	for _, fact := range p.content.About.Facts {
		if w := textWidth(font, fact.Label); w > labelWidth {
			labelWidth = w
		}
	}

	rowHeight := int32(font.Height()) + internal.Scale32(10, scale)
	for _, fact := range p.content.About.Facts {
		if isLineVisible(y, rowHeight, area) {
			renderText(renderer, fact.Label, font, theme.HintColor, x, y)
			renderText(renderer, fact.Value, font, theme.TextColor,
				x+labelWidth+internal.Scale32(24, scale), y)
		}
		y += rowHeight
	}

	if len(p.content.About.Facts) > 0 {
		y += internal.Scale32(24, scale)
	}
	return y
}

// renderSkills draws one bar per skill. Each bar's fill animates from zero
// to its percentage, with later bars starting later.
func (p *aboutPage) renderSkills(renderer *sdl.Renderer, x, y, maxWidth int32, area sdl.Rect, now time.Time) int32 {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()
	font := internal.Fonts.SmallFont

	barHeight := internal.Scale32(10, scale)
	rowHeight := int32(font.Height()) + barHeight + internal.Scale32(22, scale)
	track := theme.HighlightColor

	for i, skill := range p.content.About.Skills {
		if !isLineVisible(y, rowHeight, area) {
			y += rowHeight
			continue
		}

		progress := p.skills.Progress(i, now)
		shown := int(float64(skill.Percent) * progress)

		renderText(renderer, skill.Name, font, theme.TextColor, x, y)
		renderTextAligned(renderer, fmt.Sprintf("%d%%", shown), font, theme.HintColor,
			x+maxWidth, y, constants.TextAlignRight)

		bar := sdl.Rect{
			X: x,
			Y: y + int32(font.Height()) + internal.Scale32(6, scale),
			W: maxWidth,
			H: barHeight,
		}
		drawBar(renderer, bar, track, theme.AccentColor, progress*float64(skill.Percent)/100)

		y += rowHeight
	}
	return y
}
