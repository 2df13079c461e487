package folio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

// projectsPage lists the project cards in a two-column grid, filterable by
// category. X cycles the filter; changing it replays the reveal.
type projectsPage struct {
	basePage
	content *Content

	categories  []string
	filterIndex int
	visible     []Card

	triggeredAt time.Time
	reveal      staggerAnim
}

func newProjectsPage(id router.PageID, content *Content) *projectsPage {
	page := &projectsPage{
		basePage: newBasePage(id),
		content:  content,
	}
	page.rebuild()
	return page
}

func (p *projectsPage) SetContent(content *Content) {
	p.content = content
	p.filterIndex = 0
	p.rebuild()
}

// Activate resets the filter so every visit starts unconstrained.
func (p *projectsPage) Activate() {
	p.basePage.Activate()
	p.filterIndex = 0
	p.rebuild()
}

func (p *projectsPage) Trigger(now time.Time) {
	p.triggeredAt = now
	p.reveal = newRevealAnim(now)
}

// Filter returns the active category filter.
func (p *projectsPage) Filter() string {
	if p.filterIndex < 0 || p.filterIndex >= len(p.categories) {
		return FilterAll
	}
	return p.categories[p.filterIndex]
}

func (p *projectsPage) rebuild() {
	p.categories = CardCategories(p.content.Projects)
	if p.filterIndex >= len(p.categories) {
		p.filterIndex = 0
	}
	p.visible = FilterCards(p.content.Projects, p.Filter())
}

// cycleFilter advances to the next category, replays the reveal, and jumps
// back to the top of the list.
func (p *projectsPage) cycleFilter(now time.Time) {
	if len(p.categories) == 0 {
		return
	}
	p.filterIndex = (p.filterIndex + 1) % len(p.categories)
	p.visible = FilterCards(p.content.Projects, p.Filter())
	p.reveal = newRevealAnim(now)
	p.ResetScroll()
}

func (p *projectsPage) HandleInput(event internal.Event, now time.Time) bool {
	if event.Pressed && event.Button == constants.VirtualButtonX {
		p.cycleFilter(now)
		return true
	}
	return p.basePage.HandleInput(event, now)
}

func (p *projectsPage) Render(window *internal.Window, area sdl.Rect, now time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	insets := pageInsets(scale)
	x := area.X + insets.Left
	maxWidth := area.W - insets.Horizontal()
	y := area.Y + insets.Top - p.scrollY

	font := internal.Fonts.LargeFont
	if isLineVisible(y, int32(font.Height()), area) {
		renderText(renderer, T("nav.projects"), font, theme.TextColor, x, y)
	}
	y += int32(font.Height()) + internal.Scale32(18, scale)

	y = p.renderChips(renderer, x, y, area)

	countLine := TData("projects.count", map[string]interface{}{
		"Shown": len(p.visible),
		"Total": len(p.content.Projects),
	})
	if isLineVisible(y, int32(internal.Fonts.SmallFont.Height()), area) {
		renderText(renderer, countLine, internal.Fonts.SmallFont, theme.HintColor, x, y)
	}
	y += int32(internal.Fonts.SmallFont.Height()) + internal.Scale32(20, scale)

	if len(p.visible) == 0 {
		renderText(renderer, T("projects.empty"), internal.Fonts.MediumFont, theme.HintColor, x, y)
		y += int32(internal.Fonts.MediumFont.Height())
		p.setContentHeight(y+p.scrollY-area.Y+insets.Bottom, area.H)
		return
	}

	gap := internal.Scale32(20, scale)
	cardWidth := (maxWidth - gap) / 2
	cardHeight := internal.Scale32(190, scale)

	for i, card := range p.visible {
		col := int32(i % 2)
		row := int32(i / 2)

		progress := p.reveal.Progress(i, now)
		rect := sdl.Rect{
			X: x + col*(cardWidth+gap),
			Y: y + row*(cardHeight+gap) + internal.Scale32(revealOffset(progress), scale),
			W: cardWidth,
			H: cardHeight,
		}
		if !isRectVisible(rect, area) {
			continue
		}
		renderCard(renderer, card, rect, revealAlpha(progress))
	}

	rows := int32((len(p.visible) + 1) / 2)
	y += rows*(cardHeight+gap) - gap
	p.setContentHeight(y+p.scrollY-area.Y+insets.Bottom, area.H)
	p.renderScrollbar(renderer, area)
}

// renderChips draws the category filter row, the active chip filled in the
// accent color. Returns the y below the row.
func (p *projectsPage) renderChips(renderer *sdl.Renderer, x, y int32, area sdl.Rect) int32 {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()
	font := internal.Fonts.SmallFont

	chipPadX := internal.Scale32(14, scale)
	chipPadY := internal.Scale32(6, scale)
	chipGap := internal.Scale32(10, scale)
	chipHeight := int32(font.Height()) + 2*chipPadY

	cx := x
	for i, category := range p.categories {
		label := category
		if category == FilterAll {
			label = T("projects.filter_all")
		}
		w := textWidth(font, label)
		chip := sdl.Rect{X: cx, Y: y, W: w + 2*chipPadX, H: chipHeight}

		if isRectVisible(chip, area) {
			if i == p.filterIndex {
				fillRect(renderer, chip, theme.AccentColor)
				renderText(renderer, label, font, theme.BackgroundColor, cx+chipPadX, y+chipPadY)
			} else {
				drawRectOutline(renderer, chip, theme.HintColor)
				renderText(renderer, label, font, theme.HintColor, cx+chipPadX, y+chipPadY)
			}
		}
		cx += chip.W + chipGap
	}

	return y + chipHeight + internal.Scale32(14, scale)
}

func (p *projectsPage) FooterHints() []FooterHelpItem {
	return []FooterHelpItem{
		{ButtonName: "X", HelpText: T("footer.filter")},
		{ButtonName: "▲ ▼", HelpText: T("footer.scroll")},
	}
}

// renderCard draws one card frame with title, category, wrapped
// description, and the tag badges. Shared by the card-grid pages.
func renderCard(renderer *sdl.Renderer, card Card, rect sdl.Rect, alpha uint8) {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	drawCardFrame(renderer, rect, theme.CardColor, theme.AccentColor, alpha)

	pad := internal.Scale32(16, scale)
	x := rect.X + pad
	y := rect.Y + pad
	innerWidth := rect.W - 2*pad

	renderTextAlpha(renderer, card.Title, internal.Fonts.MediumFont, theme.TextColor, x, y, alpha)
	if card.Category != "" {
		renderTextAlpha(renderer, card.Category, internal.Fonts.SmallFont, theme.AccentColor,
			x+innerWidth-textWidth(internal.Fonts.SmallFont, card.Category), y, alpha)
	}
	y += int32(internal.Fonts.MediumFont.Height()) + internal.Scale32(8, scale)

	font := internal.Fonts.SmallFont
	lines := internal.WrapText(font, card.Description, innerWidth)
	maxLines := 3
	for i, line := range lines {
		if i == maxLines {
			break
		}
		if i == maxLines-1 && len(lines) > maxLines {
			line = line + "…"
		}
		renderTextAlpha(renderer, line, font, theme.HintColor, x, y, alpha)
		y += internal.FontLineHeight(font)
	}

	if len(card.Tags) > 0 {
		y = rect.Y + rect.H - pad - int32(font.Height())
		tx := x
		for _, tag := range card.Tags {
			label := "#" + tag
			renderTextAlpha(renderer, label, font, theme.AccentColor, tx, y, alpha)
			tx += textWidth(font, label) + internal.Scale32(12, scale)
			if tx > rect.X+rect.W-pad {
				break
			}
		}
	}
}
