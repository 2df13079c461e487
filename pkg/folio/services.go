package folio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

// servicesPage lists what the owner offers, one full-width card per
// service with its icon, revealed top to bottom.
type servicesPage struct {
	basePage
	content *Content

	triggeredAt time.Time
	reveal      staggerAnim
}

func newServicesPage(id router.PageID, content *Content) *servicesPage {
	return &servicesPage{
		basePage: newBasePage(id),
		content:  content,
	}
}

func (p *servicesPage) SetContent(content *Content) {
	p.content = content
}

func (p *servicesPage) Trigger(now time.Time) {
	p.triggeredAt = now
	p.reveal = newRevealAnim(now)
}

func (p *servicesPage) Render(window *internal.Window, area sdl.Rect, now time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	insets := pageInsets(scale)
	x := area.X + insets.Left
	maxWidth := area.W - insets.Horizontal()
	y := area.Y + insets.Top - p.scrollY

	font := internal.Fonts.LargeFont
	if isLineVisible(y, int32(font.Height()), area) {
		renderText(renderer, T("nav.services"), font, theme.TextColor, x, y)
	}
	y += int32(font.Height()) + internal.Scale32(24, scale)

	cardHeight := internal.Scale32(120, scale)
	gap := internal.Scale32(16, scale)
	iconSize := internal.Scale32(40, scale)

	for i, service := range p.content.Services {
		progress := p.reveal.Progress(i, now)
		rect := sdl.Rect{
			X: x,
			Y: y + internal.Scale32(revealOffset(progress), scale),
			W: maxWidth,
			H: cardHeight,
		}
		if isRectVisible(rect, area) {
			alpha := revealAlpha(progress)
			drawCardFrame(renderer, rect, theme.CardColor, theme.AccentColor, alpha)

			pad := internal.Scale32(20, scale)
			drawIcon(renderer, service.Accent, rect.X+pad, rect.Y+(cardHeight-iconSize)/2,
				iconSize, theme.AccentColor, alpha)

			tx := rect.X + pad + iconSize + pad
			ty := rect.Y + pad
			renderTextAlpha(renderer, service.Title, internal.Fonts.MediumFont, theme.TextColor, tx, ty, alpha)
			ty += int32(internal.Fonts.MediumFont.Height()) + internal.Scale32(6, scale)

			bodyWidth := rect.W - (tx - rect.X) - pad
			for j, line := range internal.WrapText(internal.Fonts.SmallFont, service.Description, bodyWidth) {
				if j == 2 {
					break
				}
				renderTextAlpha(renderer, line, internal.Fonts.SmallFont, theme.HintColor, tx, ty, alpha)
				ty += internal.FontLineHeight(internal.Fonts.SmallFont)
			}
		}
		y += cardHeight + gap
	}

	p.setContentHeight(y+p.scrollY-area.Y+insets.Bottom-gap, area.H)
	p.renderScrollbar(renderer, area)
}
