package folio

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

// telegramPage lists the owner's channels with their join links.
type telegramPage struct {
	basePage
	content *Content

	triggeredAt time.Time
	reveal      staggerAnim
}

func newTelegramPage(id router.PageID, content *Content) *telegramPage {
	return &telegramPage{
		basePage: newBasePage(id),
		content:  content,
	}
}

func (p *telegramPage) SetContent(content *Content) {
	p.content = content
}

func (p *telegramPage) Trigger(now time.Time) {
	p.triggeredAt = now
	p.reveal = newRevealAnim(now)
}

func (p *telegramPage) Render(window *internal.Window, area sdl.Rect, now time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	insets := pageInsets(scale)
	x := area.X + insets.Left
	maxWidth := area.W - insets.Horizontal()
	y := area.Y + insets.Top - p.scrollY

	font := internal.Fonts.LargeFont
	if isLineVisible(y, int32(font.Height()), area) {
		renderText(renderer, T("nav.telegram"), font, theme.TextColor, x, y)
	}
	y += int32(font.Height()) + internal.Scale32(24, scale)

	cardHeight := internal.Scale32(110, scale)
	gap := internal.Scale32(16, scale)
	iconSize := internal.Scale32(32, scale)

	for i, channel := range p.content.Channels {
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
			drawIcon(renderer, "send", rect.X+pad, rect.Y+pad, iconSize, theme.AccentColor, alpha)

			tx := rect.X + pad + iconSize + internal.Scale32(14, scale)
			ty := rect.Y + pad
			renderTextAlpha(renderer, channel.Title, internal.Fonts.MediumFont, theme.TextColor, tx, ty, alpha)
			ty += int32(internal.Fonts.MediumFont.Height()) + internal.Scale32(6, scale)

			bodyWidth := rect.W - (tx - rect.X) - pad
			for j, line := range internal.WrapText(internal.Fonts.SmallFont, channel.Description, bodyWidth) {
				if j == 1 {
					break
				}
				renderTextAlpha(renderer, line, internal.Fonts.SmallFont, theme.HintColor, tx, ty, alpha)
				ty += internal.FontLineHeight(internal.Fonts.SmallFont)
			}

			// Join hint with the channel link, bottom right.
			join := T("telegram.join") + "  " + channel.LinkURL
			renderTextAlpha(renderer, join, internal.Fonts.SmallFont, theme.AccentColor,
				rect.X+rect.W-pad-textWidth(internal.Fonts.SmallFont, join),
				rect.Y+rect.H-pad-int32(internal.Fonts.SmallFont.Height()), alpha)
		}
		y += cardHeight + gap
	}

	p.setContentHeight(y+p.scrollY-area.Y+insets.Bottom-gap, area.H)
	p.renderScrollbar(renderer, area)
}
