package folio

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
	"github.com/unknitin07/unknaveen/pkg/folio/router"
)

const (
	contactFieldName = iota
	contactFieldEmail
	contactFieldMessage
	contactFieldSend
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// contactPage shows the owner's contact details and a small message form.
// Fields are edited through the on-screen keyboard; a submit produces a
// receipt ID and clears the form.
type contactPage struct {
	basePage
	content *Content

	focused    int
	editing    int
	confirming bool
	values     [3]string

	keyboard *keyboardOverlay
	message  *messageOverlay

	lastSubmit *SubmitResult
}

func newContactPage(id router.PageID, content *Content) *contactPage {
	return &contactPage{
		basePage: newBasePage(id),
		content:  content,
		keyboard: newKeyboardOverlay(),
		message:  newMessageOverlay(),
	}
}

func (p *contactPage) SetContent(content *Content) {
	p.content = content
}

// Activate clears any half-typed form from the previous visit.
func (p *contactPage) Activate() {
	p.basePage.Activate()
	p.focused = contactFieldName
	p.confirming = false
	p.values = [3]string{}
}

func (p *contactPage) fieldLabel(field int) string {
	switch field {
	case contactFieldName:
		return T("contact.name")
	case contactFieldEmail:
		return T("contact.email")
	case contactFieldMessage:
		return T("contact.message")
	default:
		return T("contact.send")
	}
}

func (p *contactPage) fieldMaxLength(field int) int {
	switch field {
	case contactFieldName:
		return 40
	case contactFieldEmail:
		return 60
	default:
		return 500
	}
}

func (p *contactPage) HandleInput(event internal.Event, now time.Time) bool {
	if p.keyboard.Visible() {
		switch p.keyboard.HandleInput(event, now) {
		case FormActionConfirmed:
			p.values[p.editing] = p.keyboard.Value()
		case FormActionNextField:
			p.values[p.editing] = p.keyboard.Value()
			if p.editing < contactFieldMessage {
				p.focused = p.editing + 1
				p.openKeyboard()
			} else {
				p.focused = contactFieldSend
			}
		case FormActionCancelled:
			// Keep the previous value.
		}
		return true
	}
	if p.message.Visible() {
		action := p.message.HandleInput(event, now)
		if p.confirming && (action == FormActionConfirmed || action == FormActionCancelled) {
			p.confirming = false
			confirmed := false
			if action == FormActionConfirmed {
				_, value := p.message.Selected()
				confirmed = value == true
			}
			if err := p.finishSubmit(confirmed); err != nil && IsCancelled(err) {
				internal.GetLogger().Debug("Contact form submission declined")
			}
		}
		return true
	}

	if !event.Pressed {
		return false
	}
	switch event.Button {
	case constants.VirtualButtonUp:
		if p.focused > contactFieldName {
			p.focused--
		}
		return true
	case constants.VirtualButtonDown:
		if p.focused < contactFieldSend {
			p.focused++
		}
		return true
	case constants.VirtualButtonA:
		if p.focused == contactFieldSend {
			p.submit(now)
		} else {
			p.openKeyboard()
		}
		return true
	case constants.VirtualButtonStart:
		p.submit(now)
		return true
	}
	return false
}

// openKeyboard starts editing the focused field. Only the message body is
// multiline.
func (p *contactPage) openKeyboard() {
	p.editing = p.focused
	p.keyboard.Open(internal.GetWindow(), p.fieldLabel(p.focused),
		p.values[p.focused], p.fieldMaxLength(p.focused),
		p.focused == contactFieldMessage)
}

// validate reports the message ID of the first problem, or "" when the
// form can be sent.
func (p *contactPage) validate() string {
	for field := contactFieldName; field <= contactFieldMessage; field++ {
		if strings.TrimSpace(p.values[field]) == "" {
			return "contact.missing_fields"
		}
	}
	if !emailPattern.MatchString(strings.TrimSpace(p.values[contactFieldEmail])) {
		return "contact.invalid_email"
	}
	return ""
}

// submit validates the form and asks for confirmation before anything is
// sent. Validation problems surface as a notice instead.
func (p *contactPage) submit(_ time.Time) {
	if problem := p.validate(); problem != "" {
		p.message.ShowNotice(T("nav.contact"), T(problem))
		return
	}

	p.confirming = true
	p.message.Show(T("contact.confirm_title"),
		TData("contact.confirm_body", map[string]interface{}{"Name": p.content.Profile.Name}),
		[]MessageOption{
			{DisplayName: T("contact.confirm_send"), Value: true},
			{DisplayName: T("contact.confirm_cancel"), Value: false},
		})
}

// finishSubmit resolves a confirmation dialog outcome. Declining keeps the
// typed values and reports ErrFormCancelled; confirming performs the
// simulated send and clears the form.
func (p *contactPage) finishSubmit(confirmed bool) error {
	if !confirmed {
		return ErrFormCancelled
	}

	receipt := strings.ToUpper(uuid.NewString()[:8])
	result := &SubmitResult{
		ReceiptID: receipt,
		Name:      strings.TrimSpace(p.values[contactFieldName]),
		Email:     strings.TrimSpace(p.values[contactFieldEmail]),
		Message:   strings.TrimSpace(p.values[contactFieldMessage]),
	}
	p.lastSubmit = result
	p.values = [3]string{}
	p.focused = contactFieldName

	Stats().FormSubmits.Inc()
	internal.GetLogger().Info("Contact form submitted",
		"receipt", result.ReceiptID, "from", result.Email)

	p.message.ShowNotice(T("contact.sent_title"),
		TData("contact.sent_body", map[string]interface{}{"Receipt": receipt}))
	return nil
}

func (p *contactPage) Render(window *internal.Window, area sdl.Rect, now time.Time) {
	renderer := window.Renderer
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	insets := pageInsets(scale)
	x := area.X + insets.Left
	maxWidth := area.W - insets.Horizontal()
	y := area.Y + insets.Top - p.scrollY

	font := internal.Fonts.LargeFont
	if isLineVisible(y, int32(font.Height()), area) {
		renderText(renderer, T("nav.contact"), font, theme.TextColor, x, y)
	}
	y += int32(font.Height()) + internal.Scale32(20, scale)

	if p.content.Contact.Note != "" {
		internal.RenderMultilineTextWithCache(renderer, p.content.Contact.Note,
			internal.Fonts.SmallFont, maxWidth, x, y, theme.HintColor, constants.TextAlignLeft, pageTextCache)
		y += internal.MultilineTextHeight(internal.Fonts.SmallFont, p.content.Contact.Note, maxWidth)
		y += internal.Scale32(20, scale)
	}

	y = p.renderInfoRows(renderer, x, y, area)
	y = p.renderSocial(renderer, x, y, area)
	y = p.renderForm(renderer, x, y, maxWidth, area)

	p.setContentHeight(y+p.scrollY-area.Y+insets.Bottom, area.H)
	p.renderScrollbar(renderer, area)
}

func (p *contactPage) renderInfoRows(renderer *sdl.Renderer, x, y int32, area sdl.Rect) int32 {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()
	font := internal.Fonts.SmallFont

	iconSize := internal.Scale32(20, scale)
	rowHeight := internal.Max32(iconSize, int32(font.Height())) + internal.Scale32(12, scale)

	rows := []struct{ icon, text string }{
		{"mail", p.content.Contact.Email},
		{"phone", p.content.Contact.Phone},
		{"pin", p.content.Contact.Location},
	}
	for _, row := range rows {
		if row.text == "" {
			continue
		}
		if isLineVisible(y, rowHeight, area) {
			drawIcon(renderer, row.icon, x, y, iconSize, theme.AccentColor, 255)
			renderText(renderer, row.text, font, theme.TextColor,
				x+iconSize+internal.Scale32(12, scale), y)
		}
		y += rowHeight
	}
	return y + internal.Scale32(10, scale)
}

func (p *contactPage) renderSocial(renderer *sdl.Renderer, x, y int32, area sdl.Rect) int32 {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()
	font := internal.Fonts.SmallFont

	if len(p.content.Contact.Social) == 0 {
		return y
	}

	iconSize := internal.Scale32(18, scale)
	rowHeight := internal.Max32(iconSize, int32(font.Height()))
	cx := x
	for _, link := range p.content.Contact.Social {
		if isLineVisible(y, rowHeight, area) {
			drawIcon(renderer, link.Icon, cx, y, iconSize, theme.HintColor, 255)
			renderText(renderer, link.Label, font, theme.HintColor,
				cx+iconSize+internal.Scale32(8, scale), y)
		}
		cx += iconSize + internal.Scale32(8, scale) + textWidth(font, link.Label) + internal.Scale32(24, scale)
	}
	return y + rowHeight + internal.Scale32(28, scale)
}

func (p *contactPage) renderForm(renderer *sdl.Renderer, x, y, maxWidth int32, area sdl.Rect) int32 {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()
	font := internal.Fonts.SmallFont

	fieldHeight := int32(font.Height()) + internal.Scale32(24, scale)
	messageHeight := fieldHeight * 2
	gap := internal.Scale32(14, scale)

	for field := contactFieldName; field <= contactFieldMessage; field++ {
		height := fieldHeight
		if field == contactFieldMessage {
			height = messageHeight
		}
		rect := sdl.Rect{X: x, Y: y, W: maxWidth, H: height}
		if isRectVisible(rect, area) {
			p.renderField(renderer, rect, field)
		}
		y += height + gap
	}

	// Send button.
	label := T("contact.send")
	buttonWidth := textWidth(internal.Fonts.MediumFont, label) + internal.Scale32(48, scale)
	button := sdl.Rect{X: x, Y: y, W: buttonWidth, H: fieldHeight}
	if isRectVisible(button, area) {
		if p.focused == contactFieldSend {
			fillRect(renderer, button, theme.AccentColor)
			renderTextAligned(renderer, label, internal.Fonts.MediumFont, theme.BackgroundColor,
				button.X+button.W/2, button.Y+(button.H-int32(internal.Fonts.MediumFont.Height()))/2,
				constants.TextAlignCenter)
		} else {
			drawRectOutline(renderer, button, theme.AccentColor)
			renderTextAligned(renderer, label, internal.Fonts.MediumFont, theme.AccentColor,
				button.X+button.W/2, button.Y+(button.H-int32(internal.Fonts.MediumFont.Height()))/2,
				constants.TextAlignCenter)
		}
	}
	return y + fieldHeight
}

func (p *contactPage) renderField(renderer *sdl.Renderer, rect sdl.Rect, field int) {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()
	font := internal.Fonts.SmallFont

	fillRect(renderer, rect, theme.CardColor)
	if field == p.focused {
		drawRectOutline(renderer, rect, theme.AccentColor)
	} else {
		drawRectOutline(renderer, rect, theme.HighlightColor)
	}

	pad := internal.Scale32(12, scale)
	value := p.values[field]
	color := theme.TextColor
	if value == "" {
		value = p.fieldLabel(field)
		color = theme.HintColor
	} else if field == contactFieldMessage {
		// Collapse newlines for the single-line echo.
		value = strings.ReplaceAll(value, "\n", " ")
	}

	runes := []rune(value)
	for textWidth(font, string(runes)) > rect.W-2*pad && len(runes) > 1 {
		runes = runes[:len(runes)-1]
	}
	renderText(renderer, string(runes), font, color, rect.X+pad, rect.Y+(rect.H-int32(font.Height()))/2)
}

// RenderOverlays draws the keyboard and notice overlays above the shell.
func (p *contactPage) RenderOverlays(window *internal.Window) {
	p.keyboard.Render(window)
	p.message.Render(window)
}

func (p *contactPage) FooterHints() []FooterHelpItem {
	if p.keyboard.Visible() {
		return []FooterHelpItem{
			{ButtonName: "A", HelpText: T("footer.type")},
			{ButtonName: "Start", HelpText: T("footer.submit")},
		}
	}
	return []FooterHelpItem{
		{ButtonName: "A", HelpText: T("footer.select")},
		{ButtonName: "Start", HelpText: T("footer.submit")},
	}
}
