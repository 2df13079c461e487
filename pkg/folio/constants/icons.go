package constants

// Inline SVG sources for the contact and social link icons. These are
// rasterized at runtime to match the theme accent color, so they are kept as
// plain geometric outlines on a 24x24 grid.
const (
	// IconMail is an envelope outline.
	IconMail = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="currentColor" d="M3 5h18a1 1 0 0 1 1 1v12a1 1 0 0 1-1 1H3a1 1 0 0 1-1-1V6a1 1 0 0 1 1-1zm1 2.4V17h16V7.4l-8 6-8-6zM5.3 7l6.7 5 6.7-5H5.3z"/>
</svg>`

	// IconSend is a paper plane, used for the Telegram links.
	IconSend = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="currentColor" d="M22 3 2 10.6l6.2 2.3L10.5 21l3.2-4.6 5.6 3.2L22 3zM9 12.4l9.4-6.8-7.7 8.2-.3 3.4L9 12.4z"/>
</svg>`

	// IconLink is a chain link.
	IconLink = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="currentColor" d="M9 7H6a5 5 0 0 0 0 10h3v-2H6a3 3 0 0 1 0-6h3V7zm6 0h3a5 5 0 0 1 0 10h-3v-2h3a3 3 0 0 0 0-6h-3V7zm-7 4h8v2H8v-2z"/>
</svg>`

	// IconCode is an angle-bracket pair.
	IconCode = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="currentColor" d="M8.6 16.6 4 12l4.6-4.6L7.2 6 1.2 12l6 6 1.4-1.4zm6.8 0L20 12l-4.6-4.6L16.8 6l6 6-6 6-1.4-1.4zM13.9 4l-4 16h2.1l4-16h-2.1z"/>
</svg>`

	// IconPin is a map pin.
	IconPin = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="currentColor" d="M12 2a7 7 0 0 0-7 7c0 5.2 7 13 7 13s7-7.8 7-13a7 7 0 0 0-7-7zm0 9.5A2.5 2.5 0 1 1 12 6.5a2.5 2.5 0 0 1 0 5z"/>
</svg>`

	// IconPhone is a handset outline.
	IconPhone = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="currentColor" d="M6.6 10.8a15 15 0 0 0 6.6 6.6l2.2-2.2a1 1 0 0 1 1-.24 11 11 0 0 0 3.6.6 1 1 0 0 1 1 1V20a1 1 0 0 1-1 1A17 17 0 0 1 3 4a1 1 0 0 1 1-1h3.5a1 1 0 0 1 1 1 11 11 0 0 0 .6 3.6 1 1 0 0 1-.25 1l-2.25 2.2z"/>
</svg>`
)

// IconSource returns the SVG source registered under the given key, or an
// empty string when the key is unknown. Content files reference icons by
// these keys.
func IconSource(key string) string {
	switch key {
	case "mail":
		return IconMail
	case "send", "telegram":
		return IconSend
	case "link":
		return IconLink
	case "code", "github":
		return IconCode
	case "pin", "location":
		return IconPin
	case "phone":
		return IconPhone
	default:
		return ""
	}
}
