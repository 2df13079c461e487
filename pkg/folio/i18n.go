package folio

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/unknitin07/unknaveen/pkg/folio/constants"
	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

var (
	localizer *i18n.Localizer

	// localesDir is where deployments drop extra <lang>.toml message files,
	// set from the content file location before initLocales runs. Files
	// there override the embedded messages for matching IDs.
	localesDir string
)

// initLocales builds the message bundle and selects the UI locale. The
// FOLIO_LOCALE environment variable wins over the configured locale, and
// English is always the final fallback.
func initLocales(locale string) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.MustParseMessageFileBytes([]byte(messagesEN), "en.toml")
	bundle.MustParseMessageFileBytes([]byte(messagesDE), "de.toml")
	loadLocaleFiles(bundle)

	if env := os.Getenv(constants.LocaleEnvVar); env != "" {
		locale = env
	}
	if locale == "" {
		locale = "en"
	}

	localizer = i18n.NewLocalizer(bundle, locale, "en")
	internal.GetInternalLogger().Debug("Locales initialized", "locale", locale)
}

func loadLocaleFiles(bundle *i18n.Bundle) {
	if localesDir == "" {
		return
	}
	paths, err := filepath.Glob(filepath.Join(localesDir, "*.toml"))
	if err != nil {
		return
	}
	for _, path := range paths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			internal.GetInternalLogger().Warn("Skipping unreadable locale file",
				"path", path, "error", err)
			continue
		}
		internal.GetInternalLogger().Debug("Loaded locale file", "path", path)
	}
}

// T returns the UI string for the given message ID. Unknown IDs come back
// verbatim so a missing translation shows up on screen instead of crashing.
func T(id string) string {
	if localizer == nil {
		initLocales("")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// TData is T with template data, for strings like "3 of 12 projects".
func TData(id string, data map[string]interface{}) string {
	if localizer == nil {
		initLocales("")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

const messagesEN = `[nav]
home = "Home"
about = "About"
projects = "Projects"
services = "Services"
telegram = "Telegram"
contact = "Contact"

[footer]
navigate = "Navigate"
select = "Select"
back = "Back"
scroll = "Scroll"
filter = "Filter"
submit = "Send"
type = "Type"
quit = "Quit"

[home]
view_work = "View My Work"

[projects]
filter_all = "All"
count = "{{.Shown}} of {{.Total}} projects"
empty = "No projects in this category yet."

[contact]
name = "Your Name"
email = "Email Address"
message = "Message"
send = "Send Message"
confirm_title = "Send message?"
confirm_body = "Send your message to {{.Name}}?"
confirm_send = "Send"
confirm_cancel = "Cancel"
sent_title = "Message Sent"
sent_body = "Thanks for reaching out! Receipt {{.Receipt}}."
invalid_email = "That email address doesn't look right."
missing_fields = "Please fill in every field."

[telegram]
join = "Join Channel"

[menu]
title = "Menu"
resume = "Resume"
info = "Session Info"
reload = "Reload Content"
language = "Language"
quit = "Quit"

[info]
title = "Session"
uptime = "Uptime"
navigations = "Navigations"
most_visited = "Most visited"
transitions = "Page transitions"
submits = "Messages sent"
reloads = "Content loads"
locale = "Locale"
content = "Content file"
builtin_content = "built-in defaults"
`

const messagesDE = `[nav]
home = "Start"
about = "Profil"
projects = "Projekte"
services = "Leistungen"
telegram = "Telegram"
contact = "Kontakt"

[footer]
navigate = "Navigieren"
select = "Auswählen"
back = "Zurück"
scroll = "Scrollen"
filter = "Filtern"
submit = "Senden"
type = "Tippen"
quit = "Beenden"

[home]
view_work = "Meine Arbeit ansehen"

[projects]
filter_all = "Alle"
count = "{{.Shown}} von {{.Total}} Projekten"
empty = "Noch keine Projekte in dieser Kategorie."

[contact]
name = "Dein Name"
email = "E-Mail-Adresse"
message = "Nachricht"
send = "Nachricht senden"
confirm_title = "Nachricht senden?"
confirm_body = "Deine Nachricht an {{.Name}} senden?"
confirm_send = "Senden"
confirm_cancel = "Abbrechen"
sent_title = "Nachricht gesendet"
sent_body = "Danke für deine Nachricht! Beleg {{.Receipt}}."
invalid_email = "Diese E-Mail-Adresse sieht nicht richtig aus."
missing_fields = "Bitte alle Felder ausfüllen."

[telegram]
join = "Kanal beitreten"

[menu]
title = "Menü"
resume = "Fortsetzen"
info = "Sitzungsinfo"
reload = "Inhalte neu laden"
language = "Sprache"
quit = "Beenden"

[info]
title = "Sitzung"
uptime = "Laufzeit"
navigations = "Navigationen"
most_visited = "Meistbesucht"
transitions = "Seitenwechsel"
submits = "Gesendete Nachrichten"
reloads = "Inhalts-Ladevorgänge"
locale = "Sprache"
content = "Inhaltsdatei"
builtin_content = "eingebaute Vorgaben"
`
