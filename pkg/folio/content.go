package folio

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/unknitin07/unknaveen/pkg/folio/internal"
)

// Content is the static portfolio data every page draws from. It is loaded
// once at startup (and re-loaded by the dev watcher) and treated as
// immutable by the pages.
type Content struct {
	Profile  Profile        `toml:"profile"`
	Home     HomeContent    `toml:"home"`
	About    AboutContent   `toml:"about"`
	Projects []Card         `toml:"projects"`
	Services []Card         `toml:"services"`
	Channels []Card         `toml:"channels"`
	Contact  ContactContent `toml:"contact"`
}

type Profile struct {
	Name    string `toml:"name"`
	Role    string `toml:"role"`
	Tagline string `toml:"tagline"`
}

type HomeContent struct {
	Greeting      string   `toml:"greeting"`
	TypingPhrases []string `toml:"typing_phrases"`
	Metrics       []Metric `toml:"metrics"`
}

// Metric is a counter on the home page. Counters animate from zero to
// Target when the page activates.
type Metric struct {
	Label  string `toml:"label"`
	Target int    `toml:"target"`
	Suffix string `toml:"suffix"`
}

type AboutContent struct {
	Bio    string  `toml:"bio"`
	Facts  []Fact  `toml:"facts"`
	Skills []Skill `toml:"skills"`
}

type Fact struct {
	Label string `toml:"label"`
	Value string `toml:"value"`
}

// Skill is a named proficiency bar. Percent is clamped to [0, 100] at load.
type Skill struct {
	Name    string `toml:"name"`
	Percent int    `toml:"percent"`
}

type ContactContent struct {
	Email    string       `toml:"email"`
	Phone    string       `toml:"phone"`
	Location string       `toml:"location"`
	Note     string       `toml:"note"`
	Social   []SocialLink `toml:"social"`
}

type SocialLink struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
	Icon  string `toml:"icon"`
}

// LoadContent reads the portfolio content file. A missing file is populated
// with the embedded default content first, so a fresh install boots with a
// complete site. An empty path loads the defaults without touching disk.
func LoadContent(path string) (*Content, error) {
	if path == "" {
		return defaultContent()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if writeErr := writeDefaultContent(path); writeErr != nil {
			internal.GetLogger().Warn("Could not write default content file", "path", path, "error", writeErr)
			return defaultContent()
		}
		internal.GetLogger().Info("Wrote default content file", "path", path)
	}

	var content Content
	if _, err := toml.DecodeFile(path, &content); err != nil {
		return nil, NewInfrastructureError("load_content", err)
	}

	content.normalize()
	return &content, nil
}

func defaultContent() (*Content, error) {
	var content Content
	if _, err := toml.Decode(defaultContentTOML, &content); err != nil {
		return nil, NewInfrastructureError("decode_default_content", err)
	}
	content.normalize()
	return &content, nil
}

func writeDefaultContent(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(defaultContentTOML), 0644)
}

// normalize clamps values the renderer depends on into their valid ranges.
func (c *Content) normalize() {
	for i := range c.About.Skills {
		if c.About.Skills[i].Percent < 0 {
			c.About.Skills[i].Percent = 0
		}
		if c.About.Skills[i].Percent > 100 {
			c.About.Skills[i].Percent = 100
		}
	}
	for i := range c.Home.Metrics {
		if c.Home.Metrics[i].Target < 0 {
			c.Home.Metrics[i].Target = 0
		}
	}
}

// defaultContentTOML ships a complete sample site so the kiosk renders
// something sensible before the owner edits the content file.
const defaultContentTOML = `[profile]
name = "Naveen"
role = "Full-Stack Developer & Bot Creator"
tagline = "I build web apps, mobile apps, and Telegram automation."

[home]
greeting = "Hi, I'm"
typing_phrases = [
    "Full-Stack Developer",
    "Telegram Bot Creator",
    "Open Source Enthusiast",
]

[[home.metrics]]
label = "Projects Shipped"
target = 42

[[home.metrics]]
label = "Happy Clients"
target = 30

[[home.metrics]]
label = "Channel Subscribers"
target = 12000
suffix = "+"

[about]
bio = """
I'm a developer who enjoys taking products from idea to launch. Most of my
work lives at the intersection of web services, mobile clients, and chat
automation. When I'm not coding I run a couple of Telegram channels about
software and tooling.
"""

[[about.facts]]
label = "Based in"
value = "Bengaluru, India"

[[about.facts]]
label = "Experience"
value = "6+ years"

[[about.facts]]
label = "Focus"
value = "Go, TypeScript, Python"

[[about.skills]]
name = "Backend Development"
percent = 90

[[about.skills]]
name = "Frontend Development"
percent = 80

[[about.skills]]
name = "Mobile Apps"
percent = 70

[[about.skills]]
name = "Bot Automation"
percent = 95

[[projects]]
title = "Shoply"
description = "Storefront platform with inventory sync and payment integration."
category = "Web App"
tags = ["go", "postgres", "stripe"]
link_url = "https://example.com/shoply"

[[projects]]
title = "FitTrack"
description = "Workout tracking app with offline sync and social challenges."
category = "Mobile App"
tags = ["flutter", "firebase"]
link_url = "https://example.com/fittrack"

[[projects]]
title = "MirrorPlus"
description = "Telegram channel mirroring bot with filtering, link rewriting, and stats."
category = "Telegram Bot"
tags = ["python", "pyrogram"]
link_url = "https://example.com/mirrorplus"

[[projects]]
title = "LedgerLite"
description = "Expense splitting web app for small teams and trips."
category = "Web App"
tags = ["react", "go"]
link_url = "https://example.com/ledgerlite"

[[services]]
title = "Web Development"
description = "Design and build of responsive web applications, from landing pages to dashboards."
accent = "code"

[[services]]
title = "Bot Development"
description = "Custom Telegram bots: moderation, mirroring, commerce, notifications."
accent = "send"

[[services]]
title = "API Integration"
description = "Connecting products to payment, messaging, and analytics providers."
accent = "link"

[[channels]]
title = "@devnotes"
description = "Daily notes on backend engineering and tooling."
link_url = "https://t.me/devnotes"

[[channels]]
title = "@botfactory"
description = "Bot building tips, libraries, and launch stories."
link_url = "https://t.me/botfactory"

[contact]
email = "hello@example.dev"
phone = "+91 98765 43210"
location = "Bengaluru, India"
note = "Have a project in mind? Send a message and I'll get back within a day."

[[contact.social]]
label = "Telegram"
url = "https://t.me/example"
icon = "send"

[[contact.social]]
label = "GitHub"
url = "https://github.com/example"
icon = "code"

[[contact.social]]
label = "Email"
url = "mailto:hello@example.dev"
icon = "mail"
`
