package folio

// Card is a single entry on the projects, services, and telegram pages.
// The toml tags bind it directly to the content file's card tables.
type Card struct {
	Title         string   `toml:"title"`          // Display title
	Description   string   `toml:"description"`    // Body text, word-wrapped in the card
	Category      string   `toml:"category"`       // Filter tag (projects only); matched by equality
	Tags          []string `toml:"tags"`           // Short badges rendered under the description
	LinkURL       string   `toml:"link_url"`       // External link shown on the card, not opened
	ImageFilename string   `toml:"image_filename"` // Optional illustration loaded from the content dir
	Accent        string   `toml:"accent"`         // Optional icon key (see constants.IconSource)
}

// FilterCards returns the cards whose category equals the filter.
// The unconstrained filter FilterAll keeps every card.
func FilterCards(cards []Card, filter string) []Card {
	if filter == FilterAll {
		return cards
	}
	filtered := make([]Card, 0, len(cards))
	for _, card := range cards {
		if card.Category == filter {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// FilterAll is the unconstrained category filter.
const FilterAll = "all"

// CardCategories returns the distinct categories present, in first-seen
// order, prefixed with FilterAll.
func CardCategories(cards []Card) []string {
	categories := []string{FilterAll}
	seen := make(map[string]bool)
	for _, card := range cards {
		if card.Category == "" || seen[card.Category] {
			continue
		}
		seen[card.Category] = true
		categories = append(categories, card.Category)
	}
	return categories
}
