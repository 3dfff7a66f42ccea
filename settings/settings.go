// Package settings shapes the site-wide singleton documents (navigation,
// footer, theme, taxonomies). Raw payloads are normalized on every read, so
// legacy document shapes migrate lazily and callers always receive a valid
// value.
package settings

// Domain identifies one settings singleton.
type Domain string

const (
	DomainNavigation Domain = "navigation"
	DomainFooter     Domain = "footer"
	DomainTheme      Domain = "theme"
	DomainTaxonomies Domain = "taxonomies"
)

// Valid reports whether d names a known settings domain.
func (d Domain) Valid() bool {
	switch d {
	case DomainNavigation, DomainFooter, DomainTheme, DomainTaxonomies:
		return true
	}
	return false
}

// LocalizedText is a bilingual label.
type LocalizedText struct {
	RO string `json:"ro"`
	EN string `json:"en"`
}

// ThemeColors is one palette: four named roles as hex strings.
type ThemeColors struct {
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
}

// ThemeSettings carries the two parallel palettes.
type ThemeSettings struct {
	Light ThemeColors `json:"light"`
	Dark  ThemeColors `json:"dark"`
}

// NavItem is one navigation entry. Items with IsCta render as the primary
// call-to-action.
type NavItem struct {
	ID    string        `json:"id"`
	Label LocalizedText `json:"label"`
	Href  string        `json:"href"`
	IsCta bool          `json:"isCta,omitempty"`
	Order int           `json:"order"`
}

type NavigationSettings struct {
	Items []NavItem `json:"items"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type FooterSettings struct {
	Tagline LocalizedText `json:"tagline"`
	Phone   string        `json:"phone"`
	Email   string        `json:"email"`
	Address string        `json:"address"`
	Social  []SocialLink  `json:"social,omitempty"`
}
