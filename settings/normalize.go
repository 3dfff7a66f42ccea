package settings

import (
	"encoding/json"
	"regexp"
	"sort"

	"github.com/rs/zerolog"

	"github.com/atelier-interioare/site-backend/models"
	"github.com/atelier-interioare/site-backend/slugify"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Normalize shapes a raw settings payload for the given domain. It never
// returns an error: unparseable or partial input degrades to defaults, with
// diagnostics logged.
func Normalize(domain Domain, raw []byte, logger zerolog.Logger) any {
	switch domain {
	case DomainTheme:
		return NormalizeTheme(raw, logger)
	case DomainNavigation:
		return NormalizeNavigation(raw, logger)
	case DomainFooter:
		return NormalizeFooter(raw, logger)
	case DomainTaxonomies:
		return NormalizeTaxonomies(raw, logger)
	}
	return nil
}

// NormalizeTheme migrates legacy flat color payloads into the light
// palette, completes partial documents from defaults, and validates all
// eight color slots. Invalid values are replaced slot-by-slot with their
// defaults; other slots are untouched.
func NormalizeTheme(raw []byte, logger zerolog.Logger) ThemeSettings {
	out := DefaultTheme()
	if len(raw) == 0 {
		return out
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn().Err(err).Msg("unparseable theme payload, using defaults")
		return out
	}

	_, hasLight := doc["light"]
	_, hasDark := doc["dark"]
	if !hasLight && !hasDark {
		// Legacy flat shape: a single color object. Migrate it into the
		// light palette; dark stays on defaults.
		var flat map[string]string
		if err := json.Unmarshal(raw, &flat); err != nil {
			logger.Warn().Err(err).Msg("unparseable legacy theme payload, using defaults")
			return out
		}
		applyPalette(&out.Light, flat, "light", logger)
		return out
	}

	if hasLight {
		var light map[string]string
		if err := json.Unmarshal(doc["light"], &light); err == nil {
			applyPalette(&out.Light, light, "light", logger)
		} else {
			logger.Warn().Err(err).Msg("unparseable light palette, using defaults")
		}
	}
	if hasDark {
		var dark map[string]string
		if err := json.Unmarshal(doc["dark"], &dark); err == nil {
			applyPalette(&out.Dark, dark, "dark", logger)
		} else {
			logger.Warn().Err(err).Msg("unparseable dark palette, using defaults")
		}
	}
	return out
}

// applyPalette merges fetched color roles over dst. Keys absent from src
// keep their defaults; present-but-invalid values are rejected per slot.
func applyPalette(dst *ThemeColors, src map[string]string, mode string, logger zerolog.Logger) {
	slots := map[string]*string{
		"accent":     &dst.Accent,
		"background": &dst.Background,
		"surface":    &dst.Surface,
		"text":       &dst.Text,
	}
	for role, target := range slots {
		value, ok := src[role]
		if !ok {
			continue
		}
		if !hexColorRe.MatchString(value) {
			logger.Warn().
				Str("mode", mode).
				Str("role", role).
				Str("value", value).
				Msg("invalid theme color, substituting default")
			continue
		}
		*target = value
	}
}

// NormalizeNavigation completes a navigation payload. A legacy singular
// `cta` object is synthesized into an isCta item when the items list does
// not already carry one; since the normalized shape has no cta field, the
// legacy field disappears on the next save.
func NormalizeNavigation(raw []byte, logger zerolog.Logger) NavigationSettings {
	if len(raw) == 0 {
		return DefaultNavigation()
	}

	var doc struct {
		Items []NavItem `json:"items"`
		CTA   *struct {
			Label LocalizedText `json:"label"`
			Href  string        `json:"href"`
		} `json:"cta"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn().Err(err).Msg("unparseable navigation payload, using defaults")
		return DefaultNavigation()
	}
	if len(doc.Items) == 0 && doc.CTA == nil {
		return DefaultNavigation()
	}

	items := doc.Items
	if doc.CTA != nil {
		represented := false
		for _, item := range items {
			if item.IsCta || item.Href == doc.CTA.Href {
				represented = true
				break
			}
		}
		if !represented {
			items = append(items, NavItem{
				ID:    "cta",
				Label: doc.CTA.Label,
				Href:  doc.CTA.Href,
				IsCta: true,
				Order: len(items) + 1,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return NavigationSettings{Items: items}
}

// NormalizeFooter merges a fetched footer document over the defaults.
func NormalizeFooter(raw []byte, logger zerolog.Logger) FooterSettings {
	out := DefaultFooter()
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn().Err(err).Msg("unparseable footer payload, using defaults")
		return DefaultFooter()
	}
	return out
}

// TaxonomySettings is the normalized taxonomy payload.
type TaxonomySettings struct {
	Types []models.ProjectType `json:"types"`
}

// NormalizeTaxonomies validates the stored project-type list, deriving
// missing slugs from the Romanian label and ordering by the Order field.
// An empty or unparseable document yields the bootstrap defaults.
func NormalizeTaxonomies(raw []byte, logger zerolog.Logger) TaxonomySettings {
	if len(raw) == 0 {
		return TaxonomySettings{Types: DefaultTaxonomies()}
	}

	var doc TaxonomySettings
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn().Err(err).Msg("unparseable taxonomies payload, using defaults")
		return TaxonomySettings{Types: DefaultTaxonomies()}
	}
	if len(doc.Types) == 0 {
		return TaxonomySettings{Types: DefaultTaxonomies()}
	}

	types := make([]models.ProjectType, 0, len(doc.Types))
	for _, t := range doc.Types {
		if t.LabelRO == "" && t.LabelEN == "" {
			logger.Warn().Str("id", t.ID).Msg("taxonomy entry without labels dropped")
			continue
		}
		if t.Slug == "" {
			label := t.LabelRO
			if label == "" {
				label = t.LabelEN
			}
			t.Slug = slugify.Make(label)
		}
		if t.ID == "" {
			t.ID = t.Slug
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		return TaxonomySettings{Types: DefaultTaxonomies()}
	}
	sort.SliceStable(types, func(i, j int) bool { return types[i].Order < types[j].Order })
	return TaxonomySettings{Types: types}
}

// Defaults returns the fallback value for a domain, used until a stored
// document exists or when reads fail.
func Defaults(domain Domain) any {
	switch domain {
	case DomainTheme:
		return DefaultTheme()
	case DomainNavigation:
		return DefaultNavigation()
	case DomainFooter:
		return DefaultFooter()
	case DomainTaxonomies:
		return TaxonomySettings{Types: DefaultTaxonomies()}
	}
	return nil
}
