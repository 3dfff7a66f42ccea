package settings

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNormalizeThemeEmptyYieldsDefaults(t *testing.T) {
	got := NormalizeTheme(nil, zerolog.Nop())
	if got != DefaultTheme() {
		t.Errorf("empty payload: got %+v, want defaults", got)
	}
}

func TestNormalizeThemeLegacyFlatMigratesToLight(t *testing.T) {
	raw := []byte(`{"accent":"#123456","background":"#FFF","surface":"#EEEEEE","text":"#000"}`)
	got := NormalizeTheme(raw, zerolog.Nop())

	want := ThemeColors{Accent: "#123456", Background: "#FFF", Surface: "#EEEEEE", Text: "#000"}
	if got.Light != want {
		t.Errorf("light = %+v, want %+v", got.Light, want)
	}
	if got.Dark != DefaultTheme().Dark {
		t.Errorf("dark = %+v, want defaults", got.Dark)
	}
}

func TestNormalizeThemeInvalidSlotSubstitutedAlone(t *testing.T) {
	raw := []byte(`{"light":{"accent":"not-a-color","background":"#ABCDEF"},"dark":{"text":"#FFF"}}`)
	got := NormalizeTheme(raw, zerolog.Nop())

	def := DefaultTheme()
	if got.Light.Accent != def.Light.Accent {
		t.Errorf("invalid accent not substituted: %q", got.Light.Accent)
	}
	if got.Light.Background != "#ABCDEF" {
		t.Errorf("valid sibling slot touched: %q", got.Light.Background)
	}
	if got.Light.Surface != def.Light.Surface || got.Light.Text != def.Light.Text {
		t.Error("missing slots should keep defaults")
	}
	if got.Dark.Text != "#FFF" {
		t.Errorf("dark text = %q, want #FFF", got.Dark.Text)
	}
}

func TestNormalizeThemeRejectsBadHexVariants(t *testing.T) {
	def := DefaultTheme()
	for _, bad := range []string{"123456", "#12345", "#GGGGGG", "#1234567", "rgb(0,0,0)", ""} {
		raw := []byte(`{"light":{"accent":"` + bad + `"}}`)
		got := NormalizeTheme(raw, zerolog.Nop())
		if got.Light.Accent != def.Light.Accent {
			t.Errorf("value %q accepted, want default substitution", bad)
		}
	}
}

func TestNormalizeThemeAcceptsThreeAndSixDigitHex(t *testing.T) {
	raw := []byte(`{"dark":{"accent":"#abc","background":"#AbCdEf"}}`)
	got := NormalizeTheme(raw, zerolog.Nop())
	if got.Dark.Accent != "#abc" || got.Dark.Background != "#AbCdEf" {
		t.Errorf("valid hex rejected: %+v", got.Dark)
	}
}

func TestNormalizeNavigationLegacyCta(t *testing.T) {
	raw := []byte(`{
		"items":[{"id":"home","label":{"ro":"Acasă","en":"Home"},"href":"/","order":1}],
		"cta":{"label":{"ro":"Cere ofertă","en":"Get a quote"},"href":"/oferta"}
	}`)
	got := NormalizeNavigation(raw, zerolog.Nop())

	if len(got.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(got.Items))
	}
	cta := got.Items[1]
	if !cta.IsCta || cta.Href != "/oferta" {
		t.Errorf("synthesized cta item wrong: %+v", cta)
	}
}

func TestNormalizeNavigationCtaAlreadyRepresented(t *testing.T) {
	raw := []byte(`{
		"items":[{"id":"oferta","label":{"ro":"Ofertă","en":"Quote"},"href":"/oferta","isCta":true,"order":1}],
		"cta":{"label":{"ro":"Ofertă","en":"Quote"},"href":"/oferta"}
	}`)
	got := NormalizeNavigation(raw, zerolog.Nop())
	if len(got.Items) != 1 {
		t.Errorf("items = %d, want 1 (no duplicate cta)", len(got.Items))
	}
}

func TestNormalizeNavigationGarbageYieldsDefaults(t *testing.T) {
	got := NormalizeNavigation([]byte(`{{`), zerolog.Nop())
	if len(got.Items) != len(DefaultNavigation().Items) {
		t.Errorf("expected default navigation, got %d items", len(got.Items))
	}
}

func TestNormalizeTaxonomiesDerivesSlug(t *testing.T) {
	raw := []byte(`{"types":[{"labelRo":"Bucătării","labelEn":"Kitchens","order":1,"active":true}]}`)
	got := NormalizeTaxonomies(raw, zerolog.Nop())
	if len(got.Types) != 1 {
		t.Fatalf("types = %d, want 1", len(got.Types))
	}
	if got.Types[0].Slug != "bucatarii" {
		t.Errorf("slug = %q, want bucatarii", got.Types[0].Slug)
	}
}

func TestNormalizeTaxonomiesEmptyYieldsDefaults(t *testing.T) {
	got := NormalizeTaxonomies([]byte(`{"types":[]}`), zerolog.Nop())
	if len(got.Types) != len(DefaultTaxonomies()) {
		t.Errorf("expected default taxonomy list, got %d entries", len(got.Types))
	}
}
