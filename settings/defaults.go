package settings

import "github.com/atelier-interioare/site-backend/models"

// DefaultTheme returns the built-in palettes. Every color here satisfies
// the hex invariant enforced by NormalizeTheme.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		Light: ThemeColors{
			Accent:     "#A97142",
			Background: "#FAF8F5",
			Surface:    "#FFFFFF",
			Text:       "#1F1B16",
		},
		Dark: ThemeColors{
			Accent:     "#D9A05B",
			Background: "#14100C",
			Surface:    "#1E1813",
			Text:       "#F5EFE6",
		},
	}
}

func DefaultNavigation() NavigationSettings {
	return NavigationSettings{
		Items: []NavItem{
			{ID: "home", Label: LocalizedText{RO: "Acasă", EN: "Home"}, Href: "/", Order: 1},
			{ID: "despre", Label: LocalizedText{RO: "Despre", EN: "About"}, Href: "/despre", Order: 2},
			{ID: "servicii", Label: LocalizedText{RO: "Servicii", EN: "Services"}, Href: "/servicii", Order: 3},
			{ID: "portofoliu", Label: LocalizedText{RO: "Portofoliu", EN: "Portfolio"}, Href: "/portofoliu", Order: 4},
			{ID: "galerie", Label: LocalizedText{RO: "Galerie", EN: "Gallery"}, Href: "/galerie", Order: 5},
			{ID: "contact", Label: LocalizedText{RO: "Contact", EN: "Contact"}, Href: "/contact", Order: 6},
			{ID: "oferta", Label: LocalizedText{RO: "Cere ofertă", EN: "Request a quote"}, Href: "/oferta", IsCta: true, Order: 7},
		},
	}
}

func DefaultFooter() FooterSettings {
	return FooterSettings{
		Tagline: LocalizedText{
			RO: "Mobilier la comandă și amenajări interioare.",
			EN: "Custom furniture and interior design.",
		},
		Phone:   "+40 721 000 000",
		Email:   "contact@atelier-interioare.ro",
		Address: "Str. Fabricii 12, București",
		Social: []SocialLink{
			{Platform: "instagram", URL: "https://instagram.com/atelier.interioare"},
			{Platform: "facebook", URL: "https://facebook.com/atelier.interioare"},
		},
	}
}

// DefaultTaxonomies is the bootstrap project-type list.
func DefaultTaxonomies() []models.ProjectType {
	return []models.ProjectType{
		{ID: "bucatarii", LabelRO: "Bucătării", LabelEN: "Kitchens", Slug: "bucatarii", Order: 1, Active: true},
		{ID: "livinguri", LabelRO: "Livinguri", LabelEN: "Living Rooms", Slug: "livinguri", Order: 2, Active: true},
		{ID: "dormitoare", LabelRO: "Dormitoare", LabelEN: "Bedrooms", Slug: "dormitoare", Order: 3, Active: true},
		{ID: "bai", LabelRO: "Băi", LabelEN: "Bathrooms", Slug: "bai", Order: 4, Active: true},
		{ID: "dressinguri", LabelRO: "Dressinguri", LabelEN: "Walk-in Closets", Slug: "dressinguri", Order: 5, Active: true},
		{ID: "spatii-comerciale", LabelRO: "Spații comerciale", LabelEN: "Commercial Spaces", Slug: "spatii-comerciale", Order: 6, Active: true},
	}
}
