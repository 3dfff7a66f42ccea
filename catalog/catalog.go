// Package catalog holds the static image catalog referenced by project
// media ids. Entries are compiled in; unresolved ids simply yield no image.
package catalog

type Image struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Hint        string `json:"hint"`
}

var images = []Image{
	{ID: "hero-atelier", URL: "https://picsum.photos/seed/hero-atelier/1600/900", Description: "Atelierul nostru de producție", Hint: "workshop interior"},
	{ID: "kitchen-modern-1", URL: "https://picsum.photos/seed/kitchen-modern-1/1200/800", Description: "Bucătărie modernă cu insulă", Hint: "modern kitchen"},
	{ID: "kitchen-classic-1", URL: "https://picsum.photos/seed/kitchen-classic-1/1200/800", Description: "Bucătărie clasică din lemn masiv", Hint: "classic kitchen"},
	{ID: "living-scandi-1", URL: "https://picsum.photos/seed/living-scandi-1/1200/800", Description: "Living scandinav luminos", Hint: "scandinavian living room"},
	{ID: "living-lux-1", URL: "https://picsum.photos/seed/living-lux-1/1200/800", Description: "Living premium cu biblioteca integrată", Hint: "luxury living room"},
	{ID: "bedroom-1", URL: "https://picsum.photos/seed/bedroom-1/1200/800", Description: "Dormitor matrimonial cu dressing", Hint: "bedroom wardrobe"},
	{ID: "bedroom-kids-1", URL: "https://picsum.photos/seed/bedroom-kids-1/1200/800", Description: "Cameră pentru copii", Hint: "kids bedroom"},
	{ID: "bathroom-1", URL: "https://picsum.photos/seed/bathroom-1/1200/800", Description: "Baie cu mobilier suspendat", Hint: "bathroom vanity"},
	{ID: "wardrobe-1", URL: "https://picsum.photos/seed/wardrobe-1/1200/800", Description: "Dressing walk-in pe comandă", Hint: "walk-in closet"},
	{ID: "office-1", URL: "https://picsum.photos/seed/office-1/1200/800", Description: "Birou la domiciliu", Hint: "home office"},
	{ID: "commercial-1", URL: "https://picsum.photos/seed/commercial-1/1200/800", Description: "Amenajare spațiu comercial", Hint: "retail interior"},
	{ID: "detail-wood-1", URL: "https://picsum.photos/seed/detail-wood-1/1200/800", Description: "Detaliu îmbinare lemn masiv", Hint: "wood joinery detail"},
}

var byID = func() map[string]Image {
	m := make(map[string]Image, len(images))
	for _, img := range images {
		m[img.ID] = img
	}
	return m
}()

// Resolve returns the catalog image for id, if any.
func Resolve(id string) (Image, bool) {
	img, ok := byID[id]
	return img, ok
}

// All returns every catalog entry in declaration order.
func All() []Image {
	out := make([]Image, len(images))
	copy(out, images)
	return out
}
