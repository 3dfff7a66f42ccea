package models

// ProjectType is a taxonomy entry used to resolve a project's category label
// to a stable slug. The list is stored as the "taxonomies" settings document.
type ProjectType struct {
	ID      string `json:"id"`
	LabelRO string `json:"labelRo"`
	LabelEN string `json:"labelEn"`
	Slug    string `json:"slug"`
	Order   int    `json:"order"`
	Active  bool   `json:"active"`
}
