package models

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsDoc is a singleton document per settings domain (navigation,
// footer, theme, taxonomies). The payload is stored raw and normalized on
// every read, so legacy shapes migrate lazily.
type SettingsDoc struct {
	Domain    string         `json:"domain" gorm:"type:text;primaryKey"`
	Payload   datatypes.JSON `json:"payload"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}
