package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProjectSummary is the denormalized, public-safe projection of a Project.
// One summary exists per project, keyed by the project's ID. Public read
// paths query this record only.
type ProjectSummary struct {
	ID           uuid.UUID                      `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string                         `json:"name" gorm:"type:text;not null"`
	Slug         string                         `json:"slug" gorm:"type:text;index"`
	Category     string                         `json:"category" gorm:"type:text"`
	CategorySlug string                         `json:"categorySlug" gorm:"type:text"`
	Summary      string                         `json:"summary" gorm:"type:text"`
	Location     string                         `json:"location" gorm:"type:text"`
	IsPublished  bool                           `json:"isPublished"`
	PublishedAt  *time.Time                     `json:"publishedAt,omitempty"`
	CompletedAt  *time.Time                     `json:"completedAt,omitempty"`
	CreatedAt    *time.Time                     `json:"createdAt,omitempty"`
	CoverMediaID string                         `json:"coverMediaId" gorm:"type:text"`
	Image        string                         `json:"image" gorm:"type:text"`
	Media        datatypes.JSONSlice[MediaItem] `json:"media"`
	UpdatedAt    time.Time                      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// MediaItem is the fixed allow-list of media fields exposed publicly.
type MediaItem struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Rating      int    `json:"rating,omitempty"`
	IsTop       bool   `json:"isTop,omitempty"`
}
