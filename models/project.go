package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project is the authoritative record for a portfolio entry. It is owned
// exclusively by the admin surface; public reads go through ProjectSummary.
type Project struct {
	ID           uuid.UUID                         `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string                            `json:"name" gorm:"type:text;not null"`
	Slug         string                            `json:"slug" gorm:"type:text;not null;index"`
	Category     string                            `json:"category" gorm:"type:text"`
	CategorySlug string                            `json:"categorySlug" gorm:"type:text"`
	Summary      string                            `json:"summary" gorm:"type:text"`
	Content      string                            `json:"content" gorm:"type:text"`
	Location     string                            `json:"location" gorm:"type:text"`
	Rating       int                               `json:"rating"`
	IsPublished  bool                              `json:"isPublished"`
	PublishedAt  *time.Time                        `json:"publishedAt,omitempty"`
	CompletedAt  *time.Time                        `json:"completedAt,omitempty"`
	CreatedAt    *time.Time                        `json:"createdAt,omitempty"`
	CoverMediaID string                            `json:"coverMediaId" gorm:"type:text"`
	Media        datatypes.JSONSlice[ProjectMedia] `json:"media"`
}

// ProjectMedia is a media entry as stored on the authoritative record.
// SourcePath and UploadedBy are internal bookkeeping and must never reach
// the public summary.
type ProjectMedia struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Rating      int    `json:"rating,omitempty"`
	IsTop       bool   `json:"isTop,omitempty"`
	SourcePath  string `json:"sourcePath,omitempty"`
	UploadedBy  string `json:"uploadedBy,omitempty"`
}
