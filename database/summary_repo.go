package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atelier-interioare/site-backend/models"
)

type SummaryRepo struct {
	db *gorm.DB
}

func NewSummaryRepo(db *gorm.DB) *SummaryRepo {
	return &SummaryRepo{db}
}

// FindByID returns a summary by project id, or nil when absent.
func (r *SummaryRepo) FindByID(id uuid.UUID) (*models.ProjectSummary, error) {
	var summary models.ProjectSummary
	err := r.db.First(&summary, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// FindBySlug returns a summary by slug, or nil when absent.
func (r *SummaryRepo) FindBySlug(slug string) (*models.ProjectSummary, error) {
	var summary models.ProjectSummary
	err := r.db.First(&summary, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// FindPublished returns published summaries ordered by completion date
// descending, falling back to publish then creation date. A non-positive
// limit returns every published summary.
func (r *SummaryRepo) FindPublished(limit int) ([]*models.ProjectSummary, error) {
	var summaries []*models.ProjectSummary
	q := r.db.Where("is_published = ?", true).
		Order("COALESCE(completed_at, published_at, created_at) DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&summaries).Error
	return summaries, err
}

// FindPublishedByPublishDate returns published summaries ordered by publish
// date descending; used by the gallery, which sorts by the owning project's
// publish date.
func (r *SummaryRepo) FindPublishedByPublishDate() ([]*models.ProjectSummary, error) {
	var summaries []*models.ProjectSummary
	err := r.db.Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&summaries).Error
	return summaries, err
}

// Upsert writes the summary with merge semantics: only the derived columns
// are assigned on conflict, so anything outside this pass stays untouched.
func (r *SummaryRepo) Upsert(summary *models.ProjectSummary) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "slug", "category", "category_slug", "summary", "location",
			"is_published", "published_at", "completed_at", "created_at",
			"cover_media_id", "image", "media", "updated_at",
		}),
	}).Create(summary).Error
}

// Delete removes a summary by project id. Deleting an absent summary is a
// no-op.
func (r *SummaryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectSummary{}, "id = ?", id).Error
}
