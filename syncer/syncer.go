// Package syncer derives the public ProjectSummary record from its
// authoritative Project. Every project write must run through it (see
// Store) so the public projection cannot silently drift.
package syncer

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/atelier-interioare/site-backend/catalog"
	"github.com/atelier-interioare/site-backend/database"
	"github.com/atelier-interioare/site-backend/models"
	"github.com/atelier-interioare/site-backend/slugify"
)

// UncategorizedSlug is the sentinel category slug when the project's label
// matches no taxonomy entry.
const UncategorizedSlug = "uncategorized"

const syncBatchSize = 100

// TaxonomySource supplies the current project-type list for categorySlug
// resolution.
type TaxonomySource interface {
	Taxonomies() []models.ProjectType
}

type Syncer struct {
	projects  *database.ProjectRepo
	summaries *database.SummaryRepo
	taxonomy  TaxonomySource
	logger    zerolog.Logger
}

func New(projects *database.ProjectRepo, summaries *database.SummaryRepo, taxonomy TaxonomySource, logger zerolog.Logger) *Syncer {
	return &Syncer{
		projects:  projects,
		summaries: summaries,
		taxonomy:  taxonomy,
		logger:    logger.With().Str("service", "syncer").Logger(),
	}
}

// Sync recomputes the summary for one project. When the project no longer
// exists the summary is deleted; deleting an already-absent summary is a
// no-op.
func (s *Syncer) Sync(projectID uuid.UUID) error {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return s.summaries.Delete(projectID)
	}
	return s.summaries.Upsert(s.buildSummary(project))
}

// buildSummary is the pure derivation: same project state in, same summary
// out.
func (s *Syncer) buildSummary(p *models.Project) *models.ProjectSummary {
	slug := p.Slug
	if slug == "" {
		slug = slugify.Make(p.Name)
	}

	image := ""
	if img, ok := catalog.Resolve(p.CoverMediaID); ok {
		image = img.URL
	}

	return &models.ProjectSummary{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         slug,
		Category:     p.Category,
		CategorySlug: s.categorySlug(p.Category),
		Summary:      p.Summary,
		Location:     p.Location,
		IsPublished:  p.IsPublished,
		PublishedAt:  p.PublishedAt,
		CompletedAt:  p.CompletedAt,
		CreatedAt:    p.CreatedAt,
		CoverMediaID: p.CoverMediaID,
		Image:        image,
		Media:        sanitizeMedia(p.Media),
	}
}

// categorySlug resolves a free-text category label against the taxonomy
// list, matching either language case-insensitively.
func (s *Syncer) categorySlug(label string) string {
	if label == "" {
		return UncategorizedSlug
	}
	for _, t := range s.taxonomy.Taxonomies() {
		if strings.EqualFold(t.LabelRO, label) || strings.EqualFold(t.LabelEN, label) {
			return t.Slug
		}
	}
	s.logger.Debug().Str("category", label).Msg("category label matched no taxonomy entry")
	return UncategorizedSlug
}

// sanitizeMedia maps each media entry down to the public allow-list,
// discarding internal fields.
func sanitizeMedia(in datatypes.JSONSlice[models.ProjectMedia]) datatypes.JSONSlice[models.MediaItem] {
	out := make(datatypes.JSONSlice[models.MediaItem], 0, len(in))
	for _, m := range in {
		out = append(out, models.MediaItem{
			ID:          m.ID,
			URL:         m.URL,
			Description: m.Description,
			Hint:        m.Hint,
			Rating:      m.Rating,
			IsTop:       m.IsTop,
		})
	}
	return out
}

// RecordError reports one failed record of a bulk resync.
type RecordError struct {
	ProjectID uuid.UUID `json:"projectId"`
	Error     string    `json:"error"`
}

// SyncAll recomputes every summary in fixed-size batches. Batches commit
// independently and individual failures are collected, not fatal; this is
// the repair tool for drift, not part of the steady-state write path.
func (s *Syncer) SyncAll() (synced int, failures []RecordError, err error) {
	var mu sync.Mutex

	err = s.projects.FindInBatches(syncBatchSize, func(batch []*models.Project) error {
		var g errgroup.Group
		g.SetLimit(8)
		for _, p := range batch {
			p := p
			g.Go(func() error {
				if upErr := s.summaries.Upsert(s.buildSummary(p)); upErr != nil {
					s.logger.Error().Err(upErr).Str("projectId", p.ID.String()).Msg("resync failed for project")
					mu.Lock()
					failures = append(failures, RecordError{ProjectID: p.ID, Error: upErr.Error()})
					mu.Unlock()
					return nil
				}
				mu.Lock()
				synced++
				mu.Unlock()
				return nil
			})
		}
		return g.Wait()
	})
	return synced, failures, err
}
