package syncer

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelier-interioare/site-backend/database"
	"github.com/atelier-interioare/site-backend/models"
	"github.com/atelier-interioare/site-backend/slugify"
)

// Store is the write-through facade for projects: every mutation performs
// the repo write and then the awaited summary sync before returning.
// Handlers use this instead of ProjectRepo directly, so a write path cannot
// forget to synchronize.
type Store struct {
	projects *database.ProjectRepo
	syncer   *Syncer
}

func NewStore(projects *database.ProjectRepo, syncer *Syncer) *Store {
	return &Store{projects: projects, syncer: syncer}
}

// CreateProject fills derived fields, inserts the project, and syncs its
// summary.
func (st *Store) CreateProject(p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = slugify.Make(p.Name)
	}
	now := time.Now().UTC()
	if p.CreatedAt == nil {
		p.CreatedAt = &now
	}
	if p.IsPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}

	if err := st.projects.Add(p); err != nil {
		return err
	}
	return st.syncer.Sync(p.ID)
}

// UpdateProject saves the project and syncs its summary. A publish toggle
// stamps PublishedAt on first publication.
func (st *Store) UpdateProject(p *models.Project) error {
	if p.Slug == "" {
		p.Slug = slugify.Make(p.Name)
	}
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}

	if err := st.projects.Update(p); err != nil {
		return err
	}
	return st.syncer.Sync(p.ID)
}

// DeleteProject removes the project; the follow-up sync observes the
// missing record and cascades the deletion to the summary.
func (st *Store) DeleteProject(id uuid.UUID) error {
	if err := st.projects.Delete(id); err != nil {
		return err
	}
	return st.syncer.Sync(id)
}
