package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/atelier-interioare/site-backend/database"
	"github.com/atelier-interioare/site-backend/errs"
	"github.com/atelier-interioare/site-backend/models"

	"github.com/go-chi/chi/v5"
)

// portfolioPageSize caps the public portfolio listing.
const portfolioPageSize = 24

type publicHandler struct {
	responder   Responder
	logger      zerolog.Logger
	summaries   *database.SummaryRepo
	leads       *database.LeadRepo
	messages    *database.MessageRepo
	diag        Diagnostics
	startupTime time.Time
}

// Diagnostics reports configuration state without failing requests; config
// problems surface here instead of breaking page renders.
type Diagnostics struct {
	DatabaseConfigured bool `json:"databaseConfigured"`
	AuthConfigured     bool `json:"authConfigured"`
	BootstrapEnabled   bool `json:"bootstrapEnabled"`
	LocalEmulator      bool `json:"localEmulator"`
}

func newPublicHandler(db database.Database, diag Diagnostics, startupTime time.Time) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		summaries:   db.SummaryRepo(),
		leads:       db.LeadRepo(),
		messages:    db.MessageRepo(),
		diag:        diag,
		startupTime: startupTime,
	}
}

func (h publicHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteItem(w, map[string]any{
			"status": "healthy",
			"uptime": time.Since(h.startupTime).Round(time.Second).String(),
			"ts":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func (h publicHandler) diagnostics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteItem(w, h.diag)
	}
}

// portfolio lists published summaries, newest completion first.
func (h publicHandler) portfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := h.summaries.FindPublished(portfolioPageSize)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "portfolio", err))
			return
		}

		w.Header().Set("Cache-Control", "s-maxage=300, stale-while-revalidate=600")
		h.responder.WriteItems(w, summaries, len(summaries))
	}
}

// portfolioDetail looks a summary up by slug, falling back to treating the
// path segment as a raw id. Absent and unpublished records return the same
// not-found envelope so unpublished content stays invisible.
func (h publicHandler) portfolioDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		summary, err := h.summaries.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if summary == nil {
			if id, parseErr := uuid.Parse(slug); parseErr == nil {
				summary, err = h.summaries.FindByID(id)
				if err != nil {
					h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
					return
				}
			}
		}

		if summary == nil || !summary.IsPublished {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		h.responder.WriteItem(w, summary)
	}
}

// GalleryItem is one gallery entry: a top-rated image with a composite id
// that is unique across projects.
type GalleryItem struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	ProjectSlug string `json:"projectSlug"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Rating      int    `json:"rating,omitempty"`
	IsTop       bool   `json:"isTop,omitempty"`
}

// gallery collects every published image flagged isTop or rated 5, sorted
// by the owning project's publish date descending.
func (h publicHandler) gallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := h.summaries.FindPublishedByPublishDate()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "gallery", err))
			return
		}

		items := make([]GalleryItem, 0)
		for _, s := range summaries {
			for _, m := range s.Media {
				if !m.IsTop && m.Rating != 5 {
					continue
				}
				items = append(items, GalleryItem{
					ID:          fmt.Sprintf("%s-%s", s.ID, m.ID),
					ProjectID:   s.ID.String(),
					ProjectName: s.Name,
					ProjectSlug: s.Slug,
					URL:         m.URL,
					Description: m.Description,
					Hint:        m.Hint,
					Rating:      m.Rating,
					IsTop:       m.IsTop,
				})
			}
		}
		h.responder.WriteItems(w, items, len(items))
	}
}

// createLead handles the public quote-request form.
func (h publicHandler) createLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var lead models.Lead
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&lead); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode lead request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(lead.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if strings.TrimSpace(lead.Email) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}

		lead.ID = uuid.New()
		lead.Status = models.LeadStatusNew

		if err := h.leads.Add(&lead); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "lead", err))
			return
		}
		h.responder.WriteCreated(w, lead)
	}
}

// createMessage handles the public contact form.
func (h publicHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var message models.ContactMessage
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&message); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(message.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if strings.TrimSpace(message.Email) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}

		message.ID = uuid.New()
		message.IsRead = false

		if err := h.messages.Add(&message); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "contact message", err))
			return
		}
		h.responder.WriteCreated(w, message)
	}
}
