package api

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/atelier-interioare/site-backend/database"
	"github.com/atelier-interioare/site-backend/errs"
	"github.com/atelier-interioare/site-backend/models"
	"github.com/atelier-interioare/site-backend/syncer"

	"github.com/go-chi/chi/v5"
)

type adminHandler struct {
	responder       Responder
	logger          zerolog.Logger
	store           *syncer.Store
	syncer          *syncer.Syncer
	projects        *database.ProjectRepo
	leads           *database.LeadRepo
	messages        *database.MessageRepo
	admins          *database.AdminRepo
	bootstrapSecret string
}

func newAdminHandler(db database.Database, store *syncer.Store, sync *syncer.Syncer, bootstrapSecret string) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		store:           store,
		syncer:          sync,
		projects:        db.ProjectRepo(),
		leads:           db.LeadRepo(),
		messages:        db.MessageRepo(),
		admins:          db.AdminRepo(),
		bootstrapSecret: bootstrapSecret,
	}
}

func readBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.Body, 4<<20))
}

func parseIDParam(r *http.Request, name string) (uuid.UUID, *errs.ApiErr) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

// bootstrap creates the first allow-list record. Available only while the
// allow-list is empty and the out-of-band secret matches; once any admin
// record exists this path is permanently closed.
func (h adminHandler) bootstrap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, err := ctxGetSubject(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		if h.bootstrapSecret == "" {
			h.responder.WriteError(w, errs.NewForbiddenError("bootstrap is not configured"))
			return
		}

		count, dbErr := h.admins.Count()
		if dbErr != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("count", "admin records", dbErr))
			return
		}
		if count > 0 {
			h.responder.WriteError(w, errs.NewForbiddenError("bootstrap is no longer available"))
			return
		}

		bodyBytes, readErr := readBody(r)
		if readErr != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}
		var req struct {
			Secret string `json:"secret"`
			Email  string `json:"email"`
		}
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.bootstrapSecret)) != 1 {
			h.responder.WriteError(w, errs.NewForbiddenError("bootstrap secret mismatch"))
			return
		}

		admin := models.AdminUser{Subject: subject, Email: req.Email, Allowed: true}
		if err := h.admins.Add(&admin); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "admin record", err))
			return
		}

		h.logger.Info().Str("subject", subject).Msg("bootstrap admin created")
		h.responder.WriteCreated(w, admin)
	}
}

// Project CRUD. Every write goes through the syncer store so the public
// summary is recomputed before the response is sent.

func (h adminHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "projects", err))
			return
		}
		h.responder.WriteItems(w, projects, len(projects))
	}
}

func (h adminHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projects.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}
		h.responder.WriteItem(w, project)
	}
}

func (h adminHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := readBody(r)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if strings.TrimSpace(project.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if project.Rating < 0 || project.Rating > 5 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("rating", "must be between 0 and 5"))
			return
		}

		if err := h.store.CreateProject(&project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "project", err))
			return
		}
		h.responder.WriteCreated(w, project)
	}
}

func (h adminHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.projects.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		bodyBytes, readErr := readBody(r)
		if readErr != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if project.Rating < 0 || project.Rating > 5 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("rating", "must be between 0 and 5"))
			return
		}

		project.ID = id
		if project.CreatedAt == nil {
			project.CreatedAt = existing.CreatedAt
		}
		if project.PublishedAt == nil && existing.IsPublished {
			project.PublishedAt = existing.PublishedAt
		}

		if err := h.store.UpdateProject(&project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}
		h.responder.WriteItem(w, project)
	}
}

func (h adminHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseIDParam(r, "projectID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.store.DeleteProject(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "project", err))
			return
		}
		h.responder.WriteItem(w, map[string]string{"status": "deleted"})
	}
}

// resync is the repair tool for summary drift: it recomputes every summary
// and reports per-record failures instead of aborting.
func (h adminHandler) resync() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		synced, failures, err := h.syncer.SyncAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("resync", "summaries", err))
			return
		}
		h.responder.WriteItem(w, map[string]any{
			"synced":   synced,
			"failed":   len(failures),
			"failures": failures,
		})
	}
}

// Lead management.

func (h adminHandler) listLeads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leads, err := h.leads.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "leads", err))
			return
		}
		h.responder.WriteItems(w, leads, len(leads))
	}
}

// updateLeadStatus moves a lead within the status enum; transitions are
// free-form, membership is the only check.
func (h adminHandler) updateLeadStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseIDParam(r, "leadID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var req struct {
			Status models.LeadStatus `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if !req.Status.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown lead status"))
			return
		}

		lead, err := h.leads.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "lead", err))
			return
		}
		if lead == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("lead not found"))
			return
		}

		if err := h.leads.UpdateStatus(id, req.Status); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "lead", err))
			return
		}
		lead.Status = req.Status
		h.responder.WriteItem(w, lead)
	}
}

func (h adminHandler) deleteLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseIDParam(r, "leadID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}
		if err := h.leads.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "lead", err))
			return
		}
		h.responder.WriteItem(w, map[string]string{"status": "deleted"})
	}
}

// Contact message management.

func (h adminHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messages.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "contact messages", err))
			return
		}
		h.responder.WriteItems(w, messages, len(messages))
	}
}

func (h adminHandler) markMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseIDParam(r, "messageID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var req struct {
			IsRead bool `json:"isRead"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		message, err := h.messages.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "contact message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact message not found"))
			return
		}

		if err := h.messages.SetRead(id, req.IsRead); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "contact message", err))
			return
		}
		message.IsRead = req.IsRead
		h.responder.WriteItem(w, message)
	}
}

func (h adminHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseIDParam(r, "messageID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}
		if err := h.messages.Delete(id); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "contact message", err))
			return
		}
		h.responder.WriteItem(w, map[string]string{"status": "deleted"})
	}
}
