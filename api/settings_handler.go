package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/atelier-interioare/site-backend/errs"
	"github.com/atelier-interioare/site-backend/settings"

	"github.com/go-chi/chi/v5"
)

type settingsHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *settings.Service
}

func newSettingsHandler(service *settings.Service) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()
	return settingsHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

func domainParam(r *http.Request) (settings.Domain, bool) {
	domain := settings.Domain(chi.URLParam(r, "domain"))
	return domain, domain.Valid()
}

// get serves the normalized settings value for a domain. Reads never fail:
// broken storage degrades to defaults inside the service.
func (h settingsHandler) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		domain, ok := domainParam(r)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("unknown settings domain"))
			return
		}
		h.responder.WriteItem(w, h.service.Get(domain))
	}
}

// put normalizes, persists, and broadcasts a settings payload.
func (h settingsHandler) put() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		domain, ok := domainParam(r)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("unknown settings domain"))
			return
		}

		raw, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}
		if len(raw) > 0 && !json.Valid(raw) {
			h.responder.WriteError(w, errs.NewBadRequestError("payload is not valid JSON"))
			return
		}

		normalized, err := h.service.Put(domain, raw)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("save", "settings", err))
			return
		}
		h.responder.WriteItem(w, normalized)
	}
}

// watch streams normalized settings values over SSE: the current value on
// connect, then every subsequent publish, with heartbeats to keep proxies
// from closing the stream.
func (h settingsHandler) watch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		domain, ok := domainParam(r)
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("unknown settings domain"))
			return
		}

		flusher, canFlush := w.(http.Flusher)
		if !canFlush {
			h.responder.WriteError(w, errs.NewInternalError("stream unsupported"))
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		ch, cancel := h.service.Watch(domain)
		defer cancel()

		// Initial event: the latest normalized value (defaults until a
		// stored document exists).
		h.writeEvent(w, h.service.Get(domain))
		flusher.Flush()

		ticker := time.NewTicker(25 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-ticker.C:
				_, _ = w.Write([]byte(": ping\n\n"))
				flusher.Flush()
			case value, open := <-ch:
				if !open {
					return
				}
				h.writeEvent(w, value)
				flusher.Flush()
			}
		}
	}
}

func (h settingsHandler) writeEvent(w io.Writer, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		h.logger.Error().Err(err).Msg("error marshaling settings event")
		return
	}
	_, _ = w.Write([]byte("data: "))
	_, _ = w.Write(data)
	_, _ = w.Write([]byte("\n\n"))
}
