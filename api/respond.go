package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/atelier-interioare/site-backend/errs"
)

// Envelope is the uniform response shape on every JSON endpoint. HTTP
// status mirrors OK, but the envelope is the source of truth for clients.
type Envelope struct {
	OK    bool   `json:"ok"`
	Item  any    `json:"item,omitempty"`
	Items any    `json:"items,omitempty"`
	Total int    `json:"total,omitempty"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal first so an encoding failure can still produce a clean 500.
	jsonData, err := json.Marshal(env)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response envelope")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteItem writes a 200 envelope with a single item.
func (r Responder) WriteItem(w http.ResponseWriter, item any) {
	r.write(w, http.StatusOK, Envelope{OK: true, Item: item})
}

// WriteCreated writes a 201 envelope with the created item.
func (r Responder) WriteCreated(w http.ResponseWriter, item any) {
	r.write(w, http.StatusCreated, Envelope{OK: true, Item: item})
}

// WriteItems writes a 200 envelope with a collection.
func (r Responder) WriteItems(w http.ResponseWriter, items any, total int) {
	r.write(w, http.StatusOK, Envelope{OK: true, Items: items, Total: total})
}

// WriteError maps an error to the envelope. Expected errors carry their own
// status; anything else logs and degrades to a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.write(w, http.StatusInternalServerError, Envelope{
			OK:    false,
			Error: "an unexpected error occurred",
			Code:  codeFor(http.StatusInternalServerError),
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(apiErr.Error())
	}
	r.write(w, apiErr.StatusCode, Envelope{
		OK:    false,
		Error: apiErr.Error(),
		Code:  codeFor(apiErr.StatusCode),
	})
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}
