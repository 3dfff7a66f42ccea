package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/atelier-interioare/site-backend/errs"
	"github.com/atelier-interioare/site-backend/locale"

	"github.com/go-chi/chi/v5"
)

// pagesHandler serves the localized page-content payloads consumed by the
// site frontend. Requests reach it through the locale middleware, so the
// locale segment is always a supported value by the time we run.
type pagesHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newPagesHandler() pagesHandler {
	logger := log.With().Str("handlerName", "pagesHandler").Logger()
	return pagesHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

type pageContent struct {
	Title string `json:"title"`
	Intro string `json:"intro"`
}

// Page keys are the fixed Romanian path segments; only the copy varies per
// locale.
var pageContents = map[string]map[string]pageContent{
	"ro": {
		"home":       {Title: "Atelier Interioare", Intro: "Mobilier la comandă și amenajări interioare complete."},
		"despre":     {Title: "Despre noi", Intro: "Peste 15 ani de experiență în producția de mobilier la comandă."},
		"servicii":   {Title: "Servicii", Intro: "Proiectare, producție și montaj, de la schiță la predare."},
		"portofoliu": {Title: "Portofoliu", Intro: "O selecție din proiectele finalizate recent."},
		"galerie":    {Title: "Galerie", Intro: "Cele mai apreciate imagini din proiectele noastre."},
		"contact":    {Title: "Contact", Intro: "Scrie-ne sau vizitează atelierul nostru din București."},
		"oferta":     {Title: "Cere ofertă", Intro: "Completează formularul și revenim în 24 de ore."},
	},
	"en": {
		"home":       {Title: "Atelier Interioare", Intro: "Custom furniture and complete interior design."},
		"despre":     {Title: "About us", Intro: "Over 15 years of experience in custom furniture making."},
		"servicii":   {Title: "Services", Intro: "Design, production and installation, from sketch to handover."},
		"portofoliu": {Title: "Portfolio", Intro: "A selection of recently completed projects."},
		"galerie":    {Title: "Gallery", Intro: "The most appreciated images from our projects."},
		"contact":    {Title: "Contact", Intro: "Write to us or visit our workshop in Bucharest."},
		"oferta":     {Title: "Request a quote", Intro: "Fill in the form and we reply within 24 hours."},
	},
}

func (h pagesHandler) page() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := chi.URLParam(r, "locale")
		if !locale.Supported(loc) {
			loc = locale.DefaultLocale
		}
		page := chi.URLParam(r, "page")
		if page == "" {
			page = "home"
		}

		content, ok := pageContents[loc][page]
		if !ok {
			h.responder.WriteError(w, errs.NewNotFoundError("page not found"))
			return
		}

		h.responder.WriteItem(w, map[string]any{
			"locale": loc,
			"page":   page,
			"title":  content.Title,
			"intro":  content.Intro,
		})
	}
}
