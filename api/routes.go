package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/atelier-interioare/site-backend/locale"
)

// setupRoutes wires the public read API, the admin surface, and the
// localized page routes.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, localeResolver *locale.Resolver) {
	r.Get("/healthz", handlers.publicHandler.health())

	// Public read-only API over summaries and settings.
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/diag", handlers.publicHandler.diagnostics())
		r.Get("/portfolio", handlers.publicHandler.portfolio())
		r.Get("/portfolio/{slug}", handlers.publicHandler.portfolioDetail())
		r.Get("/gallery", handlers.publicHandler.gallery())

		r.Post("/leads", handlers.publicHandler.createLead())
		r.Post("/contact", handlers.publicHandler.createMessage())

		r.Get("/settings/{domain}", handlers.settingsHandler.get())
		r.Get("/settings/{domain}/watch", handlers.settingsHandler.watch())
	})

	// Authenticated admin surface.
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Bootstrap needs a verified token but no allow-list entry yet.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Post("/bootstrap", handlers.adminHandler.bootstrap())
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Use(authMiddleware.requireAdmin)

			r.Get("/projects", handlers.adminHandler.listProjects())
			r.Get("/projects/{projectID}", handlers.adminHandler.getProject())
			r.Post("/projects", handlers.adminHandler.createProject())
			r.Put("/projects/{projectID}", handlers.adminHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.adminHandler.deleteProject())
			r.Post("/resync", handlers.adminHandler.resync())

			r.Get("/leads", handlers.adminHandler.listLeads())
			r.Put("/leads/{leadID}/status", handlers.adminHandler.updateLeadStatus())
			r.Delete("/leads/{leadID}", handlers.adminHandler.deleteLead())

			r.Get("/messages", handlers.adminHandler.listMessages())
			r.Put("/messages/{messageID}/read", handlers.adminHandler.markMessageRead())
			r.Delete("/messages/{messageID}", handlers.adminHandler.deleteMessage())

			r.Get("/settings/{domain}", handlers.settingsHandler.get())
			r.Put("/settings/{domain}", handlers.settingsHandler.put())
		})
	})

	// Localized page routes behind the locale resolver.
	r.Group(func(r chi.Router) {
		r.Use(localeResolver.Middleware)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.pagesHandler.page())
		r.Get("/{locale}", handlers.pagesHandler.page())
		r.Get("/{locale}/{page}", handlers.pagesHandler.page())
	})
}
