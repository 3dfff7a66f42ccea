package api

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/atelier-interioare/site-backend/database"
	"github.com/atelier-interioare/site-backend/settings"
	"github.com/atelier-interioare/site-backend/syncer"
)

type routeHandlers struct {
	publicHandler   publicHandler
	adminHandler    adminHandler
	settingsHandler settingsHandler
	pagesHandler    pagesHandler
}

// initializeHandlers builds the shared services (settings bus, syncer,
// write-through store) and every handler over them.
func initializeHandlers(db database.Database, bootstrapSecret string, diag Diagnostics, startupTime time.Time) *routeHandlers {
	bus := settings.NewBus()
	settingsService := settings.NewService(db.SettingsRepo(), bus, log.Logger)
	sync := syncer.New(db.ProjectRepo(), db.SummaryRepo(), settingsService, log.Logger)
	store := syncer.NewStore(db.ProjectRepo(), sync)

	return &routeHandlers{
		publicHandler:   newPublicHandler(db, diag, startupTime),
		adminHandler:    newAdminHandler(db, store, sync, bootstrapSecret),
		settingsHandler: newSettingsHandler(settingsService),
		pagesHandler:    newPagesHandler(),
	}
}
