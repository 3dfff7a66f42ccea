package main

import (
	"github.com/rs/zerolog/log"

	"github.com/atelier-interioare/site-backend/database"
	"github.com/atelier-interioare/site-backend/settings"
)

// seedDefaults writes the bootstrap documents a fresh database needs:
// currently just the default taxonomy list, so category slug resolution
// works from the first boot.
func seedDefaults(db database.Database) error {
	service := settings.NewService(db.SettingsRepo(), settings.NewBus(), log.Logger)
	return service.Seed()
}
