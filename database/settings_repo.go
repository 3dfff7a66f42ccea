package database

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atelier-interioare/site-backend/models"
)

type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db}
}

// Get returns the singleton document for a settings domain, or nil when the
// domain has never been written.
func (r *SettingsRepo) Get(domain string) (*models.SettingsDoc, error) {
	var doc models.SettingsDoc
	err := r.db.First(&doc, "domain = ?", domain).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Put upserts the payload for a settings domain. UpdatedAt is server-set.
func (r *SettingsRepo) Put(domain string, payload datatypes.JSON) error {
	doc := models.SettingsDoc{Domain: domain, Payload: payload}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "domain"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&doc).Error
}
