package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelier-interioare/site-backend/models"
)

type LeadRepo struct {
	db *gorm.DB
}

func NewLeadRepo(db *gorm.DB) *LeadRepo {
	return &LeadRepo{db}
}

// FindAll returns all leads, newest first.
func (r *LeadRepo) FindAll() ([]*models.Lead, error) {
	var leads []*models.Lead
	err := r.db.Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// FindByID returns a lead by id, or nil when absent.
func (r *LeadRepo) FindByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Add inserts a new lead.
func (r *LeadRepo) Add(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// UpdateStatus sets the status of an existing lead.
func (r *LeadRepo) UpdateStatus(id uuid.UUID, status models.LeadStatus) error {
	return r.db.Model(&models.Lead{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes a lead by id.
func (r *LeadRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Lead{}, "id = ?", id).Error
}
