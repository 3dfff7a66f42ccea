package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/atelier-interioare/site-backend/models"
)

type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db}
}

// FindBySubject returns the allow-list record for a token subject, or nil
// when none exists.
func (r *AdminRepo) FindBySubject(subject string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := r.db.First(&admin, "subject = ?", subject).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Count returns the number of allow-list records, allowed or not. Bootstrap
// is only available while this is zero.
func (r *AdminRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}

// Add inserts a new allow-list record.
func (r *AdminRepo) Add(admin *models.AdminUser) error {
	return r.db.Create(admin).Error
}
