package database

import (
	"gorm.io/gorm"

	"github.com/atelier-interioare/site-backend/models"
)

type Database struct {
	db           *gorm.DB
	projectRepo  *ProjectRepo
	summaryRepo  *SummaryRepo
	leadRepo     *LeadRepo
	messageRepo  *MessageRepo
	settingsRepo *SettingsRepo
	adminRepo    *AdminRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance.
func New(db *gorm.DB) Database {
	return Database{
		db:           db,
		projectRepo:  NewProjectRepo(db),
		summaryRepo:  NewSummaryRepo(db),
		leadRepo:     NewLeadRepo(db),
		messageRepo:  NewMessageRepo(db),
		settingsRepo: NewSettingsRepo(db),
		adminRepo:    NewAdminRepo(db),
	}
}

// AutoMigrate creates or updates the schema for every model.
func (d Database) AutoMigrate() error {
	return d.db.AutoMigrate(
		&models.Project{},
		&models.ProjectSummary{},
		&models.Lead{},
		&models.ContactMessage{},
		&models.SettingsDoc{},
		&models.AdminUser{},
	)
}

// Ping verifies the underlying connection is usable.
func (d Database) Ping() error {
	var result int
	return d.db.Raw("SELECT 1").Scan(&result).Error
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SummaryRepo() *SummaryRepo {
	return d.summaryRepo
}

func (d Database) LeadRepo() *LeadRepo {
	return d.leadRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

func (d Database) SettingsRepo() *SettingsRepo {
	return d.settingsRepo
}

func (d Database) AdminRepo() *AdminRepo {
	return d.adminRepo
}
