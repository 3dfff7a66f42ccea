package models

import (
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
	LeadStatusWon       LeadStatus = "won"
)

// Valid reports whether s is a member of the lead status enum.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost, LeadStatusWon:
		return true
	}
	return false
}

// Lead is a quote-request intake record created by public form submission.
type Lead struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"type:text;not null"`
	Email       string     `json:"email" gorm:"type:text;not null"`
	Phone       string     `json:"phone" gorm:"type:text"`
	City        string     `json:"city" gorm:"type:text"`
	ProjectType string     `json:"projectType" gorm:"type:text"`
	Budget      string     `json:"budget" gorm:"type:text"`
	Message     string     `json:"message" gorm:"type:text"`
	Status      LeadStatus `json:"status" gorm:"type:text;default:'new'"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}
