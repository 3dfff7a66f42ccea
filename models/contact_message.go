package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a contact-form intake record.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" gorm:"type:text"`
	Message   string    `json:"message" gorm:"type:text"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
