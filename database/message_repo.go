package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atelier-interioare/site-backend/models"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// FindAll returns all contact messages, newest first.
func (r *MessageRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// FindByID returns a message by id, or nil when absent.
func (r *MessageRepo) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Add inserts a new contact message.
func (r *MessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// SetRead marks a message read or unread.
func (r *MessageRepo) SetRead(id uuid.UUID, read bool) error {
	return r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", read).Error
}

// Delete removes a message by id.
func (r *MessageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactMessage{}, "id = ?", id).Error
}
