package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/mpetrov/portfolio-site-backend/models"
)

// MessageRepo is append-only: messages are inserted by the public contact
// endpoint and read back by the admin, never mutated or deleted.
type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// Add inserts a new contact message into the database
func (r *MessageRepo) Add(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// FindAll returns all contact messages, most recent first
func (r *MessageRepo) FindAll(ctx context.Context) ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&messages).Error
	return messages, err
}
