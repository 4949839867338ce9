package repository

import (
	"context"

	"manitto_web/internal/models"
	"manitto_web/internal/storage"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindBySenderID(ctx context.Context, senderID uint) ([]models.Message, error)
	FindByReceiverID(ctx context.Context, receiverID uint) ([]models.Message, error)
}

type messageRepository struct {
	db *storage.PostgresDB
}

func NewMessageRepository(db *storage.PostgresDB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) FindBySenderID(ctx context.Context, senderID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindByReceiverID(ctx context.Context, receiverID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}
