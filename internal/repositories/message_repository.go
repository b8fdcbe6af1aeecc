package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"peakparty/internal/models/db_models"
)

type MessageRepository interface {
	ListByParty(ctx context.Context, partyID uuid.UUID) ([]db_models.Message, error)
	Insert(ctx context.Context, message *db_models.Message) error
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) ListByParty(ctx context.Context, partyID uuid.UUID) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Order("created_at").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) Insert(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}
