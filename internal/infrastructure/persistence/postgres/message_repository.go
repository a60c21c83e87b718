package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	"github.com/rafabene/warbler-backend/internal/domain/repositories"
)

// MessageRepository implementa repositories.MessageRepository
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository cria um novo MessageRepository
func NewMessageRepository(db *gorm.DB) repositories.MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = r.db.NowFunc()
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(toMessageModel(message)).Error; err != nil {
		return translateError(err, "messages")
	}
	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*entities.Message, error) {
	if !isValidID(id) {
		return nil, nil
	}

	var model MessageModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toMessageEntity(&model), nil
}

func (r *MessageRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Message, error) {
	if !isValidID(userID) {
		return []*entities.Message{}, nil
	}

	var models []*MessageModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("user_id = ?", userID).
		Order("posted_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	return toMessageEntities(models), nil
}

func (r *MessageRepository) ListByAuthors(ctx context.Context, userIDs []string, limit int) ([]*entities.Message, error) {
	userIDs = validIDs(userIDs)
	if len(userIDs) == 0 {
		return []*entities.Message{}, nil
	}

	var models []*MessageModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("user_id IN ?", userIDs).
		Order("posted_at DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}

	return toMessageEntities(models), nil
}

func (r *MessageRepository) ListByIDs(ctx context.Context, ids []string) ([]*entities.Message, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return []*entities.Message{}, nil
	}

	var models []*MessageModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id IN ?", ids).
		Order("posted_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	return toMessageEntities(models), nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return translateError(db.Where("id = ?", id).Delete(&MessageModel{}).Error, "messages")
}

func (r *MessageRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("user_id = ?", userID).Delete(&MessageModel{})
	return result.RowsAffected, translateError(result.Error, "messages")
}

func (r *MessageRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	if !isValidID(userID) {
		return 0, nil
	}

	var count int64

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&MessageModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toMessageModel(message *entities.Message) *MessageModel {
	return &MessageModel{
		ID:        message.ID,
		Text:      message.Text,
		Timestamp: message.Timestamp.UnixMilli(),
		UserID:    message.UserID,
	}
}

func toMessageEntity(model *MessageModel) *entities.Message {
	return &entities.Message{
		ID:        model.ID,
		Text:      model.Text,
		Timestamp: time.UnixMilli(model.Timestamp).UTC(),
		UserID:    model.UserID,
	}
}

func toMessageEntities(models []*MessageModel) []*entities.Message {
	messages := make([]*entities.Message, 0, len(models))
	for _, model := range models {
		messages = append(messages, toMessageEntity(model))
	}
	return messages
}
