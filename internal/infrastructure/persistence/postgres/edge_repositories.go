package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	"github.com/rafabene/warbler-backend/internal/domain/repositories"
)

// FollowRepository implementa repositories.FollowRepository
type FollowRepository struct {
	db *gorm.DB
}

// NewFollowRepository cria um novo FollowRepository
func NewFollowRepository(db *gorm.DB) repositories.FollowRepository {
	return &FollowRepository{db: db}
}

// Add insere a aresta. Par duplicado vira violação de constraint (sem ON CONFLICT).
func (r *FollowRepository) Add(ctx context.Context, follow *entities.Follow) error {
	model := &FollowModel{
		FollowerID: follow.FollowerID,
		FollowedID: follow.FollowedID,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err, "follows")
	}
	return nil
}

func (r *FollowRepository) Remove(ctx context.Context, followerID, followedID string) (bool, error) {
	if !isValidID(followerID) || !isValidID(followedID) {
		return false, nil
	}

	db := dbFromContext(ctx, r.db)
	result := db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&FollowModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followedID string) (bool, error) {
	if !isValidID(followerID) || !isValidID(followedID) {
		return false, nil
	}

	var count int64

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&FollowModel{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FollowRepository) FollowerIDs(ctx context.Context, userID string) ([]string, error) {
	if !isValidID(userID) {
		return []string{}, nil
	}

	var ids []string

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&FollowModel{}).
		Where("followed_id = ?", userID).
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *FollowRepository) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	if !isValidID(userID) {
		return []string{}, nil
	}

	var ids []string

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&FollowModel{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *FollowRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("follower_id = ? OR followed_id = ?", userID, userID).Delete(&FollowModel{})
	return result.RowsAffected, result.Error
}

// LikeRepository implementa repositories.LikeRepository
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository cria um novo LikeRepository
func NewLikeRepository(db *gorm.DB) repositories.LikeRepository {
	return &LikeRepository{db: db}
}

// Add insere o like. Par duplicado vira violação de constraint (sem ON CONFLICT).
func (r *LikeRepository) Add(ctx context.Context, like *entities.Like) error {
	if like.ID == "" {
		like.ID = uuid.NewString()
	}
	model := &LikeModel{
		ID:        like.ID,
		UserID:    like.UserID,
		MessageID: like.MessageID,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err, "likes")
	}
	return nil
}

func (r *LikeRepository) Remove(ctx context.Context, userID, messageID string) (bool, error) {
	if !isValidID(userID) || !isValidID(messageID) {
		return false, nil
	}

	db := dbFromContext(ctx, r.db)
	result := db.Where("user_id = ? AND message_id = ?", userID, messageID).Delete(&LikeModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepository) Exists(ctx context.Context, userID, messageID string) (bool, error) {
	if !isValidID(userID) || !isValidID(messageID) {
		return false, nil
	}

	var count int64

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&LikeModel{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LikeRepository) MessageIDsByUser(ctx context.Context, userID string) ([]string, error) {
	if !isValidID(userID) {
		return []string{}, nil
	}

	var ids []string

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&LikeModel{}).
		Where("user_id = ?", userID).
		Pluck("message_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *LikeRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	if !isValidID(userID) {
		return 0, nil
	}

	var count int64

	db := dbFromContext(ctx, r.db)
	if err := db.Model(&LikeModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LikeRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("user_id = ?", userID).Delete(&LikeModel{})
	return result.RowsAffected, result.Error
}

func (r *LikeRepository) DeleteByMessage(ctx context.Context, messageID string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Where("message_id = ?", messageID).Delete(&LikeModel{})
	return result.RowsAffected, result.Error
}

func (r *LikeRepository) DeleteOnMessagesOf(ctx context.Context, authorID string) (int64, error) {
	db := dbFromContext(ctx, r.db)
	authored := db.Session(&gorm.Session{NewDB: true}).
		Model(&MessageModel{}).
		Select("id").
		Where("user_id = ?", authorID)

	result := db.Where("message_id IN (?)", authored).Delete(&LikeModel{})
	return result.RowsAffected, result.Error
}
