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
	"github.com/rafabene/warbler-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err, "users")
	}

	user.CreatedAt = time.Unix(model.CreatedAt, 0).UTC()
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0).UTC()
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	if !isValidID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]*entities.User, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return []*entities.User{}, nil
	}

	var models []*UserModel
	db := dbFromContext(ctx, r.db)
	if err := db.Where("id IN ?", ids).Order("username").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit(clause.Associations).Save(model).Error; err != nil {
		return translateError(err, "users")
	}

	user.UpdatedAt = time.Unix(model.UpdatedAt, 0).UTC()
	return nil
}

// Delete remove apenas a linha do usuário; as dependências são removidas pelo service
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return translateError(db.Where("id = ?", id).Delete(&UserModel{}).Error, "users")
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&UserModel{})

	// Aplicar filtros
	if filters.UsernameQuery != "" {
		query = query.Where(`LOWER(username) LIKE ? ESCAPE '\'`, containsPattern(filters.UsernameQuery))
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Order("username").Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	model := &UserModel{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email.String(),
		PasswordHash:   user.PasswordHash,
		ImageURL:       user.ImageURL,
		HeaderImageURL: user.HeaderImageURL,
		Bio:            user.Bio,
		Location:       user.Location,
	}
	if !user.CreatedAt.IsZero() {
		model.CreatedAt = user.CreatedAt.Unix()
	}
	return model
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:             model.ID,
		Username:       model.Username,
		Email:          email,
		PasswordHash:   model.PasswordHash,
		ImageURL:       model.ImageURL,
		HeaderImageURL: model.HeaderImageURL,
		Bio:            model.Bio,
		Location:       model.Location,
		CreatedAt:      time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:      time.Unix(model.UpdatedAt, 0).UTC(),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
