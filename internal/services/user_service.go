package services

import (
	"context"
	"strings"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/domain/ports"
	"github.com/rafabene/warbler-backend/internal/domain/repositories"
	"github.com/rafabene/warbler-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo    repositories.UserRepository
	messageRepo repositories.MessageRepository
	followRepo  repositories.FollowRepository
	likeRepo    repositories.LikeRepository
	hasher      ports.PasswordHasher
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	messageRepo repositories.MessageRepository,
	followRepo repositories.FollowRepository,
	likeRepo repositories.LikeRepository,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		followRepo:  followRepo,
		likeRepo:    likeRepo,
		hasher:      hasher,
		uow:         uow,
		logger:      logger.With("service", "users"),
	}
}

// UserProfile agrega o usuário e os contadores da página de perfil
type UserProfile struct {
	User           *entities.User
	MessageCount   int64
	FollowerCount  int
	FollowingCount int
	LikeCount      int64
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// GetByUsername busca um usuário pelo username
func (s *UserService) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// GetProfile busca o usuário com contadores
func (s *UserService) GetProfile(ctx context.Context, id string) (*UserProfile, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.CountByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.FollowerIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.FollowingIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.CountByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &UserProfile{
		User:           user,
		MessageCount:   messages,
		FollowerCount:  len(followers),
		FollowingCount: len(following),
		LikeCount:      likes,
	}, nil
}

// SearchUsers lista usuários cujo username contém query
func (s *UserService) SearchUsers(ctx context.Context, query string, page, pageSize int) ([]*entities.User, error) {
	return s.userRepo.List(ctx, repositories.UserFilters{
		UsernameQuery: strings.TrimSpace(query),
		Page:          page,
		PageSize:      pageSize,
	})
}

// ProfileInput representa a edição de perfil. Campos nil não mudam.
type ProfileInput struct {
	Username        *string
	Email           *string
	ImageURL        *string
	HeaderImageURL  *string
	Bio             *string
	Location        *string
	CurrentPassword string
}

// UpdateProfile altera o perfil após reconfirmar a senha atual
func (s *UserService) UpdateProfile(ctx context.Context, id string, input ProfileInput) (*entities.User, error) {
	var user *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.GetUser(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.hasher.Compare(user.PasswordHash, input.CurrentPassword); err != nil {
			return domainerrors.ErrInvalidCredentials
		}

		if err := applyProfile(user, input); err != nil {
			return err
		}

		return s.userRepo.Update(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", id)
	return user, nil
}

// DeleteUser apaga o usuário e tudo que depende dele na mesma transação:
// likes feitos, likes recebidos, follows dos dois lados, mensagens e por fim a conta.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domainerrors.ErrUserNotFound
		}

		likesGiven, err := s.likeRepo.DeleteByUser(txCtx, id)
		if err != nil {
			return err
		}
		likesReceived, err := s.likeRepo.DeleteOnMessagesOf(txCtx, id)
		if err != nil {
			return err
		}
		follows, err := s.followRepo.DeleteByUser(txCtx, id)
		if err != nil {
			return err
		}
		messages, err := s.messageRepo.DeleteByUser(txCtx, id)
		if err != nil {
			return err
		}

		s.logger.Debug("user dependencies removed",
			"user_id", id,
			"likes_given", likesGiven,
			"likes_received", likesReceived,
			"follows", follows,
			"messages", messages,
		)

		return s.userRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

func applyProfile(user *entities.User, input ProfileInput) error {
	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
	}
	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return domainerrors.NewValidationError(domainerrors.ErrInvalidEmail, err)
		}
		user.Email = email
	}
	if input.ImageURL != nil {
		user.ImageURL = *input.ImageURL
	}
	if input.HeaderImageURL != nil {
		user.HeaderImageURL = *input.HeaderImageURL
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.Location != nil {
		user.Location = input.Location
	}

	user.ApplyDefaults()
	if err := user.Validate(); err != nil {
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, err)
	}
	return nil
}
