package services

import (
	"context"
	"errors"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/domain/ports"
	"github.com/rafabene/warbler-backend/internal/domain/repositories"
)

// RelationshipService mantém o grafo de follows
type RelationshipService struct {
	userRepo   repositories.UserRepository
	followRepo repositories.FollowRepository
	uow        ports.UnitOfWork
	logger     ports.Logger
}

// NewRelationshipService cria um novo RelationshipService
func NewRelationshipService(
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *RelationshipService {
	return &RelationshipService{
		userRepo:   userRepo,
		followRepo: followRepo,
		uow:        uow,
		logger:     logger.With("service", "relationships"),
	}
}

// Follow cria a aresta follower -> followed.
// Aresta repetida retorna ErrConstraintViolation.
func (s *RelationshipService) Follow(ctx context.Context, followerID, followedID string) error {
	follow := entities.NewFollow(followerID, followedID)
	if err := follow.Validate(); err != nil {
		if errors.Is(err, entities.ErrSelfFollow) {
			return domainerrors.ErrCannotFollowSelf
		}
		return domainerrors.NewValidationError(domainerrors.ErrInvalidInput, err)
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.requireUsers(txCtx, followerID, followedID); err != nil {
			return err
		}
		return s.followRepo.Add(txCtx, follow)
	})
	if err != nil {
		return err
	}

	s.logger.Info("user followed", "follower_id", followerID, "followed_id", followedID)
	return nil
}

// Unfollow remove a aresta; retorna ErrNotFollowing se ela não existe
func (s *RelationshipService) Unfollow(ctx context.Context, followerID, followedID string) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		removed, err := s.followRepo.Remove(txCtx, followerID, followedID)
		if err != nil {
			return err
		}
		if !removed {
			return domainerrors.ErrNotFollowing
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("user unfollowed", "follower_id", followerID, "followed_id", followedID)
	return nil
}

// IsFollowing indica se userID segue otherID
func (s *RelationshipService) IsFollowing(ctx context.Context, userID, otherID string) (bool, error) {
	return s.followRepo.Exists(ctx, userID, otherID)
}

// IsFollowedBy indica se otherID segue userID
func (s *RelationshipService) IsFollowedBy(ctx context.Context, userID, otherID string) (bool, error) {
	return s.followRepo.Exists(ctx, otherID, userID)
}

// Followers lista quem segue o usuário
func (s *RelationshipService) Followers(ctx context.Context, userID string) ([]*entities.User, error) {
	ids, err := s.followRepo.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindByIDs(ctx, ids)
}

// Following lista quem o usuário segue
func (s *RelationshipService) Following(ctx context.Context, userID string) ([]*entities.User, error) {
	ids, err := s.followRepo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.FindByIDs(ctx, ids)
}

func (s *RelationshipService) requireUsers(ctx context.Context, ids ...string) error {
	for _, id := range ids {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domainerrors.ErrUserNotFound
		}
	}
	return nil
}
