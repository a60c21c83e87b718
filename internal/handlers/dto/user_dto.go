package dto

import (
	"time"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	"github.com/rafabene/warbler-backend/internal/services"
)

// SignupRequest representa a requisição de cadastro
type SignupRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=72"`
	ImageURL string `json:"image_url" form:"image_url" binding:"omitempty,max=500"`
}

// LoginRequest aceita JSON ou formulário
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// UpdateProfileRequest representa a edição de perfil
type UpdateProfileRequest struct {
	Username        *string `json:"username" binding:"omitempty,min=1,max=50"`
	Email           *string `json:"email" binding:"omitempty,email"`
	ImageURL        *string `json:"image_url" binding:"omitempty,max=500"`
	HeaderImageURL  *string `json:"header_image_url" binding:"omitempty,max=500"`
	Bio             *string `json:"bio" binding:"omitempty,max=500"`
	Location        *string `json:"location" binding:"omitempty,max=255"`
	CurrentPassword string  `json:"current_password" binding:"required"`
}

// ToProfileInput converte a requisição para o input do service
func (r UpdateProfileRequest) ToProfileInput() services.ProfileInput {
	return services.ProfileInput{
		Username:        r.Username,
		Email:           r.Email,
		ImageURL:        r.ImageURL,
		HeaderImageURL:  r.HeaderImageURL,
		Bio:             r.Bio,
		Location:        r.Location,
		CurrentPassword: r.CurrentPassword,
	}
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ImageURL       string    `json:"image_url"`
	HeaderImageURL string    `json:"header_image_url"`
	Bio            *string   `json:"bio,omitempty"`
	Location       *string   `json:"location,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ProfileResponse adiciona contadores ao usuário
type ProfileResponse struct {
	UserResponse
	MessageCount   int64 `json:"message_count"`
	FollowerCount  int   `json:"follower_count"`
	FollowingCount int   `json:"following_count"`
	LikeCount      int64 `json:"like_count"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email.String(),
		ImageURL:       user.ImageURL,
		HeaderImageURL: user.HeaderImageURL,
		Bio:            user.Bio,
		Location:       user.Location,
		CreatedAt:      user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToProfileResponse converte um UserProfile
func ToProfileResponse(profile *services.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserResponse:   ToUserResponse(profile.User),
		MessageCount:   profile.MessageCount,
		FollowerCount:  profile.FollowerCount,
		FollowingCount: profile.FollowingCount,
		LikeCount:      profile.LikeCount,
	}
}
