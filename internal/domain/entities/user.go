package entities

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rafabene/warbler-backend/internal/domain/valueobjects"
)

const (
	// DefaultImageURL é a imagem de perfil usada quando o usuário não informa uma
	DefaultImageURL = "/static/images/default-pic.png"
	// DefaultHeaderImageURL é a imagem de capa padrão
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"

	MaxUsernameLength = 50
	// MaxPasswordBytes é o limite do bcrypt, contado em bytes e não em caracteres
	MaxPasswordBytes = 72
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa uma conta do warbler
type User struct {
	ID             string
	Username       string
	Email          valueobjects.Email
	PasswordHash   string
	ImageURL       string
	HeaderImageURL string
	Bio            *string
	Location       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser monta um usuário a partir de um hash já calculado.
// A senha em texto puro nunca passa por aqui.
func NewUser(username string, email valueobjects.Email, passwordHash, imageURL string) *User {
	u := &User{
		Username:     strings.TrimSpace(username),
		Email:        email,
		PasswordHash: passwordHash,
		ImageURL:     imageURL,
	}
	u.ApplyDefaults()
	return u
}

// ApplyDefaults preenche as imagens padrão quando vazias
func (u *User) ApplyDefaults() {
	if strings.TrimSpace(u.ImageURL) == "" {
		u.ImageURL = DefaultImageURL
	}
	if strings.TrimSpace(u.HeaderImageURL) == "" {
		u.HeaderImageURL = DefaultHeaderImageURL
	}
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Username == "" {
		return errors.New("username is required")
	}

	if utf8.RuneCountInString(u.Username) > MaxUsernameLength {
		return errors.New("username must be at most 50 characters")
	}

	if u.Email.IsZero() {
		return errors.New("email is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}
