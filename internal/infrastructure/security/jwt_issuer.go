package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/warbler-backend/internal/domain/ports"
)

var ErrInvalidToken = errors.New("invalid session token")

const issuer = "warbler"

// JWTIssuer implementa ports.TokenIssuer com HS256.
// sub = ID do usuário, jti = ID da sessão no store.
type JWTIssuer struct {
	secret []byte
}

// NewJWTIssuer cria um issuer com o segredo informado
func NewJWTIssuer(secret string) ports.TokenIssuer {
	return &JWTIssuer{secret: []byte(secret)}
}

func (i *JWTIssuer) Issue(session *ports.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   session.UserID,
		ID:        session.ID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (i *JWTIssuer) Parse(tokenString string) (string, string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	if claims.ID == "" || claims.Subject == "" {
		return "", "", ErrInvalidToken
	}

	return claims.ID, claims.Subject, nil
}
