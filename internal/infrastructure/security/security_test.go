package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/warbler-backend/internal/domain/ports"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("password")
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	t.Run("hash nunca é a senha em texto puro", func(t *testing.T) {
		if hash == "password" {
			t.Error("hash igual à senha")
		}
	})

	t.Run("senha correta confere", func(t *testing.T) {
		if err := hasher.Compare(hash, "password"); err != nil {
			t.Errorf("esperava sucesso, obteve erro: %v", err)
		}
	})

	t.Run("senha errada não confere", func(t *testing.T) {
		if err := hasher.Compare(hash, "wrong"); err == nil {
			t.Error("esperava erro para senha errada")
		}
	})

	t.Run("custo inválido usa o padrão", func(t *testing.T) {
		h := NewBcryptHasher(100).(*BcryptHasher)
		if h.cost != bcrypt.DefaultCost {
			t.Errorf("esperava custo %d, obteve %d", bcrypt.DefaultCost, h.cost)
		}
	})
}

func TestJWTIssuer(t *testing.T) {
	issuer := NewJWTIssuer("test-secret")
	session := &ports.Session{ID: "sess-1", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}

	token, err := issuer.Issue(session)
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	t.Run("token válido devolve sessão e usuário", func(t *testing.T) {
		sessionID, userID, err := issuer.Parse(token)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if sessionID != "sess-1" || userID != "user-1" {
			t.Errorf("esperava (sess-1, user-1), obteve (%s, %s)", sessionID, userID)
		}
	})

	t.Run("segredo diferente é rejeitado", func(t *testing.T) {
		if _, _, err := NewJWTIssuer("other").Parse(token); err != ErrInvalidToken {
			t.Errorf("esperava ErrInvalidToken, obteve %v", err)
		}
	})

	t.Run("token expirado é rejeitado", func(t *testing.T) {
		expired, err := issuer.Issue(&ports.Session{ID: "s", UserID: "u", ExpiresAt: time.Now().Add(-time.Minute)})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if _, _, err := issuer.Parse(expired); err != ErrInvalidToken {
			t.Errorf("esperava ErrInvalidToken, obteve %v", err)
		}
	})

	t.Run("algoritmo none é rejeitado", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: "warbler", ID: "s", Subject: "u"})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("falha ao gerar token: %v", err)
		}
		if _, _, err := issuer.Parse(raw); err != ErrInvalidToken {
			t.Errorf("esperava ErrInvalidToken, obteve %v", err)
		}
	})
}
