package entities

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxMessageLength é o tamanho máximo de um warble
const MaxMessageLength = 140

// Message representa um post curto de um usuário
type Message struct {
	ID        string
	Text      string
	Timestamp time.Time
	UserID    string
}

// NewMessage cria uma mensagem para o autor informado.
// Timestamp zero é preenchido pelo repositório no momento da inserção.
func NewMessage(userID, text string) *Message {
	return &Message{
		Text:   strings.TrimSpace(text),
		UserID: userID,
	}
}

// IsOwnedBy verifica se a mensagem pertence ao usuário
func (m *Message) IsOwnedBy(userID string) bool {
	return m.UserID == userID
}

// Validate valida regras de negócio da entidade Message
func (m *Message) Validate() error {
	if m.UserID == "" {
		return errors.New("message owner is required")
	}

	if m.Text == "" {
		return errors.New("message text is required")
	}

	if utf8.RuneCountInString(m.Text) > MaxMessageLength {
		return errors.New("message text must be at most 140 characters")
	}

	return nil
}
