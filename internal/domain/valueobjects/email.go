package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

// Limites de tamanho da RFC 5321
const (
	maxEmailLength  = 254
	maxLocalLength  = 64
	maxDomainLength = 253
	maxLabelLength  = 63
)

var ErrInvalidEmail = errors.New("invalid email format")

var (
	localPartPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+$`)
	labelPattern     = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?$`)
	tldPattern       = regexp.MustCompile(`^[a-z]{2,}$`)
)

// Email de uma conta. O valor é sempre minúsculo e sem espaços nas pontas,
// então dois Emails iguais comparam com ==.
type Email struct {
	local  string
	domain string
}

// NewEmail normaliza e valida o endereço
func NewEmail(raw string) (Email, error) {
	address := strings.ToLower(strings.TrimSpace(raw))
	if len(address) > maxEmailLength {
		return Email{}, ErrInvalidEmail
	}

	at := strings.LastIndexByte(address, '@')
	if at < 0 {
		return Email{}, ErrInvalidEmail
	}

	local, domain := address[:at], address[at+1:]
	if !validLocalPart(local) || !validDomain(domain) {
		return Email{}, ErrInvalidEmail
	}

	return Email{local: local, domain: domain}, nil
}

// String devolve o endereço normalizado; vazio para o valor zero
func (e Email) String() string {
	if e.IsZero() {
		return ""
	}
	return e.local + "@" + e.domain
}

// Domain devolve a parte depois do @
func (e Email) Domain() string {
	return e.domain
}

// IsZero indica um Email que não passou por NewEmail
func (e Email) IsZero() bool {
	return e.local == "" && e.domain == ""
}

func (e Email) Equals(other Email) bool {
	return e == other
}

func validLocalPart(local string) bool {
	if local == "" || len(local) > maxLocalLength {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	return localPartPattern.MatchString(local)
}

// validDomain exige ao menos dois rótulos, cada um sem hífen nas pontas,
// e um TLD só de letras
func validDomain(domain string) bool {
	if len(domain) > maxDomainLength {
		return false
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if len(label) > maxLabelLength || !labelPattern.MatchString(label) {
			return false
		}
	}
	return tldPattern.MatchString(labels[len(labels)-1])
}
