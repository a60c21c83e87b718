package services_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/domain/ports"
	"github.com/rafabene/warbler-backend/internal/infrastructure/logging"
	"github.com/rafabene/warbler-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/warbler-backend/internal/infrastructure/security"
	"github.com/rafabene/warbler-backend/internal/services"
)

var _ = Describe("AccountService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
	})

	Describe("Register", func() {
		It("guarda apenas o hash da senha", func() {
			user := e.signup("testuser")

			Expect(user.ID).NotTo(BeEmpty())
			Expect(user.PasswordHash).NotTo(BeEmpty())
			Expect(user.PasswordHash).NotTo(Equal("password"))
		})

		It("aplica as imagens padrão e começa sem mensagens nem seguidores", func() {
			user := e.signup("testuser")

			Expect(user.ImageURL).To(Equal(entities.DefaultImageURL))
			Expect(user.HeaderImageURL).To(Equal(entities.DefaultHeaderImageURL))

			messages, err := e.messages.UserMessages(e.ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(BeEmpty())

			followers, err := e.relationships.Followers(e.ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(followers).To(BeEmpty())
		})

		It("mantém a imagem informada", func() {
			user, err := e.accounts.Register(e.ctx, services.SignupInput{
				Username: "testuser",
				Email:    "test@test.com",
				Password: "password",
				ImageURL: "/img/me.png",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ImageURL).To(Equal("/img/me.png"))
		})

		It("rejeita username duplicado com violação de constraint", func() {
			e.signup("testuser")

			_, err := e.accounts.Register(e.ctx, services.SignupInput{
				Username: "testuser",
				Email:    "other@test.com",
				Password: "password",
			})

			Expect(domainerrors.IsConstraintViolation(err)).To(BeTrue())
		})

		It("rejeita email duplicado com violação de constraint", func() {
			e.signup("testuser")

			_, err := e.accounts.Register(e.ctx, services.SignupInput{
				Username: "another",
				Email:    "testuser@test.com",
				Password: "password",
			})

			Expect(domainerrors.IsConstraintViolation(err)).To(BeTrue())
		})

		It("rejeita email inválido", func() {
			_, err := e.accounts.Register(e.ctx, services.SignupInput{
				Username: "testuser",
				Email:    "not-an-email",
				Password: "password",
			})

			Expect(err).To(MatchError(domainerrors.ErrInvalidEmail))
		})

		It("rejeita senha vazia", func() {
			_, err := e.accounts.Register(e.ctx, services.SignupInput{
				Username: "testuser",
				Email:    "test@test.com",
			})

			Expect(err).To(MatchError(domainerrors.ErrInvalidInput))
		})

		It("conta o limite do bcrypt em bytes", func() {
			_, err := e.accounts.Register(e.ctx, services.SignupInput{
				Username: "testuser",
				Email:    "test@test.com",
				Password: strings.Repeat("é", 40),
			})

			Expect(err).To(MatchError(domainerrors.ErrInvalidInput))
			Expect(e.count(&postgres.UserModel{})).To(BeZero())

			user, err := e.accounts.Register(e.ctx, services.SignupInput{
				Username: "testuser",
				Email:    "test@test.com",
				Password: strings.Repeat("é", 36),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())
		})
	})

	Describe("Signup", func() {
		It("não grava nada se a transação de quem chama for desfeita", func() {
			boom := errors.New("boom")

			err := e.uow.WithTransaction(e.ctx, func(txCtx context.Context) error {
				user, err := e.accounts.Signup(txCtx, services.SignupInput{
					Username: "testuser",
					Email:    "test@test.com",
					Password: "password",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).NotTo(BeEmpty())
				return boom
			})

			Expect(err).To(MatchError(boom))
			Expect(e.count(&postgres.UserModel{})).To(BeZero())
		})
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			e.signup("testuser")
		})

		It("retorna o usuário com a senha correta", func() {
			user, err := e.accounts.Authenticate(e.ctx, "testuser", "password")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("testuser"))
		})

		It("retorna o mesmo erro para senha errada e usuário inexistente", func() {
			wrongPassword, errWrong := e.accounts.Authenticate(e.ctx, "testuser", "wrong")
			unknownUser, errUnknown := e.accounts.Authenticate(e.ctx, "nobody", "password")

			Expect(wrongPassword).To(BeNil())
			Expect(unknownUser).To(BeNil())
			Expect(errWrong).To(MatchError(domainerrors.ErrInvalidCredentials))
			Expect(errUnknown).To(MatchError(domainerrors.ErrInvalidCredentials))
			Expect(errWrong).To(Equal(errUnknown))
		})

		It("compara usuário inexistente contra um hash real", func() {
			hasher := &recordingHasher{PasswordHasher: security.NewBcryptHasher(bcrypt.MinCost)}
			accounts, err := services.NewAccountService(postgres.NewUserRepository(e.db), hasher, e.uow, logging.NewNopLogger())
			Expect(err).NotTo(HaveOccurred())

			_, err = accounts.Authenticate(e.ctx, "nobody", "password")

			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
			Expect(hasher.compared).To(HaveLen(1))
			Expect(hasher.compared[0]).To(HavePrefix("$2"))
		})
	})

	Describe("NewAccountService", func() {
		It("falha quando o hasher não gera o hash de fallback", func() {
			accounts, err := services.NewAccountService(nil, failingHasher{}, nil, logging.NewNopLogger())

			Expect(accounts).To(BeNil())
			Expect(err).To(MatchError(errHasherDown))
		})
	})
})

var errHasherDown = errors.New("hasher down")

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errHasherDown }
func (failingHasher) Compare(string, string) error { return errHasherDown }

// recordingHasher guarda os hashes recebidos em Compare
type recordingHasher struct {
	ports.PasswordHasher
	compared []string
}

func (h *recordingHasher) Compare(hash, password string) error {
	h.compared = append(h.compared, hash)
	return h.PasswordHasher.Compare(hash, password)
}
