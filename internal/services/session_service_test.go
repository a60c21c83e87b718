package services_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
)

var _ = Describe("SessionService", func() {
	var e *env

	BeforeEach(func() {
		e = newEnv()
		e.signup("testuser")
	})

	It("abre, resolve e encerra a sessão", func() {
		result, err := e.sessions.Login(e.ctx, "testuser", "password")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Token).NotTo(BeEmpty())
		Expect(e.redis.Keys()).To(HaveLen(1))

		userID, err := e.sessions.Resolve(e.ctx, result.Token)
		Expect(err).NotTo(HaveOccurred())
		Expect(userID).To(Equal(result.User.ID))

		Expect(e.sessions.Logout(e.ctx, result.Token)).To(Succeed())
		Expect(e.redis.Keys()).To(BeEmpty())

		_, err = e.sessions.Resolve(e.ctx, result.Token)
		Expect(err).To(MatchError(domainerrors.ErrUnauthorized))
	})

	It("login com senha errada não cria sessão", func() {
		_, err := e.sessions.Login(e.ctx, "testuser", "wrong")
		Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		Expect(e.redis.Keys()).To(BeEmpty())
	})

	It("sessão expirada no redis é rejeitada", func() {
		result, err := e.sessions.Login(e.ctx, "testuser", "password")
		Expect(err).NotTo(HaveOccurred())

		e.redis.FastForward(2 * time.Hour)

		_, err = e.sessions.Resolve(e.ctx, result.Token)
		Expect(err).To(MatchError(domainerrors.ErrUnauthorized))
	})

	It("token inválido é rejeitado e logout dele não falha", func() {
		_, err := e.sessions.Resolve(e.ctx, "not-a-token")
		Expect(err).To(MatchError(domainerrors.ErrUnauthorized))

		Expect(e.sessions.Logout(e.ctx, "not-a-token")).To(Succeed())
		Expect(e.sessions.Logout(e.ctx, "")).To(Succeed())
	})
})
