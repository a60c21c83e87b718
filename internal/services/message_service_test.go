package services_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/infrastructure/persistence/postgres"
)

var _ = Describe("MessageService", func() {
	var (
		e     *env
		alice *entities.User
		bob   *entities.User
	)

	BeforeEach(func() {
		e = newEnv()
		alice = e.signup("alice")
		bob = e.signup("bob")
	})

	post := func(user *entities.User, text string) *entities.Message {
		GinkgoHelper()

		message, err := e.messages.CreateMessage(e.ctx, user.ID, text)
		Expect(err).NotTo(HaveOccurred())
		// timestamps em milissegundos: garante ordem estável
		time.Sleep(2 * time.Millisecond)
		return message
	}

	Describe("CreateMessage", func() {
		It("pertence ao autor e aparece na lista dele", func() {
			testuser := e.signup("testuser")
			message := post(testuser, "a warble")

			messages, err := e.messages.UserMessages(e.ctx, testuser.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(1))
			Expect(messages[0].ID).To(Equal(message.ID))
			Expect(messages[0].Text).To(Equal("a warble"))
			Expect(messages[0].UserID).To(Equal(testuser.ID))
			Expect(messages[0].Timestamp).NotTo(BeZero())
		})

		It("rejeita texto vazio ou acima de 140 caracteres", func() {
			_, err := e.messages.CreateMessage(e.ctx, alice.ID, "  ")
			Expect(err).To(MatchError(domainerrors.ErrInvalidMessage))

			_, err = e.messages.CreateMessage(e.ctx, alice.ID, strings.Repeat("x", 141))
			Expect(err).To(MatchError(domainerrors.ErrInvalidMessage))
		})

		It("rejeita autor inexistente", func() {
			_, err := e.messages.CreateMessage(e.ctx, "00000000-0000-0000-0000-000000000000", "orphan")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("lista mais recentes primeiro", func() {
			first := post(alice, "first")
			second := post(alice, "second")

			messages, err := e.messages.UserMessages(e.ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(2))
			Expect(messages[0].ID).To(Equal(second.ID))
			Expect(messages[1].ID).To(Equal(first.ID))
		})
	})

	Describe("GetMessage", func() {
		It("retorna ErrMessageNotFound para ID desconhecido", func() {
			_, err := e.messages.GetMessage(e.ctx, "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(domainerrors.ErrMessageNotFound))
		})
	})

	Describe("likes", func() {
		var message *entities.Message

		BeforeEach(func() {
			message = post(bob, "like me")
		})

		It("o segundo like do mesmo par falha com violação de constraint", func() {
			Expect(e.messages.AddLike(e.ctx, alice.ID, message.ID)).To(Succeed())

			err := e.messages.AddLike(e.ctx, alice.ID, message.ID)
			Expect(domainerrors.IsConstraintViolation(err)).To(BeTrue())
			Expect(e.count(&postgres.LikeModel{})).To(Equal(int64(1)))
		})

		It("lista e remove likes", func() {
			Expect(e.messages.AddLike(e.ctx, alice.ID, message.ID)).To(Succeed())

			liked, err := e.messages.Likes(e.ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(liked).To(HaveLen(1))
			Expect(liked[0].ID).To(Equal(message.ID))

			Expect(e.messages.RemoveLike(e.ctx, alice.ID, message.ID)).To(Succeed())
			Expect(e.messages.RemoveLike(e.ctx, alice.ID, message.ID)).To(MatchError(domainerrors.ErrLikeNotFound))
		})

		It("alterna o like", func() {
			liked, err := e.messages.ToggleLike(e.ctx, alice.ID, message.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(liked).To(BeTrue())

			liked, err = e.messages.ToggleLike(e.ctx, alice.ID, message.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(liked).To(BeFalse())
			Expect(e.count(&postgres.LikeModel{})).To(BeZero())
		})

		It("não permite curtir a própria mensagem", func() {
			err := e.messages.AddLike(e.ctx, bob.ID, message.ID)
			Expect(err).To(MatchError(domainerrors.ErrCannotLikeOwnMessage))

			_, err = e.messages.ToggleLike(e.ctx, bob.ID, message.ID)
			Expect(err).To(MatchError(domainerrors.ErrCannotLikeOwnMessage))
		})

		It("não permite curtir mensagem inexistente", func() {
			err := e.messages.AddLike(e.ctx, alice.ID, "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(domainerrors.ErrMessageNotFound))
		})
	})

	Describe("DeleteMessage", func() {
		It("apaga a mensagem e os likes dela", func() {
			message := post(bob, "short lived")
			Expect(e.messages.AddLike(e.ctx, alice.ID, message.ID)).To(Succeed())

			Expect(e.messages.DeleteMessage(e.ctx, bob.ID, message.ID)).To(Succeed())

			_, err := e.messages.GetMessage(e.ctx, message.ID)
			Expect(err).To(MatchError(domainerrors.ErrMessageNotFound))
			Expect(e.count(&postgres.LikeModel{})).To(BeZero())
		})

		It("só o autor pode apagar", func() {
			message := post(bob, "mine")

			err := e.messages.DeleteMessage(e.ctx, alice.ID, message.ID)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})
	})

	Describe("Timeline", func() {
		It("mostra mensagens próprias e de quem o usuário segue", func() {
			carol := e.signup("carol")
			Expect(e.relationships.Follow(e.ctx, alice.ID, bob.ID)).To(Succeed())

			own := post(alice, "from alice")
			followed := post(bob, "from bob")
			post(carol, "from carol")

			timeline, err := e.messages.Timeline(e.ctx, alice.ID, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(timeline).To(HaveLen(2))
			Expect(timeline[0].ID).To(Equal(followed.ID))
			Expect(timeline[1].ID).To(Equal(own.ID))
		})

		It("respeita o limite", func() {
			for i := 0; i < 3; i++ {
				post(alice, "warble")
			}

			timeline, err := e.messages.Timeline(e.ctx, alice.ID, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(timeline).To(HaveLen(2))
		})
	})
})
