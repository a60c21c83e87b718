package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/warbler-backend/internal/services"
)

var _ = Describe("UserService", func() {
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

	Describe("GetProfile", func() {
		It("traz os contadores", func() {
			message, err := e.messages.CreateMessage(e.ctx, bob.ID, "hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(e.relationships.Follow(e.ctx, alice.ID, bob.ID)).To(Succeed())
			Expect(e.messages.AddLike(e.ctx, alice.ID, message.ID)).To(Succeed())

			profile, err := e.users.GetProfile(e.ctx, bob.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.MessageCount).To(Equal(int64(1)))
			Expect(profile.FollowerCount).To(Equal(1))
			Expect(profile.FollowingCount).To(BeZero())

			aliceProfile, err := e.users.GetProfile(e.ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(aliceProfile.FollowingCount).To(Equal(1))
			Expect(aliceProfile.LikeCount).To(Equal(int64(1)))
		})

		It("retorna ErrUserNotFound para ID desconhecido", func() {
			_, err := e.users.GetProfile(e.ctx, "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("GetByUsername", func() {
		It("busca pelo username exato", func() {
			user, err := e.users.GetByUsername(e.ctx, "bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(bob.ID))

			_, err = e.users.GetByUsername(e.ctx, "nobody")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("SearchUsers", func() {
		It("filtra por trecho do username", func() {
			users, err := e.users.SearchUsers(e.ctx, "ali", 1, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Username).To(Equal("alice"))

			all, err := e.users.SearchUsers(e.ctx, "", 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})
	})

	Describe("UpdateProfile", func() {
		It("altera os campos informados", func() {
			bio := "I warble"
			header := ""

			user, err := e.users.UpdateProfile(e.ctx, alice.ID, services.ProfileInput{
				Bio:             &bio,
				HeaderImageURL:  &header,
				CurrentPassword: "password",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(*user.Bio).To(Equal("I warble"))
			Expect(user.HeaderImageURL).To(Equal(entities.DefaultHeaderImageURL))

			reloaded, err := e.users.GetUser(e.ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*reloaded.Bio).To(Equal("I warble"))
		})

		It("exige a senha atual", func() {
			bio := "nope"

			_, err := e.users.UpdateProfile(e.ctx, alice.ID, services.ProfileInput{
				Bio:             &bio,
				CurrentPassword: "wrong",
			})
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})

		It("username já usado é violação de constraint", func() {
			taken := "bob"

			_, err := e.users.UpdateProfile(e.ctx, alice.ID, services.ProfileInput{
				Username:        &taken,
				CurrentPassword: "password",
			})
			Expect(domainerrors.IsConstraintViolation(err)).To(BeTrue())
		})
	})

	Describe("DeleteUser", func() {
		It("remove mensagens, follows e likes do usuário sem deixar órfãos", func() {
			carol := e.signup("carol")

			bobMessage, err := e.messages.CreateMessage(e.ctx, bob.ID, "bob says")
			Expect(err).NotTo(HaveOccurred())
			aliceMessage, err := e.messages.CreateMessage(e.ctx, alice.ID, "alice says")
			Expect(err).NotTo(HaveOccurred())

			Expect(e.relationships.Follow(e.ctx, alice.ID, bob.ID)).To(Succeed())
			Expect(e.relationships.Follow(e.ctx, bob.ID, alice.ID)).To(Succeed())
			Expect(e.relationships.Follow(e.ctx, carol.ID, alice.ID)).To(Succeed())
			Expect(e.messages.AddLike(e.ctx, bob.ID, aliceMessage.ID)).To(Succeed())
			Expect(e.messages.AddLike(e.ctx, carol.ID, bobMessage.ID)).To(Succeed())

			Expect(e.users.DeleteUser(e.ctx, bob.ID)).To(Succeed())

			_, err = e.users.GetUser(e.ctx, bob.ID)
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))

			var orphanFollows, orphanLikes, orphanMessages int64
			Expect(e.db.Model(&postgres.FollowModel{}).
				Where("follower_id = ? OR followed_id = ?", bob.ID, bob.ID).
				Count(&orphanFollows).Error).To(Succeed())
			Expect(e.db.Model(&postgres.LikeModel{}).
				Where("user_id = ? OR message_id = ?", bob.ID, bobMessage.ID).
				Count(&orphanLikes).Error).To(Succeed())
			Expect(e.db.Model(&postgres.MessageModel{}).
				Where("user_id = ?", bob.ID).
				Count(&orphanMessages).Error).To(Succeed())

			Expect(orphanFollows).To(BeZero())
			Expect(orphanLikes).To(BeZero())
			Expect(orphanMessages).To(BeZero())

			// o resto do grafo continua intacto
			Expect(e.count(&postgres.FollowModel{})).To(Equal(int64(1)))
			Expect(e.count(&postgres.MessageModel{})).To(Equal(int64(1)))
		})

		It("retorna ErrUserNotFound para ID desconhecido", func() {
			err := e.users.DeleteUser(e.ctx, "00000000-0000-0000-0000-000000000000")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})
})
