package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/warbler-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/warbler-backend/internal/domain/errors"
	"github.com/rafabene/warbler-backend/internal/infrastructure/persistence/postgres"
)

var _ = Describe("RelationshipService", func() {
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

	expectRelation := func(following bool) {
		GinkgoHelper()

		isFollowing, err := e.relationships.IsFollowing(e.ctx, alice.ID, bob.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(isFollowing).To(Equal(following))

		isFollowedBy, err := e.relationships.IsFollowedBy(e.ctx, bob.ID, alice.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(isFollowedBy).To(Equal(following))

		followers, err := e.relationships.Followers(e.ctx, bob.ID)
		Expect(err).NotTo(HaveOccurred())
		if following {
			Expect(followers).To(HaveLen(1))
			Expect(followers[0].ID).To(Equal(alice.ID))
		} else {
			Expect(followers).To(BeEmpty())
		}

		following2, err := e.relationships.Following(e.ctx, alice.ID)
		Expect(err).NotTo(HaveOccurred())
		if following {
			Expect(following2).To(HaveLen(1))
		} else {
			Expect(following2).To(BeEmpty())
		}
	}

	It("segue e deixa de seguir", func() {
		expectRelation(false)

		Expect(e.relationships.Follow(e.ctx, alice.ID, bob.ID)).To(Succeed())
		expectRelation(true)

		// a aresta é direcionada
		reverse, err := e.relationships.IsFollowing(e.ctx, bob.ID, alice.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(reverse).To(BeFalse())

		Expect(e.relationships.Unfollow(e.ctx, alice.ID, bob.ID)).To(Succeed())
		expectRelation(false)
	})

	It("rejeita seguir duas vezes com violação de constraint", func() {
		Expect(e.relationships.Follow(e.ctx, alice.ID, bob.ID)).To(Succeed())

		err := e.relationships.Follow(e.ctx, alice.ID, bob.ID)
		Expect(domainerrors.IsConstraintViolation(err)).To(BeTrue())
		Expect(e.count(&postgres.FollowModel{})).To(Equal(int64(1)))
	})

	It("rejeita seguir a si mesmo", func() {
		err := e.relationships.Follow(e.ctx, alice.ID, alice.ID)
		Expect(err).To(MatchError(domainerrors.ErrCannotFollowSelf))
	})

	It("rejeita seguir usuário inexistente", func() {
		err := e.relationships.Follow(e.ctx, alice.ID, "00000000-0000-0000-0000-000000000000")
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
	})

	It("deixar de seguir sem seguir retorna ErrNotFollowing", func() {
		err := e.relationships.Unfollow(e.ctx, alice.ID, bob.ID)
		Expect(err).To(MatchError(domainerrors.ErrNotFollowing))
	})
})
