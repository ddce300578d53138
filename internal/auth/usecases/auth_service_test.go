package usecases_test

import (
	"context"
	"errors"
	"time"

	"consignment-server/internal/auth/domain"
	"consignment-server/internal/auth/usecases"
	shareddomain "consignment-server/internal/shared_kernel/domain"
	mockusecases "consignment-server/test/unit/doubles/auth/usecases"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("AuthService", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		repository *mockusecases.MockOperatorRepository
		service    *usecases.SimpleAuthService
		operator   domain.Operator
		secret     []byte
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		repository = mockusecases.NewMockOperatorRepository(ctrl)
		secret = []byte("test-secret")
		service = usecases.NewAuthService(repository, usecases.AuthConfig{Secret: secret, SessionTTL: time.Hour})

		var err error
		operator, err = domain.NewOperatorBuilder().WithID("op-1").WithUsername("admin").WithPassword("s3cret").Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Authenticate", func() {
		It("issues a signed session for valid credentials", func() {
			repository.EXPECT().GetByUsername(gomock.Any(), "admin").Return(operator, nil)

			issued, err := service.Authenticate(ctx, "admin", "s3cret")

			Expect(err).NotTo(HaveOccurred())
			Expect(issued.Token).NotTo(BeEmpty())
			Expect(issued.Session.OperatorID).To(Equal(shareddomain.ID("op-1")))
			Expect(issued.Session.Username).To(Equal("admin"))
			Expect(issued.Session.ExpiresAt).To(BeTemporally("~", time.Now().Add(time.Hour), time.Minute))
		})

		It("rejects a wrong password", func() {
			repository.EXPECT().GetByUsername(gomock.Any(), "admin").Return(operator, nil)

			_, err := service.Authenticate(ctx, "admin", "wrong")

			Expect(err).To(MatchError(usecases.ErrInvalidCredentials))
		})

		It("rejects an unknown username with the same error", func() {
			repository.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(domain.Operator{}, usecases.ErrOperatorNotFound)

			_, err := service.Authenticate(ctx, "ghost", "s3cret")

			Expect(err).To(MatchError(usecases.ErrInvalidCredentials))
		})

		It("propagates store failures", func() {
			repository.EXPECT().GetByUsername(gomock.Any(), "admin").Return(domain.Operator{}, errors.New("connection refused"))

			_, err := service.Authenticate(ctx, "admin", "s3cret")

			Expect(err).To(HaveOccurred())
			Expect(err).NotTo(MatchError(usecases.ErrInvalidCredentials))
		})
	})

	Context("ResolveSession", func() {
		var token string

		BeforeEach(func() {
			repository.EXPECT().GetByUsername(gomock.Any(), "admin").Return(operator, nil)
			issued, err := service.Authenticate(ctx, "admin", "s3cret")
			Expect(err).NotTo(HaveOccurred())
			token = issued.Token
		})

		It("resolves a token it issued", func() {
			repository.EXPECT().GetByID(gomock.Any(), shareddomain.ID("op-1")).Return(operator, nil)

			session, err := service.ResolveSession(ctx, token)

			Expect(err).NotTo(HaveOccurred())
			Expect(session.Username).To(Equal("admin"))
			Expect(session.OperatorID).To(Equal(operator.ID))
		})

		It("rejects a token signed with another secret", func() {
			other := usecases.NewAuthService(repository, usecases.AuthConfig{Secret: []byte("other")})

			_, err := other.ResolveSession(ctx, token)

			Expect(err).To(MatchError(usecases.ErrInvalidSession))
		})

		It("rejects a tampered token", func() {
			_, err := service.ResolveSession(ctx, token+"x")

			Expect(err).To(MatchError(usecases.ErrInvalidSession))
		})

		It("rejects a token using the none algorithm", func() {
			unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
				Subject:   "op-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}).SignedString(jwt.UnsafeAllowNoneSignatureType)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ResolveSession(ctx, unsigned)

			Expect(err).To(MatchError(usecases.ErrInvalidSession))
		})

		It("rejects a session whose operator no longer exists", func() {
			repository.EXPECT().GetByID(gomock.Any(), shareddomain.ID("op-1")).Return(domain.Operator{}, usecases.ErrOperatorNotFound)

			_, err := service.ResolveSession(ctx, token)

			Expect(err).To(MatchError(usecases.ErrInvalidSession))
		})
	})

	It("rejects expired tokens", func() {
		expiring := usecases.NewAuthService(repository, usecases.AuthConfig{Secret: secret, SessionTTL: -time.Minute})
		repository.EXPECT().GetByUsername(gomock.Any(), "admin").Return(operator, nil)
		issued, err := expiring.Authenticate(ctx, "admin", "s3cret")
		Expect(err).NotTo(HaveOccurred())

		_, err = expiring.ResolveSession(ctx, issued.Token)

		Expect(err).To(MatchError(usecases.ErrInvalidSession))
	})

	Context("EnsureOperator", func() {
		It("creates the operator when missing", func() {
			repository.EXPECT().GetByUsername(gomock.Any(), "admin").Return(domain.Operator{}, usecases.ErrOperatorNotFound)
			repository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, created domain.Operator) error {
				Expect(created.Username).To(Equal("admin"))
				Expect(created.CheckPassword("s3cret")).To(BeTrue())
				return nil
			})

			Expect(service.EnsureOperator(ctx, "admin", "s3cret")).To(Succeed())
		})

		It("leaves an existing operator untouched", func() {
			repository.EXPECT().GetByUsername(gomock.Any(), "admin").Return(operator, nil)

			Expect(service.EnsureOperator(ctx, "admin", "changed")).To(Succeed())
		})

		It("refuses an empty password", func() {
			repository.EXPECT().GetByUsername(gomock.Any(), "admin").Return(domain.Operator{}, usecases.ErrOperatorNotFound)

			err := service.EnsureOperator(ctx, "admin", "")

			Expect(err).To(MatchError(domain.ErrPasswordRequired))
		})
	})
})
