package usecases

//go:generate mockgen -source=./auth_service.go -destination=../../../test/unit/doubles/auth/usecases/auth_service_mock.go -package=usecases -mock_names=AuthService=MockAuthService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"consignment-server/internal/auth/domain"
	shareddomain "consignment-server/internal/shared_kernel/domain"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid session")
)

const _defaultSessionTTL = 12 * time.Hour

// IssuedSession is a freshly authenticated session and the signed token that carries it.
type IssuedSession struct {
	Session shareddomain.Session
	Token   string
}

type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (IssuedSession, error)
	ResolveSession(ctx context.Context, token string) (shareddomain.Session, error)
	EnsureOperator(ctx context.Context, username, password string) error
}

type AuthConfig struct {
	Secret     []byte
	SessionTTL time.Duration
}

func NewAuthService(repository OperatorRepository, config AuthConfig) *SimpleAuthService {
	if config.SessionTTL == 0 {
		config.SessionTTL = _defaultSessionTTL
	}

	return &SimpleAuthService{
		repository: repository,
		secret:     config.Secret,
		ttl:        config.SessionTTL,
	}
}

var _ AuthService = (*SimpleAuthService)(nil)

type SimpleAuthService struct {
	repository OperatorRepository
	secret     []byte
	ttl        time.Duration
}

type sessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

func (s *SimpleAuthService) Authenticate(ctx context.Context, username, password string) (IssuedSession, error) {
	operator, err := s.repository.GetByUsername(ctx, username)
	if errors.Is(err, ErrOperatorNotFound) {
		return IssuedSession{}, ErrInvalidCredentials
	}
	if err != nil {
		slog.Error("getting operator", slog.String("username", username), slog.String("error", err.Error()))
		return IssuedSession{}, fmt.Errorf("getting operator: %w", err)
	}

	if !operator.CheckPassword(password) {
		return IssuedSession{}, ErrInvalidCredentials
	}

	now := time.Now()
	session := shareddomain.Session{
		OperatorID: operator.ID,
		Username:   operator.Username,
		ExpiresAt:  now.Add(s.ttl),
	}

	claims := sessionClaims{
		Name: operator.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return IssuedSession{}, fmt.Errorf("signing session token: %w", err)
	}

	return IssuedSession{Session: session, Token: token}, nil
}

// ResolveSession verifies the token and that its operator still exists.
func (s *SimpleAuthService) ResolveSession(ctx context.Context, token string) (shareddomain.Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return shareddomain.Session{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	operator, err := s.repository.GetByID(ctx, shareddomain.ID(claims.Subject))
	if errors.Is(err, ErrOperatorNotFound) {
		return shareddomain.Session{}, ErrInvalidSession
	}
	if err != nil {
		return shareddomain.Session{}, fmt.Errorf("getting operator: %w", err)
	}

	return shareddomain.Session{
		OperatorID: operator.ID,
		Username:   operator.Username,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// EnsureOperator creates the operator when no account with that username exists.
// An existing account is left untouched.
func (s *SimpleAuthService) EnsureOperator(ctx context.Context, username, password string) error {
	_, err := s.repository.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrOperatorNotFound) {
		return fmt.Errorf("getting operator: %w", err)
	}

	operator, err := domain.NewOperatorBuilder().
		WithUsername(username).
		WithPassword(password).
		Build()
	if err != nil {
		return fmt.Errorf("building operator: %w", err)
	}

	if err := s.repository.Create(ctx, operator); err != nil {
		return fmt.Errorf("creating operator: %w", err)
	}

	slog.Info("operator account created", slog.String("username", operator.Username))
	return nil
}
