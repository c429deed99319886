package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/identitykit/identity-service/internal/api/metrics"
	"github.com/identitykit/identity-service/internal/core/domain"
	"github.com/identitykit/identity-service/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt counter (Redis). A throttle
// error never blocks a login; callers log it and proceed.
type LoginThrottle interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// TokenConfig carries the signing parameters for issued JWTs.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService implements registration and login with HS256 token issuance.
type AuthService struct {
	users    ports.UserRepository
	throttle LoginThrottle
	audit    ports.AuditSink
	token    TokenConfig
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, throttle LoginThrottle, audit ports.AuditSink, token TokenConfig, log zerolog.Logger) *AuthService {
	if token.TTL <= 0 {
		token.TTL = 3 * time.Hour
	}
	return &AuthService{users: users, throttle: throttle, audit: audit, token: token, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:            uuid.NewString(),
		Username:      in.Username,
		Email:         in.Email,
		PasswordHash:  string(hash),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		SecurityStamp: uuid.NewString(),
		Roles:         []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			// Lost the uniqueness race; the store's index is the authority.
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.record(domain.AuthEvent{
		Action:  domain.ActionRegister,
		Subject: created.Username,
		Outcome: domain.OutcomeSuccess,
	})
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	blocked, err := s.throttle.Blocked(ctx, username)
	if err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, proceeding")
	} else if blocked {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Identical failure path to a bad password: no enumeration.
			return nil, s.failLogin(ctx, username)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, s.failLogin(ctx, username)
	}

	if err := s.throttle.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle reset failed")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.token.TTL)
	token, err := s.issueToken(user, now, expiresAt)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	s.record(domain.AuthEvent{
		Action:  domain.ActionLogin,
		Subject: user.Username,
		Outcome: domain.OutcomeSuccess,
	})

	return &ports.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// failLogin records a failed attempt and returns the single credential
// error shared by the unknown-user and wrong-password paths.
func (s *AuthService) failLogin(ctx context.Context, username string) error {
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login throttle record failed")
	}
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	s.record(domain.AuthEvent{
		Action:  domain.ActionLogin,
		Subject: username,
		Outcome: domain.OutcomeFailure,
	})
	return domain.ErrInvalidCredentials
}

func (s *AuthService) issueToken(user *domain.User, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.Username,
		"jti":   uuid.NewString(),
		"roles": user.Roles,
		"iss":   s.token.Issuer,
		"aud":   s.token.Audience,
		"iat":   issuedAt.Unix(),
		"exp":   expiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.token.Secret))
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	s.audit.Enqueue(event)
}
