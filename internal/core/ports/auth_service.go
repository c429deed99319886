package ports

import (
	"context"
	"time"

	"github.com/identitykit/identity-service/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginResult is returned on successful authentication. ExpiresAt is the
// token's exact expiry instant (issue time plus the configured TTL).
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuthService implements registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
