package ports

import (
	"context"

	"github.com/identitykit/identity-service/internal/core/domain"
)

// UserService covers profile retrieval and administrative user management.
type UserService interface {
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, actor, id string) error
	ListAll(ctx context.Context) ([]domain.User, error)
}
