package ports

import (
	"context"

	"github.com/identitykit/identity-service/internal/core/domain"
)

// Specification narrows and orders a user listing. The zero value selects
// everything in unspecified order; repositories translate it to a native
// query.
type Specification struct {
	Username string
	Email    string
	Role     string
	SortBy   string
	Limit    int64
	Offset   int64
}

// UserRepository defines the persistence contract for user accounts.
// Uniqueness of username and email is enforced by the store's own indexes;
// Create surfaces a constraint violation as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, spec Specification) ([]domain.User, error)
	UpdateRoles(ctx context.Context, id string, roles []string) error
	Delete(ctx context.Context, id string) error
}
