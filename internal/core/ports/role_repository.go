package ports

import (
	"context"

	"github.com/identitykit/identity-service/internal/core/domain"
)

// RoleRepository defines the persistence contract for the role catalogue.
// Create surfaces a duplicate name as domain.ErrRoleExists.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	ListNames(ctx context.Context) ([]string, error)
}
