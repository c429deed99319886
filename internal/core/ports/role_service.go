package ports

import (
	"context"

	"github.com/identitykit/identity-service/internal/core/domain"
)

// RoleService manages the role catalogue and per-user role assignment.
// AddRoles rejects role names missing from the catalogue with
// domain.ErrRoleNotFound; RemoveRoles treats names the user does not hold
// as a no-op. Both return the user with the refreshed role set.
type RoleService interface {
	CreateRole(ctx context.Context, actor, name string) (*domain.Role, error)
	AddRoles(ctx context.Context, actor, userID string, names []string) (*domain.User, error)
	RemoveRoles(ctx context.Context, actor, userID string, names []string) (*domain.User, error)
}
