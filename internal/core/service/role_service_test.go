package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/identitykit/identity-service/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username string, roles ...string) *domain.User {
	t.Helper()
	user := &domain.User{ID: "id-" + username, Username: username, Roles: roles}
	created, err := repo.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return created
}

func TestRoleService_CreateRole_BlankName(t *testing.T) {
	svc := NewRoleService(newStubUserRepo(), newStubRoleRepo(), nil, zerolog.Nop())

	if _, err := svc.CreateRole(context.Background(), "admin", "   "); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRoleService_CreateRole_Duplicate(t *testing.T) {
	svc := NewRoleService(newStubUserRepo(), newStubRoleRepo("Editor"), nil, zerolog.Nop())

	if _, err := svc.CreateRole(context.Background(), "admin", "Editor"); err != domain.ErrRoleExists {
		t.Fatalf("expected ErrRoleExists, got %v", err)
	}
}

func TestRoleService_CreateRole_Success(t *testing.T) {
	sink := &recordingSink{}
	svc := NewRoleService(newStubUserRepo(), newStubRoleRepo(), sink, zerolog.Nop())

	role, err := svc.CreateRole(context.Background(), "admin", "Editor")
	if err != nil {
		t.Fatalf("CreateRole returned error: %v", err)
	}
	if role.ID == "" || role.Name != "Editor" {
		t.Fatalf("unexpected role: %+v", role)
	}
	if len(sink.byAction(domain.ActionCreateRole)) != 1 {
		t.Fatalf("expected audit event for role creation")
	}
}

func TestRoleService_AddRoles_UserNotFound(t *testing.T) {
	svc := NewRoleService(newStubUserRepo(), newStubRoleRepo("Editor"), nil, zerolog.Nop())

	if _, err := svc.AddRoles(context.Background(), "admin", "missing", []string{"Editor"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRoleService_AddRoles_UnknownRoleRejected(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(t, users, "alice")
	svc := NewRoleService(users, newStubRoleRepo("Editor"), nil, zerolog.Nop())

	_, err := svc.AddRoles(context.Background(), "admin", user.ID, []string{"Editor", "Ghost"})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}

	// The whole request fails: nothing was applied.
	fresh, _ := users.FindByID(context.Background(), user.ID)
	if len(fresh.Roles) != 0 {
		t.Fatalf("expected unchanged role set, got %v", fresh.Roles)
	}
}

func TestRoleService_AddThenRemoveRoundTrips(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(t, users, "alice", "Viewer")
	svc := NewRoleService(users, newStubRoleRepo("Viewer", "Editor", "Admin"), nil, zerolog.Nop())

	added, err := svc.AddRoles(context.Background(), "admin", user.ID, []string{"Editor", "Admin"})
	if err != nil {
		t.Fatalf("AddRoles returned error: %v", err)
	}
	if !reflect.DeepEqual(added.Roles, []string{"Viewer", "Editor", "Admin"}) {
		t.Fatalf("unexpected roles after add: %v", added.Roles)
	}

	removed, err := svc.RemoveRoles(context.Background(), "admin", user.ID, []string{"Editor", "Admin"})
	if err != nil {
		t.Fatalf("RemoveRoles returned error: %v", err)
	}
	if !reflect.DeepEqual(removed.Roles, []string{"Viewer"}) {
		t.Fatalf("expected round trip to original set, got %v", removed.Roles)
	}
}

func TestRoleService_AddRoles_AlreadyHeldIsIdempotent(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(t, users, "alice", "Editor")
	svc := NewRoleService(users, newStubRoleRepo("Editor"), nil, zerolog.Nop())

	updated, err := svc.AddRoles(context.Background(), "admin", user.ID, []string{"Editor", "Editor"})
	if err != nil {
		t.Fatalf("AddRoles returned error: %v", err)
	}
	if !reflect.DeepEqual(updated.Roles, []string{"Editor"}) {
		t.Fatalf("expected single Editor role, got %v", updated.Roles)
	}
}

func TestRoleService_RemoveRoles_NotHeldIsNoop(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(t, users, "alice", "Viewer")
	svc := NewRoleService(users, newStubRoleRepo("Viewer", "Editor"), nil, zerolog.Nop())

	updated, err := svc.RemoveRoles(context.Background(), "admin", user.ID, []string{"Editor"})
	if err != nil {
		t.Fatalf("RemoveRoles returned error: %v", err)
	}
	if !reflect.DeepEqual(updated.Roles, []string{"Viewer"}) {
		t.Fatalf("expected unchanged role set, got %v", updated.Roles)
	}
}

func TestRoleService_EmptyNamesRejected(t *testing.T) {
	users := newStubUserRepo()
	user := seedUser(t, users, "alice")
	svc := NewRoleService(users, newStubRoleRepo(), nil, zerolog.Nop())

	if _, err := svc.AddRoles(context.Background(), "admin", user.ID, []string{"  ", ""}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
