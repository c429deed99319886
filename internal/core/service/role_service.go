package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/identitykit/identity-service/internal/api/metrics"
	"github.com/identitykit/identity-service/internal/core/domain"
	"github.com/identitykit/identity-service/internal/core/ports"
)

// RoleService implements role catalogue management and per-user assignment.
type RoleService struct {
	users ports.UserRepository
	roles ports.RoleRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewRoleService(users ports.UserRepository, roles ports.RoleRepository, audit ports.AuditSink, log zerolog.Logger) *RoleService {
	return &RoleService{users: users, roles: roles, audit: audit, log: log}
}

func (s *RoleService) CreateRole(ctx context.Context, actor, name string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	role := &domain.Role{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		return nil, err
	}

	metrics.RoleMutationsTotal.WithLabelValues("create").Inc()
	s.record(domain.AuthEvent{
		Actor:   actor,
		Action:  domain.ActionCreateRole,
		Subject: name,
		Outcome: domain.OutcomeSuccess,
	})
	return created, nil
}

// AddRoles grants the named roles to the user. Every requested name must
// exist in the catalogue; unknown names fail the whole request rather than
// being silently dropped.
func (s *RoleService) AddRoles(ctx context.Context, actor, userID string, names []string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	names = normalizeNames(names)
	if len(names) == 0 {
		return nil, domain.ErrInvalidInput
	}

	known, err := s.roles.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	if missing := difference(names, known); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoleNotFound, strings.Join(missing, ", "))
	}

	updated := union(user.Roles, names)
	if err := s.users.UpdateRoles(ctx, user.ID, updated); err != nil {
		return nil, err
	}

	metrics.RoleMutationsTotal.WithLabelValues("add").Inc()
	s.record(domain.AuthEvent{
		Actor:   actor,
		Action:  domain.ActionAddRoles,
		Subject: user.Username,
		Outcome: domain.OutcomeSuccess,
		Detail:  strings.Join(names, ","),
	})

	return s.users.FindByID(ctx, user.ID)
}

// RemoveRoles revokes the named roles from the user. Names the user does
// not hold are ignored, so add-then-remove of the same set round-trips to
// the original role set.
func (s *RoleService) RemoveRoles(ctx context.Context, actor, userID string, names []string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	names = normalizeNames(names)
	if len(names) == 0 {
		return nil, domain.ErrInvalidInput
	}

	updated := difference(user.Roles, names)
	if err := s.users.UpdateRoles(ctx, user.ID, updated); err != nil {
		return nil, err
	}

	metrics.RoleMutationsTotal.WithLabelValues("remove").Inc()
	s.record(domain.AuthEvent{
		Actor:   actor,
		Action:  domain.ActionRemoveRoles,
		Subject: user.Username,
		Outcome: domain.OutcomeSuccess,
		Detail:  strings.Join(names, ","),
	})

	return s.users.FindByID(ctx, user.ID)
}

func (s *RoleService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	s.audit.Enqueue(event)
}

// normalizeNames trims and deduplicates role names, preserving order.
func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// union merges extra into base, preserving order of first appearance.
func union(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, n := range append(append([]string{}, base...), extra...) {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// difference returns the members of a not present in b.
func difference(a, b []string) []string {
	drop := make(map[string]struct{}, len(b))
	for _, n := range b {
		drop[n] = struct{}{}
	}
	out := make([]string, 0, len(a))
	for _, n := range a {
		if _, ok := drop[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}
