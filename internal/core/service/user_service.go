package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/identitykit/identity-service/internal/api/metrics"
	"github.com/identitykit/identity-service/internal/core/domain"
	"github.com/identitykit/identity-service/internal/core/ports"
)

// UserService implements profile retrieval, deletion, and listing.
type UserService struct {
	users ports.UserRepository
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditSink, log zerolog.Logger) *UserService {
	return &UserService{users: users, audit: audit, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, actor, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	s.record(domain.AuthEvent{
		Actor:   actor,
		Action:  domain.ActionDeleteUser,
		Subject: user.Username,
		Outcome: domain.OutcomeSuccess,
	})
	return nil
}

// ListAll returns every stored user with its current role set, ordered by
// username so listings are stable regardless of insertion order.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx, ports.Specification{SortBy: "username"})
}

func (s *UserService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	s.audit.Enqueue(event)
}
