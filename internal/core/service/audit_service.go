package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/identitykit/identity-service/internal/api/metrics"
	"github.com/identitykit/identity-service/internal/core/domain"
	"github.com/identitykit/identity-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns the AuditService the dispatcher workers call to
// persist audit events.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("audit insert: %w", err)
	}
	metrics.AuditEventsTotal.WithLabelValues(event.Action).Inc()
	return nil
}
