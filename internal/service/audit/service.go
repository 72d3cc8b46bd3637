package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hrms-server/hrms-backend-go/internal/domain/audit"
)

const recordTimeout = 5 * time.Second

type AuditServiceImpl struct {
	audit.AuditRepository
	wg sync.WaitGroup
}

// Record implements audit.Sink. The entry is written in the background and a failure
// is only logged.
func (s *AuditServiceImpl) Record(ctx context.Context, entry audit.Entry) {
	if entry.ID == "" {
		entry.ID = uuid.Must(uuid.NewV7()).String()
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
		defer cancel()

		if _, err := s.AuditRepository.Create(ctx, entry); err != nil {
			slog.Error("Failed to record audit entry",
				"action", entry.Action,
				"target_type", entry.TargetType,
				"actor_id", entry.ActorID,
				"error", err,
			)
		}
	}()
}

// Wait blocks until every pending Record has finished.
func (s *AuditServiceImpl) Wait() {
	s.wg.Wait()
}

// List implements audit.AuditService.
func (s *AuditServiceImpl) List(ctx context.Context, filter audit.ListFilter) ([]audit.EntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.AuditRepository.List(ctx, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	responses := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, audit.ToResponse(e))
	}
	return responses, nil
}

func NewAuditService(auditRepo audit.AuditRepository) *AuditServiceImpl {
	return &AuditServiceImpl{AuditRepository: auditRepo}
}
