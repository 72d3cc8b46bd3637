package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/domain/audit"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryAuditRepo struct {
	mu      sync.Mutex
	entries []audit.Entry
	err     error
	ctxErr  error
}

func (m *memoryAuditRepo) Create(ctx context.Context, e audit.Entry) (audit.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctxErr = ctx.Err()
	if m.err != nil {
		return audit.Entry{}, m.err
	}
	e.CreatedAt = time.Date(2025, 3, 10, 9, 0, len(m.entries), 0, time.UTC)
	m.entries = append(m.entries, e)
	return e, nil
}

func (m *memoryAuditRepo) List(ctx context.Context, limit int) ([]audit.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]audit.Entry, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

var _ audit.AuditService = (*AuditServiceImpl)(nil)

func TestRecord_SurvivesCancelledRequest(t *testing.T) {
	repo := &memoryAuditRepo{}
	svc := NewAuditService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	svc.Record(ctx, audit.Entry{ActorID: "u1", Action: "CLOCK_IN", TargetType: audit.TargetAttendance, Details: "Clocked in at 2025-03-10"})
	cancel()
	svc.Wait()

	require.Len(t, repo.entries, 1)
	assert.Len(t, repo.entries[0].ID, 36)
	assert.NoError(t, repo.ctxErr)
}

func TestRecord_FailureIsSwallowed(t *testing.T) {
	repo := &memoryAuditRepo{err: errors.New("disk full")}
	svc := NewAuditService(repo)

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), audit.Entry{Action: "CLOCK_OUT"})
		svc.Wait()
	})
	assert.Empty(t, repo.entries)
}

func TestList(t *testing.T) {
	repo := &memoryAuditRepo{}
	svc := NewAuditService(repo)
	for _, action := range []string{"CLOCK_IN", "CLOCK_OUT", "UPDATE_LEAVE"} {
		svc.Record(context.Background(), audit.Entry{Action: action})
		svc.Wait()
	}

	logs, err := svc.List(context.Background(), audit.ListFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "UPDATE_LEAVE", logs[0].Action)
	assert.Equal(t, "CLOCK_OUT", logs[1].Action)

	logs, err = svc.List(context.Background(), audit.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, logs, 3)

	_, err = svc.List(context.Background(), audit.ListFilter{Limit: 5000})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
