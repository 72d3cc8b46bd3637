package audit

import "context"

type AuditRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	List(ctx context.Context, limit int) ([]Entry, error)
}
