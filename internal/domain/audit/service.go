package audit

import "context"

// Sink accepts audit entries. Recording never fails the caller's operation.
type Sink interface {
	Record(ctx context.Context, entry Entry)
}

type AuditService interface {
	Sink
	List(ctx context.Context, filter ListFilter) ([]EntryResponse, error)
}
