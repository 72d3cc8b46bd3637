package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens today's record for the actor
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's session and finalizes worked time and flags
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	StartBreak(ctx context.Context, req StartBreakRequest) (AttendanceResponse, error)
	EndBreak(ctx context.Context, req EndBreakRequest) (AttendanceResponse, error)

	// GetToday returns nil when the user has not clocked in today
	GetToday(ctx context.Context, userID string) (*AttendanceResponse, error)

	// GetHistory retrieves the user's own records, reclassifying legacy rows on the way
	GetHistory(ctx context.Context, filter HistoryFilter) ([]AttendanceResponse, error)

	// ListAll retrieves records of every user (HR/Admin)
	ListAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)

	// ListToday retrieves today's records of every user (HR/Admin)
	ListToday(ctx context.Context) ([]AttendanceResponse, error)

	// Backfill recomputes totals and flags for closed records that are missing them
	Backfill(ctx context.Context, req BackfillRequest) (BackfillResult, error)
}
