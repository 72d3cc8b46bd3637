package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Implementations must enforce uniqueness of (user_id, date).
type AttendanceRepository interface {
	// Create inserts a new record. A duplicate (user, date) returns ErrAlreadyClockedIn.
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// GetByUserAndDate returns nil, nil when the user has no record for the date.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*AttendanceRecord, error)

	// Update persists check-out, breaks, totals, flags and notes of an existing record in one statement.
	Update(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// List returns records matching the filter, newest date first.
	List(ctx context.Context, filter RecordFilter) ([]AttendanceRecord, error)
}
