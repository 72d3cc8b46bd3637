package attendance

import "errors"

// Attendance domain errors
var (
	// Lifecycle state conflicts
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrNoActiveSession    = errors.New("no active attendance session for today")
	ErrAlreadyClockedOut  = errors.New("already clocked out today")
	ErrBreakInProgress    = errors.New("please end your break before clocking out")
	ErrBreakAlreadyActive = errors.New("break already in progress")
	ErrNoRecordFound      = errors.New("no attendance record found")
	ErrNoActiveBreak      = errors.New("no active break found")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidBreakType   = errors.New("invalid break type")
)
