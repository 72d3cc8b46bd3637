package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-server/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-server/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-server/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User is inactive")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Attendance lifecycle conflicts
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		BadRequest(w, "Already clocked in today", nil)
	case errors.Is(err, attendance.ErrNoActiveSession):
		BadRequest(w, "No active attendance session for today", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		BadRequest(w, "Already clocked out today", nil)
	case errors.Is(err, attendance.ErrBreakInProgress):
		BadRequest(w, "Please end your break before clocking out", nil)
	case errors.Is(err, attendance.ErrBreakAlreadyActive):
		BadRequest(w, "Break already in progress", nil)
	case errors.Is(err, attendance.ErrNoActiveBreak):
		BadRequest(w, "No active break found", nil)
	case errors.Is(err, attendance.ErrInvalidBreakType):
		BadRequest(w, "Invalid break type", nil)
	case errors.Is(err, attendance.ErrNoRecordFound):
		NotFound(w, "No attendance record found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayAlreadyExists):
		Conflict(w, "Holiday already exists for this date")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
