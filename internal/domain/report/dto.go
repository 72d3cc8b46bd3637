package report

import (
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE REPORT
// ========================================

type AttendanceReportRequest struct {
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Department *string `json:"department,omitempty"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var startOK, endOK bool

	if r.StartDate != nil {
		if start, startOK = validator.IsValidDate(*r.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if end, endOK = validator.IsValidDate(*r.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceReport struct {
	GeneratedAt string  `json:"generated_at"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Department  *string `json:"department,omitempty"`

	Rows []AttendanceReportRow `json:"rows"`
}

type AttendanceReportRow struct {
	Date          string `json:"date"`
	EmployeeID    string `json:"employee_id"`
	Name          string `json:"name"`
	Department    string `json:"department"`
	Location      string `json:"location"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	BreakCount    int    `json:"break_count"`
	WorkedSeconds int64  `json:"worked_seconds"`
	LowTime       string `json:"low_time"`   // Yes / No
	ExtraTime     string `json:"extra_time"` // Yes / No
	Notes         string `json:"notes"`
}

// YesNo renders a flag the way report consumers expect it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
