package attendance

import (
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

const (
	HistoryLimit = 100
	ListLimit    = 1000
)

type ClockInRequest struct {
	UserID    string `json:"-"`
	ActorName string `json:"-"`
	Location  string `json:"location,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if len(r.Location) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	UserID    string `json:"-"`
	ActorName string `json:"-"`
}

func (r *ClockOutRequest) Validate() error {
	if validator.IsEmpty(r.UserID) {
		return validator.ValidationErrors{{Field: "user_id", Message: "user_id is required"}}
	}
	return nil
}

type StartBreakRequest struct {
	UserID string    `json:"-"`
	Type   BreakType `json:"type,omitempty"`
}

func (r *StartBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Type == "" {
		r.Type = BreakTypeStandard
	}
	if !validator.IsInSlice(string(r.Type), []string{string(BreakTypeStandard), string(BreakTypeExtra)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: Standard, Extra",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EndBreakRequest struct {
	UserID string `json:"-"`
}

func (r *EndBreakRequest) Validate() error {
	if validator.IsEmpty(r.UserID) {
		return validator.ValidationErrors{{Field: "user_id", Message: "user_id is required"}}
	}
	return nil
}

// RecordFilter is the storage-level query used by the repository.
type RecordFilter struct {
	UserID     *string
	Date       *string // YYYY-MM-DD
	StartDate  *string // YYYY-MM-DD, inclusive
	EndDate    *string // YYYY-MM-DD, inclusive
	Department *string

	// Unflagged restricts to closed records whose flags were never computed
	Unflagged bool
	// SortByCheckIn orders by check-in ascending instead of date descending
	SortByCheckIn bool
	// Limit of 0 means no limit
	Limit int
}

type HistoryFilter struct {
	UserID    string  `json:"-"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	errs = append(errs, validateDateRange(f.StartDate, f.EndDate)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	UserID    *string `json:"user_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.UserID != nil && !validator.IsValidUUID(*f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	errs = append(errs, validateDateRange(f.StartDate, f.EndDate)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BackfillRequest struct {
	UserID    *string `json:"user_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (r *BackfillRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID != nil && !validator.IsValidUUID(*r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	errs = append(errs, validateDateRange(r.StartDate, r.EndDate)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BackfillResult struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

func validateDateRange(startDate, endDate *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	var start, end time.Time
	var startOK, endOK bool

	if startDate != nil && *startDate != "" {
		if start, startOK = validator.IsValidDate(*startDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if endDate != nil && *endDate != "" {
		if end, endOK = validator.IsValidDate(*endDate); !endOK {
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

	return errs
}

type BreakResponse struct {
	Start           string  `json:"start"`
	End             *string `json:"end,omitempty"`
	Type            string  `json:"type"`
	DurationSeconds int64   `json:"duration_seconds"`
}

type AttendanceResponse struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	UserName           *string         `json:"user_name,omitempty"`
	Department         *string         `json:"department,omitempty"`
	Date               string          `json:"date"`
	CheckIn            *string         `json:"check_in,omitempty"`
	CheckOut           *string         `json:"check_out,omitempty"`
	Location           *string         `json:"location,omitempty"`
	Breaks             []BreakResponse `json:"breaks"`
	TotalWorkedSeconds int64           `json:"total_worked_seconds"`
	LowTimeFlag        bool            `json:"low_time_flag"`
	ExtraTimeFlag      bool            `json:"extra_time_flag"`
	Notes              *string         `json:"notes,omitempty"`
	Status             State           `json:"status"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

// ToResponse maps a record to its API representation.
func ToResponse(r AttendanceRecord) AttendanceResponse {
	breaks := make([]BreakResponse, 0, len(r.Breaks))
	for _, b := range r.Breaks {
		breaks = append(breaks, BreakResponse{
			Start:           b.Start.UTC().Format(time.RFC3339),
			End:             timePtrToString(b.End),
			Type:            string(b.Type),
			DurationSeconds: b.DurationSeconds,
		})
	}

	resp := AttendanceResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		UserName:           r.UserName,
		Department:         r.UserDepartment,
		Date:               r.Date,
		CheckIn:            timePtrToString(r.CheckIn),
		CheckOut:           timePtrToString(r.CheckOut),
		Location:           r.Location,
		Breaks:             breaks,
		TotalWorkedSeconds: r.TotalWorkedSeconds,
		LowTimeFlag:        r.LowTimeFlag != nil && *r.LowTimeFlag,
		ExtraTimeFlag:      r.ExtraTimeFlag != nil && *r.ExtraTimeFlag,
		Notes:              r.Notes,
		Status:             StateOf(&r),
	}
	if !r.CreatedAt.IsZero() {
		resp.CreatedAt = r.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !r.UpdatedAt.IsZero() {
		resp.UpdatedAt = r.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
