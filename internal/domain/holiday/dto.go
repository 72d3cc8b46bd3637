package holiday

import (
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
)

// accepted input layouts, year-first before day-first
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2-1-2006",
	"2/1/2006",
}

// NormalizeDate parses a calendar date in YYYY-MM-DD, DD-MM-YYYY or their slash
// forms and returns it as YYYY-MM-DD.
func NormalizeDate(s string) (string, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

type CreateHolidayRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	ActorID     string `json:"-"`
	ActorName   string `json:"-"`
}

// Validate also rewrites Date into YYYY-MM-DD.
func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if normalized, ok := NormalizeDate(r.Date); ok {
		r.Date = normalized
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required in YYYY-MM-DD or DD-MM-YYYY format",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if len(r.Description) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var startOK, endOK bool
	if f.StartDate != nil {
		if start, startOK = validator.IsValidDate(*f.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if end, endOK = validator.IsValidDate(*f.EndDate); !endOK {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeleteHolidayRequest struct {
	ID        string
	ActorID   string
	ActorName string
}

func (r *DeleteHolidayRequest) Validate() error {
	if !validator.IsValidUUID(r.ID) {
		return validator.ValidationErrors{{
			Field:   "id",
			Message: "id must be a valid UUID",
		}}
	}
	return nil
}

type HolidayResponse struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	CreatedBy     *string `json:"created_by,omitempty"`
	CreatedByName string  `json:"created_by_name"`
	CreatedAt     string  `json:"created_at"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:            h.ID,
		Date:          h.Date,
		Description:   h.Description,
		CreatedBy:     h.CreatedBy,
		CreatedByName: h.CreatedByName,
		CreatedAt:     h.CreatedAt.UTC().Format(time.RFC3339),
	}
}
