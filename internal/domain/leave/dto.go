package leave

import (
	"time"

	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	UserID        string   `json:"-"`
	UserName      string   `json:"-"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	StartTime     *string  `json:"start_time,omitempty"`
	EndTime       *string  `json:"end_time,omitempty"`
	Category      Category `json:"category"`
	Reason        string   `json:"reason"`
	AttachmentURL *string  `json:"attachment_url,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	// Dates
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	// Times
	if r.StartTime != nil && !validator.IsValidTimeOfDay(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:mm format",
		})
	}
	if r.EndTime != nil && !validator.IsValidTimeOfDay(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:mm format",
		})
	}

	// Category
	if !validator.IsInSlice(string(r.Category), categoryStrings()) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: Paid Leave, Unpaid Leave, Half Day Leave, Extra Time Leave",
		})
	}

	// Reason
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}
	if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func categoryStrings() []string {
	out := make([]string, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, string(c))
	}
	return out
}

type LeaveRequestFilter struct {
	UserID *string `json:"user_id,omitempty"`
	Status *Status `json:"status,omitempty"`
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.UserID != nil && !validator.IsValidUUID(*f.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a valid UUID",
		})
	}

	if f.Status != nil {
		valid := []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
		if !validator.IsInSlice(string(*f.Status), valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Pending, Approved, Rejected",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveStatusRequest struct {
	ID        string  `json:"-"`
	ActorID   string  `json:"-"`
	ActorName string  `json:"-"`
	Status    Status  `json:"status"`
	HRComment *string `json:"hr_comment,omitempty"`
}

func (r *UpdateLeaveStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Status != StatusApproved && r.Status != StatusRejected {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Approved, Rejected",
		})
	}

	if r.HRComment != nil && len(*r.HRComment) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "hr_comment",
			Message: "hr_comment must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	UserName       string  `json:"user_name"`
	UserDepartment *string `json:"user_department,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	StartTime      *string `json:"start_time,omitempty"`
	EndTime        *string `json:"end_time,omitempty"`
	Category       string  `json:"category"`
	Reason         string  `json:"reason"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
	Status         string  `json:"status"`
	HRComment      *string `json:"hr_comment,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		UserName:       r.UserName,
		UserDepartment: r.UserDepartment,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Category:       string(r.Category),
		Reason:         r.Reason,
		AttachmentURL:  r.AttachmentURL,
		Status:         string(r.Status),
		HRComment:      r.HRComment,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
