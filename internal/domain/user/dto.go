package user

import (
	"github.com/hrms-server/hrms-backend-go/internal/pkg/validator"
)

type ListFilter struct {
	Role *Role `json:"role,omitempty"`
}

func (f *ListFilter) Validate() error {
	if f.Role == nil {
		return nil
	}
	if _, known := RolePermissions[*f.Role]; !known {
		return validator.ValidationErrors{{
			Field:   "role",
			Message: "role must be one of: Employee, HR, Admin",
		}}
	}
	return nil
}

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
	}
}

// LeaveBreakdown counts approved leave requests per category.
type LeaveBreakdown struct {
	Paid      int `json:"paid"`
	Unpaid    int `json:"unpaid"`
	HalfDay   int `json:"half_day"`
	ExtraTime int `json:"extra_time"`
	Total     int `json:"total"`
}

type EmployeeStats struct {
	User               UserResponse   `json:"user"`
	PresentDays        int            `json:"present_days"`
	TotalWorkedSeconds int64          `json:"total_worked_seconds"`
	TotalWorkedHours   string         `json:"total_worked_hours"`
	LowTimeCount       int            `json:"low_time_count"`
	ExtraTimeCount     int            `json:"extra_time_count"`
	Leaves             LeaveBreakdown `json:"leaves"`
}
