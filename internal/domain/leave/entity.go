package leave

import "time"

type Category string

const (
	CategoryPaidLeave      Category = "Paid Leave"
	CategoryUnpaidLeave    Category = "Unpaid Leave"
	CategoryHalfDayLeave   Category = "Half Day Leave"
	CategoryExtraTimeLeave Category = "Extra Time Leave"

	// categoryHalfDayLegacy is still present on old rows
	categoryHalfDayLegacy Category = "Half Day"
)

// Categories lists the categories accepted for new requests.
var Categories = []Category{
	CategoryPaidLeave,
	CategoryUnpaidLeave,
	CategoryHalfDayLeave,
	CategoryExtraTimeLeave,
}

// HalfDayCategories are the stored category values that halve the working-day band.
var HalfDayCategories = []Category{CategoryHalfDayLeave, categoryHalfDayLegacy}

func IsHalfDayCategory(c Category) bool {
	for _, hd := range HalfDayCategories {
		if c == hd {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID       string
	UserID   string
	UserName string

	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	// HH:mm, used by half day and extra time leave
	StartTime *string
	EndTime   *string

	Category      Category
	Reason        string
	AttachmentURL *string

	Status    Status
	HRComment *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	UserDepartment *string
}
