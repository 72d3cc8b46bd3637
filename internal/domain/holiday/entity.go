package holiday

import "time"

// Holiday is one company-wide day off. Date is unique across the calendar.
type Holiday struct {
	ID            string
	Date          string // YYYY-MM-DD
	Description   string
	CreatedBy     *string
	CreatedByName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
