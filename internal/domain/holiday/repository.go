package holiday

import "context"

// HolidayRepository - interface for company_holidays table
type HolidayRepository interface {
	// Create returns ErrHolidayAlreadyExists when the date is taken.
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context, filter ListFilter) ([]Holiday, error)

	// Delete removes the holiday and returns the deleted row.
	Delete(ctx context.Context, id string) (Holiday, error)
}
