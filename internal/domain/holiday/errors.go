package holiday

import "errors"

var (
	ErrHolidayNotFound      = errors.New("Holiday not found")
	ErrHolidayAlreadyExists = errors.New("Holiday already exists for this date")
)
