package holiday

import "context"

type HolidayService interface {
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, filter ListFilter) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, req DeleteHolidayRequest) error
}
