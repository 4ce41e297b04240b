package get_availability

import (
	"context"

	getBoatCalendar "github.com/m04kA/BRM-RentalService/internal/usecase/get_boat_calendar"
	searchBoats "github.com/m04kA/BRM-RentalService/internal/usecase/search_available_boats"
)

type GetBoatCalendarUseCase interface {
	Execute(ctx context.Context, req *getBoatCalendar.Request) (*getBoatCalendar.Response, error)
}

type SearchAvailableBoatsUseCase interface {
	Execute(ctx context.Context, req *searchBoats.Request) (*searchBoats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
