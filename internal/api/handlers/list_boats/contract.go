package list_boats

import (
	"context"

	"github.com/m04kA/BRM-RentalService/internal/service/boats/models"
	searchBoats "github.com/m04kA/BRM-RentalService/internal/usecase/search_available_boats"
)

type BoatService interface {
	List(ctx context.Context, req *models.ListBoatsRequest) (*models.BoatListResponse, error)
}

type SearchAvailableBoatsUseCase interface {
	Execute(ctx context.Context, req *searchBoats.Request) (*searchBoats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
