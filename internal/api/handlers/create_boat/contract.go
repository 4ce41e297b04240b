package create_boat

import (
	"context"

	"github.com/m04kA/BRM-RentalService/internal/service/boats/models"
)

type BoatService interface {
	Create(ctx context.Context, req *models.CreateBoatRequest) (*models.BoatResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
