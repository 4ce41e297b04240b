package get_boat

import (
	"context"

	"github.com/m04kA/BRM-RentalService/internal/service/boats/models"
)

type BoatService interface {
	GetByID(ctx context.Context, id int64) (*models.BoatResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
