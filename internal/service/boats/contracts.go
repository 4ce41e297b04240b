package boats

import (
	"context"

	"github.com/m04kA/BRM-RentalService/internal/domain"
	"github.com/m04kA/BRM-RentalService/internal/integrations/companyservice"
)

// BoatRepository интерфейс репозитория лодок
type BoatRepository interface {
	Create(ctx context.Context, boat *domain.Boat) (*domain.Boat, error)
	GetByID(ctx context.Context, id int64) (*domain.Boat, error)
	ListWithFilter(ctx context.Context, filter domain.BoatsFilter) ([]*domain.Boat, error)
	Update(ctx context.Context, boat *domain.Boat) (*domain.Boat, error)
	Delete(ctx context.Context, id int64) error
}

// CompanyServiceClient интерфейс клиента для CompanyService
type CompanyServiceClient interface {
	GetCompany(ctx context.Context, companyID int64) (*companyservice.Company, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
