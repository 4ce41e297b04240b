package create_boat

import (
	"github.com/m04kA/BRM-RentalService/internal/service/boats/models"
)

// CreateBoatRequest HTTP request model
type CreateBoatRequest struct {
	CompanyID   int64    `json:"companyId"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	PricePerDay float64  `json:"pricePerDay"`
	Location    string   `json:"location"`
	Features    []string `json:"features,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBoatRequest) ToServiceRequest(userID int64) *models.CreateBoatRequest {
	return &models.CreateBoatRequest{
		UserID:      userID,
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Type:        r.Type,
		Capacity:    r.Capacity,
		PricePerDay: r.PricePerDay,
		Location:    r.Location,
		Features:    r.Features,
		ImageURL:    r.ImageURL,
	}
}
