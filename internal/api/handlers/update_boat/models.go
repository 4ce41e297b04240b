package update_boat

import (
	"github.com/m04kA/BRM-RentalService/internal/service/boats/models"
)

// UpdateBoatRequest HTTP request model
// Частичное обновление: отсутствующие поля не меняются
type UpdateBoatRequest struct {
	Name        *string   `json:"name,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	PricePerDay *float64  `json:"pricePerDay,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBoatRequest) ToServiceRequest(userID int64) *models.UpdateBoatRequest {
	return &models.UpdateBoatRequest{
		UserID:      userID,
		Name:        r.Name,
		Type:        r.Type,
		Capacity:    r.Capacity,
		PricePerDay: r.PricePerDay,
		Location:    r.Location,
		Status:      r.Status,
		Features:    r.Features,
		ImageURL:    r.ImageURL,
	}
}
