package models

import (
	"time"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

// Request модели

// CreateBoatRequest запрос на добавление лодки в парк
type CreateBoatRequest struct {
	UserID      int64    `json:"userId"`
	CompanyID   int64    `json:"companyId"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Capacity    int      `json:"capacity"`
	PricePerDay float64  `json:"pricePerDay"`
	Location    string   `json:"location"`
	Features    []string `json:"features,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

// UpdateBoatRequest запрос на обновление лодки
// Частичное обновление: nil-поля остаются без изменений
type UpdateBoatRequest struct {
	UserID      int64     `json:"userId"`
	Name        *string   `json:"name,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	PricePerDay *float64  `json:"pricePerDay,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
}

// ListBoatsRequest запрос на получение списка лодок
type ListBoatsRequest struct {
	CompanyID *int64  `json:"companyId,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// Response модели

// BoatResponse ответ с данными лодки
type BoatResponse struct {
	ID            int64     `json:"id"`
	CompanyID     int64     `json:"companyId"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Capacity      int       `json:"capacity"`
	PricePerDay   float64   `json:"pricePerDay"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	BookingsCount int       `json:"bookingsCount"`
	Revenue       float64   `json:"revenue"`
	Features      []string  `json:"features"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BoatListResponse ответ со списком лодок
type BoatListResponse struct {
	Boats []BoatResponse `json:"boats"`
	Total int            `json:"total"`
}

// Методы конвертации

// FromDomainBoat конвертирует domain модель в DTO
func FromDomainBoat(b *domain.Boat) *BoatResponse {
	if b == nil {
		return nil
	}

	features := b.Features
	if features == nil {
		features = []string{}
	}

	return &BoatResponse{
		ID:            b.ID,
		CompanyID:     b.CompanyID,
		Name:          b.Name,
		Type:          b.Type,
		Capacity:      b.Capacity,
		PricePerDay:   b.PricePerDay,
		Location:      b.Location,
		Status:        string(b.Status),
		BookingsCount: b.BookingsCount,
		Revenue:       b.Revenue,
		Features:      features,
		ImageURL:      b.ImageURL,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBoatList конвертирует список domain моделей в DTO
func FromDomainBoatList(boats []*domain.Boat) *BoatListResponse {
	resp := &BoatListResponse{
		Boats: make([]BoatResponse, 0, len(boats)),
	}

	for _, boat := range boats {
		if boatResp := FromDomainBoat(boat); boatResp != nil {
			resp.Boats = append(resp.Boats, *boatResp)
		}
	}

	resp.Total = len(resp.Boats)
	return resp
}
