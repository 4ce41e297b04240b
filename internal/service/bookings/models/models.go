package models

import (
	"errors"
	"time"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение бронирований
// Требуется либо BoatID, либо CompanyID: выборка всегда ограничена
// конкретной лодкой или парком одной компании
type ListBookingsRequest struct {
	UserID           int64      `json:"userId"`
	BoatID           *int64     `json:"boatId,omitempty"`
	CompanyID        *int64     `json:"companyId,omitempty"`
	Status           *string    `json:"status,omitempty"`
	DateFrom         *time.Time `json:"dateFrom,omitempty"`
	DateTo           *time.Time `json:"dateTo,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	BoatID    int64  `json:"boatId"`
	StartDate string `json:"startDate"` // "2025-07-01"
	EndDate   string `json:"endDate"`   // "2025-07-05"
	Days      int    `json:"days"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Guests        int     `json:"guests"`

	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`

	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		BoatID:        b.BoatID,
		StartDate:     b.StartDate.Format(domain.DateFormat),
		EndDate:       b.EndDate.Format(domain.DateFormat),
		Days:          b.Days(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	resp.Total = len(resp.Bookings)
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
