package search_available_boats

import "time"

// Request запрос поиска лодок, свободных на интервал дат
type Request struct {
	StartDate time.Time
	EndDate   time.Time
	CompanyID *int64
	Status    *string
}

// BoatResponse лодка в результатах поиска
type BoatResponse struct {
	ID            int64    `json:"id"`
	CompanyID     int64    `json:"companyId"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Capacity      int      `json:"capacity"`
	PricePerDay   float64  `json:"pricePerDay"`
	Location      string   `json:"location"`
	Status        string   `json:"status"`
	BookingsCount int      `json:"bookingsCount"`
	Features      []string `json:"features"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
}

// Response результаты поиска
type Response struct {
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Boats     []BoatResponse `json:"boats"`
	Total     int            `json:"total"`
}
