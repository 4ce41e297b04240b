package domain

import "time"

// BoatStatus represents the inventory status of a boat
// Статус информационный: проверка доступности по датам его не учитывает,
// фильтрация по статусу - отдельный слой поверх проверки пересечений
type BoatStatus string

const (
	BoatStatusAvailable   BoatStatus = "available"
	BoatStatusRented      BoatStatus = "rented"
	BoatStatusMaintenance BoatStatus = "maintenance"
)

// Boat represents a rental boat listed by a company
type Boat struct {
	ID          int64
	CompanyID   int64
	Name        string
	Type        string
	Capacity    int
	PricePerDay float64
	Location    string
	Status      BoatStatus

	// Агрегатные счётчики, обновляются контроллером бронирований
	BookingsCount int
	Revenue       float64

	Features []string
	ImageURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoatsFilter фильтр для выборки лодок
type BoatsFilter struct {
	CompanyID *int64      // Фильтр по компании (опционально)
	Status    *BoatStatus // Фильтр по статусу (опционально)
}
