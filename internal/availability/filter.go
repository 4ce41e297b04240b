package availability

import (
	"time"

	"github.com/m04kA/BRM-RentalService/internal/domain"
)

// FilterAvailable возвращает подмножество лодок, свободных в интервале [start, end)
// Относительный порядок входного списка сохраняется (стабильный фильтр)
//
// Поле Boat.Status здесь намеренно не учитывается: доступность по датам и
// инвентарный статус - независимые сигналы; фильтрация по статусу выполняется
// отдельным слоем в сервисе лодок
func FilterAvailable(boats []*domain.Boat, start, end time.Time, bookings []*domain.Booking) []*domain.Boat {
	result := make([]*domain.Boat, 0, len(boats))
	for _, boat := range boats {
		if IsAvailable(boat.ID, start, end, bookings) {
			result = append(result, boat)
		}
	}
	return result
}
