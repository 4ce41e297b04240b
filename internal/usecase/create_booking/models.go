package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	BoatID        int64     // ID лодки
	StartDate     time.Time // Дата начала аренды (включительно)
	EndDate       time.Time // Дата окончания аренды (исключительно, день возврата)
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента
	CustomerPhone *string   // Телефон клиента (опционально)
	Guests        int       // Количество гостей
	Notes         *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	BoatID        int64     // ID лодки
	BoatName      string    // Название лодки (денормализовано для клиента)
	StartDate     time.Time // Дата начала аренды
	EndDate       time.Time // Дата окончания аренды
	Days          int       // Количество дней аренды
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента
	CustomerPhone *string   // Телефон клиента
	Guests        int       // Количество гостей
	TotalPrice    float64   // Итоговая стоимость
	Status        string    // Статус бронирования
	Notes         *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
