package get_boat_calendar

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("get_boat_calendar.usecase: invalid input")

	// ErrBoatNotFound лодка не найдена
	ErrBoatNotFound = errors.New("get_boat_calendar.usecase: boat not found")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_boat_calendar.usecase: internal error")
)
