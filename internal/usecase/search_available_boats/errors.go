package search_available_boats

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("search_available_boats.usecase: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("search_available_boats.usecase: internal error")
)
