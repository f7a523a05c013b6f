package get_available_days

import "errors"

var (
	// ErrHostNotFound возвращается, когда хост с таким username не найден
	ErrHostNotFound = errors.New("get_available_days: host not found")

	// ErrEventTypeNotFound возвращается, когда активный тип события не найден
	ErrEventTypeNotFound = errors.New("get_available_days: event type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_days: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_days: internal error")
)
