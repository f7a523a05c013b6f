package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда окно не найдено у хоста
	ErrAvailabilityNotFound = errors.New("availability not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
