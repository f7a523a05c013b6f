package event_types

import "errors"

var (
	// ErrEventTypeNotFound возвращается, когда тип события не найден у хоста
	ErrEventTypeNotFound = errors.New("event type not found")

	// ErrDuplicateSlug возвращается, когда slug уже занят у хоста
	ErrDuplicateSlug = errors.New("event type slug already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
