package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с подтвержденным бронированием
	// (нарушение exclusion constraint или конфликт сериализации)
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrDuplicateToken возвращается при коллизии токена отмены
	ErrDuplicateToken = errors.New("booking.repository: duplicate cancel token")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
