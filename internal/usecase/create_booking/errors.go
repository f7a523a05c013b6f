package create_booking

import "errors"

var (
	// ErrHostNotFound возвращается, когда хост с таким username не найден
	ErrHostNotFound = errors.New("create_booking: host not found")

	// ErrEventTypeNotFound возвращается, когда активный тип события не найден
	ErrEventTypeNotFound = errors.New("create_booking: event type not found")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами горизонта бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда время не является слотом расписания хоста
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда бронирование нарушает минимальное уведомление
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrBookingInProgress возвращается, когда у хоста параллельно создается другое бронирование
	ErrBookingInProgress = errors.New("create_booking: another booking is in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
