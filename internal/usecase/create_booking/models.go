package create_booking

import "time"

// Request модель запроса на создание бронирования гостем
type Request struct {
	Username      string  `validate:"required"`           // Публичный username хоста
	EventSlug     string  `validate:"required"`           // Slug типа события
	Date          string  `validate:"required"`           // Дата "YYYY-MM-DD"
	Time          string  `validate:"required"`           // Время начала "HH:mm"
	GuestName     string  `validate:"required,max=200"`   // Имя гостя
	GuestEmail    string  `validate:"required,email"`     // Email гостя
	GuestNotes    *string `validate:"omitempty,max=1000"` // Заметки (опционально)
	GuestTimezone *string `validate:"omitempty,max=64"`   // Метка часового пояса гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64     // ID созданного бронирования
	Status          string    // pending или confirmed
	Date            string    // Дата "YYYY-MM-DD"
	Time            string    // Время начала "HH:mm"
	StartTime       time.Time // Начало
	EndTime         time.Time // Конец
	DurationMinutes int       // Длительность

	GuestName     string
	GuestEmail    string
	GuestTimezone string
	CancelToken   string // Токен для отмены гостем

	// Денормализованные данные
	EventTitle string
	HostName   string

	CreatedAt time.Time
}
