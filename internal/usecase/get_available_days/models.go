package get_available_days

// Request модель запроса дней с доступными окнами
type Request struct {
	Username  string // Публичный username хоста
	EventSlug string // Slug типа события
}

// Response модель ответа
type Response struct {
	AvailableDays []string // Даты "YYYY-MM-DD" по возрастанию
	EventType     EventTypeInfo
	Host          HostInfo
}

// EventTypeInfo публичные данные типа события
type EventTypeInfo struct {
	ID                   int64
	Title                string
	Slug                 string
	Description          *string
	DurationMinutes      int
	Color                string
	RequiresConfirmation bool
}

// HostInfo публичные данные хоста
type HostInfo struct {
	Name     string
	Username string
	Image    *string
	Timezone string
}
