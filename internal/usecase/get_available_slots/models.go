package get_available_slots

// Request модель запроса на получение доступных слотов
type Request struct {
	Username  string // Публичный username хоста
	EventSlug string // Slug типа события
	Date      string // Дата "YYYY-MM-DD"
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  string // Дата, на которую запрашивались слоты
	Slots []Slot // Свободные слоты по возрастанию времени, без повторов
}

// Slot модель временного слота
type Slot struct {
	Time string // Время начала "HH:mm"
}
