package register_host

import "time"

// Request модель запроса на регистрацию хоста
type Request struct {
	Name     string `validate:"required,max=200"`
	Email    string `validate:"required,email,max=320"`
	Password string `validate:"required"`
}

// Response модель зарегистрированного хоста
type Response struct {
	ID        int64
	Name      string
	Email     string
	Username  string // Публичный handle для ссылок бронирования
	CreatedAt time.Time
}
