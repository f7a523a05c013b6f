package mailer

import "context"

// Sender отправляет одно письмо через конкретного провайдера
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
