package mailer

import "errors"

var (
	// ErrSend возвращается при ошибке отправки письма провайдером
	ErrSend = errors.New("mailer: failed to send email")

	// ErrRender возвращается при ошибке рендеринга шаблона письма
	ErrRender = errors.New("mailer: failed to render template")

	// ErrUnknownProvider возвращается при неизвестном почтовом провайдере
	ErrUnknownProvider = errors.New("mailer: unknown provider")

	// ErrNoRecipient возвращается, когда у письма нет адресата
	ErrNoRecipient = errors.New("mailer: empty recipient")
)
