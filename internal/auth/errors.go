package auth

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку подписи или срока действия
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrSignToken возвращается при ошибке подписи токена
	ErrSignToken = errors.New("auth: failed to sign token")

	// ErrHashPassword возвращается при ошибке хеширования пароля
	ErrHashPassword = errors.New("auth: failed to hash password")
)
