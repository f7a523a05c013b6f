package register_host

import "errors"

var (
	// ErrEmailTaken возвращается, когда аккаунт с таким email уже существует
	ErrEmailTaken = errors.New("register_host: email already registered")

	// ErrPasswordTooShort возвращается, когда пароль короче минимальной длины
	ErrPasswordTooShort = errors.New("register_host: password is too short")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_host: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_host: internal error")
)
