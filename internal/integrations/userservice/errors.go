package userservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь неизвестен UserService
	ErrUserNotFound = errors.New("userservice client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrUnavailable возвращается, если UserService не ответил или ответил 5xx
	ErrUnavailable = errors.New("userservice client: service unavailable")
)
