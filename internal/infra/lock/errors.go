package lock

import "errors"

var (
	// ErrLockFailed возвращается при ошибке обращения к хранилищу блокировок
	ErrLockFailed = errors.New("lock: failed to acquire lock")

	// ErrUnlockFailed возвращается при ошибке снятия блокировки
	ErrUnlockFailed = errors.New("lock: failed to release lock")

	// ErrNotOwner возвращается, если блокировку держит другой владелец (истек TTL)
	ErrNotOwner = errors.New("lock: lock not owned by this client")
)
