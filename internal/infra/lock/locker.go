package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

const keyPrefix = "dayboard:lock:"

// unlockScript удаляет ключ, только если в нем лежит токен владельца
// 1 - снята, 0 - ключа нет (истек), -1 - ключ занят другим владельцем
var unlockScript = redis.NewScript(`
local stored = redis.call("GET", KEYS[1])
if not stored then
	return 0
end
if stored == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return -1
`)

// DayKey ключ блокировки изменений конкретной даты
func DayKey(date time.Time) string {
	return keyPrefix + date.Format(domain.DateFormat)
}

// RedisLocker распределенная блокировка на SET NX с токеном владельца
type RedisLocker struct {
	client RedisClient
	log    Logger
}

// NewRedisLocker создает блокировку поверх redis-клиента
func NewRedisLocker(client RedisClient, log Logger) *RedisLocker {
	return &RedisLocker{client: client, log: log}
}

// TryLock пытается занять ключ на ttl
// Возвращает acquired=false без ошибки, если ключ уже занят
func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		l.log.Error("TryLock: redis SETNX failed for key=%s: %v", key, err)
		return false, "", fmt.Errorf("%w: key=%s: %v", ErrLockFailed, key, err)
	}
	if !acquired {
		l.log.Info("TryLock: key=%s is busy", key)
		return false, "", nil
	}

	return true, token, nil
}

// Unlock снимает блокировку, только если она все еще принадлежит token
// Проверка владельца и удаление выполняются одним скриптом на стороне redis
func (l *RedisLocker) Unlock(ctx context.Context, key, token string) error {
	result, err := unlockScript.Run(ctx, l.client, []string{key}, token).Int64()
	if err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrUnlockFailed, key, err)
	}

	switch result {
	case 0:
		l.log.Warn("Unlock: key=%s already expired", key)
		return nil
	case -1:
		l.log.Error("Unlock: key=%s owned by another client", key)
		return fmt.Errorf("%w: key=%s", ErrNotOwner, key)
	}
	return nil
}

// LocalLocker блокировка в памяти процесса; используется, когда redis выключен
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]localLock
	nowFn func() time.Time
}

type localLock struct {
	token     string
	expiresAt time.Time
}

// NewLocalLocker создает блокировку в памяти
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]localLock),
		nowFn: time.Now,
	}
}

func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFn()
	if current, ok := l.held[key]; ok && now.Before(current.expiresAt) {
		return false, "", nil
	}

	token := uuid.NewString()
	l.held[key] = localLock{token: token, expiresAt: now.Add(ttl)}
	return true, token, nil
}

func (l *LocalLocker) Unlock(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.held[key]
	if !ok {
		return nil
	}
	if current.token != token {
		return fmt.Errorf("%w: key=%s", ErrNotOwner, key)
	}
	delete(l.held, key)
	return nil
}
