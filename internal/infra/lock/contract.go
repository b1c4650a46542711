package lock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient подмножество *redis.Client, используемое блокировкой
// Scripter нужен для атомарного снятия блокировки lua-скриптом
type RedisClient interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
