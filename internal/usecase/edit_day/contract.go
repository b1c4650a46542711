package edit_day

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-DayBoard/internal/infra/storage/schedule"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Get(ctx context.Context, date time.Time) (*domain.Schedule, error)
	Save(ctx context.Context, date time.Time, schedule domain.Schedule, summary scheduleRepo.Summary) error
}

// Locker блокировка изменений одной даты
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, token string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные метрики изменений расписания
type Metrics interface {
	RecordMutation(operation string, err error)
	RecordBooking()
	RecordOverflow(blocks int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) RecordMutation(string, error) {}
func (noopMetrics) RecordBooking() {}
func (noopMetrics) RecordOverflow(int) {}
