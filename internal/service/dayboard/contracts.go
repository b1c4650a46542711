package dayboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-DayBoard/internal/infra/storage/schedule"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Get(ctx context.Context, date time.Time) (*domain.Schedule, error)
	ListSummaries(ctx context.Context, from, to time.Time) ([]scheduleRepo.DaySummary, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
