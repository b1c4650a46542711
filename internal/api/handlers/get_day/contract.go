package get_day

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard/models"
)

type DayService interface {
	GetDay(ctx context.Context, date time.Time) (*models.DayView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
