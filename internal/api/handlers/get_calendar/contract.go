package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard/models"
)

type CalendarService interface {
	GetCalendar(ctx context.Context, from, to time.Time) (*models.CalendarView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
