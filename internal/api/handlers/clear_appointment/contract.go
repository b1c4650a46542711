package clear_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard/models"
)

type ClearAppointmentUseCase interface {
	ClearAppointment(ctx context.Context, date time.Time, slotID string) (*models.DayView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
