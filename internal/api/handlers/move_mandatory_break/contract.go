package move_mandatory_break

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard/models"
	editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"
)

type MoveMandatoryBreakUseCase interface {
	MoveMandatoryBreak(ctx context.Context, date time.Time, req editDay.MoveBreakRequest) (*models.DayView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
