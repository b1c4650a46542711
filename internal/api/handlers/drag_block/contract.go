package drag_block

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard/models"
	editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"
)

type DragUseCase interface {
	Drag(ctx context.Context, date time.Time, req editDay.DragRequest) (*models.DayView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
