package preview_move

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard/models"
)

type PreviewService interface {
	PreviewMove(ctx context.Context, date time.Time, fromIndex, toIndex int) (*models.DayView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
