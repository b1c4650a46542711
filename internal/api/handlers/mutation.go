package handlers

import (
	"errors"
	"net/http"

	editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"
)

const (
	msgInvalidInput       = "некорректные данные"
	msgBlockNotFound      = "блок не найден"
	msgSlotNotFound       = "слот не найден"
	msgNotASlot           = "блок не является слотом"
	msgNotOptionalBreak   = "блок не является техническим перерывом"
	msgAppointmentMissing = "запись не найдена"
	msgInvalidTransition  = "недопустимая смена статуса записи"
	msgDayOverflow        = "расписание не помещается в рабочий день"
	msgDateBusy           = "расписание дня изменяется другим запросом, повторите позже"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RespondMutationError переводит ошибку изменения дня в HTTP-ответ
func RespondMutationError(w http.ResponseWriter, logger Logger, route string, err error) {
	switch {
	case errors.Is(err, editDay.ErrInvalidInput):
		logger.Warn("%s - Invalid input: %v", route, err)
		RespondBadRequest(w, msgInvalidInput+": "+err.Error())

	case errors.Is(err, editDay.ErrNotASlot):
		logger.Warn("%s - Not a slot: %v", route, err)
		RespondBadRequest(w, msgNotASlot)

	case errors.Is(err, editDay.ErrNotOptionalBreak):
		logger.Warn("%s - Not an optional break: %v", route, err)
		RespondBadRequest(w, msgNotOptionalBreak)

	case errors.Is(err, editDay.ErrBlockNotFound):
		logger.Warn("%s - Block not found: %v", route, err)
		RespondNotFound(w, msgBlockNotFound)

	case errors.Is(err, editDay.ErrSlotNotFound):
		logger.Warn("%s - Slot not found: %v", route, err)
		RespondNotFound(w, msgSlotNotFound)

	case errors.Is(err, editDay.ErrAppointmentNotFound):
		logger.Warn("%s - Appointment not found: %v", route, err)
		RespondNotFound(w, msgAppointmentMissing)

	case errors.Is(err, editDay.ErrInvalidStatusTransition):
		logger.Warn("%s - Invalid status transition: %v", route, err)
		RespondConflict(w, msgInvalidTransition)

	case errors.Is(err, editDay.ErrDayOverflow):
		logger.Warn("%s - Day overflow: %v", route, err)
		RespondConflict(w, msgDayOverflow)

	case errors.Is(err, editDay.ErrDateBusy):
		logger.Warn("%s - Date busy", route)
		RespondConflict(w, msgDateBusy)

	default:
		logger.Error("%s - Failed to modify day: %v", route, err)
		RespondInternalError(w)
	}
}
