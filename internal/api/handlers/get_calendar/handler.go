package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard"
)

const (
	msgMissingRange = "параметры from и to обязательны"
	msgInvalidRange = "некорректный диапазон дат (from <= to, не более 62 дней)"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /calendar - Missing date range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := handlers.ParseDate(fromStr)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid from: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}
	to, err := handlers.ParseDate(toStr)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid to: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	view, err := h.service.GetCalendar(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, dayboard.ErrInvalidDate):
			h.logger.Warn("GET /calendar - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("GET /calendar - Failed to get calendar: from=%s, to=%s, error=%v", fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
