package get_day_validation

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
	"github.com/m04kA/SMC-DayBoard/internal/domain"
)

type Handler struct {
	service DayService
	logger  Logger
}

func NewHandler(service DayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/validation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("GET /days/{date}/validation - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	result, err := h.service.Validate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /days/{date}/validation - Failed to validate: date=%s, error=%v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.Valid {
		h.logger.Warn("GET /days/{date}/validation - Day overflow: date=%s, total=%d, max=%d",
			result.Date, result.TotalMinutes, result.MaxMinutes)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
