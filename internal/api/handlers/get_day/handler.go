package get_day

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

// Handle GET /api/v1/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("GET /days/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	view, err := h.service.GetDay(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /days/{date} - Failed to get day: date=%s, error=%v", date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
