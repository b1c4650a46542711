package clear_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
)

type Handler struct {
	useCase ClearAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ClearAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/days/{date}/slots/{blockId}/appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("DELETE /days/{date}/slots/{blockId}/appointment - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	blockID, ok := handlers.BlockIDVar(r)
	if !ok {
		h.logger.Warn("DELETE /days/{date}/slots/{blockId}/appointment - Missing block ID")
		handlers.RespondBadRequest(w, handlers.MsgMissingBlockID)
		return
	}

	view, err := h.useCase.ClearAppointment(r.Context(), date, blockID)
	if err != nil {
		handlers.RespondMutationError(w, h.logger, "DELETE /days/{date}/slots/{blockId}/appointment", err)
		return
	}

	h.logger.Info("DELETE /days/{date}/slots/{blockId}/appointment - Appointment cleared: date=%s, slot_id=%s", view.Date, blockID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
