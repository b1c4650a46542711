package set_appointment_status

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
)

type Handler struct {
	useCase SetAppointmentStatusUseCase
	logger  Logger
}

func NewHandler(useCase SetAppointmentStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/days/{date}/slots/{blockId}/appointment/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("PATCH /days/{date}/slots/{blockId}/appointment/status - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	blockID, ok := handlers.BlockIDVar(r)
	if !ok {
		h.logger.Warn("PATCH /days/{date}/slots/{blockId}/appointment/status - Missing block ID")
		handlers.RespondBadRequest(w, handlers.MsgMissingBlockID)
		return
	}

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /days/{date}/slots/{blockId}/appointment/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	view, err := h.useCase.SetAppointmentStatus(r.Context(), date, blockID, req.ToUseCaseRequest())
	if err != nil {
		handlers.RespondMutationError(w, h.logger, "PATCH /days/{date}/slots/{blockId}/appointment/status", err)
		return
	}

	h.logger.Info("PATCH /days/{date}/slots/{blockId}/appointment/status - Status changed: date=%s, slot_id=%s, status=%s", view.Date, blockID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, view)
}
