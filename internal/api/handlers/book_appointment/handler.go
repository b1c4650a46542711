package book_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/days/{date}/slots/{blockId}/appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("PUT /days/{date}/slots/{blockId}/appointment - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	blockID, ok := handlers.BlockIDVar(r)
	if !ok {
		h.logger.Warn("PUT /days/{date}/slots/{blockId}/appointment - Missing block ID")
		handlers.RespondBadRequest(w, handlers.MsgMissingBlockID)
		return
	}

	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /days/{date}/slots/{blockId}/appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	view, err := h.useCase.BookAppointment(r.Context(), date, blockID, req.ToUseCaseRequest())
	if err != nil {
		handlers.RespondMutationError(w, h.logger, "PUT /days/{date}/slots/{blockId}/appointment", err)
		return
	}

	h.logger.Info("PUT /days/{date}/slots/{blockId}/appointment - Appointment saved: date=%s, slot_id=%s", view.Date, blockID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
