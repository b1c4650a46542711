package drag_block

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
)

type Handler struct {
	useCase DragUseCase
	logger  Logger
}

func NewHandler(useCase DragUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/days/{date}/drags
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("POST /days/{date}/drags - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	var req DragRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /days/{date}/drags - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	view, err := h.useCase.Drag(r.Context(), date, req.ToUseCaseRequest())
	if err != nil {
		handlers.RespondMutationError(w, h.logger, "POST /days/{date}/drags", err)
		return
	}

	h.logger.Info("POST /days/{date}/drags - Gesture applied: date=%s, block_id=%s, cancelled=%t", view.Date, req.BlockID, req.Cancelled)
	handlers.RespondJSON(w, http.StatusOK, view)
}
