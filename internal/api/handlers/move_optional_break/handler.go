package move_optional_break

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
)

type Handler struct {
	useCase MoveOptionalBreakUseCase
	logger  Logger
}

func NewHandler(useCase MoveOptionalBreakUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/days/{date}/breaks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("PUT /days/{date}/breaks/{blockId} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	blockID, ok := handlers.BlockIDVar(r)
	if !ok {
		h.logger.Warn("PUT /days/{date}/breaks/{blockId} - Missing block ID")
		handlers.RespondBadRequest(w, handlers.MsgMissingBlockID)
		return
	}

	var req MoveBreakRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /days/{date}/breaks/{blockId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	view, err := h.useCase.MoveOptionalBreak(r.Context(), date, blockID, req.ToUseCaseRequest())
	if err != nil {
		handlers.RespondMutationError(w, h.logger, "PUT /days/{date}/breaks/{blockId}", err)
		return
	}

	h.logger.Info("PUT /days/{date}/breaks/{blockId} - Break moved: date=%s, block_id=%s, to=%d", view.Date, blockID, req.ToIndex)
	handlers.RespondJSON(w, http.StatusOK, view)
}
