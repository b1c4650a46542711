package remove_block

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
)

type Handler struct {
	useCase RemoveBlockUseCase
	logger  Logger
}

func NewHandler(useCase RemoveBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/days/{date}/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("DELETE /days/{date}/blocks/{blockId} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	blockID, ok := handlers.BlockIDVar(r)
	if !ok {
		h.logger.Warn("DELETE /days/{date}/blocks/{blockId} - Missing block ID")
		handlers.RespondBadRequest(w, handlers.MsgMissingBlockID)
		return
	}

	view, err := h.useCase.RemoveBlock(r.Context(), date, blockID)
	if err != nil {
		handlers.RespondMutationError(w, h.logger, "DELETE /days/{date}/blocks/{blockId}", err)
		return
	}

	h.logger.Info("DELETE /days/{date}/blocks/{blockId} - Block removed: date=%s, block_id=%s", view.Date, blockID)
	handlers.RespondJSON(w, http.StatusOK, view)
}
