package move_block

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
)

type Handler struct {
	useCase MoveBlockUseCase
	logger  Logger
}

func NewHandler(useCase MoveBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/days/{date}/moves
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("POST /days/{date}/moves - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	var req MoveBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /days/{date}/moves - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	view, err := h.useCase.MoveBlock(r.Context(), date, req.ToUseCaseRequest())
	if err != nil {
		handlers.RespondMutationError(w, h.logger, "POST /days/{date}/moves", err)
		return
	}

	h.logger.Info("POST /days/{date}/moves - Block moved: date=%s, from=%d, to=%d", view.Date, req.FromIndex, req.ToIndex)
	handlers.RespondJSON(w, http.StatusOK, view)
}
