package preview_move

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
	"github.com/m04kA/SMC-DayBoard/internal/service/dayboard"
)

const msgInvalidMove = "позиции переноса вне расписания"

type Handler struct {
	service PreviewService
	logger  Logger
}

func NewHandler(service PreviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/days/{date}/moves/preview
// Ничего не сохраняет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("POST /days/{date}/moves/preview - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	var req PreviewMoveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /days/{date}/moves/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	view, err := h.service.PreviewMove(r.Context(), date, req.FromIndex, req.ToIndex)
	if err != nil {
		switch {
		case errors.Is(err, dayboard.ErrInvalidInput):
			h.logger.Warn("POST /days/{date}/moves/preview - Invalid move: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMove)
		default:
			h.logger.Error("POST /days/{date}/moves/preview - Failed to preview: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}
