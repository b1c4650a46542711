package move_mandatory_break

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
)

type Handler struct {
	useCase MoveMandatoryBreakUseCase
	logger  Logger
}

func NewHandler(useCase MoveMandatoryBreakUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/days/{date}/breaks/mandatory
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("PUT /days/{date}/breaks/mandatory - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	var req MoveBreakRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /days/{date}/breaks/mandatory - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	view, err := h.useCase.MoveMandatoryBreak(r.Context(), date, req.ToUseCaseRequest())
	if err != nil {
		handlers.RespondMutationError(w, h.logger, "PUT /days/{date}/breaks/mandatory", err)
		return
	}

	h.logger.Info("PUT /days/{date}/breaks/mandatory - Break moved: date=%s, to=%d", view.Date, req.ToIndex)
	handlers.RespondJSON(w, http.StatusOK, view)
}
