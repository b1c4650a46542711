package insert_block

import (
	"net/http"

	"github.com/m04kA/SMC-DayBoard/internal/api/handlers"
)

type Handler struct {
	useCase InsertBlockUseCase
	logger  Logger
}

func NewHandler(useCase InsertBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/days/{date}/blocks
// Query params: allowOverflow (optional) - сохранить, даже если блоки выходят за конец дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.DateVar(r)
	if err != nil {
		h.logger.Warn("POST /days/{date}/blocks - Invalid date: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDate)
		return
	}

	var req InsertBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /days/{date}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	view, err := h.useCase.InsertBlock(r.Context(), date, req.ToUseCaseRequest(handlers.BoolQuery(r, "allowOverflow")))
	if err != nil {
		handlers.RespondMutationError(w, h.logger, "POST /days/{date}/blocks", err)
		return
	}

	h.logger.Info("POST /days/{date}/blocks - Block inserted: date=%s, kind=%s, index=%d", view.Date, req.Kind, req.Index)
	handlers.RespondJSON(w, http.StatusCreated, view)
}
