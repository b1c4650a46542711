package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	editDay "github.com/m04kA/SMC-DayBoard/internal/usecase/edit_day"
	"github.com/m04kA/SMC-DayBoard/pkg/logger"
)

func TestRespondMutationError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", editDay.ErrInvalidInput, http.StatusBadRequest},
		{"not a slot", editDay.ErrNotASlot, http.StatusBadRequest},
		{"not optional break", editDay.ErrNotOptionalBreak, http.StatusBadRequest},
		{"block not found", editDay.ErrBlockNotFound, http.StatusNotFound},
		{"slot not found", editDay.ErrSlotNotFound, http.StatusNotFound},
		{"appointment not found", editDay.ErrAppointmentNotFound, http.StatusNotFound},
		{"status transition", editDay.ErrInvalidStatusTransition, http.StatusConflict},
		{"overflow", editDay.ErrDayOverflow, http.StatusConflict},
		{"date busy", editDay.ErrDateBusy, http.StatusConflict},
		{"internal", editDay.ErrInternal, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			err := fmt.Errorf("%w: Op - details", tt.err)

			RespondMutationError(rec, logger.NewNop(), "POST /days/{date}/moves", err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestRespondMutationError_InvalidInputCarriesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("%w: fields=[Name]", editDay.ErrInvalidInput)

	RespondMutationError(rec, logger.NewNop(), "PUT /days/{date}/slots/{blockId}/appointment", err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "fields=[Name]")
}
