package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), date)

	for _, bad := range []string{"", "15.03.2024", "2024-13-01", "2024-02-30"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestPathVars(t *testing.T) {
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/days/2024-03-15/blocks/b1", nil)
	r = mux.SetURLVars(r, map[string]string{"date": "2024-03-15", "blockId": "b1"})

	date, err := DateVar(r)
	require.NoError(t, err)
	assert.Equal(t, 15, date.Day())

	id, ok := BlockIDVar(r)
	assert.True(t, ok)
	assert.Equal(t, "b1", id)

	_, ok = BlockIDVar(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestBoolQuery(t *testing.T) {
	tests := map[string]bool{
		"/x?allowOverflow=true": true,
		"/x?allowOverflow=1":    true,
		"/x?allowOverflow=no":   false,
		"/x":                    false,
	}
	for target, want := range tests {
		r := httptest.NewRequest(http.MethodPost, target, nil)
		assert.Equal(t, want, BoolQuery(r, "allowOverflow"), target)
	}
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		ToIndex int `json:"toIndex"`
	}

	r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"toIndex":3}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, 3, dst.ToIndex)

	r = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"toIndex":3,"extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &dst))
}
