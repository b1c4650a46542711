package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayBoard/internal/domain"
	"github.com/m04kA/SMC-DayBoard/internal/scheduling"
	"github.com/m04kA/SMC-DayBoard/pkg/ptr"
)

var testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func TestEncodeDecodeSchedule(t *testing.T) {
	s := scheduling.CreateDefaultSchedule(domain.DefaultMandatoryBreakPosition)
	s = scheduling.InsertBlock(s, 2, domain.KindOptionalBreak, "tech")
	s = scheduling.BookAppointment(s, s.Blocks[0].ID, domain.AppointmentDetails{
		Name:    "Anna",
		Contact: "anna@example.com",
		Notes:   ptr.Ptr("first visit"),
	}, time.Date(2025, 10, 14, 18, 0, 0, 0, time.UTC))

	data, err := encodeSchedule(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"mandatory_break"`)
	assert.Contains(t, string(data), `"kind":"optional_break"`)

	decoded, err := decodeSchedule(data)
	require.NoError(t, err)
	assert.Equal(t, s.Blocks, decoded.Blocks)

	a, ok := decoded.Appointments[s.Blocks[0].ID]
	require.True(t, ok)
	assert.Equal(t, "Anna", a.Name)
	assert.Equal(t, "first visit", ptr.Value(a.Notes))
	assert.Equal(t, domain.StatusScheduled, a.Status)
	assert.True(t, a.IsBooked)
	assert.True(t, a.CreatedAt.Equal(s.Appointments[s.Blocks[0].ID].CreatedAt))
}

func TestEncodeSchedule_UnknownKind(t *testing.T) {
	_, err := encodeSchedule(domain.Schedule{Blocks: []domain.Block{{ID: "x", Kind: domain.BlockKind(42)}}})
	assert.ErrorIs(t, err, ErrEncodePayload)
}

func TestDecodeSchedule_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `{"blocks":`},
		{name: "unknown version", payload: `{"version":7,"blocks":[]}`},
		{name: "unknown kind", payload: `{"version":1,"blocks":[{"id":"a","kind":"lunch"}]}`},
		{name: "unknown status", payload: `{"version":1,"blocks":[{"id":"a","kind":"slot"}],"appointments":{"a":{"name":"x","status":"lost","isBooked":true}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeSchedule([]byte(tt.payload))
			assert.ErrorIs(t, err, ErrDecodePayload)
		})
	}
}

func TestBuildGetQuery(t *testing.T) {
	query, args, err := buildGetQuery(testDate, false)
	require.NoError(t, err)
	assert.Equal(t, "SELECT payload FROM day_schedules WHERE schedule_date = $1", query)
	assert.Equal(t, []interface{}{"2025-10-15"}, args)

	query, _, err = buildGetQuery(testDate, true)
	require.NoError(t, err)
	assert.Equal(t, "SELECT payload FROM day_schedules WHERE schedule_date = $1 FOR UPDATE", query)
}

func TestBuildSaveQuery(t *testing.T) {
	payload := []byte(`{"version":1}`)
	query, args, err := buildSaveQuery(testDate, payload, Summary{DayFull: true, OpenSlots: 0, BookedSlots: 12})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO day_schedules (schedule_date,payload,day_full,open_slots,booked_slots) VALUES ($1,$2,$3,$4,$5)")
	assert.Contains(t, query, "ON CONFLICT (schedule_date) DO UPDATE SET")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Equal(t, []interface{}{"2025-10-15", payload, true, 0, 12}, args)
}

func TestBuildListQuery(t *testing.T) {
	query, args, err := buildListQuery(testDate, testDate.AddDate(0, 0, 6))
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT schedule_date, day_full, open_slots, booked_slots, updated_at FROM day_schedules "+
			"WHERE schedule_date >= $1 AND schedule_date <= $2 ORDER BY schedule_date ASC",
		query)
	assert.Equal(t, []interface{}{"2025-10-15", "2025-10-21"}, args)
}
