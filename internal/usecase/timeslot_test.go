package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		name      string
		slot      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "twelve hour range",
			slot:      "6:00 PM - 7:00 PM",
			date:      "2025-11-24",
			wantStart: "2025-11-24T18:00:00",
			wantEnd:   "2025-11-24T19:00:00",
		},
		{
			name:      "hour only range",
			slot:      "6 PM - 8 PM",
			date:      "2025-11-24",
			wantStart: "2025-11-24T18:00:00",
			wantEnd:   "2025-11-24T20:00:00",
		},
		{
			name:      "twenty four hour start without end",
			slot:      "18:00",
			date:      "2025-11-24",
			wantStart: "2025-11-24T18:00:00",
			wantEnd:   "2025-11-24T19:00:00",
		},
		{
			name:      "mixed formats",
			slot:      "09:30 - 11:00",
			date:      "2025-12-01",
			wantStart: "2025-12-01T09:30:00",
			wantEnd:   "2025-12-01T11:00:00",
		},
		{
			name:      "unparseable slot falls back to midnight",
			slot:      "whenever works",
			date:      "2025-11-24",
			wantStart: "2025-11-24T00:00:00",
			wantEnd:   "2025-11-24T01:00:00",
		},
		{
			name:      "iso timestamp date",
			slot:      "7:00 AM - 8:00 AM",
			date:      "2025-11-24T00:00:00.000Z",
			wantStart: "2025-11-24T07:00:00",
			wantEnd:   "2025-11-24T08:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := parseTimeSlot(tt.slot, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start.Format("2006-01-02T15:04:05"))
			assert.Equal(t, tt.wantEnd, end.Format("2006-01-02T15:04:05"))
		})
	}
}

func TestParseTimeSlotBadDate(t *testing.T) {
	_, _, err := parseTimeSlot("6:00 PM - 7:00 PM", "not a date")
	require.Error(t, err)
}

func TestParseClock(t *testing.T) {
	got, err := parseClock("6:30 PM")
	require.NoError(t, err)
	assert.Equal(t, 18, got.Hour())
	assert.Equal(t, 30, got.Minute())

	got, err = parseClock("15:04")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())

	_, err = parseClock("noonish")
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	day, err := parseDate("2025-11-24")
	require.NoError(t, err)
	assert.Equal(t, time.November, day.Month())
	assert.Equal(t, 24, day.Day())

	day, err = parseDate("2025-11-24T18:30:00")
	require.NoError(t, err)
	assert.Equal(t, 0, day.Hour())
}
