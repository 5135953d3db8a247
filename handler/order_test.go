package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingDatePlain(t *testing.T) {
	parsed, err := parseBookingDate("2026-12-20")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC), parsed)
}

// RFC3339 input is accepted but the time of day is dropped, so the same
// calendar day always maps to the same stored timestamp.
func TestParseBookingDateDropsTimeOfDay(t *testing.T) {
	withTime, err := parseBookingDate("2026-12-20T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC), withTime)

	plain, err := parseBookingDate("2026-12-20")
	require.NoError(t, err)
	assert.True(t, plain.Equal(withTime))
}

// Two event bookings for the same day must land on the same start_date
// whatever clock time the client sent, or they would not count against
// each other's capacity.
func TestParseBookingDateSameDayEquality(t *testing.T) {
	morning, err := parseBookingDate("2026-12-20T08:30:00Z")
	require.NoError(t, err)
	evening, err := parseBookingDate("2026-12-20T21:45:00+07:00")
	require.NoError(t, err)

	assert.True(t, morning.Equal(time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)))
	// 21:45+07:00 is 14:45 UTC, still 2026-12-20
	assert.True(t, morning.Equal(evening))
}

func TestParseBookingDateInvalid(t *testing.T) {
	_, err := parseBookingDate("20-12-2026")
	assert.Error(t, err)

	_, err = parseBookingDate("")
	assert.Error(t, err)
}
