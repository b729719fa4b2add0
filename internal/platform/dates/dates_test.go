package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	got, err := ParseSlot("2024-06-10", "08:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC), got)

	for _, tc := range []struct{ date, clock string }{
		{"2024-06-10", ""},
		{"", "08:00"},
		{"2024-13-10", "08:00"},
		{"2024-06-10", "08:00pm"},
		{"2024-06-10", "25:00"},
		{"10/06/2024", "08:00"},
	} {
		_, err := ParseSlot(tc.date, tc.clock, time.UTC)
		assert.ErrorIs(t, err, ErrInvalid, "%q %q", tc.date, tc.clock)
	}
}

func TestDaysBetween_CivilDates(t *testing.T) {
	today := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysBetween(today, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, DaysBetween(today, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -10, DaysBetween(today, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 366, DaysBetween(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDaysBetween_AcrossDSTIsWholeDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 2024-03-10 es un día de 23 horas en New York.
	from := time.Date(2024, 3, 9, 0, 0, 0, 0, ny)
	to := time.Date(2024, 3, 11, 0, 0, 0, 0, ny)
	assert.Equal(t, 2, DaysBetween(from, to))
}

func TestMonthHelpers(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2023, time.February))
	assert.Equal(t, 31, DaysIn(2024, time.December))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), FirstOfMonth(2024, 13))

	assert.Equal(t, 0, MondayIndex(time.Monday))
	assert.Equal(t, 6, MondayIndex(time.Sunday))
	assert.Equal(t, 5, MondayIndex(time.Saturday))
}
