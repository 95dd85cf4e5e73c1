package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSlotBoundary(t *testing.T) {
	loc := time.UTC

	cases := []struct {
		name     string
		now      time.Time
		interval time.Duration
		want     time.Time
	}{
		{
			"rounds up to next hour",
			time.Date(2025, 4, 25, 9, 16, 0, 0, loc),
			time.Hour,
			time.Date(2025, 4, 25, 10, 0, 0, 0, loc),
		},
		{
			"exact boundary stays",
			time.Date(2025, 4, 25, 9, 0, 0, 0, loc),
			time.Hour,
			time.Date(2025, 4, 25, 9, 0, 0, 0, loc),
		},
		{
			"midnight stays",
			time.Date(2025, 4, 25, 0, 0, 0, 0, loc),
			time.Hour,
			time.Date(2025, 4, 25, 0, 0, 0, 0, loc),
		},
		{
			"half hour interval",
			time.Date(2025, 4, 25, 9, 16, 0, 0, loc),
			30 * time.Minute,
			time.Date(2025, 4, 25, 9, 30, 0, 0, loc),
		},
		{
			"quarter interval with seconds",
			time.Date(2025, 4, 25, 9, 0, 1, 0, loc),
			15 * time.Minute,
			time.Date(2025, 4, 25, 9, 15, 0, 0, loc),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextSlotBoundary(tc.now, tc.interval))
		})
	}
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 30, minute)

	hour, minute, err = ParseClock(" 23:59 ")
	require.NoError(t, err)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 59, minute)

	for _, bad := range []string{"", "9h", "24:00", "12:60", "-1:00", "12", "12:00:00", "ab:cd"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestStartOfDayAndNextDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	now := time.Date(2025, 4, 25, 18, 42, 7, 123, loc)
	assert.Equal(t, time.Date(2025, 4, 25, 0, 0, 0, 0, loc), StartOfDay(now))
	assert.Equal(t, time.Date(2025, 4, 26, 0, 0, 0, 0, loc), StartNextDay(now))

	// Month rollover
	eom := time.Date(2025, 4, 30, 23, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, loc), StartNextDay(eom))
}

func TestSameDay(t *testing.T) {
	loc := time.UTC
	assert.True(t, SameDay(
		time.Date(2025, 4, 25, 0, 0, 0, 0, loc),
		time.Date(2025, 4, 25, 23, 59, 59, 0, loc),
	))
	assert.False(t, SameDay(
		time.Date(2025, 4, 25, 23, 59, 59, 0, loc),
		time.Date(2025, 4, 26, 0, 0, 0, 0, loc),
	))
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "monday", WeekdayName(time.Monday))
	assert.Equal(t, "sunday", WeekdayName(time.Sunday))
	assert.Equal(t, "saturday", WeekdayName(time.Saturday))
}
