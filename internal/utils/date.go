package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StartOfDay returns t with the clock set to 00:00, keeping the location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartNextDay returns 00:00 of the following calendar day, keeping the
// location.
func StartNextDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location())
}

// SameDay reports whether two instants fall on the same calendar date in
// their own locations.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NextSlotBoundary rounds t up to the next whole multiple of interval past
// local midnight. An instant already exactly on a boundary stays there.
func NextSlotBoundary(t time.Time, interval time.Duration) time.Time {
	day := StartOfDay(t)
	elapsed := t.Sub(day)
	rounded := elapsed.Truncate(interval)
	if rounded != elapsed {
		rounded += interval
	}
	return day.Add(rounded)
}

// ParseClock parses a 24-hour "HH:MM" wall-clock string.
func ParseClock(str string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(str), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock string: %q", str)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock string: %q", str)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock string: %q", str)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock string out of range: %q", str)
	}

	return hour, minute, nil
}

// WeekdayName is the lowercase English weekday name used as the key of
// WeeklyBusinessHours.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}
