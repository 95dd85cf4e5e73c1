package suggestion_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/json_types"
)

func openHours(start, end time.Time) []domain.OpenInterval {
	return []domain.OpenInterval{{Start: start, End: end}}
}

func TestIsSlotAvailable_EmptyBusyAlwaysPasses(t *testing.T) {
	day := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)

	// Without bookings the generation bounds are trusted as-is
	ok := isSlotAvailable(day.Add(7*time.Hour), day.Add(8*time.Hour), nil, nil)
	assert.True(t, ok)
}

func TestIsSlotAvailable_NoHoursFailsWhenBusy(t *testing.T) {
	day := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)
	busy := []domain.BusyInterval{busyBetween(day.Add(20*time.Hour), day.Add(21*time.Hour))}

	ok := isSlotAvailable(day.Add(9*time.Hour), day.Add(10*time.Hour), nil, busy)
	assert.False(t, ok)
}

func TestIsSlotAvailable_BusyBoundaries(t *testing.T) {
	day := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)
	open := openHours(day.Add(9*time.Hour), day.Add(17*time.Hour))
	busy := []domain.BusyInterval{busyBetween(day.Add(10*time.Hour), day.Add(11*time.Hour))}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"ends exactly at busy start", day.Add(9 * time.Hour), day.Add(10 * time.Hour), true},
		{"starts exactly at busy end", day.Add(11 * time.Hour), day.Add(12 * time.Hour), true},
		{"starts inside busy", day.Add(10*time.Hour + 30*time.Minute), day.Add(11*time.Hour + 30*time.Minute), false},
		{"ends inside busy", day.Add(9*time.Hour + 30*time.Minute), day.Add(10*time.Hour + 30*time.Minute), false},
		{"covers busy entirely", day.Add(9*time.Hour + 30*time.Minute), day.Add(11*time.Hour + 30*time.Minute), false},
		{"equals busy exactly", day.Add(10 * time.Hour), day.Add(11 * time.Hour), false},
		{"before open start", day.Add(8 * time.Hour), day.Add(9 * time.Hour), false},
		{"after open end", day.Add(17 * time.Hour), day.Add(18 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isSlotAvailable(tc.start, tc.end, open, busy))
		})
	}
}

func TestIsSlotAvailable_OvernightHours(t *testing.T) {
	day := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)

	// End before start means the business day wraps past midnight
	open := openHours(day.Add(22*time.Hour), day.Add(2*time.Hour))
	busy := []domain.BusyInterval{
		busyBetween(day.Add(23*time.Hour), day.Add(23*time.Hour+30*time.Minute)),
	}

	// Evening side is bounded by the next midnight
	assert.True(t, isSlotAvailable(day.Add(22*time.Hour), day.Add(23*time.Hour), open, busy))
	assert.False(t, isSlotAvailable(day.Add(21*time.Hour), day.Add(22*time.Hour), open, busy))
	assert.False(t, isSlotAvailable(day.Add(23*time.Hour+30*time.Minute), day.Add(24*time.Hour+30*time.Minute), open, busy))

	// The booking still blocks inside the wrap
	assert.False(t, isSlotAvailable(day.Add(23*time.Hour), day.Add(23*time.Hour+30*time.Minute), open, busy))
}

func TestSanitizeBusy_DropsDegenerateIntervals(t *testing.T) {
	svc := NewSuggestionService(nil, nopLogger{})
	day := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)

	busy := []domain.BusyInterval{
		busyBetween(day.Add(10*time.Hour), day.Add(11*time.Hour)),
		{}, // both bounds zero
		busyBetween(day.Add(12*time.Hour), day.Add(12*time.Hour)), // empty
		busyBetween(day.Add(14*time.Hour), day.Add(13*time.Hour)), // inverted
		{Start: json_types.DateTime{}, End: json_types.NewDateTime(day)},
	}

	valid := svc.sanitizeBusy("req-1", busy)
	assert.Len(t, valid, 2)
	assert.Equal(t, day.Add(10*time.Hour), valid[0].Start.Date)
	assert.Equal(t, day, valid[1].End.Date)
}
