package suggestion_service

import (
	"time"

	"github.com/agendazap/slot-suggester/internal/core/domain"
)

// generateDaySlots steps a cursor through each open interval of one day, in
// input order, emitting duration-length candidates that survive the
// availability and preference filters. The cursor starts at the interval
// start clamped up to boundary (the "now" instant rounded to the next step
// multiple), so a request landing mid-interval still sees the rest of that
// interval but never a slot in the past.
func generateDaySlots(open []domain.OpenInterval, boundary time.Time, step, duration time.Duration, busy []domain.BusyInterval, period domain.Period, loc *time.Location) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for _, interval := range open {
		if interval.End.Before(boundary) {
			// Wholly in the past relative to rounding
			continue
		}

		cursor := interval.Start
		if cursor.Before(boundary) {
			cursor = boundary
		}

		for !cursor.Add(duration).After(interval.End) {
			end := cursor.Add(duration)

			if isSlotAvailable(cursor, end, open, busy) && period.Contains(cursor.In(loc).Hour()) {
				slots = append(slots, domain.NewSlot(cursor, end))
			}

			cursor = cursor.Add(step)
		}
	}

	return slots
}
