package suggestion_service

import (
	"time"

	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/utils"
)

// isSlotAvailable checks one candidate against the day's resolved hours and
// the busy list. An empty busy list passes by definition (generation already
// bounds candidates inside their interval). Containment is checked against
// the day's first resolved interval; when that interval's end precedes its
// start the business day wraps past midnight and each side of the wrap is
// bounded by its own midnight. Busy boundaries are half-open so back-to-back
// bookings are legal.
func isSlotAvailable(start, end time.Time, open []domain.OpenInterval, busy []domain.BusyInterval) bool {
	if len(busy) == 0 {
		return true
	}
	if len(open) == 0 {
		return false
	}

	first := open[0]
	if first.End.Before(first.Start) {
		if utils.SameDay(start, first.Start) {
			if start.Before(first.Start) || end.After(utils.StartNextDay(start)) {
				return false
			}
		} else {
			if start.Before(utils.StartOfDay(start)) || end.After(first.End) {
				return false
			}
		}
	} else if start.Before(first.Start) || end.After(first.End) {
		return false
	}

	for _, b := range busy {
		busyStart := b.Start.Date
		busyEnd := b.End.Date

		// start inside [busyStart, busyEnd)
		if !start.Before(busyStart) && start.Before(busyEnd) {
			return false
		}
		// end inside (busyStart, busyEnd]
		if end.After(busyStart) && !end.After(busyEnd) {
			return false
		}
		// busy starts strictly inside the slot
		if busyStart.After(start) && busyStart.Before(end) {
			return false
		}
	}

	return true
}
