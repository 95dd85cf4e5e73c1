package suggestion_service

import (
	"time"

	"github.com/agendazap/slot-suggester/internal/utils"
)

// dayWindow returns the candidate calendar dates as start-of-day instants in
// the request timezone: "today" first, then horizon-1 consecutive days. A
// zero horizon returns no dates, which makes the whole result empty by
// construction.
func dayWindow(now time.Time, horizon int) []time.Time {
	if horizon <= 0 {
		return nil
	}

	today := utils.StartOfDay(now)
	days := make([]time.Time, 0, horizon)
	for i := 0; i < horizon; i++ {
		days = append(days, today.AddDate(0, 0, i))
	}
	return days
}
