package suggestion_service

import (
	"time"

	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
	"github.com/agendazap/slot-suggester/internal/utils"
)

// resolveBusinessHours maps one calendar date to its absolute open
// intervals. A day that is absent, null or empty in the weekly table is
// closed and resolves to nil. A range whose clock strings do not parse is
// skipped with a warning and produces no open interval; it never fails the
// request. Output order follows input order, intervals are not sorted.
func (s *SuggestionService) resolveBusinessHours(day time.Time, hours domain.WeeklyBusinessHours) []domain.OpenInterval {
	ranges := hours[utils.WeekdayName(day.Weekday())]
	if len(ranges) == 0 {
		return nil
	}

	open := make([]domain.OpenInterval, 0, len(ranges))
	for _, r := range ranges {
		startHour, startMinute, err := utils.ParseClock(r.Start)
		if err != nil {
			s.logger.Warn("slots.suggest.hours.malformed", out.LogFields{
				"weekday": utils.WeekdayName(day.Weekday()),
				"range":   r.Start + "-" + r.End,
				"error":   err.Error(),
			})
			continue
		}
		endHour, endMinute, err := utils.ParseClock(r.End)
		if err != nil {
			s.logger.Warn("slots.suggest.hours.malformed", out.LogFields{
				"weekday": utils.WeekdayName(day.Weekday()),
				"range":   r.Start + "-" + r.End,
				"error":   err.Error(),
			})
			continue
		}

		open = append(open, domain.OpenInterval{
			Start: time.Date(day.Year(), day.Month(), day.Day(), startHour, startMinute, 0, 0, day.Location()),
			End:   time.Date(day.Year(), day.Month(), day.Day(), endHour, endMinute, 0, 0, day.Location()),
		})
	}
	return open
}
