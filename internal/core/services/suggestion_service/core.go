package suggestion_service

import (
	"context"
	"fmt"
	"time"

	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
	"github.com/agendazap/slot-suggester/internal/utils"
)

// Clock supplies the current instant. It is injected so the engine stays a
// pure function of its inputs plus a single read of "now" at entry, and so
// tests can pin arbitrary instants.
type Clock func() time.Time

type SuggestionService struct {
	clock  Clock
	logger out.LoggerPort
}

func NewSuggestionService(clock Clock, logger out.LoggerPort) *SuggestionService {
	if clock == nil {
		clock = time.Now
	}
	return &SuggestionService{
		clock:  clock,
		logger: logger.WithModule("SuggestionService"),
	}
}

// SuggestSlots walks the day window in order, resolves each day's business
// hours, generates and filters candidate slots, deduplicates across days and
// truncates to the requested maximum. An unknown timezone is the only fatal
// condition; every empty-result case returns an empty list, not an error.
func (s *SuggestionService) SuggestSlots(ctx context.Context, req *domain.SuggestionRequest) (*domain.SuggestionResult, error) {
	loc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		s.logger.Error("slots.suggest.timezone.invalid", out.LogFields{
			"id":       req.ID,
			"timezone": req.Timezone,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("slots.suggest.timezone.invalid: %w", err)
	}

	// "Now" is read exactly once; rounding and past-filtering stay
	// consistent for the whole request.
	now := s.clock().In(loc)

	s.logger.Info("slots.suggest.started", out.LogFields{
		"id":             req.ID,
		"timezone":       req.Timezone,
		"days":           req.DayHorizon(),
		"maxSuggestions": req.MaxSuggestions,
	})

	duration := time.Duration(req.AppointmentDurationMinutes) * time.Minute
	step := time.Duration(req.SlotInterval()) * time.Minute
	boundary := utils.NextSlotBoundary(now, step)
	busy := s.sanitizeBusy(req.ID, req.Busy)
	period := domain.ParsePeriod(req.PeriodPreference)

	slots := make([]domain.Slot, 0)
	seen := make(map[domain.SlotKey]struct{})

	for _, day := range dayWindow(now, req.DayHorizon()) {
		if len(slots) >= req.MaxSuggestions {
			break
		}

		open := s.resolveBusinessHours(day, req.BusinessHours)
		if len(open) == 0 {
			// Closed day, does not consume the day budget
			continue
		}

		for _, slot := range generateDaySlots(open, boundary, step, duration, busy, period, loc) {
			if _, dup := seen[slot.Key()]; dup {
				continue
			}
			seen[slot.Key()] = struct{}{}
			slots = append(slots, slot)
		}
	}

	if req.MaxSuggestions >= 0 && len(slots) > req.MaxSuggestions {
		slots = slots[:req.MaxSuggestions]
	}

	formatted := make([]string, 0, len(slots))
	for _, slot := range slots {
		formatted = append(formatted, formatSlot(slot, loc))
	}

	s.logger.Info("slots.suggest.finished", out.LogFields{
		"id":         req.ID,
		"slotsCount": len(slots),
	})

	return &domain.SuggestionResult{Slots: slots, FormattedSlots: formatted}, nil
}

// sanitizeBusy drops degenerate busy intervals (end <= start, including the
// zero values an unparseable timestamp decodes to). A malformed entry
// contributes no conflicts and never fails the request.
func (s *SuggestionService) sanitizeBusy(id string, busy []domain.BusyInterval) []domain.BusyInterval {
	valid := make([]domain.BusyInterval, 0, len(busy))
	for _, interval := range busy {
		if !interval.End.Date.After(interval.Start.Date) {
			s.logger.Warn("slots.suggest.busy.malformed", out.LogFields{
				"id":    id,
				"start": interval.Start.Date,
				"end":   interval.End.Date,
			})
			continue
		}
		valid = append(valid, interval)
	}
	return valid
}
