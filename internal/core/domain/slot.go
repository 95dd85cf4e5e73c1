package domain

import (
	"time"

	"github.com/agendazap/slot-suggester/internal/core/json_types"
)

// Slot is a concrete candidate appointment. End - Start always equals the
// requested appointment duration exactly.
type Slot struct {
	Start json_types.DateTime `json:"start"`
	End   json_types.DateTime `json:"end"`
}

func NewSlot(start, end time.Time) Slot {
	return Slot{
		Start: json_types.NewDateTime(start),
		End:   json_types.NewDateTime(end),
	}
}

// Key identifies a slot by its exact (start, end) instant pair, for
// cross-day deduplication.
func (s Slot) Key() SlotKey {
	return SlotKey{Start: s.Start.Date.UnixNano(), End: s.End.Date.UnixNano()}
}

type SlotKey struct {
	Start int64
	End   int64
}
