package domain

import (
	"time"

	"github.com/agendazap/slot-suggester/internal/core/json_types"
)

// BusyInterval is an already-booked absolute time range. End > Start is
// assumed but not validated here; degenerate intervals are dropped by the
// suggestion service.
type BusyInterval struct {
	Start json_types.DateTime `json:"start"`
	End   json_types.DateTime `json:"end"`
}

// OpenInterval is one business-hour range of a concrete calendar day,
// resolved to absolute timestamps in the request timezone.
type OpenInterval struct {
	Start time.Time
	End   time.Time
}
