package domain

// SuggestionRequest is the immutable input of one availability computation.
type SuggestionRequest struct {
	// ID is an opaque passthrough token supplied by the caller, echoed back
	// untouched in the HTTP response. The engine never interprets it.
	ID string `json:"id"`

	Busy          []BusyInterval      `json:"busy"`
	BusinessHours WeeklyBusinessHours `json:"businessHours"`

	AppointmentDurationMinutes int    `json:"appointmentDurationInMinutes" binding:"required,gt=0"`
	Timezone                   string `json:"timezone" binding:"required"`
	MaxSuggestions             int    `json:"maxSuggestions" binding:"gte=0"`

	// MaxDays is the day horizon. Nil means the default of 5; an explicit 0
	// yields an empty result on purpose.
	MaxDays *int `json:"maxDays"`

	// DaysDistribution == 1 restricts the window to today only. Any other
	// value has no effect.
	DaysDistribution int `json:"daysDistribution"`

	// PeriodPreference is a locale-tolerant token ("morning", "manhã", ...).
	// Unrecognized tokens are treated as no preference.
	PeriodPreference string `json:"periodPreference"`

	// SlotIntervalMinutes is the generation step size, default 60.
	SlotIntervalMinutes int `json:"slotIntervalMinutes"`
}

const (
	DefaultMaxDays             = 5
	DefaultSlotIntervalMinutes = 60
)

// DayHorizon resolves the effective number of candidate days.
func (r *SuggestionRequest) DayHorizon() int {
	if r.DaysDistribution == 1 {
		return 1
	}
	if r.MaxDays != nil {
		return *r.MaxDays
	}
	return DefaultMaxDays
}

// SlotInterval resolves the effective generation step, in minutes.
func (r *SuggestionRequest) SlotInterval() int {
	if r.SlotIntervalMinutes > 0 {
		return r.SlotIntervalMinutes
	}
	return DefaultSlotIntervalMinutes
}

// SuggestionResult pairs each accepted slot with its human-readable
// rendering, positionally aligned.
type SuggestionResult struct {
	Slots          []Slot   `json:"slots"`
	FormattedSlots []string `json:"formattedSlots"`
}
