package domain

// TimeOfDayRange is one open range of a business day, with wall-clock
// bounds as "HH:MM" strings. Bounds are kept as strings on purpose: a range
// that does not parse must be skipped by the resolver, not fail the request.
type TimeOfDayRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyBusinessHours maps a lowercase English weekday name ("monday") to
// the ordered open ranges of that day. A missing, null or empty entry means
// the day is closed. Ranges are consumed in the order given, never sorted.
type WeeklyBusinessHours map[string][]TimeOfDayRange
