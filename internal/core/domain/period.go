package domain

import "strings"

// Period is a coarse time-of-day band restricting which slots are offered.
type Period string

const (
	PeriodNone      Period = ""
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// periodTokens maps caller-supplied preference tokens to the closed Period
// enum. Callers speak English or Brazilian Portuguese; adding a locale means
// adding rows here, the engine itself stays language-agnostic.
var periodTokens = map[string]Period{
	"morning":   PeriodMorning,
	"manhã":     PeriodMorning,
	"afternoon": PeriodAfternoon,
	"tarde":     PeriodAfternoon,
	"evening":   PeriodEvening,
	"noite":     PeriodEvening,
}

// ParsePeriod is case-insensitive. An unknown or empty token degrades to
// PeriodNone, which passes every slot unfiltered.
func ParsePeriod(token string) Period {
	if period, ok := periodTokens[strings.ToLower(strings.TrimSpace(token))]; ok {
		return period
	}
	return PeriodNone
}

// Contains reports whether an hour of day falls inside the band.
// Morning is [6,12), afternoon [12,18), evening [18,22).
func (p Period) Contains(hour int) bool {
	switch p {
	case PeriodMorning:
		return hour >= 6 && hour < 12
	case PeriodAfternoon:
		return hour >= 12 && hour < 18
	case PeriodEvening:
		return hour >= 18 && hour < 22
	default:
		return true
	}
}
