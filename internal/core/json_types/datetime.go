package json_types

import (
	"encoding/json"
	"time"
)

// Layout used for every timestamp the service emits: ISO-8601 with an
// explicit numeric offset, never "Z".
const DateTimeLayout = "2006-01-02T15:04:05-07:00"

func parseDateTime(str string) (time.Time, bool) {
	parsed, err := time.Parse(time.RFC3339, str)
	if err == nil {
		return parsed, true
	}
	// Datetime without timezone, assume UTC
	parsed, err = time.ParseInLocation("2006-01-02T15:04:05", str, time.UTC)
	if err == nil {
		return parsed, true
	}
	// Date without time
	parsed, err = time.ParseInLocation("2006-01-02", str, time.UTC)
	if err == nil {
		return parsed, true
	}
	return time.Time{}, false
}

type DateTime struct {
	Date time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Date: t}
}

// UnmarshalJSON never fails on an unparseable string: it leaves the zero
// value instead, so that one bad busy entry cannot reject a whole request.
// Zero timestamps are dropped later, with a warning, by the suggestion
// service.
func (t *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	parsed, ok := parseDateTime(str)
	if !ok {
		*t = DateTime{}
		return nil
	}

	*t = DateTime{Date: parsed}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(DateTimeLayout))
}
