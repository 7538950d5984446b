package timeutil

import (
	"fmt"
	"time"
)

// ISODateLayout is the wire format of calendar dates (YYYY-MM-DD).
const ISODateLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseOptionalISODate parses s when it is non-empty; an empty string yields nil.
func ParseOptionalISODate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseISODate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
