package utils

import (
	"fmt"
	"time"
)

// Plain dates are anchored at noon UTC so a date-only value renders as the
// same calendar day in every timezone the UI is likely to run in.
const dateAnchorHour = 12

// ParseDate accepts either an RFC 3339 timestamp or a plain "2006-01-02"
// calendar date. Plain dates are normalized to noon UTC of that day.
func ParseDate(value string) (time.Time, error) {
	if day, err := time.Parse(time.DateOnly, value); err == nil {
		return time.Date(day.Year(), day.Month(), day.Day(), dateAnchorHour, 0, 0, 0, time.UTC), nil
	}

	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}

	return time.Time{}, fmt.Errorf("invalid date: %q", value)
}
