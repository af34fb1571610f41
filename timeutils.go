package ecobici

import (
	"strconv"
	"time"
)

const (
	tripTimeLayout = "2006-01-02 15:04:05"
	dateOnlyLayout = "2006-01-02"
	timeOnlyLayout = "15:04:05"
)

// parseTripTime parses a trip timestamp in the fixed source layout.
// A format mismatch yields nil rather than an error: only the field is
// lost, never the whole pipeline.
func parseTripTime(s string) *time.Time {
	t, err := time.Parse(tripTimeLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// parseDateLoose accepts registration dates published either as a bare
// date or as a full timestamp, depending on the year.
func parseDateLoose(s string) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(tripTimeLayout, s)
}

// parseHour extracts the hour component (0-23) from an HH:MM:SS value.
func parseHour(s string) (int, bool) {
	if t, err := time.Parse(timeOnlyLayout, s); err == nil {
		return t.Hour(), true
	}
	// Some years publish bare hour integers.
	if h, err := strconv.Atoi(s); err == nil && h >= 0 && h <= 23 {
		return h, true
	}
	return 0, false
}
