package itinerary

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayCount returns the number of days in the inclusive range [start, end].
func DayCount(start, end time.Time) (int, error) {
	start, end = truncateDay(start), truncateDay(end)
	if end.Before(start) {
		return 0, fmt.Errorf("%w: end date %s precedes start date %s", ErrInvalidRange, FormatDate(end), FormatDate(start))
	}
	return int((end.Unix()-start.Unix())/secondsPerDay) + 1, nil
}

// truncateDay keeps the calendar date of t and drops the clock and zone.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
