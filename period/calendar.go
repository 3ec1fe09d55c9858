package period

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// CALENDAR HELPERS
// =============================================================================

// ErrInvalidDate is returned by ParseInstant for input in neither accepted layout.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// Epoch returns the UNIX epoch (instant zero) in UTC.
func Epoch() time.Time { return time.Unix(0, 0).UTC() }

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLastDayOfMonth reports whether t falls on the last day of its month.
func IsLastDayOfMonth(t time.Time) bool {
	y, m, d := t.Date()
	return d == DaysIn(y, m)
}

// ParseInstant reads an RFC 3339 timestamp or a bare YYYY-MM-DD date.
// Bare dates are placed at midnight in loc (UTC when loc is nil).
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: want RFC 3339 or %s", ErrInvalidDate, s, dateLayout)
	}
	return t, nil
}
