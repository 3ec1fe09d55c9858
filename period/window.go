package period

import (
	"time"

	"github.com/shopspring/decimal"
)

var secondsPerDay = decimal.NewFromInt(24 * 60 * 60)

// Window is a resolved pair of period boundaries.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the length of the window in days, fractional part included.
// Computed from UNIX seconds so spans longer than time.Duration can hold
// (about 292 years) stay exact.
func (w Window) Days() decimal.Decimal {
	secs := decimal.NewFromInt(w.End.Unix() - w.Start.Unix())
	nanos := decimal.New(int64(w.End.Nanosecond()-w.Start.Nanosecond()), -9)
	return secs.Add(nanos).Div(secondsPerDay).Round(6)
}

// String returns a string representation of the window.
func (w Window) String() string {
	return "[" + w.Start.Format(time.RFC3339) + ", " + w.End.Format(time.RFC3339) + "]"
}
