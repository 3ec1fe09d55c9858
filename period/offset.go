package period

import "time"

// =============================================================================
// CALENDAR OFFSET ENGINE
// =============================================================================

// Direction selects whether an offset moves forward or backward in time.
type Direction int

const (
	DirectionAdd      Direction = iota // end from start
	DirectionSubtract                  // start from end
)

func (d Direction) String() string {
	if d == DirectionSubtract {
		return "subtract"
	}
	return "add"
}

// MaxQuantity bounds the quantity Apply works with; larger values saturate.
// At this bound 7*n days and 3*n months still fit a 32-bit int, and every
// unit lands on a year time.Time can represent.
const MaxQuantity = 1 << 28

// Apply moves anchor by quantity units in the given direction. The anchor's
// time of day and location are kept. UnitAll has no calendar span and returns
// anchor unchanged.
func Apply(anchor time.Time, quantity int, unit Unit, dir Direction) time.Time {
	n := saturate(quantity, MaxQuantity)
	if dir == DirectionSubtract {
		n = -n
	}
	switch unit {
	case UnitDay:
		return anchor.AddDate(0, 0, n)
	case UnitWeek:
		return anchor.AddDate(0, 0, 7*n)
	case UnitMonth:
		return AddMonths(anchor, n)
	case UnitQuarter:
		return AddMonths(anchor, 3*n)
	case UnitYear:
		return anchor.AddDate(n, 0, 0)
	default:
		return anchor
	}
}

// AddMonths adds delta calendar months (negative to subtract) to anchor.
//
// A day that does not exist in the target month clamps to its last day, and
// an anchor on the last day of its month stays on the last day:
//
//	Jan 31 + 1 month = Feb 28 (Feb 29 in leap years)
//	Apr 30 + 1 month = May 31
//	Feb 28 + 1 month = Mar 28 in leap years, Mar 31 otherwise
//
// delta saturates at ±3*MaxQuantity, the span of MaxQuantity quarters.
func AddMonths(anchor time.Time, delta int) time.Time {
	y, m, d := anchor.Date()
	year, month := carryMonths(y, int(m), saturate(delta, 3*MaxQuantity))

	if IsLastDayOfMonth(anchor) || d > DaysIn(year, month) {
		d = DaysIn(year, month)
	}
	hour, minute, sec := anchor.Clock()
	return time.Date(year, month, d, hour, minute, sec, anchor.Nanosecond(), anchor.Location())
}

// carryMonths splits delta into whole years (rounded half away from zero)
// and a month remainder, then folds the remainder into month. The rounding
// can leave month outside 1..12; a zero month is floored to January and any
// other overflow is carried into the year.
func carryMonths(year, month, delta int) (int, time.Month) {
	if delta >= 0 {
		fullYears := 0
		if month+delta > 12 {
			fullYears = roundTwelfths(delta)
			year += fullYears
		}
		rem := delta - fullYears*12
		if month+rem <= 12 {
			month += rem
		} else {
			year++
			month = rem + month - 12
		}
	} else {
		delta = -delta
		fullYears := roundTwelfths(delta)
		year -= fullYears
		rem := delta - fullYears*12
		if month > rem {
			month -= rem
		} else {
			// month == rem also moves back a year: Jan - 1 month is December of the year before.
			year--
			month = 12 - (rem - month)
		}
	}

	if month == 0 {
		month = 1
	}
	carry := floorDiv(month-1, 12)
	return year + carry, time.Month(month - carry*12)
}

// roundTwelfths returns n/12 rounded half away from zero, for n >= 0.
func roundTwelfths(n int) int {
	q := n / 12
	if n%12 >= 6 {
		q++
	}
	return q
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// saturate clamps n to [-limit, limit].
func saturate(n, limit int) int {
	switch {
	case n > limit:
		return limit
	case n < -limit:
		return -limit
	}
	return n
}
