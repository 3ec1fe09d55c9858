package period_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/period-engine/period"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 15, 30, 0, time.UTC)
}

// =============================================================================
// MONTH ARITHMETIC
// =============================================================================

func TestAddMonths_BoundaryValues(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		delta  int
		want   time.Time
	}{
		// End-of-month handling
		{"Jan 31 + 1 clamps to Feb 28", at(2025, time.January, 31), 1, at(2025, time.February, 28)},
		{"Jan 31 + 1 clamps to Feb 29 in leap year", at(2024, time.January, 31), 1, at(2024, time.February, 29)},
		{"Jan 30 + 1 overflows into clamp", at(2025, time.January, 30), 1, at(2025, time.February, 28)},
		{"Feb 28 leap year is not month end", at(2024, time.February, 28), 1, at(2024, time.March, 28)},
		{"Feb 28 non-leap year is month end", at(2025, time.February, 28), 1, at(2025, time.March, 31)},
		{"Apr 30 + 1 stays on month end", at(2025, time.April, 30), 1, at(2025, time.May, 31)},
		{"Mar 31 - 1 clamps to Feb 28", at(2025, time.March, 31), -1, at(2025, time.February, 28)},
		{"zero delta keeps the date", at(2025, time.January, 31), 0, at(2025, time.January, 31)},

		// Year carry
		{"Dec + 1 rolls into next year", at(2025, time.December, 15), 1, at(2026, time.January, 15)},
		{"Jul + 6 rounds a half year up", at(2025, time.July, 10), 6, at(2026, time.January, 10)},
		{"Jan + 18 carries two years back one", at(2025, time.January, 15), 18, at(2026, time.July, 15)},
		{"Mar + 12", at(2025, time.March, 15), 12, at(2026, time.March, 15)},
		{"Mar - 12", at(2025, time.March, 15), -12, at(2024, time.March, 15)},
		{"Mar - 24", at(2025, time.March, 15), -24, at(2023, time.March, 15)},
		{"Jan - 1 goes to previous December", at(2025, time.January, 15), -1, at(2024, time.December, 15)},
		{"Mar - 3 goes to previous December", at(2025, time.March, 15), -3, at(2024, time.December, 15)},
		{"Feb - 5", at(2025, time.February, 15), -5, at(2024, time.September, 15)},
		{"Sep - 6 carries a month past December", at(2025, time.September, 15), -6, at(2025, time.March, 15)},
		{"Nov - 17", at(2025, time.November, 15), -17, at(2024, time.June, 15)},

		// A zero month from the half-year rounding is floored to January.
		{"Jun + 18 floors to January", at(2025, time.June, 10), 18, at(2027, time.January, 10)},
		{"May + 19 floors to January", at(2025, time.May, 10), 19, at(2027, time.January, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := period.AddMonths(tt.anchor, tt.delta)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddMonths_PreservesTimeOfDayAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	anchor := time.Date(2025, time.January, 31, 23, 59, 58, 123, loc)

	got := period.AddMonths(anchor, 1)

	assert.Equal(t, time.Date(2025, time.February, 28, 23, 59, 58, 123, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestAddMonths_DoesNotMutateAnchor(t *testing.T) {
	anchor := at(2025, time.January, 31)
	before := anchor

	_ = period.AddMonths(anchor, 1)

	assert.Equal(t, before, anchor)
}

// =============================================================================
// APPLY
// =============================================================================

func TestApply_Units(t *testing.T) {
	tests := []struct {
		name     string
		anchor   time.Time
		quantity int
		unit     period.Unit
		dir      period.Direction
		want     time.Time
	}{
		{"day back over leap day", at(2024, time.March, 1), 1, period.UnitDay, period.DirectionSubtract, at(2024, time.February, 29)},
		{"14 days forward", at(2025, time.January, 20), 14, period.UnitDay, period.DirectionAdd, at(2025, time.February, 3)},
		{"week over year end", at(2025, time.December, 28), 1, period.UnitWeek, period.DirectionAdd, at(2026, time.January, 4)},
		{"2 weeks back", at(2025, time.March, 15), 2, period.UnitWeek, period.DirectionSubtract, at(2025, time.March, 1)},
		{"month", at(2025, time.January, 31), 1, period.UnitMonth, period.DirectionAdd, at(2025, time.February, 28)},
		{"quarter from month end", at(2025, time.November, 30), 1, period.UnitQuarter, period.DirectionAdd, at(2026, time.February, 28)},
		{"quarter back from June 30", at(2025, time.June, 30), 1, period.UnitQuarter, period.DirectionSubtract, at(2025, time.March, 31)},
		{"3 quarters is 9 months", at(2025, time.January, 20), 3, period.UnitQuarter, period.DirectionAdd, at(2025, time.October, 20)},
		{"leap day plus a year rolls over", at(2024, time.February, 29), 1, period.UnitYear, period.DirectionAdd, at(2025, time.March, 1)},
		{"2 years back", at(2025, time.August, 15), 2, period.UnitYear, period.DirectionSubtract, at(2023, time.August, 15)},
		{"all has no span", at(2025, time.August, 15), 3, period.UnitAll, period.DirectionSubtract, at(2025, time.August, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, period.Apply(tt.anchor, tt.quantity, tt.unit, tt.dir))
		})
	}
}

func TestApply_RoundTrip(t *testing.T) {
	// GIVEN: A mid-month anchor that no target month can clamp
	// WHEN: Adding then subtracting the same offset
	// THEN: The original date comes back for every unit

	anchor := at(2025, time.August, 15)
	units := []period.Unit{period.UnitDay, period.UnitWeek, period.UnitMonth, period.UnitQuarter, period.UnitYear}

	for _, unit := range units {
		for q := 0; q <= 40; q++ {
			there := period.Apply(anchor, q, unit, period.DirectionAdd)
			back := period.Apply(there, q, unit, period.DirectionSubtract)
			assert.Equal(t, anchor, back, "%d %s", q, unit)
		}
	}
}

func TestApply_RoundTripBrokenByClamping(t *testing.T) {
	// Jan 30 clamps to Feb 28, which is a month end, so it comes back as Jan 31.
	there := period.Apply(at(2025, time.January, 30), 1, period.UnitMonth, period.DirectionAdd)
	back := period.Apply(there, 1, period.UnitMonth, period.DirectionSubtract)
	assert.Equal(t, at(2025, time.January, 31), back)

	// Month end to month end survives the trip.
	there = period.Apply(at(2025, time.January, 31), 1, period.UnitMonth, period.DirectionAdd)
	back = period.Apply(there, 1, period.UnitMonth, period.DirectionSubtract)
	assert.Equal(t, at(2025, time.January, 31), back)
}

// =============================================================================
// INTEGER RANGE
// =============================================================================

func TestApply_HugeQuantitiesSaturate(t *testing.T) {
	// GIVEN: Quantities at the edge of the int range
	// WHEN: Applying them in either direction
	// THEN: They saturate at MaxQuantity and keep the time of day

	anchor := at(2025, time.May, 10)
	tests := []struct {
		name     string
		quantity int
		unit     period.Unit
		dir      period.Direction
		want     time.Time
	}{
		{"max months forward", math.MaxInt, period.UnitMonth, period.DirectionAdd, at(22371646, time.September, 10)},
		{"max months back", math.MaxInt, period.UnitMonth, period.DirectionSubtract, at(-22367596, time.January, 10)},
		{"max quarters forward", math.MaxInt, period.UnitQuarter, period.DirectionAdd, at(67110889, time.May, 10)},
		{"max quarters back", math.MaxInt, period.UnitQuarter, period.DirectionSubtract, at(-67106839, time.May, 10)},
		{"min int months is max months the other way", math.MinInt, period.UnitMonth, period.DirectionSubtract, at(22371646, time.September, 10)},
		{"max years forward", math.MaxInt, period.UnitYear, period.DirectionAdd, at(2025+period.MaxQuantity, time.May, 10)},
		{"max years back", math.MaxInt, period.UnitYear, period.DirectionSubtract, at(2025-period.MaxQuantity, time.May, 10)},
		{"max days forward", math.MaxInt, period.UnitDay, period.DirectionAdd, anchor.AddDate(0, 0, period.MaxQuantity)},
		{"max weeks back", math.MaxInt, period.UnitWeek, period.DirectionSubtract, anchor.AddDate(0, 0, -7*period.MaxQuantity)},
		{"just past the cap", period.MaxQuantity + 1, period.UnitMonth, period.DirectionAdd, at(22371646, time.September, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := period.Apply(anchor, tt.quantity, tt.unit, tt.dir)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)

			hour, minute, sec := got.Clock()
			assert.Equal(t, []int{10, 15, 30}, []int{hour, minute, sec})
		})
	}
}

func TestAddMonths_HugeDeltaSaturates(t *testing.T) {
	anchor := at(2025, time.May, 10)

	assert.True(t, at(67110889, time.May, 10).Equal(period.AddMonths(anchor, math.MaxInt)))
	assert.True(t, at(-67106839, time.May, 10).Equal(period.AddMonths(anchor, math.MinInt)))
}

func TestExpression_HugeQuantities(t *testing.T) {
	anchor := at(2025, time.May, 10)

	// Fits an int, so it saturates in Apply like MaxInt quarters.
	e := period.MustParse("3074457345618258603 quarters")
	assert.True(t, at(67110889, time.May, 10).Equal(e.After(anchor)))
	assert.True(t, at(-67106839, time.May, 10).Equal(e.Before(anchor)))

	// Out of int range, or MinInt with no absolute value, reads as 0.
	assert.Equal(t, anchor, period.MustParse("9223372036854775808 months").After(anchor))
	assert.Equal(t, anchor, period.MustParse("-9223372036854775808 days").Before(anchor))
}

func TestExpression_AfterBefore(t *testing.T) {
	e := period.MustParse("2 quarters")
	anchor := at(2025, time.August, 15)

	assert.Equal(t, at(2026, time.February, 15), e.After(anchor))
	assert.Equal(t, at(2025, time.February, 15), e.Before(anchor))
}
