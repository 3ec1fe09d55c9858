/*
expression.go - Period expression grammar

PURPOSE:
  Turns a symbolic period string into a (quantity, unit) pair.

GRAMMAR:
  <unit>              "month", "weeks", "all"     quantity 1
  <integer> <unit>    "14 days", "2 quarters"     quantity |integer|

  Tokens are separated by a single space and matched exactly. Singular and
  plural spellings are both listed; nothing is stripped or lower-cased.

QUANTITY COERCION:
  The leading integer is read permissively: an optional sign followed by the
  leading run of digits ("3x" is 3). No digits at all, or a value that does
  not fit an int, reads as 0. The sign is dropped; direction belongs to the
  caller, not the expression.

  Exponent notation is not read ("1e3" is 1), and an overflowing digit run
  reads as 0 rather than saturating. Quantities past MaxQuantity saturate
  later, in Apply.
*/
package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Unit is a calendar unit a period can be expressed in.
type Unit string

const (
	UnitDay     Unit = "day"
	UnitWeek    Unit = "week"
	UnitMonth   Unit = "month"
	UnitQuarter Unit = "quarter"
	UnitYear    Unit = "year"
	UnitAll     Unit = "all" // sentinel: since the UNIX epoch
)

// All is the expression meaning "since the beginning of UNIX time".
const All = string(UnitAll)

// Units returns the valid units in grammar order.
func Units() []Unit {
	return []Unit{UnitDay, UnitWeek, UnitMonth, UnitQuarter, UnitYear, UnitAll}
}

// Valid reports whether u is one of Units.
func (u Unit) Valid() bool {
	switch u {
	case UnitDay, UnitWeek, UnitMonth, UnitQuarter, UnitYear, UnitAll:
		return true
	}
	return false
}

var unitTokens = map[string]Unit{
	"day": UnitDay, "days": UnitDay,
	"week": UnitWeek, "weeks": UnitWeek,
	"month": UnitMonth, "months": UnitMonth,
	"quarter": UnitQuarter, "quarters": UnitQuarter,
	"year": UnitYear, "years": UnitYear,
	"all": UnitAll,
}

// Expression is a parsed period: Quantity units of Unit.
type Expression struct {
	Quantity int
	Unit     Unit
	Token    string // unit token as written, e.g. "days"
}

// Parse parses a period expression.
func Parse(raw string) (Expression, error) {
	parts := strings.Split(raw, " ")
	if len(parts) != 2 {
		parts = strings.Split("1 "+raw, " ")
	}
	token := parts[1]
	unit, ok := unitTokens[token]
	if !ok {
		return Expression{}, &InvalidPeriodError{Expression: raw, Token: token, Valid: Units()}
	}
	return Expression{Quantity: coerceQuantity(parts[0]), Unit: unit, Token: token}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(raw string) Expression {
	e, err := Parse(raw)
	if err != nil {
		panic(err.Error())
	}
	return e
}

// String returns the compound form, e.g. "3 months". The sentinel stays "all".
func (e Expression) String() string {
	if e.Unit == UnitAll {
		return All
	}
	return fmt.Sprintf("%d %s", e.Quantity, e.Token)
}

// After returns the instant e after anchor.
func (e Expression) After(anchor time.Time) time.Time {
	return Apply(anchor, e.Quantity, e.Unit, DirectionAdd)
}

// Before returns the instant e before anchor.
func (e Expression) Before(anchor time.Time) time.Time {
	return Apply(anchor, e.Quantity, e.Unit, DirectionSubtract)
}

func coerceQuantity(s string) int {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	if n < 0 {
		n = -n
	}
	// -MinInt is still negative.
	if n < 0 {
		return 0
	}
	return n
}
