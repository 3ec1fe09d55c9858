/*
errors.go - Error types for period resolution

PURPOSE:
  The resolver has exactly one failure mode: a period expression whose unit
  token is not part of the fixed grammar. Everything else (odd quantities,
  impossible calendar dates) is coerced or clamped instead of failing.

USAGE:
  Callers match with errors.Is / errors.As:

    if errors.Is(err, period.ErrInvalidPeriod) {
        // 400 Bad Request
    }

    var perr *period.InvalidPeriodError
    if errors.As(err, &perr) {
        fmt.Println(perr.Valid)
    }

SEE ALSO:
  - expression.go: Raises InvalidPeriodError
  - api/handlers.go: Maps it to HTTP 400
*/
package period

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPeriod is returned when a period expression names an unknown unit.
var ErrInvalidPeriod = errors.New("invalid period")

// InvalidPeriodError carries the rejected expression and the units that would
// have been accepted.
type InvalidPeriodError struct {
	Expression string // raw expression as given by the caller
	Token      string // unit token that failed to match
	Valid      []Unit
}

func (e *InvalidPeriodError) Error() string {
	names := make([]string, len(e.Valid))
	for i, u := range e.Valid {
		names[i] = string(u)
	}
	return fmt.Sprintf("invalid period %q, must be from: %s", e.Expression, strings.Join(names, ", "))
}

func (e *InvalidPeriodError) Unwrap() error {
	return ErrInvalidPeriod
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) || errors.Is(err, ErrInvalidDate)
}
