/*
resolver.go - Derives a missing period boundary

PURPOSE:
  A Resolver holds a period expression and at most one known boundary, and
  computes the other boundary on request:

    start known  ->  end   = start + period
    end known    ->  start = end - period

DEFAULTS:
  A missing anchor is materialised on first use and kept, so successive
  queries on the same resolver describe one consistent window:
  - EndDate() with no start anchors on the UNIX epoch.
  - StartDate() with no end anchors on Clock() (now).

THE "all" EXPRESSION:
  StartDate() always returns the epoch for "all", even when a start was set.
  EndDate() returns the explicit end when one was set, now otherwise. The two
  checks are deliberately not symmetric.

USAGE:
  r := period.NewResolver("1 month").SetEndDate(time.Now())
  from, err := r.StartDate()

SEE ALSO:
  - expression.go: Grammar
  - offset.go: Calendar arithmetic
*/
package period

import "time"

// Resolver computes a start or end instant from a period expression and the
// opposite boundary. A Resolver is not safe for concurrent use.
type Resolver struct {
	expr  string
	start *time.Time
	end   *time.Time

	// Clock returns the current instant. Nil means time.Now.
	Clock func() time.Time
}

// NewResolver creates a resolver for expr. An empty expr means none is set yet.
func NewResolver(expr string) *Resolver {
	return &Resolver{expr: expr}
}

// SetPeriodName replaces the period expression.
func (r *Resolver) SetPeriodName(expr string) *Resolver {
	r.expr = expr
	return r
}

// SetStartDate sets the boundary after which the period is measured.
func (r *Resolver) SetStartDate(t time.Time) *Resolver {
	r.start = &t
	return r
}

// SetEndDate sets the boundary before which the period is measured.
func (r *Resolver) SetEndDate(t time.Time) *Resolver {
	r.end = &t
	return r
}

// PeriodName returns the current period expression.
func (r *Resolver) PeriodName() string { return r.expr }

// EndDate returns the explicit end date, or the start date moved forward by
// the period.
func (r *Resolver) EndDate() (time.Time, error) {
	if r.end != nil || r.expr == All {
		if r.end != nil {
			return *r.end, nil
		}
		return r.now(), nil
	}
	if r.start == nil {
		epoch := Epoch()
		r.start = &epoch
	}

	e, err := Parse(r.expr)
	if err != nil {
		return time.Time{}, err
	}
	return Apply(*r.start, e.Quantity, e.Unit, DirectionAdd), nil
}

// StartDate returns the explicit start date, or the end date moved back by
// the period. For "all" it is always the UNIX epoch.
func (r *Resolver) StartDate() (time.Time, error) {
	if r.expr == All {
		return Epoch(), nil
	}
	if r.start != nil {
		return *r.start, nil
	}
	if r.end == nil {
		now := r.now()
		r.end = &now
	}

	e, err := Parse(r.expr)
	if err != nil {
		return time.Time{}, err
	}
	return Apply(*r.end, e.Quantity, e.Unit, DirectionSubtract), nil
}

// Resolve returns both boundaries. The start is resolved first so that a
// resolver with only an expression yields [now - period, now].
func (r *Resolver) Resolve() (Window, error) {
	start, err := r.StartDate()
	if err != nil {
		return Window{}, err
	}
	end, err := r.EndDate()
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end}, nil
}

func (r *Resolver) now() time.Time {
	if r.Clock != nil {
		return r.Clock()
	}
	return time.Now()
}
