/*
handlers.go - HTTP API handlers for period resolution

PURPOSE:
  Exposes the period resolver over REST. Handles query/body parsing and
  JSON serialization, and delegates all calendar logic to package period.

ENDPOINTS:
  Resolution:
    GET    /api/resolve                Resolve both boundaries
    GET    /api/resolve/start          Resolve the start boundary only
    GET    /api/resolve/end            Resolve the end boundary only
      query: period=<expression>  start=<instant>  end=<instant>

  Arithmetic:
    POST   /api/offset                 Apply an expression to an anchor

  Reference:
    GET    /api/units                  Accepted unit tokens
    GET    /api/scenarios              Worked examples
    GET    /api/scenarios/{id}         One worked example

REQUEST FLOW:
  1. Parse query or body
  2. Build a fresh period.Resolver (one per request, nothing shared)
  3. Resolve
  4. Serialize response

ERROR HANDLING:
  - 400: Invalid period expression, invalid date, invalid direction
  - 404: Unknown scenario
  - 500: Anything else

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Worked examples
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/warp/period-engine/period"
)

// errInvalidDirection is returned for a direction other than add/subtract.
var errInvalidDirection = errors.New(`invalid direction, must be "add" or "subtract"`)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	// Location is used for bare YYYY-MM-DD inputs.
	Location *time.Location

	// Clock returns the current instant. Nil means time.Now.
	Clock func() time.Time
}

// NewHandler creates a new handler. A nil loc means UTC.
func NewHandler(loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{Location: loc}
}

func (h *Handler) now() time.Time {
	if h.Clock != nil {
		return h.Clock()
	}
	return time.Now().In(h.Location)
}

// newResolver builds a resolver from the period/start/end query parameters.
func (h *Handler) newResolver(r *http.Request) (*period.Resolver, error) {
	q := r.URL.Query()

	res := period.NewResolver(q.Get("period"))
	res.Clock = h.now

	if s := q.Get("start"); s != "" {
		t, err := period.ParseInstant(s, h.Location)
		if err != nil {
			return nil, err
		}
		res.SetStartDate(t)
	}
	if s := q.Get("end"); s != "" {
		t, err := period.ParseInstant(s, h.Location)
		if err != nil {
			return nil, err
		}
		res.SetEndDate(t)
	}
	return res, nil
}

// =============================================================================
// RESOLUTION HANDLERS
// =============================================================================

// Resolve returns both boundaries of the requested period.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	res, err := h.newResolver(r)
	if err != nil {
		writeError(w, statusFor(err), "Invalid date", err)
		return
	}

	window, err := res.Resolve()
	if err != nil {
		writeError(w, statusFor(err), "Failed to resolve period", err)
		return
	}

	writeJSON(w, http.StatusOK, toWindowDTO(res.PeriodName(), window))
}

// ResolveStart returns the start boundary of the requested period.
func (h *Handler) ResolveStart(w http.ResponseWriter, r *http.Request) {
	h.resolveBoundary(w, r, "start", (*period.Resolver).StartDate)
}

// ResolveEnd returns the end boundary of the requested period.
func (h *Handler) ResolveEnd(w http.ResponseWriter, r *http.Request) {
	h.resolveBoundary(w, r, "end", (*period.Resolver).EndDate)
}

func (h *Handler) resolveBoundary(w http.ResponseWriter, r *http.Request, boundary string, get func(*period.Resolver) (time.Time, error)) {
	res, err := h.newResolver(r)
	if err != nil {
		writeError(w, statusFor(err), "Invalid date", err)
		return
	}

	at, err := get(res)
	if err != nil {
		writeError(w, statusFor(err), "Failed to resolve "+boundary, err)
		return
	}

	writeJSON(w, http.StatusOK, BoundaryDTO{
		Period:   res.PeriodName(),
		Boundary: boundary,
		At:       formatInstant(at),
	})
}

// =============================================================================
// ARITHMETIC HANDLERS
// =============================================================================

// Offset applies a period expression to an explicit anchor.
func (h *Handler) Offset(w http.ResponseWriter, r *http.Request) {
	var req OffsetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	anchor, err := period.ParseInstant(req.Anchor, h.Location)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid anchor", err)
		return
	}

	expr, err := period.Parse(req.Period)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid period", err)
		return
	}

	dir, err := parseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid direction", err)
		return
	}

	result := period.Apply(anchor, expr.Quantity, expr.Unit, dir)

	writeJSON(w, http.StatusOK, OffsetDTO{
		Anchor:    formatInstant(anchor),
		Period:    expr.String(),
		Direction: dir.String(),
		Result:    formatInstant(result),
	})
}

func parseDirection(s string) (period.Direction, error) {
	switch s {
	case "", "add":
		return period.DirectionAdd, nil
	case "subtract":
		return period.DirectionSubtract, nil
	default:
		return period.DirectionAdd, errInvalidDirection
	}
}

// =============================================================================
// REFERENCE HANDLERS
// =============================================================================

// ListUnits returns the accepted unit tokens.
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	units := period.Units()
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = string(u)
	}
	writeJSON(w, http.StatusOK, UnitsDTO{Units: names})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func statusFor(err error) int {
	if period.IsClientError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
