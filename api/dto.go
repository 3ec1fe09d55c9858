/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupled from the
  period package types so the wire format can evolve on its own.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TIME FORMAT:
  All instants are written as RFC 3339 with nanoseconds when present.
  Inputs accept RFC 3339 or a bare YYYY-MM-DD date (see period.ParseInstant).

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/period-engine/period"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// WindowDTO is a resolved [start, end] pair.
type WindowDTO struct {
	Period string          `json:"period"`
	Start  string          `json:"start"`
	End    string          `json:"end"`
	Days   decimal.Decimal `json:"days"`
}

// BoundaryDTO is a single resolved boundary.
type BoundaryDTO struct {
	Period   string `json:"period"`
	Boundary string `json:"boundary"` // "start" or "end"
	At       string `json:"at"`
}

// OffsetRequest asks for a raw calendar offset from an anchor.
type OffsetRequest struct {
	Anchor    string `json:"anchor"`
	Period    string `json:"period"`
	Direction string `json:"direction"` // "add" (default) or "subtract"
}

// OffsetDTO is the result of an OffsetRequest.
type OffsetDTO struct {
	Anchor    string `json:"anchor"`
	Period    string `json:"period"` // canonical form, e.g. "1 month"
	Direction string `json:"direction"`
	Result    string `json:"result"`
}

// UnitsDTO lists the accepted period units.
type UnitsDTO struct {
	Units []string `json:"units"`
}

// ScenarioDTO is a worked example along with its live resolution.
type ScenarioDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Period      string    `json:"period"`
	Start       string    `json:"start,omitempty"`
	End         string    `json:"end,omitempty"`
	Window      WindowDTO `json:"window"`
}

// ErrorResponse is returned for all errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func formatInstant(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func toWindowDTO(expr string, w period.Window) WindowDTO {
	return WindowDTO{
		Period: expr,
		Start:  formatInstant(w.Start),
		End:    formatInstant(w.End),
		Days:   w.Days(),
	}
}
