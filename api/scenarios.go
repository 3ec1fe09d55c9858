/*
scenarios.go - Worked examples resolved live

PURPOSE:
  A small catalog of period questions with fixed anchors. Each request
  resolves them through the same path as /api/resolve, so the catalog
  doubles as living documentation of the calendar rules.

AVAILABLE SCENARIOS:
  billing-month-end:  1 month from Jan 31 lands on Feb 28
  leap-february:      1 month from Jan 31 in a leap year lands on Feb 29
  quarter-report:     1 quarter back from Jun 30 lands on Mar 31
  trailing-weeks:     2 weeks back from a mid-month date
  fiscal-year:        1 year from Apr 1
  all-time:           "all" ignores everything but the end

USAGE VIA API:
  GET /api/scenarios
  GET /api/scenarios/quarter-report

ADDING NEW SCENARIOS:
  Append to 'scenarios' with either Start or End set (not both).

SEE ALSO:
  - handlers.go: Resolve handler
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/period-engine/period"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// Scenario is a period question with fixed inputs.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Period      string
	Start       string
	End         string
}

var scenarios = []Scenario{
	{
		ID:          "billing-month-end",
		Name:        "Billing Month End",
		Description: "A cycle starting on the last day of January ends on the last day of February",
		Period:      "1 month",
		Start:       "2025-01-31T09:30:00Z",
	},
	{
		ID:          "leap-february",
		Name:        "Leap February",
		Description: "The same cycle in a leap year ends on February 29",
		Period:      "1 month",
		Start:       "2024-01-31T09:30:00Z",
	},
	{
		ID:          "quarter-report",
		Name:        "Quarter Report",
		Description: "A quarter ending on June 30 starts on March 31, not March 30",
		Period:      "1 quarter",
		End:         "2025-06-30T23:59:59Z",
	},
	{
		ID:          "trailing-weeks",
		Name:        "Trailing Two Weeks",
		Description: "Two weeks back from March 15 at noon",
		Period:      "2 weeks",
		End:         "2025-03-15T12:00:00Z",
	},
	{
		ID:          "fiscal-year",
		Name:        "Fiscal Year",
		Description: "A fiscal year starting April 1",
		Period:      "year",
		Start:       "2025-04-01T00:00:00Z",
	},
	{
		ID:          "all-time",
		Name:        "All Time",
		Description: "Everything from the UNIX epoch up to the end of 2025",
		Period:      "all",
		End:         "2025-12-31T23:59:59Z",
	},
}

// resolve runs the scenario through a fresh resolver.
func (s Scenario) resolve() (period.Window, error) {
	r := period.NewResolver(s.Period)
	if s.Start != "" {
		t, err := period.ParseInstant(s.Start, nil)
		if err != nil {
			return period.Window{}, err
		}
		r.SetStartDate(t)
	}
	if s.End != "" {
		t, err := period.ParseInstant(s.End, nil)
		if err != nil {
			return period.Window{}, err
		}
		r.SetEndDate(t)
	}
	return r.Resolve()
}

func (s Scenario) toDTO() (ScenarioDTO, error) {
	w, err := s.resolve()
	if err != nil {
		return ScenarioDTO{}, err
	}
	return ScenarioDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Period:      s.Period,
		Start:       s.Start,
		End:         s.End,
		Window:      toWindowDTO(s.Period, w),
	}, nil
}

// ListScenarios returns all scenarios with their resolved windows.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, 0, len(scenarios))
	for _, s := range scenarios {
		dto, err := s.toDTO()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to resolve scenario "+s.ID, err)
			return
		}
		dtos = append(dtos, dto)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetScenario returns a single scenario.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, s := range scenarios {
		if s.ID != id {
			continue
		}
		dto, err := s.toDTO()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to resolve scenario", err)
			return
		}
		writeJSON(w, http.StatusOK, dto)
		return
	}

	writeError(w, http.StatusNotFound, "Scenario not found", nil)
}
