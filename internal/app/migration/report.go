package migration

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/venafi/keystore-migrator/internal/app/domain"
)

// ReportResponse is the JSON rendering of the most recent migration run
type ReportResponse struct {
	RunID      string            `json:"runId"`
	StartedAt  time.Time         `json:"startedAt"`
	FinishedAt time.Time         `json:"finishedAt"`
	Succeeded  int               `json:"succeeded"`
	Failed     int               `json:"failed"`
	Outcomes   []OutcomeResponse `json:"outcomes"`
}

// OutcomeResponse is the JSON rendering of a single tenant outcome
type OutcomeResponse struct {
	TenantID int    `json:"tenantId"`
	Domain   string `json:"domain"`
	Outcome  string `json:"outcome"`
	Cause    string `json:"cause,omitempty"`
}

// HandleGetMigrationReport will return the report of the most recent migration run
func (m *Migrator) HandleGetMigrationReport(c echo.Context) error {
	report := m.LastReport()
	if report == nil {
		return c.String(http.StatusNotFound, "no key store migration has run")
	}

	return c.JSON(http.StatusOK, buildResponse(report))
}

func buildResponse(report *domain.Report) *ReportResponse {
	outcomes := make([]OutcomeResponse, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		outcomes = append(outcomes, OutcomeResponse{
			TenantID: o.TenantID,
			Domain:   o.Domain,
			Outcome:  o.Kind.String(),
			Cause:    o.Cause(),
		})
	}

	succeeded := report.Count(domain.Success)

	return &ReportResponse{
		RunID:      report.RunID.String(),
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Succeeded:  succeeded,
		Failed:     len(report.Outcomes) - succeeded,
		Outcomes:   outcomes,
	}
}
