package migration

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/venafi/keystore-migrator/internal/app/domain"
)

// Metrics holds the Prometheus metrics of the key-store migration
type Metrics struct {
	TenantsTotal *prometheus.CounterVec
	RunsTotal    prometheus.Counter
	RunDuration  prometheus.Gauge
}

// NewMetrics initializes and registers the migration metrics with registerer
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		TenantsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "keystore_migrator",
			Subsystem: "migration",
			Name:      "tenants_total",
			Help:      "Total number of migrated tenants by outcome.",
		}, []string{"outcome"}),
		RunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "keystore_migrator",
			Subsystem: "migration",
			Name:      "runs_total",
			Help:      "Total number of completed migration runs.",
		}),
		RunDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "keystore_migrator",
			Subsystem: "migration",
			Name:      "last_run_duration_seconds",
			Help:      "Duration of the most recent migration run.",
		}),
	}
}

func (m *Metrics) observeOutcome(outcome domain.Outcome) {
	if m == nil {
		return
	}

	m.TenantsTotal.WithLabelValues(outcome.Kind.String()).Inc()
}

func (m *Metrics) observeRun(report *domain.Report) {
	if m == nil {
		return
	}

	m.RunsTotal.Inc()
	m.RunDuration.Set(report.FinishedAt.Sub(report.StartedAt).Seconds())
}
