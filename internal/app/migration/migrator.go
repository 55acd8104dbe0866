package migration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/venafi/keystore-migrator/internal/app/domain"
	"github.com/venafi/keystore-migrator/internal/app/registry"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const migrateKey = "migrate"

// Migrator removes and regenerates the key-store and public certificate of every tenant
type Migrator struct {
	Tenants   TenantServices
	Contexts  ContextServices
	Generator KeyStoreGenerator
	Metrics   *Metrics

	group singleflight.Group
	mu    sync.RWMutex
	last  *domain.Report
	now   func() time.Time
}

// NewMigrator will return a new Migrator
func NewMigrator(tenants TenantServices, contexts ContextServices, generator KeyStoreGenerator, metrics *Metrics) *Migrator {
	return &Migrator{
		Tenants:   tenants,
		Contexts:  contexts,
		Generator: generator,
		Metrics:   metrics,
		now:       time.Now,
	}
}

// Migrate runs the migration over all tenants, sequentially and in enumeration order.
// A failing tenant is recorded in the report and never stops the run; only failing to list
// the tenants, or ctx being cancelled between tenants, returns an error.
// Callers arriving while a run is in progress share its result. The shared run observes the
// ctx of the caller that started it, so a joining caller also sees that caller's cancellation.
func (m *Migrator) Migrate(ctx context.Context) (*domain.Report, error) {
	v, err, shared := m.group.Do(migrateKey, func() (interface{}, error) {
		return m.migrate(ctx)
	})
	if shared {
		zap.L().Info("joined key store migration already in progress")
	}

	report, _ := v.(*domain.Report)
	return report, err
}

// LastReport returns the report of the most recent run, nil when no run has completed
func (m *Migrator) LastReport() *domain.Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.last
}

func (m *Migrator) migrate(ctx context.Context) (*domain.Report, error) {
	report := &domain.Report{
		RunID:     uuid.New(),
		StartedAt: m.now(),
		Outcomes:  make([]domain.Outcome, 0),
	}

	logger := zap.L().With(zap.String("run_id", report.RunID.String()))

	tenants, err := m.Tenants.ListAllTenants(ctx)
	if err != nil {
		logger.Error("failed to list tenants, key store migration aborted", zap.Error(err))
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	logger.Info("key store migration run started", zap.Int("tenants", len(tenants)))

	for _, tenant := range tenants {
		if err = ctx.Err(); err != nil {
			logger.Warn("key store migration interrupted", zap.Int("migrated", len(report.Outcomes)), zap.Int("tenants", len(tenants)), zap.Error(err))
			break
		}

		outcome := m.migrateTenant(ctx, tenant)
		report.Outcomes = append(report.Outcomes, outcome)
		m.Metrics.observeOutcome(outcome)
		logOutcome(logger, outcome)
	}

	report.FinishedAt = m.now()
	m.Metrics.observeRun(report)
	m.remember(report)

	logger.Info("key store migration finished",
		zap.Int("succeeded", report.Count(domain.Success)),
		zap.Int("failed", len(report.Outcomes)-report.Count(domain.Success)),
		zap.Duration("duration", report.FinishedAt.Sub(report.StartedAt)))

	return report, err
}

// migrateTenant is the isolation boundary of a single tenant, nothing raised for one tenant escapes it
func (m *Migrator) migrateTenant(ctx context.Context, tenant domain.Tenant) (outcome domain.Outcome) {
	outcome = domain.Outcome{
		TenantID: tenant.ID,
		Domain:   tenant.Domain,
	}

	defer func() {
		if r := recover(); r != nil {
			outcome.Kind = domain.UnexpectedFailure
			outcome.Err = fmt.Errorf("panic while migrating tenant: %v", r)
		}
	}()

	outcome.Kind, outcome.Err = m.runTenant(ctx, tenant)
	return outcome
}

func (m *Migrator) runTenant(ctx context.Context, tenant domain.Tenant) (domain.OutcomeKind, error) {
	ksName := domain.KeyStoreName(tenant.Domain)

	tc := m.Contexts.NewContext(tenant)
	defer func() {
		m.Contexts.Exit(tc)
	}()

	if err := m.Contexts.Enter(ctx, tc); err != nil {
		return domain.UnexpectedFailure, fmt.Errorf("failed to enter tenant context: %w", err)
	}

	// the registry refuses to create resources over existing ones, so the old ones go first
	if err := registry.RemoveIfExists(ctx, tc.Registry, domain.PublicCertificatePath); err != nil {
		return domain.ClassifyOutcome(err), fmt.Errorf("failed to remove existing public certificate: %w", err)
	}

	if err := registry.RemoveIfExists(ctx, tc.Registry, domain.KeyStorePath(ksName)); err != nil {
		return domain.ClassifyOutcome(err), fmt.Errorf("failed to remove existing key store: %w", err)
	}

	if err := m.Generator.GenerateKeyStore(ctx, tc); err != nil {
		var generationErr *domain.GenerationError
		if !errors.As(err, &generationErr) {
			err = &domain.GenerationError{TenantID: tenant.ID, Err: err}
		}
		return domain.ClassifyOutcome(err), err
	}

	return domain.Success, nil
}

func (m *Migrator) remember(report *domain.Report) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.last = report
}

func logOutcome(logger *zap.Logger, outcome domain.Outcome) {
	fields := []zap.Field{
		zap.Int("tenant_id", outcome.TenantID),
		zap.String("domain", outcome.Domain),
		zap.Stringer("outcome", outcome.Kind),
	}

	switch outcome.Kind {
	case domain.Success:
		logger.Info("key store migration completed for tenant", fields...)
	case domain.KeyStoreGenerationFailure:
		logger.Error("failed to generate key store for tenant", append(fields, zap.Error(outcome.Err))...)
	case domain.ResourceStoreFailure:
		logger.Error("failed to remove existing key store for tenant", append(fields, zap.Error(outcome.Err))...)
	default:
		logger.Error("error occurred while migrating key store for tenant", append(fields, zap.Error(outcome.Err))...)
	}
}
