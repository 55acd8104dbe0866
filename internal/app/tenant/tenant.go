// Package tenant contains the tenant enumerators and the tenant scoped context switcher
package tenant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/venafi/keystore-migrator/internal/app/domain"
	"go.uber.org/zap"
)

// StaticEnumerator lists a fixed set of tenants, typically read from configuration
type StaticEnumerator struct {
	Tenants []domain.Tenant
}

// NewStaticEnumerator will return a new StaticEnumerator
func NewStaticEnumerator(tenants []domain.Tenant) *StaticEnumerator {
	return &StaticEnumerator{
		Tenants: tenants,
	}
}

// ListAllTenants returns a copy of the configured tenants in configuration order
func (e *StaticEnumerator) ListAllTenants(_ context.Context) ([]domain.Tenant, error) {
	tenants := make([]domain.Tenant, len(e.Tenants))
	copy(tenants, e.Tenants)
	return tenants, nil
}

// PostgresEnumerator lists the tenants stored in the platform tenants table
type PostgresEnumerator struct {
	db *sql.DB
}

// NewPostgresEnumerator will return a new PostgresEnumerator
func NewPostgresEnumerator(db *sql.DB) *PostgresEnumerator {
	return &PostgresEnumerator{db: db}
}

// ListAllTenants returns every tenant ordered by id
func (e *PostgresEnumerator) ListAllTenants(ctx context.Context) ([]domain.Tenant, error) {
	rows, err := e.db.QueryContext(ctx, `SELECT id, domain FROM tenants ORDER BY id`)
	if err != nil {
		zap.L().Error("failed reading tenants", zap.Error(err))
		return nil, &domain.RegistryError{Op: "list tenants", Err: err}
	}
	defer rows.Close()

	tenants := make([]domain.Tenant, 0)
	for rows.Next() {
		var t domain.Tenant
		if err = rows.Scan(&t.ID, &t.Domain); err != nil {
			return nil, &domain.RegistryError{Op: "list tenants", Err: fmt.Errorf("scan tenant: %w", err)}
		}
		tenants = append(tenants, t)
	}

	if err = rows.Err(); err != nil {
		return nil, &domain.RegistryError{Op: "list tenants", Err: err}
	}

	return tenants, nil
}
