package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/venafi/keystore-migrator/internal/app/domain"
)

const uniqueViolation = "23505"

// PostgresService stores every tenant registry as rows of the registry_resources table
type PostgresService struct {
	db *sql.DB
}

// NewPostgresService will return a new PostgresService
func NewPostgresService(db *sql.DB) *PostgresService {
	return &PostgresService{db: db}
}

// EnsureSchema creates the registry_resources table. Safe to call repeatedly.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS registry_resources (
  tenant_id integer NOT NULL,
  path text NOT NULL,
  content bytea NOT NULL,
  created_at timestamptz NOT NULL DEFAULT NOW(),
  PRIMARY KEY (tenant_id, path)
)`)
	if err != nil {
		return fmt.Errorf("failed to create registry schema: %w", err)
	}

	return nil
}

// LoadTenantRegistry verifies the database is reachable and returns a registry bound to the tenant rows
func (s *PostgresService) LoadTenantRegistry(ctx context.Context, tenantID int) (domain.Registry, error) {
	if err := s.db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to load registry for tenant %d: %w", tenantID, err)
	}

	return &postgresRegistry{
		db:       s.db,
		tenantID: tenantID,
	}, nil
}

type postgresRegistry struct {
	db       *sql.DB
	tenantID int
}

func (r *postgresRegistry) ResourceExists(ctx context.Context, path string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM registry_resources WHERE tenant_id = $1 AND path = $2)`,
		r.tenantID, path).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check resource: %w", err)
	}

	return exists, nil
}

func (r *postgresRegistry) Delete(ctx context.Context, path string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM registry_resources WHERE tenant_id = $1 AND path = $2`,
		r.tenantID, path)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrResourceNotFound, path)
	}

	return nil
}

func (r *postgresRegistry) Get(ctx context.Context, path string) ([]byte, error) {
	var content []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT content FROM registry_resources WHERE tenant_id = $1 AND path = $2`,
		r.tenantID, path).Scan(&content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrResourceNotFound, path)
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}

	return content, nil
}

func (r *postgresRegistry) Put(ctx context.Context, path string, content []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO registry_resources (tenant_id, path, content) VALUES ($1, $2, $3)`,
		r.tenantID, path, content)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrResourceExists, path)
		}
		return fmt.Errorf("put resource: %w", err)
	}

	return nil
}
