// Package migration contains the tenant key-store migration driver
package migration

import (
	"context"

	"github.com/venafi/keystore-migrator/internal/app/domain"
)

//go:generate go run github.com/golang/mock/mockgen -source ./services.go -destination=./mocks/mock_services.go -package=mocks

// TenantServices interfaces for enumerating platform tenants
type TenantServices interface {
	// ListAllTenants will return every tenant known to the platform
	ListAllTenants(ctx context.Context) ([]domain.Tenant, error)
}

// ContextServices interfaces for switching into a tenant scoped context
type ContextServices interface {
	// NewContext will create a new context for the tenant
	NewContext(tenant domain.Tenant) *domain.TenantContext
	// Enter will load the tenant registry into the context
	Enter(ctx context.Context, tc *domain.TenantContext) error
	// Exit will release the context, including one that failed to enter
	Exit(tc *domain.TenantContext)
}

// KeyStoreGenerator interfaces for creating a tenant key-store and public certificate
type KeyStoreGenerator interface {
	// GenerateKeyStore will create the key-store and public certificate in the tenant registry
	GenerateKeyStore(ctx context.Context, tc *domain.TenantContext) error
}
