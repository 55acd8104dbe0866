package domain

import "context"

//go:generate go run github.com/golang/mock/mockgen -source ./tenant_context.go -destination=./mocks/mock_registry.go -package=mocks

// Registry is the resource store of a single tenant.
// All paths resolve inside the partition of the tenant the registry was loaded for.
type Registry interface {
	// ResourceExists reports whether a resource is stored at path
	ResourceExists(ctx context.Context, path string) (bool, error)
	// Delete removes the resource stored at path
	Delete(ctx context.Context, path string) error
	// Get returns the content of the resource stored at path
	Get(ctx context.Context, path string) ([]byte, error)
	// Put creates a resource at path, failing with ErrResourceExists when one is already stored there
	Put(ctx context.Context, path string, content []byte) error
}

// TenantContext binds a tenant to its loaded registry for the duration of one unit of work
type TenantContext struct {
	// Tenant is the tenant the context was entered for
	Tenant Tenant
	// Registry is nil until the context is entered and after it has been exited
	Registry Registry
}

// Entered reports whether the context currently holds a tenant registry
func (tc *TenantContext) Entered() bool {
	return tc != nil && tc.Registry != nil
}
