package tenant

import (
	"context"
	"fmt"
	"io"

	"github.com/venafi/keystore-migrator/internal/app/domain"
	"github.com/venafi/keystore-migrator/internal/app/registry"
	"go.uber.org/zap"
)

// ContextServicesImpl enters and exits tenant contexts by loading the tenant registry partition
type ContextServicesImpl struct {
	Loader registry.Loader
}

// NewContextServices will return a new ContextServicesImpl
func NewContextServices(loader registry.Loader) *ContextServicesImpl {
	return &ContextServicesImpl{
		Loader: loader,
	}
}

// NewContext will create a new, not yet entered, context for the tenant
func (s *ContextServicesImpl) NewContext(tenant domain.Tenant) *domain.TenantContext {
	return &domain.TenantContext{
		Tenant:   tenant,
		Registry: nil,
	}
}

// Enter loads the tenant registry and binds it to the context
func (s *ContextServicesImpl) Enter(ctx context.Context, tc *domain.TenantContext) error {
	if tc.Entered() {
		return fmt.Errorf("context for tenant %d already entered", tc.Tenant.ID)
	}

	reg, err := s.Loader.LoadTenantRegistry(ctx, tc.Tenant.ID)
	if err != nil {
		zap.L().Error("failed to load tenant registry", zap.Int("tenant_id", tc.Tenant.ID), zap.String("domain", tc.Tenant.Domain), zap.Error(err))
		return fmt.Errorf("failed to enter context for tenant %d: %w", tc.Tenant.ID, err)
	}

	tc.Registry = reg
	return nil
}

// Exit releases the tenant registry, it is safe to call on a context that was never or only partially entered
func (s *ContextServicesImpl) Exit(tc *domain.TenantContext) {
	if tc == nil || tc.Registry == nil {
		return
	}

	if closer, ok := tc.Registry.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			zap.L().Warn("failed to release tenant registry", zap.Int("tenant_id", tc.Tenant.ID), zap.Error(err))
		}
	}

	tc.Registry = nil
}
