// Package registry contains the tenant scoped resource stores key-stores and certificates live in
package registry

import (
	"context"
	"strconv"

	"github.com/venafi/keystore-migrator/internal/app/domain"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source ./registry.go -destination=./mocks/mock_registry.go -package=mocks

// Loader loads the registry partition of a tenant
type Loader interface {
	// LoadTenantRegistry initializes the tenant partition and returns a registry bound to it
	LoadTenantRegistry(ctx context.Context, tenantID int) (domain.Registry, error)
}

// RemoveIfExists deletes the resource at path when the registry holds one, an absent resource is not an error
func RemoveIfExists(ctx context.Context, registry domain.Registry, path string) error {
	exists, err := registry.ResourceExists(ctx, path)
	if err != nil {
		return &domain.RegistryError{Op: "exists", Path: path, Err: err}
	}

	if !exists {
		zap.L().Debug("registry resource not present, nothing to remove", zap.String("path", path))
		return nil
	}

	if err = registry.Delete(ctx, path); err != nil {
		return &domain.RegistryError{Op: "delete", Path: path, Err: err}
	}

	zap.L().Debug("removed registry resource", zap.String("path", path))
	return nil
}

func partitionName(tenantID int) string {
	return strconv.Itoa(tenantID)
}
