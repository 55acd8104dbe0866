package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceExists is returned when a resource is created at an occupied path
	ErrResourceExists = errors.New("resource already exists")
	// ErrResourceNotFound is returned when a resource is read or deleted at an empty path
	ErrResourceNotFound = errors.New("resource not found")
	// ErrContextNotEntered is returned when a registry call is made outside an entered tenant context
	ErrContextNotEntered = errors.New("tenant context not entered")
)

// RegistryError is reported by the resource store or the tenant enumerator
type RegistryError struct {
	Op   string
	Path string
	Err  error
}

func (e *RegistryError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("registry %s failed: %s", e.Op, e.Err)
	}
	return fmt.Sprintf(`registry %s "%s" failed: %s`, e.Op, e.Path, e.Err)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// GenerationError is reported by the key-store generator
type GenerationError struct {
	TenantID int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("key store generation for tenant %d failed: %s", e.TenantID, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
