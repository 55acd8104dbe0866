package registry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/spf13/afero"
	"github.com/venafi/keystore-migrator/internal/app/domain"
)

const (
	tenantsDirectory = "tenants"
	resourceFileMode = 0o600
	partitionDirMode = 0o700
)

// FileService stores every tenant registry as a directory tree below root
type FileService struct {
	fs   afero.Fs
	root string
}

// NewFileService will return a new FileService
func NewFileService(fs afero.Fs, root string) *FileService {
	return &FileService{
		fs:   fs,
		root: root,
	}
}

// LoadTenantRegistry creates the tenant partition when missing and returns a registry confined to it
func (s *FileService) LoadTenantRegistry(_ context.Context, tenantID int) (domain.Registry, error) {
	dir := path.Join(s.root, tenantsDirectory, partitionName(tenantID))
	if err := s.fs.MkdirAll(dir, partitionDirMode); err != nil {
		return nil, fmt.Errorf(`failed to load registry partition "%s": %w`, dir, err)
	}

	return &fileRegistry{
		fs: afero.NewBasePathFs(s.fs, dir),
	}, nil
}

type fileRegistry struct {
	fs afero.Fs
}

func (r *fileRegistry) ResourceExists(_ context.Context, resourcePath string) (bool, error) {
	return afero.Exists(r.fs, resourcePath)
}

func (r *fileRegistry) Delete(_ context.Context, resourcePath string) error {
	err := r.fs.Remove(resourcePath)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrResourceNotFound, resourcePath)
	}

	return err
}

func (r *fileRegistry) Get(_ context.Context, resourcePath string) ([]byte, error) {
	content, err := afero.ReadFile(r.fs, resourcePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrResourceNotFound, resourcePath)
	}

	return content, err
}

func (r *fileRegistry) Put(_ context.Context, resourcePath string, content []byte) error {
	if err := r.fs.MkdirAll(path.Dir(resourcePath), partitionDirMode); err != nil {
		return err
	}

	f, err := r.fs.OpenFile(resourcePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, resourceFileMode)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", domain.ErrResourceExists, resourcePath)
		}
		return err
	}

	_, err = f.Write(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	return err
}
