package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/venafi/keystore-migrator/internal/app/domain"
	"github.com/venafi/keystore-migrator/internal/app/domain/mocks"
)

func TestRemoveIfExists(t *testing.T) {
	ctx := context.Background()

	t.Parallel()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		registry := mocks.NewMockRegistry(ctrl)
		gomock.InOrder(
			registry.EXPECT().ResourceExists(gomock.Any(), domain.PublicCertificatePath).Return(true, nil),
			registry.EXPECT().Delete(gomock.Any(), domain.PublicCertificatePath).Return(nil),
		)

		require.NoError(t, RemoveIfExists(ctx, registry, domain.PublicCertificatePath))
	})

	t.Run("absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		registry := mocks.NewMockRegistry(ctrl)
		registry.EXPECT().ResourceExists(gomock.Any(), domain.PublicCertificatePath).Return(false, nil)

		require.NoError(t, RemoveIfExists(ctx, registry, domain.PublicCertificatePath))
	})

	t.Run("exists failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		registry := mocks.NewMockRegistry(ctrl)
		registry.EXPECT().ResourceExists(gomock.Any(), gomock.Any()).Return(false, errors.New("store unavailable"))

		err := RemoveIfExists(ctx, registry, "/repository/security/key-stores/a-com.jks")
		require.Error(t, err)

		var registryErr *domain.RegistryError
		require.ErrorAs(t, err, &registryErr)
		require.Equal(t, "exists", registryErr.Op)
		require.Equal(t, "/repository/security/key-stores/a-com.jks", registryErr.Path)
		require.Equal(t, domain.ResourceStoreFailure, domain.ClassifyOutcome(err))
	})

	t.Run("delete failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		registry := mocks.NewMockRegistry(ctrl)
		registry.EXPECT().ResourceExists(gomock.Any(), gomock.Any()).Return(true, nil)
		registry.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("permission denied"))

		err := RemoveIfExists(ctx, registry, domain.PublicCertificatePath)

		var registryErr *domain.RegistryError
		require.ErrorAs(t, err, &registryErr)
		require.Equal(t, "delete", registryErr.Op)
		require.EqualError(t, err, `registry delete "/repository/security/pub-key" failed: permission denied`)
	})
}
