package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/venafi/keystore-migrator/internal/app/domain"
	domainmocks "github.com/venafi/keystore-migrator/internal/app/domain/mocks"
	"github.com/venafi/keystore-migrator/internal/app/registry/mocks"
)

type closingRegistry struct {
	*domainmocks.MockRegistry
	closed int
}

func (r *closingRegistry) Close() error {
	r.closed++
	return nil
}

func TestContextServices(t *testing.T) {
	ctx := context.Background()
	tenant := domain.Tenant{ID: 1, Domain: "a.com"}

	t.Parallel()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		loader := mocks.NewMockLoader(ctrl)
		reg := &closingRegistry{MockRegistry: domainmocks.NewMockRegistry(ctrl)}

		loader.EXPECT().
			LoadTenantRegistry(gomock.Any(), 1).
			Return(reg, nil)

		svc := NewContextServices(loader)

		tc := svc.NewContext(tenant)
		require.NotNil(t, tc)
		require.False(t, tc.Entered())
		require.Equal(t, tenant, tc.Tenant)

		require.NoError(t, svc.Enter(ctx, tc))
		require.True(t, tc.Entered())
		require.Same(t, reg, tc.Registry)

		svc.Exit(tc)
		require.False(t, tc.Entered())
		require.Equal(t, 1, reg.closed)

		svc.Exit(tc)
		require.Equal(t, 1, reg.closed)
	})

	t.Run("enter twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		loader := mocks.NewMockLoader(ctrl)
		loader.EXPECT().
			LoadTenantRegistry(gomock.Any(), 1).
			Return(domainmocks.NewMockRegistry(ctrl), nil)

		svc := NewContextServices(loader)
		tc := svc.NewContext(tenant)

		require.NoError(t, svc.Enter(ctx, tc))
		require.Error(t, svc.Enter(ctx, tc))
	})

	t.Run("load failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		loader := mocks.NewMockLoader(ctrl)
		loader.EXPECT().
			LoadTenantRegistry(gomock.Any(), 1).
			Return(nil, errors.New("registry unavailable"))

		svc := NewContextServices(loader)
		tc := svc.NewContext(tenant)

		err := svc.Enter(ctx, tc)
		require.Error(t, err)
		require.False(t, tc.Entered())

		svc.Exit(tc)
		svc.Exit(nil)
	})
}
