package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/venafi/keystore-migrator/internal/app/config"
	"github.com/venafi/keystore-migrator/internal/app/domain"
	"github.com/venafi/keystore-migrator/internal/app/migration"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func testConfig(t *testing.T, migrate bool) *config.Config {
	cfg := &config.Config{MigrateKeyStores: migrate}
	cfg.Log.Level = "debug"
	cfg.HTTP.Enabled = false
	cfg.Activation.Timeout = time.Minute
	cfg.Registry.Driver = config.RegistryDriverFile
	cfg.Registry.Root = t.TempDir()
	cfg.Tenants.Source = config.TenantSourceStatic
	cfg.Tenants.Static = []domain.Tenant{
		{ID: 1, Domain: "a.com"},
		{ID: 2, Domain: "b.com"},
	}
	cfg.KeyStore.Password = "wso2carbon"
	cfg.KeyStore.KeySize = 1024
	cfg.KeyStore.Validity = time.Hour
	require.NoError(t, cfg.Validate())

	return cfg
}

func TestActivation(t *testing.T) {
	t.Run("migrate", func(t *testing.T) {
		cfg := testConfig(t, true)

		var migrator *migration.Migrator
		var activated *activation
		app := newApp(cfg, fx.Populate(&migrator, &activated))
		require.NoError(t, app.Err())

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		require.NoError(t, app.Start(ctx))
		defer func() {
			require.NoError(t, app.Stop(ctx))
		}()

		require.NoError(t, activated.wait(ctx))

		report := migrator.LastReport()
		require.NotNil(t, report)
		require.Equal(t, []domain.OutcomeKind{domain.Success, domain.Success}, report.Kinds())

		for _, path := range []string{
			"tenants/1/repository/security/key-stores/a-com.jks",
			"tenants/1/repository/security/pub-key",
			"tenants/2/repository/security/key-stores/b-com.jks",
			"tenants/2/repository/security/pub-key",
		} {
			_, err := os.Stat(filepath.Join(cfg.Registry.Root, path))
			require.NoError(t, err, path)
		}
	})

	t.Run("skip", func(t *testing.T) {
		cfg := testConfig(t, false)

		var migrator *migration.Migrator
		var activated *activation
		app := newApp(cfg, fx.Populate(&migrator, &activated))
		require.NoError(t, app.Err())

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		require.NoError(t, app.Start(ctx))
		require.NoError(t, activated.wait(ctx))
		require.Nil(t, migrator.LastReport())
		require.NoError(t, app.Stop(ctx))

		entries, err := os.ReadDir(cfg.Registry.Root)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("migration outlives the activation deadline", func(t *testing.T) {
		cfg := testConfig(t, true)
		cfg.Activation.Timeout = 50 * time.Millisecond
		cfg.Tenants.Static = nil
		for id := 1; id <= 40; id++ {
			cfg.Tenants.Static = append(cfg.Tenants.Static, domain.Tenant{ID: id, Domain: fmt.Sprintf("tenant%d.com", id)})
		}

		var migrator *migration.Migrator
		var activated *activation
		app := newApp(cfg, fx.Populate(&migrator, &activated))
		require.NoError(t, app.Err())

		startCtx, cancelStart := context.WithTimeout(context.Background(), cfg.Activation.Timeout)
		defer cancelStart()
		require.NoError(t, app.Start(startCtx))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		require.NoError(t, activated.wait(ctx))
		require.NoError(t, app.Stop(ctx))

		report := migrator.LastReport()
		require.NotNil(t, report)
		require.Len(t, report.Outcomes, 40)
		require.Equal(t, 40, report.Count(domain.Success))
	})

	t.Run("logger is installed before other components", func(t *testing.T) {
		cfg := testConfig(t, false)
		restore := zap.ReplaceGlobals(zap.NewNop())
		defer restore()

		require.NoError(t, newApp(cfg).Err())
		require.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := testConfig(t, false)
		cfg.Log.Level = "loud"

		require.Error(t, newApp(cfg).Err())
	})
}
