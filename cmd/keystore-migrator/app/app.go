package app

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/venafi/keystore-migrator/internal/app/config"
	"github.com/venafi/keystore-migrator/internal/app/keystore"
	"github.com/venafi/keystore-migrator/internal/app/migration"
	"github.com/venafi/keystore-migrator/internal/app/registry"
	"github.com/venafi/keystore-migrator/internal/app/tenant"
	"github.com/venafi/keystore-migrator/internal/handler/web"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *fx.App {
	cfg, err := config.Load()
	if err != nil {
		return fx.New(fx.Error(fmt.Errorf("failed to load configuration: %w", err)))
	}

	return newApp(cfg)
}

func newApp(cfg *config.Config, opts ...fx.Option) *fx.App {
	var logger *zap.Logger

	options := []fx.Option{
		fx.Supply(cfg),
		fx.StartTimeout(cfg.Activation.Timeout),
		fx.Provide(
			configureLogger,
			prometheus.NewRegistry,
			func(r *prometheus.Registry) prometheus.Registerer { return r },
			func(r *prometheus.Registry) prometheus.Gatherer { return r },
			openDatabase,
			configureRegistry,
			configureTenantServices,
			configureKeyStoreGenerator,
			fx.Annotate(tenant.NewContextServices, fx.As(new(migration.ContextServices))),
			migration.NewMetrics,
			migration.NewMigrator,
			func(m *migration.Migrator) web.ReportService { return m },
			web.ConfigureHTTPServers,
			newActivation,
		),
		fx.Invoke(
			zap.ReplaceGlobals,
			web.RegisterHandlers,
			registerActivation,
		),
		fx.Populate(&logger),
	}

	app := fx.New(append(options, opts...)...)

	if logger != nil {
		logger.Info("key store migrator starting", zap.Bool("migrateKS", cfg.MigrateKeyStores))
	}

	return app
}

func configureLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = level
	loggerConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	loggerConfig.EncoderConfig.TimeKey = "time"
	loggerConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	loggerConfig.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, err
	}

	zap.RedirectStdLog(logger)
	return logger, nil
}

// openDatabase returns nil when no component is backed by postgres
func openDatabase(lifecycle fx.Lifecycle, cfg *config.Config) (*sql.DB, error) {
	if !cfg.UsesPostgres() {
		return nil, nil
	}

	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Registry.Driver != config.RegistryDriverPostgres {
				return nil
			}
			return registry.EnsureSchema(ctx, db)
		},
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

func configureRegistry(cfg *config.Config, db *sql.DB) registry.Loader {
	if cfg.Registry.Driver == config.RegistryDriverPostgres {
		return registry.NewPostgresService(db)
	}

	return registry.NewFileService(afero.NewOsFs(), cfg.Registry.Root)
}

func configureTenantServices(cfg *config.Config, db *sql.DB) migration.TenantServices {
	if cfg.Tenants.Source == config.TenantSourcePostgres {
		return tenant.NewPostgresEnumerator(db)
	}

	return tenant.NewStaticEnumerator(cfg.Tenants.Static)
}

func configureKeyStoreGenerator(cfg *config.Config) migration.KeyStoreGenerator {
	return keystore.NewGenerator(keystore.Options{
		Password:     cfg.KeyStore.Password,
		KeySize:      cfg.KeyStore.KeySize,
		Validity:     cfg.KeyStore.Validity,
		Organization: cfg.KeyStore.Organization,
	})
}

// activation runs the migration in the background once the component activates, when migrateKS is set.
// The run is not bound to the activation deadline; migration failures are logged and never fail the activation.
type activation struct {
	cfg      *config.Config
	migrator *migration.Migrator

	cancel context.CancelFunc
	done   chan struct{}
}

func newActivation(cfg *config.Config, migrator *migration.Migrator) *activation {
	return &activation{
		cfg:      cfg,
		migrator: migrator,
		done:     make(chan struct{}),
	}
}

func (a *activation) start(_ context.Context) error {
	if !a.cfg.MigrateKeyStores {
		close(a.done)
		zap.L().Info("key store migration component activated")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	go func() {
		defer close(a.done)

		zap.L().Info("starting key store migration for all tenants")
		if _, err := a.migrator.Migrate(ctx); err != nil {
			zap.L().Error("key store migration failed", zap.Error(err))
		}
	}()

	zap.L().Info("key store migration component activated")
	return nil
}

// stop interrupts a running migration before its next tenant and waits for the current tenant to finish
func (a *activation) stop(ctx context.Context) error {
	if a.cancel != nil {
		a.cancel()
	}

	select {
	case <-a.done:
	case <-ctx.Done():
		return fmt.Errorf("key store migration did not stop: %w", ctx.Err())
	}

	zap.L().Info("key store migration component deactivated")
	return nil
}

// wait blocks until the migration started by the activation has finished
func (a *activation) wait(ctx context.Context) error {
	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func registerActivation(lifecycle fx.Lifecycle, a *activation) {
	lifecycle.Append(fx.Hook{
		OnStart: a.start,
		OnStop:  a.stop,
	})
}
