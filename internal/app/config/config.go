// Package config loads the migrator configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/venafi/keystore-migrator/internal/app/domain"
)

const (
	// MigrateKeyStoresKey is the flag that enables the migration at activation
	MigrateKeyStoresKey = "migrateKS"
	// EnvPrefix prefixes every other environment setting, e.g. KSMIGRATOR_REGISTRY_DRIVER sets registry.driver
	EnvPrefix = "KSMIGRATOR_"
	// FileEnv names the optional YAML configuration file
	FileEnv = EnvPrefix + "CONFIG"

	// RegistryDriverFile stores registries below registry.root
	RegistryDriverFile = "file"
	// RegistryDriverPostgres stores registries in postgres.dsn
	RegistryDriverPostgres = "postgres"
	// TenantSourceStatic lists tenants.static
	TenantSourceStatic = "static"
	// TenantSourcePostgres lists the tenants table of postgres.dsn
	TenantSourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	MigrateKeyStores bool `koanf:"migrateKS"`

	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`

	HTTP struct {
		Enabled bool   `koanf:"enabled"`
		Address string `koanf:"address"`
	} `koanf:"http"`

	Activation struct {
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"activation"`

	Registry struct {
		Driver string `koanf:"driver"`
		Root   string `koanf:"root"`
	} `koanf:"registry"`

	Tenants struct {
		Source string          `koanf:"source"`
		Static []domain.Tenant `koanf:"static"`
	} `koanf:"tenants"`

	Postgres struct {
		DSN string `koanf:"dsn"`
	} `koanf:"postgres"`

	KeyStore struct {
		Password     string        `koanf:"password"`
		KeySize      int           `koanf:"keySize"`
		Validity     time.Duration `koanf:"validity"`
		Organization string        `koanf:"organization"`
	} `koanf:"keystore"`
}

var defaults = map[string]interface{}{
	MigrateKeyStoresKey:     false,
	"log.level":             "info",
	"http.enabled":          true,
	"http.address":          ":8080",
	"activation.timeout":    "30m",
	"registry.driver":       RegistryDriverFile,
	"registry.root":         "/var/lib/keystore-migrator",
	"tenants.source":        TenantSourceStatic,
	"keystore.keySize":      2048,
	"keystore.validity":     "87600h",
	"keystore.organization": "WSO2",
}

// camelKeys restores the case of keys that cannot be expressed in upper case environment names
var camelKeys = map[string]string{
	"keystore.keysize": "keystore.keySize",
}

// Load reads the defaults, then the optional YAML file named by KSMIGRATOR_CONFIG, then the environment
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default configuration: %w", err)
	}

	if path := os.Getenv(FileEnv); len(path) > 0 {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf(`failed to load configuration file "%s": %w`, path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	// the file may carry any scalar for migrateKS, decode it the way the environment value is decoded
	flag := map[string]interface{}{MigrateKeyStoresKey: enabled(k.String(MigrateKeyStoresKey))}
	if err := k.Load(confmap.Provider(flag, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", MigrateKeyStoresKey, err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envValue maps environment variables onto configuration keys, variables mapped to an empty key are ignored.
// Any migrateKS value other than a recognised true is false.
func envValue(name, value string) (string, interface{}) {
	if name == MigrateKeyStoresKey {
		return name, enabled(value)
	}

	if !strings.HasPrefix(name, EnvPrefix) || name == FileEnv {
		return "", nil
	}

	return envKey(name), value
}

func enabled(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

func envKey(name string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_", ".")
	if camel, ok := camelKeys[key]; ok {
		return camel
	}

	return key
}

// Validate checks the settings needed by the selected drivers
func (c *Config) Validate() error {
	switch c.Registry.Driver {
	case RegistryDriverFile:
		if len(c.Registry.Root) == 0 {
			return errors.New("registry.root is required for the file registry")
		}
	case RegistryDriverPostgres:
	default:
		return fmt.Errorf(`unsupported registry.driver "%s"`, c.Registry.Driver)
	}

	switch c.Tenants.Source {
	case TenantSourceStatic, TenantSourcePostgres:
	default:
		return fmt.Errorf(`unsupported tenants.source "%s"`, c.Tenants.Source)
	}

	if c.UsesPostgres() && len(c.Postgres.DSN) == 0 {
		return errors.New("postgres.dsn is required when postgres is used")
	}

	if c.MigrateKeyStores && len(c.KeyStore.Password) == 0 {
		return errors.New("keystore.password is required to migrate key stores")
	}

	return nil
}

// UsesPostgres reports whether any component is backed by postgres
func (c *Config) UsesPostgres() bool {
	return c.Registry.Driver == RegistryDriverPostgres || c.Tenants.Source == TenantSourcePostgres
}
