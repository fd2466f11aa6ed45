package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/nhle/kidpreneur-hub/internal/logger"
)

// Admin backends.
const (
	AdminBackendStatic  = "static"
	AdminBackendKeyring = "keyring"
)

// DatabaseConfig locates the local data file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Path  string `mapstructure:"path" yaml:"path"`
	Level string `mapstructure:"level" yaml:"level"`
}

// AdminConfig selects the credential backend for the admin gate.
type AdminConfig struct {
	// Backend is "static" (built-in placeholder credentials) or "keyring".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Username is the admin username checked by the keyring backend.
	Username string `mapstructure:"username" yaml:"username"`

	// KeyringDir is the directory used by the encrypted-file keyring
	// fallback when no system keyring is available.
	KeyringDir string `mapstructure:"keyring_dir" yaml:"keyring_dir"`
}

// DisplayConfig holds UI startup preferences that are not user data.
type DisplayConfig struct {
	SidebarCollapsed bool `mapstructure:"sidebar_collapsed" yaml:"sidebar_collapsed"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Admin    AdminConfig    `mapstructure:"admin" yaml:"admin"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
}

// Dir returns the configuration directory, ~/.config/kidhub.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "kidhub")
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(Dir(), "kidhub.db"))
	v.SetDefault("log.path", logger.DefaultLogPath())
	v.SetDefault("log.level", "info")
	v.SetDefault("admin.backend", AdminBackendStatic)
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.keyring_dir", filepath.Join(Dir(), "credentials"))
	v.SetDefault("display.sidebar_collapsed", false)
}

// Default returns the configuration used when no file exists.
func Default() *AppConfig {
	v := viper.New()
	setDefaults(v)

	cfg := &AppConfig{}
	// Unmarshalling defaults alone cannot fail.
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load reads configuration from the YAML file at path. A missing file
// yields the defaults. Values can be overridden with KIDHUB_* environment
// variables, e.g. KIDHUB_DATABASE_PATH.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("kidhub")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c *AppConfig) Validate() error {
	switch c.Admin.Backend {
	case AdminBackendStatic, AdminBackendKeyring:
	default:
		return fmt.Errorf("admin.backend must be %q or %q, got %q",
			AdminBackendStatic, AdminBackendKeyring, c.Admin.Backend)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}
	return nil
}

// Save writes cfg as YAML to path, creating parent directories if needed.
func Save(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database", cfg.Database)
	v.Set("log", cfg.Log)
	v.Set("admin", cfg.Admin)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}
