// Package cli defines the kidhub command tree. Running kidhub without a
// subcommand starts the interactive TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/kidpreneur-hub/internal/app"
	"github.com/nhle/kidpreneur-hub/internal/auth"
	"github.com/nhle/kidpreneur-hub/internal/config"
	"github.com/nhle/kidpreneur-hub/internal/credential"
	"github.com/nhle/kidpreneur-hub/internal/logger"
	"github.com/nhle/kidpreneur-hub/internal/store"
)

// SecretStore is the keyring surface the CLI needs.
type SecretStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// App carries the resolved flags and configuration shared by every
// subcommand.
type App struct {
	ConfigPath string
	DBPath     string
	Debug      bool

	Config *config.AppConfig

	// OpenSecrets opens the credential store; replaced in tests.
	OpenSecrets func(dir string) (SecretStore, error)
}

func defaultOpenSecrets(dir string) (SecretStore, error) {
	s, err := credential.Open(dir)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewRootCmd builds the kidhub command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{OpenSecrets: defaultOpenSecrets})
}

func newRootCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "kidhub",
		Short:        "Kidpreneur Hub: share fun startup ideas",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  kidhub

  # Print stored ideas, oldest first
  kidhub list --sort oldest

  # Delete every idea without prompting
  kidhub reset --yes
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, a)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup()
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		logger.Close()
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", envOr("KIDHUB_CONFIG", config.DefaultConfigPath()), "Path to the config file")
	cmd.PersistentFlags().StringVar(&a.DBPath, "db", "", "Path to the SQLite database (overrides database.path)")
	cmd.PersistentFlags().BoolVar(&a.Debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newDumpCmd(a))
	cmd.AddCommand(newResetCmd(a))
	cmd.AddCommand(newAdminCmd(a))
	cmd.AddCommand(newConfigCmd(a))

	return cmd
}

// setup loads the configuration and starts the file logger.
func (a *App) setup() error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	if a.DBPath != "" {
		cfg.Database.Path = a.DBPath
	}
	a.Config = cfg

	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	if a.Debug {
		logger.SetDebug(true)
	}
	return logger.Init(cfg.Log.Path)
}

// openAdapter opens the database named by the configuration. The caller
// closes the returned store.
func (a *App) openAdapter() (*store.Adapter, *store.SQLiteStore, error) {
	path := a.Config.Database.Path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating data directory for %s: %w", path, err)
		}
	}

	s, err := store.NewSQLiteStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return store.NewAdapter(s), s, nil
}

// authenticator returns the admin gate selected by admin.backend.
func (a *App) authenticator() (auth.Authenticator, error) {
	switch a.Config.Admin.Backend {
	case config.AdminBackendKeyring:
		secrets, err := a.OpenSecrets(a.Config.Admin.KeyringDir)
		if err != nil {
			return nil, err
		}
		return auth.NewKeyring(a.Config.Admin.Username, secrets), nil
	default:
		return auth.NewStatic(), nil
	}
}

func runTUI(cmd *cobra.Command, a *App) error {
	log := logger.ComponentLogger("cli")

	adapter, s, err := a.openAdapter()
	if err != nil {
		return err
	}
	defer s.Close()

	snapshot, err := adapter.Load(context.Background())
	if err != nil {
		return fmt.Errorf("loading ideas: %w", err)
	}

	authenticator, err := a.authenticator()
	if err != nil {
		return err
	}
	log.Info("admin backend", "backend", a.Config.Admin.Backend)

	m := app.New(app.Options{
		Observer:         store.NewObserver(adapter),
		Snapshot:         snapshot,
		Auth:             authenticator,
		SidebarCollapsed: a.Config.Display.SidebarCollapsed,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
