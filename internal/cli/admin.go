package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nhle/kidpreneur-hub/internal/auth"
	"github.com/nhle/kidpreneur-hub/internal/config"
	"github.com/nhle/kidpreneur-hub/internal/logger"
)

func newAdminCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage the admin login",
	}
	cmd.AddCommand(newSetPasswordCmd(a))
	return cmd
}

func newSetPasswordCmd(a *App) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "set-password",
		Short: "Store the admin password in the keyring",
		Long: strings.TrimSpace(`
Store the admin password in the system keyring, or in an encrypted file
under admin.keyring_dir when no system keyring is available.

The password is only checked when admin.backend is "keyring".`),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if fromStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			} else {
				err := huh.NewInput().
					Title("New admin password").
					EchoMode(huh.EchoModePassword).
					Value(&password).
					Run()
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
			}
			if password == "" {
				return fmt.Errorf("password must not be empty")
			}

			secrets, err := a.OpenSecrets(a.Config.Admin.KeyringDir)
			if err != nil {
				return err
			}
			if err := secrets.Set(auth.PasswordKey, password); err != nil {
				return err
			}

			logger.ComponentLogger("cli").Info("admin password updated", "username", a.Config.Admin.Username)
			fmt.Fprintf(cmd.OutOrStdout(), "Password stored for %s\n", a.Config.Admin.Username)
			if a.Config.Admin.Backend != config.AdminBackendKeyring {
				fmt.Fprintf(cmd.OutOrStdout(), "Note: admin.backend is %q; set it to %q to use this password\n",
					a.Config.Admin.Backend, config.AdminBackendKeyring)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "Read the password from stdin")
	return cmd
}
