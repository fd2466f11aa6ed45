package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/kidpreneur-hub/internal/config"
)

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(newConfigInitCmd(a))
	return cmd
}

func newConfigInitCmd(a *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.ConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.ConfigPath)
			}
			if err := config.Save(a.ConfigPath, a.Config); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
