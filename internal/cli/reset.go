package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/nhle/kidpreneur-hub/internal/logger"
	"github.com/nhle/kidpreneur-hub/internal/ui/settings"
)

func newResetCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored idea",
		Long:  "Delete every stored idea. Preferences are kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				confirmed := false
				err := huh.NewConfirm().
					Title(settings.ResetQuestion).
					Affirmative("Yes").
					Negative("No").
					Value(&confirmed).
					Run()
				if err != nil {
					return fmt.Errorf("confirming reset: %w", err)
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
					return nil
				}
			}

			adapter, s, err := a.openAdapter()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := context.Background()
			ideas, err := adapter.LoadIdeas(ctx)
			if err != nil {
				return fmt.Errorf("loading ideas: %w", err)
			}
			if err := adapter.ClearIdeas(ctx); err != nil {
				return err
			}

			logger.ComponentLogger("cli").Info("ideas reset", "deleted", len(ideas))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d idea(s)\n", len(ideas))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
