package cli

import (
	"context"
	"fmt"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/nhle/kidpreneur-hub/internal/model"
)

// dumpOutput is what `kidhub dump` prints. Image payloads are replaced by
// their size so the output stays readable.
type dumpOutput struct {
	Database      string
	SchemaVersion int
	Keys          []string
	Preferences   model.Preferences
	Ideas         []model.Idea
}

func newDumpCmd(a *App) *cobra.Command {
	var color bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Pretty-print the persisted state for debugging",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			adapter, s, err := a.openAdapter()
			if err != nil {
				return err
			}
			defer s.Close()

			snapshot, err := adapter.Load(ctx)
			if err != nil {
				return fmt.Errorf("loading ideas: %w", err)
			}
			keys, err := adapter.KV().Keys(ctx)
			if err != nil {
				return err
			}
			version, err := s.SchemaVersion(ctx)
			if err != nil {
				return err
			}

			out := dumpOutput{
				Database:      a.Config.Database.Path,
				SchemaVersion: version,
				Keys:          keys,
				Preferences:   snapshot.Prefs,
				Ideas:         make([]model.Idea, len(snapshot.Ideas)),
			}
			for i, idea := range snapshot.Ideas {
				if idea.HasImage() {
					idea.Image = fmt.Sprintf("<%d bytes>", len(idea.Image))
				}
				out.Ideas[i] = idea
			}

			printer := pp.New()
			printer.SetOutput(cmd.OutOrStdout())
			printer.SetColoringEnabled(color)
			_, err = printer.Println(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&color, "color", false, "Colorize the output")
	return cmd
}
