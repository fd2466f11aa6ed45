package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nhle/kidpreneur-hub/internal/imagedata"
	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/state"
)

func newListCmd(a *App) *cobra.Command {
	var (
		sortFlag string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print stored ideas",
		Long:  "Print stored ideas. Without --sort the saved sort preference is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, s, err := a.openAdapter()
			if err != nil {
				return err
			}
			defer s.Close()

			snapshot, err := adapter.Load(context.Background())
			if err != nil {
				return fmt.Errorf("loading ideas: %w", err)
			}

			order := snapshot.Prefs.SortOrder
			if cmd.Flags().Changed("sort") {
				switch model.SortOrder(sortFlag) {
				case model.SortNewest, model.SortOldest:
					order = model.SortOrder(sortFlag)
				default:
					return fmt.Errorf("--sort must be %q or %q", model.SortNewest, model.SortOldest)
				}
			}
			ideas := state.SortIdeas(snapshot.Ideas, order)

			out := cmd.OutOrStdout()
			if asJSON {
				if ideas == nil {
					ideas = []model.Idea{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(ideas)
			}

			if len(ideas) == 0 {
				fmt.Fprintln(out, "No ideas yet. Be the first to submit!")
				return nil
			}
			fmt.Fprintln(out, renderIdeaTable(ideas))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", string(model.SortNewest), "Sort order (newest|oldest)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the ideas as JSON")
	return cmd
}

func renderIdeaTable(ideas []model.Idea) string {
	rows := make([][]string, 0, len(ideas))
	for _, idea := range ideas {
		rows = append(rows, []string{
			strconv.FormatInt(idea.ID, 10),
			humanize.Time(time.UnixMilli(idea.ID)),
			idea.Title,
			string(idea.Category),
			idea.Name,
			imageColumn(idea),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "CREATED", "TITLE", "CATEGORY", "BY", "IMAGE").
		Rows(rows...).
		Render()
}

func imageColumn(idea model.Idea) string {
	if !idea.HasImage() {
		return ""
	}
	info, err := imagedata.Describe(idea.Image)
	if err != nil {
		return "yes"
	}
	return humanize.Bytes(uint64(info.Size))
}
