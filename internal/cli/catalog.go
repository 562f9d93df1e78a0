package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List ranked attractions for a destination",
		Long: `Query the attraction source for a destination and print the ranked
candidates the planner would consider without interest filtering. The list is
capped at max_candidates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(cmd, opts)
			if err != nil {
				return err
			}

			candidates, err := eng.Catalog(context.Background(), destination)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(out, candidates)
			}

			if len(candidates) == 0 {
				PrintEmptyState(out, fmt.Sprintf("No attractions known for %s", destination))
				return nil
			}

			rows := make([][]string, 0, len(candidates))
			for _, a := range candidates {
				rows = append(rows, []string{a.Name, a.Category, fmt.Sprintf("%.1f", a.Rating), a.Hours})
			}
			PrintTable(out, []string{"NAME", "CATEGORY", "RATING", "HOURS"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination city")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}
