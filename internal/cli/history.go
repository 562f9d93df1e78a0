package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		userID      string
		showSummary bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show a user's trip history",
		Long:  `List the trips stored in memory for a user, oldest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(cmd, opts)
			if err != nil {
				return err
			}

			trips, err := eng.History(context.Background(), userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(out, trips)
			}

			if len(trips) == 0 {
				PrintEmptyState(out, fmt.Sprintf("No trips found for %s", userID))
				return nil
			}

			PrintSection(out, fmt.Sprintf("Trips for %s (%s)", userID, PrintCount(len(trips), "trip", "trips")))
			rows := make([][]string, 0, len(trips))
			for _, trip := range trips {
				rows = append(rows, []string{
					trip.CreatedAt.Format("2006-01-02 15:04"),
					trip.Destination,
					trip.StartDate + " → " + trip.EndDate,
					PrintCount(len(trip.Itinerary), "day", "days"),
					trip.ID,
				})
			}
			PrintTable(out, []string{"PLANNED", "DESTINATION", "DATES", "LENGTH", "ID"}, rows)

			if showSummary {
				for _, trip := range trips {
					PrintInfo(out, "")
					PrintInfo(out, trip.Summary)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "Print each trip's itinerary summary")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
