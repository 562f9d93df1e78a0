package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/travelbuddy/internal/engine"
)

func newPlanCmd(opts *rootOptions) *cobra.Command {
	var (
		userID      string
		destination string
		startDate   string
		endDate     string
		interests   []string
		prefPairs   []string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a trip and save it to memory",
		Long: `Research attractions for a destination, build a day-by-day itinerary
and append the trip to the user's history.

Preferences given with --pref override the user's stored preferences for the
same keys; stored preferences fill the rest.`,
		Example: `  travelbuddy plan --user muhammed123 --destination "New York" \
    --start 2025-12-20 --end 2025-12-22 \
    --interest museums,parks,markets --pref diet=vegetarian --pref max_walk_km=5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := parsePreferences(prefPairs)
			if err != nil {
				return err
			}

			eng, err := newEngine(cmd, opts)
			if err != nil {
				return err
			}

			req := &engine.PlanTripRequest{
				UserID:      userID,
				Destination: destination,
				StartDate:   startDate,
				EndDate:     endDate,
				Interests:   interests,
				Preferences: prefs,
			}

			result, err := eng.PlanTrip(context.Background(), req)
			if result == nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				if jsonErr := outputJSON(out, result); jsonErr != nil {
					return jsonErr
				}
				return err
			}

			PrintSection(out, fmt.Sprintf("Trip to %s", result.Trip.Destination))
			PrintInfo(out, result.Trip.Summary)
			PrintLabelValue(out, "Trip ID", result.Trip.ID)
			PrintLabelValue(out, "Places considered", fmt.Sprintf("%d", result.PlacesConsidered))

			if errors.Is(err, engine.ErrStorage) {
				PrintWarning(out, "Trip planned but not saved to memory")
				return err
			}
			PrintSuccess(out, fmt.Sprintf("Memory saved for user %s", userID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID whose profile is loaded and updated")
	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination city")
	cmd.Flags().StringVar(&startDate, "start", "", "First day of the trip (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Last day of the trip (YYYY-MM-DD)")
	cmd.Flags().StringSliceVarP(&interests, "interest", "i", nil, "Interest tags (repeatable or comma-separated)")
	cmd.Flags().StringArrayVarP(&prefPairs, "pref", "p", nil, "Preference key=value (repeatable)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
