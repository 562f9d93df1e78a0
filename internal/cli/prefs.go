package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPrefsCmd(opts *rootOptions) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show a user's stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(cmd, opts)
			if err != nil {
				return err
			}

			prefs, err := eng.Preferences(context.Background(), userID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(out, prefs)
			}

			if len(prefs) == 0 {
				PrintEmptyState(out, fmt.Sprintf("No preferences stored for %s", userID))
				return nil
			}

			PrintSection(out, fmt.Sprintf("Preferences for %s", userID))
			for _, key := range sortedKeys(prefs) {
				PrintLabelValue(out, key, fmt.Sprintf("%v", prefs[key]))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
