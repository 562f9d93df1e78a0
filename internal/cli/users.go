package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newUsersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users with a stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(cmd, opts)
			if err != nil {
				return err
			}

			users, err := eng.Users(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return outputJSON(out, users)
			}

			if len(users) == 0 {
				PrintEmptyState(out, "No users in memory")
				return nil
			}
			PrintList(out, users, 0)
			return nil
		},
	}
}
