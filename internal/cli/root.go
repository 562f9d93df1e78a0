package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	jsonOutput bool
	storePath  string
	envFile    string
	verbose    bool
}

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// newRootCmd builds a fresh command tree. Building per invocation keeps
// flag state from leaking between executions.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "travelbuddy",
		Version: version,
		Short:   "Multi-step travel itinerary planner",
		Long: `travelbuddy plans day-by-day travel itineraries.

It researches attractions for a destination, allocates them into morning,
afternoon and evening slots, and remembers each user's preferences and trip
history in a local JSON memory bank.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&opts.storePath, "store", "", "Path to the memory document (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Optional dotenv file to load")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "trip-planning",
		Title: "Trip Planning:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "memory",
		Title: "Memory:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// Trip Planning commands
	planCmd := newPlanCmd(opts)
	catalogCmd := newCatalogCmd(opts)
	planCmd.GroupID = "trip-planning"
	catalogCmd.GroupID = "trip-planning"
	rootCmd.AddCommand(planCmd, catalogCmd)

	// Memory commands
	historyCmd := newHistoryCmd(opts)
	prefsCmd := newPrefsCmd(opts)
	usersCmd := newUsersCmd(opts)
	historyCmd.GroupID = "memory"
	prefsCmd.GroupID = "memory"
	usersCmd.GroupID = "memory"
	rootCmd.AddCommand(historyCmd, prefsCmd, usersCmd)

	addToolingCommands(rootCmd)

	return rootCmd
}

// addToolingCommands registers version, help and completion.
func addToolingCommands(rootCmd *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the travelbuddy CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				target = rootCmd
			}
			_ = target.Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for travelbuddy for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	rootCmd.AddCommand(completionCmd)
}

// customHelpFunc renders help with colored group titles.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	// Ungrouped subcommands (e.g. completion shells)
	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailableInheritedFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.Root().CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}
