package cmd

import (
	"github.com/clanwatch/clanwatch/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clanwatch",
	Short: "Clan hiscores tracker",
	Long: "Clanwatch scrapes the clan hiscores page, records score history,\n" +
		"and announces changes to a Discord channel. Run it from a scheduler;\n" +
		"each invocation performs exactly one cycle.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCycle(cmd)
	},
}

// Execute runs the root command and returns its error for exit-code
// classification in main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CLANWATCH_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CLANWATCH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
