package cmd

import (
	"fmt"

	"github.com/clanwatch/clanwatch/internal/app"
	"github.com/clanwatch/clanwatch/internal/config"
	"github.com/spf13/cobra"
)

// runCycle loads configuration and executes one full cycle.
func runCycle(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	return app.Run(cmd.Context(), cfg, dbPath)
}
