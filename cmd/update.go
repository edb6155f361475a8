package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clanwatch/clanwatch/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer clanwatch release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(30 * time.Second))

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, version)
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Development build; install a release build to track versions.")
			return nil
		}
		if err != nil {
			return err
		}

		if result.UpdateAvailable {
			fmt.Printf("Update available: %s (running %s)\n", result.LatestVersion, result.CurrentVersion)
		} else {
			fmt.Println("Already running the latest version.")
		}
		return nil
	},
}
