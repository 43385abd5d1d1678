package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lingotutor/lingotutor/internal/release"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("lingotutor", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		checker := release.NewChecker("lingotutor", "lingotutor")
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		res, err := checker.Check(ctx, &release.CheckInput{Version: version})
		if err != nil {
			if errors.Is(err, release.ErrDevBuild) {
				fmt.Println("Development build; update check skipped.")
				return nil
			}
			return fmt.Errorf("check latest release: %w", err)
		}

		if res.UpdateAvailable {
			fmt.Printf("Update available: %s → %s\n", res.CurrentVersion, res.LatestVersion)
			fmt.Println(res.ReleaseURL)
		} else {
			fmt.Println("Already running the latest version.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
