package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingotutor/lingotutor/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lesson completion statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		stats, err := s.EventRepo().LessonStats(ctx)
		if err != nil {
			return fmt.Errorf("query lesson stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No lessons completed yet.")
			return nil
		}

		fmt.Printf("%-16s  %-12s  %12s  %10s\n", "Language", "Source", "Completions", "XP")
		fmt.Println(strings.Repeat("─", 58))

		var totalCompletions, totalXP int
		for _, st := range stats {
			fmt.Printf("%-16s  %-12s  %12d  %10d\n",
				st.Language, st.Source, st.Completions, st.XPAwarded)
			totalCompletions += st.Completions
			totalXP += st.XPAwarded
		}

		fmt.Println(strings.Repeat("─", 58))
		fmt.Printf("%-16s  %-12s  %12d  %10d\n", "TOTAL", "", totalCompletions, totalXP)
		return nil
	},
}
