package cmd

import (
	"fmt"

	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/spf13/cobra"

	_ "github.com/lingotutor/lingotutor/internal/curriculum/english"
	_ "github.com/lingotutor/lingotutor/internal/curriculum/spanish"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the shipped lesson catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, lang := range curriculum.Languages() {
			fmt.Printf("%s %s\n", lang.Flag, lang.Name)

			levels, err := curriculum.Levels(lang.Name)
			if err != nil {
				return err
			}
			for _, level := range levels {
				fmt.Printf("  %s\n", level)
				lessons, err := curriculum.Lessons(lang.Name, level)
				if err != nil {
					return err
				}
				for _, l := range lessons {
					fmt.Printf("    %-12s  %s %-24s  %d exercícios\n",
						l.ID, l.Icon, l.Title, len(l.Exercises))
				}
			}
			fmt.Println()
		}
		return nil
	},
}
