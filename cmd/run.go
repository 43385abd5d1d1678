package cmd

import (
	"fmt"
	"os"

	"github.com/lingotutor/lingotutor/internal/app"
	"github.com/lingotutor/lingotutor/internal/chat"
	"github.com/lingotutor/lingotutor/internal/llm"
	"github.com/lingotutor/lingotutor/internal/practice"
	"github.com/lingotutor/lingotutor/internal/profile"
	"github.com/lingotutor/lingotutor/internal/progression"
	"github.com/lingotutor/lingotutor/internal/store"
	"github.com/spf13/cobra"

	// Register the shipped language catalogs.
	_ "github.com/lingotutor/lingotutor/internal/curriculum/english"
	_ "github.com/lingotutor/lingotutor/internal/curriculum/spanish"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	tracker := profile.NewTracker()
	opts := app.Options{
		Tracker:    tracker,
		Controller: progression.NewController(tracker),
		EventRepo:  eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Magic practice and the AI tutor will be unavailable.")
	} else {
		opts.Generator = practice.NewGenerator(provider)
		opts.Tutor = chat.NewTutor(provider)
	}

	return app.Run(opts)
}
