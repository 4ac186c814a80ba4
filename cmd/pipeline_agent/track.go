package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/talent-pipeline/internal/db"
	"github.com/jonathan/talent-pipeline/internal/observability"
	"github.com/jonathan/talent-pipeline/internal/pipeline"
	"github.com/jonathan/talent-pipeline/internal/tracker"
	"github.com/jonathan/talent-pipeline/internal/types"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Move an application to a new pipeline stage",
	Long:  "Move an application to a new pipeline stage, recording the change in its stage history. Stages advance one step at a time; rejection is legal from any non-terminal stage.",
	RunE:  runTrack,
}

var (
	trackApplicationID string
	trackToStage       string
	trackChangedBy     string
	trackNotes         string
	trackAutomated     bool
	trackDatabaseURL   string
)

func init() {
	trackCmd.Flags().StringVar(&trackApplicationID, "application", "", "Application UUID (required)")
	trackCmd.Flags().StringVar(&trackToStage, "to", "", "Target stage (required)")
	trackCmd.Flags().StringVar(&trackChangedBy, "by", "", "Identity recorded on the transition")
	trackCmd.Flags().StringVar(&trackNotes, "notes", "", "Free-form note on the transition")
	trackCmd.Flags().BoolVar(&trackAutomated, "automated", false, "Mark the transition as system-driven (bypasses the adjacency check)")
	trackCmd.Flags().StringVar(&trackDatabaseURL, "db-url", "", "Database URL (required; falls back to DATABASE_URL)")
	_ = trackCmd.MarkFlagRequired("application")
	_ = trackCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(trackCmd)
}

func runTrack(_ *cobra.Command, _ []string) error {
	applicationID, err := uuid.Parse(trackApplicationID)
	if err != nil {
		return fmt.Errorf("invalid application id: %w", err)
	}

	databaseURL := trackDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (set DATABASE_URL or use --db-url)")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	trk := tracker.New(database, nil, nil, nil)
	app, err := trk.Transition(ctx, applicationID, pipeline.TransitionRequest{
		To:        types.PipelineStage(trackToStage),
		ChangedBy: trackChangedBy,
		Automated: trackAutomated,
		Notes:     trackNotes,
	})
	if err != nil {
		return err
	}

	history, err := trk.History(ctx, applicationID)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintStageHistory(app, history)
	return nil
}
