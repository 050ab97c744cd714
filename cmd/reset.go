package cmd

import (
	"fmt"

	"github.com/mbuckley/feprep/internal/progress"
	"github.com/mbuckley/feprep/internal/store"
	"github.com/mbuckley/feprep/internal/topic"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <topic>",
	Short: "Reset a topic's practice position to the start",
	Long:  "Returns the topic's cursor to the beginning of its question order. The order itself is kept, so previously seen questions repeat from the start.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := topic.Parse(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		tracker, err := progress.NewTracker(ctx, st.SequenceRepo())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if err := tracker.Reset(ctx, t); err != nil {
			return err
		}

		fmt.Printf("Reset %s to the start of its question order.\n", topic.DisplayName(t))
		return nil
	},
}
