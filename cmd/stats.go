package cmd

import (
	"fmt"

	"github.com/mbuckley/feprep/internal/progress"
	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/store"
	"github.com/mbuckley/feprep/internal/topic"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice progress, exam results, and recent answers",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		score, err := st.SettingsRepo().GetInt(ctx, store.KeyScore)
		if err != nil {
			return fmt.Errorf("load score: %w", err)
		}
		fmt.Printf("Practice score: %d\n\n", score)

		tracker, err := progress.NewTracker(ctx, st.SequenceRepo())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		fmt.Println("Topic progress:")
		for _, t := range topic.All() {
			fmt.Printf("  %-16s %3d/%d\n", topic.DisplayName(t), tracker.Position(t), question.PoolSize)
		}

		records, err := st.LedgerRepo().ExamRecords(ctx)
		if err != nil {
			return fmt.Errorf("load exam records: %w", err)
		}
		fmt.Println("\nExam results (newest first):")
		if len(records) == 0 {
			fmt.Println("  none")
		}
		for _, r := range records {
			grade := "FAIL"
			if r.Passed {
				grade = "PASS"
			}
			fmt.Printf("  %s  %-16s %3d/%d  %s\n",
				r.Timestamp.Format("2006-01-02 15:04"),
				topic.DisplayName(r.Topic), r.Score, r.Total, grade)
		}

		entries, err := st.LedgerRepo().History(ctx)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		fmt.Println("\nRecent answers (newest first):")
		if len(entries) == 0 {
			fmt.Println("  none")
		}
		for _, e := range entries {
			mark := "✗"
			if e.Correct {
				mark = "✓"
			}
			fmt.Printf("  %s  %-16s %-24s %s\n",
				e.Timestamp.Format("2006-01-02 15:04"),
				topic.DisplayName(e.Topic), e.QuestionID, mark)
		}

		return nil
	},
}
