package cmd

import (
	"fmt"
	"strings"

	"github.com/mbuckley/feprep/internal/advisor"
	"github.com/mbuckley/feprep/internal/store"
	"github.com/mbuckley/feprep/internal/topic"
	"github.com/spf13/cobra"
)

var advisorCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Inspect the study advisor",
}

var advisorTestCmd = &cobra.Command{
	Use:   "test [topic]",
	Short: "Request a study tip from the configured provider",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := topic.All()[0]
		if len(args) == 1 {
			var err error
			if t, err = topic.Parse(args[0]); err != nil {
				return err
			}
		}

		ctx := cmd.Context()
		provider, err := advisor.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("advisor provider: %w", err)
		}

		fmt.Printf("Provider model: %s\n", provider.ModelID())
		svc := advisor.NewService(provider, advisor.DefaultConfig().Timeout)
		fmt.Printf("Tip for %s:\n  %s\n", topic.DisplayName(t), svc.Tip(ctx, t))
		return nil
	},
}

var advisorHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent advisory requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.AdvisoryRepo().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query advisory events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No advisory requests recorded yet.")
			return nil
		}

		fmt.Printf("%-12s  %-10s  %-20s  %-6s  %-6s  %-7s  %s\n",
			"Provider", "Purpose", "Question", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 80))
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			qid := e.QuestionID
			if qid == "" {
				qid = "-"
			}
			fmt.Printf("%-12s  %-10s  %-20s  %-6d  %-6d  %-7d  %s\n",
				e.Provider, e.Purpose, qid, e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
		}
		return nil
	},
}

func init() {
	advisorHistoryCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	advisorCmd.AddCommand(advisorTestCmd)
	advisorCmd.AddCommand(advisorHistoryCmd)
}
