package cmd

import (
	"fmt"

	"github.com/mbuckley/feprep/internal/question"
	"github.com/mbuckley/feprep/internal/topic"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <topic> <index> [count]",
	Short: "Print resolved questions for a topic (no database)",
	Long: `Resolve and print questions straight from the content engine.

This is a stateless developer tool — no database, no progress tracking.
Resolution is deterministic: the same topic and pool index always yield
the same question. Useful for reviewing question quality per topic.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("answers", false, "Show the correct key and explanation")
}

func runPreview(cmd *cobra.Command, args []string) error {
	t, err := topic.Parse(args[0])
	if err != nil {
		return err
	}

	var start int
	if _, err := fmt.Sscanf(args[1], "%d", &start); err != nil {
		return fmt.Errorf("invalid pool index %q", args[1])
	}
	if start < 1 || start > question.PoolSize {
		return fmt.Errorf("pool index %d out of range [1, %d]", start, question.PoolSize)
	}

	count := 1
	if len(args) == 3 {
		if _, err := fmt.Sscanf(args[2], "%d", &count); err != nil || count < 1 {
			return fmt.Errorf("invalid count %q", args[2])
		}
	}
	if start+count-1 > question.PoolSize {
		count = question.PoolSize - start + 1
	}

	showAnswers, _ := cmd.Flags().GetBool("answers")
	engine := question.NewEngine()

	for i := 0; i < count; i++ {
		q := engine.Resolve(t, start+i)

		fmt.Printf("── %s ──\n", q.ID)
		fmt.Println(q.Prompt)
		for _, key := range question.OptionKeys {
			fmt.Printf("  %s)  %s\n", key, q.Options[key])
		}
		if showAnswers {
			fmt.Printf("Answer: %s\n", q.CorrectKey)
			if q.Explanation != "" {
				fmt.Printf("Explanation: %s\n", q.Explanation)
			}
			if q.RequiresCitation {
				fmt.Printf("Reference: %s\n", q.Citation)
			}
		}
		fmt.Println()
	}

	return nil
}
