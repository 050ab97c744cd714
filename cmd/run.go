package cmd

import (
	"fmt"
	"os"

	"github.com/mbuckley/feprep/internal/advisor"
	"github.com/mbuckley/feprep/internal/app"
	"github.com/mbuckley/feprep/internal/store"
	"github.com/spf13/cobra"
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

	opts := app.Options{Store: st}

	provider, err := advisor.NewProviderFromEnv(ctx, st.AdvisoryRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advisor not configured:", err)
		fmt.Fprintln(os.Stderr, "Study tips and answer analysis will use built-in text.")
	} else {
		opts.Provider = provider
	}

	return app.Run(ctx, opts)
}
