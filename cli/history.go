package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently run and copied commands",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.HistoryEnabled() {
				fmt.Fprintln(a.Stdout, "History is disabled.")
				return nil
			}
			h := a.history()
			if h == nil {
				return errors.New("history database unavailable (run with -v for details)")
			}

			runs, err := h.Recent(limit)
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(a.Stdout, "No history recorded.")
				return nil
			}

			headerColor.Fprintf(a.Stdout, "%-19s %-6s %-4s %-10s %s\n", "When", "Action", "Exit", "Category", "Command")
			for _, r := range runs {
				fmt.Fprintf(a.Stdout, "%-19s %-6s %-4d %-10s %s\n",
					r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Action, r.ExitCode, r.Category, r.Command)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum records to show (0 = all)")
	return cmd
}
