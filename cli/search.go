package cli

import (
	"fmt"
	"strings"

	"oboegaki/model"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

// searchTarget is the text a query is matched against.
func searchTarget(e model.Entry) string {
	return e.Category + " " + e.Command + " " + e.Note
}

func (a *App) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "search <query>",
		Aliases: []string{"find"},
		Short:   "Fuzzy-search commands by category, text and note",
		Example: "  oboegaki search gitlog",
		Args:    usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			entries, err := a.store.Load()
			if err != nil {
				return err
			}

			targets := make([]string, len(entries))
			for i, e := range entries {
				targets[i] = searchTarget(e)
			}

			matches := fuzzy.Find(query, targets)
			if len(matches) == 0 {
				fmt.Fprintln(a.Stdout, "No matching commands.")
				return nil
			}

			rows := make([]indexedEntry, len(matches))
			for i, m := range matches {
				rows[i] = indexedEntry{Index: m.Index + 1, Entry: entries[m.Index]}
			}
			printEntryTable(a.Stdout, rows)
			return nil
		},
	}
}
