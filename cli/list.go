package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all registered commands",
		Example: "  oboegaki list\n  oboegaki list --category git",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.store.Load()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(a.Stdout, "No commands registered.")
				return nil
			}

			rows := indexAll(entries)
			if cmd.Flags().Changed("category") {
				filtered := rows[:0:0]
				for _, r := range rows {
					if strings.EqualFold(r.Category, category) {
						filtered = append(filtered, r)
					}
				}
				if len(filtered) == 0 {
					fmt.Fprintf(a.Stdout, "No commands in category %q.\n", category)
					return nil
				}
				rows = filtered
			}

			printEntryTable(a.Stdout, rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show commands in this category")
	return cmd
}
