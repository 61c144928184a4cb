package cli

import (
	"fmt"
	"strings"

	"oboegaki/model"

	"github.com/spf13/cobra"
)

func (a *App) newAddCmd() *cobra.Command {
	var entry model.Entry

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new command",
		Long: `Append a command to the end of the list.

All three flags are required. Empty values are allowed when passed explicitly.
Use {{name}} in the command text for values supplied at run time.`,
		Example: `  oboegaki add --command "git log --oneline -20" --category git --note "recent commits"
  oboegaki add --command "ssh {{host}}" --category ops --note ""`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var missing []string
			for _, name := range []string{"command", "category", "note"} {
				if !cmd.Flags().Changed(name) {
					missing = append(missing, "--"+name)
				}
			}
			if len(missing) > 0 {
				return usageErrorf("missing required flag(s): %s", strings.Join(missing, ", "))
			}

			entries, err := a.store.Load()
			if err != nil {
				return err
			}

			if existing := model.IndexOf(entries, entry.Command); existing > 0 {
				warnColor.Fprintf(a.Stderr, "Warning: the same command is already stored at index %d\n", existing)
			}

			entries = append(entries, entry)
			if err := a.store.Save(entries); err != nil {
				return err
			}

			successColor.Fprintln(a.Stdout, "Command added.")
			fmt.Fprintf(a.Stdout, "Index: %d\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&entry.Command, "command", "", "command to add")
	cmd.Flags().StringVar(&entry.Category, "category", "", "category of the command")
	cmd.Flags().StringVar(&entry.Note, "note", "", "note for the command")
	return cmd
}
