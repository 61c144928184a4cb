package cli

import (
	"fmt"

	"oboegaki/model"

	"github.com/spf13/cobra"
)

func (a *App) newDeleteCmd() *cobra.Command {
	var index string

	cmd := &cobra.Command{
		Use:     "delete [index]",
		Aliases: []string{"rm"},
		Short:   "Delete a command by its index",
		Long:    `Delete the command at the given index. Commands after it move up one position.`,
		Example: "  oboegaki delete --index 2",
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(cmd, index, args)
			if err != nil {
				return err
			}

			entries, err := a.store.Load()
			if err != nil {
				return err
			}
			remaining, removed, ok := model.Remove(entries, idx)
			if !ok {
				return &NotFoundError{Index: idx}
			}
			if err := a.store.Save(remaining); err != nil {
				return err
			}

			fmt.Fprintf(a.Stdout, "Command deleted: %-5d %-10s %-30s %s\n",
				idx, removed.Category, removed.Command, removed.Note)
			return nil
		},
	}

	addIndexFlag(cmd, &index, "index of the command to delete")
	return cmd
}
