package cli

import (
	"oboegaki/model"

	"github.com/spf13/cobra"
)

func (a *App) newCopyCmd() *cobra.Command {
	var index string

	cmd := &cobra.Command{
		Use:     "copy [index]",
		Aliases: []string{"cp"},
		Short:   "Copy a command to the clipboard by its index",
		Long:    `Copy the command text at the given index to the system clipboard. Placeholders are copied as written.`,
		Example: "  oboegaki copy --index 1",
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
			entry, ok := model.At(entries, idx)
			if !ok {
				return &NotFoundError{Index: idx}
			}

			if err := a.Clipboard.WriteAll(entry.Command); err != nil {
				return err
			}
			a.record(entry, model.ActionCopy, 0)

			successColor.Fprintf(a.Stdout, "Copied to clipboard: %s\n", entry.Command)
			return nil
		},
	}

	addIndexFlag(cmd, &index, "index of the command to copy")
	return cmd
}
