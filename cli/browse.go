package cli

import (
	"fmt"

	"oboegaki/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (a *App) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick, run, copy, add and delete commands interactively",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ui.Options{
				Store:     a.store,
				Clipboard: a.Clipboard,
				Shell:     a.cfg.Shell,
			}
			if h := a.history(); h != nil {
				opts.History = h
			}

			app, err := ui.NewApp(opts)
			if err != nil {
				return err
			}

			p := tea.NewProgram(app,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(a.Stdin),
				tea.WithOutput(a.Stdout),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running browser: %w", err)
			}
			return nil
		},
	}
}
