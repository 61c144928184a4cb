package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "oboegaki",
		Short: "Remember and re-run frequently used shell commands",
		Long: `oboegaki keeps a list of shell commands with a category and a note.

Commands are addressed by their position in the list as shown by "list".
Positions shift when an earlier command is deleted.

Commands are stored in $XDG_CONFIG_HOME/oboegaki/commands.json
(or ~/.config/oboegaki/commands.json).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&a.storePath, "store", "", "Path to the commands file (overrides config)")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error(), ShowUsage: true}
	})

	root.AddCommand(
		a.newAddCmd(),
		a.newListCmd(),
		a.newRunCmd(),
		a.newDeleteCmd(),
		a.newCopyCmd(),
		a.newSearchCmd(),
		a.newHistoryCmd(),
		a.newBrowseCmd(),
	)
	return root
}

// addIndexFlag registers --index on cmd. The index may also be given as the
// single positional argument.
func addIndexFlag(cmd *cobra.Command, target *string, usage string) {
	cmd.Flags().StringVarP(target, "index", "i", "", usage)
}

func parseIndex(cmd *cobra.Command, flagValue string, args []string) (int, error) {
	raw := flagValue
	switch {
	case cmd.Flags().Changed("index") && len(args) > 0:
		return 0, usageErrorf("index given both as --index and as an argument")
	case !cmd.Flags().Changed("index") && len(args) == 0:
		return 0, usageErrorf("index not provided")
	case len(args) > 0:
		raw = args[0]
	}

	n, err := strconv.ParseUint(raw, 10, 31)
	if err != nil {
		return 0, usageErrorf("failed to parse index %q: must be a positive integer", raw)
	}
	return int(n), nil
}

// usageArgs turns cobra's positional-argument errors into usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{Msg: err.Error(), ShowUsage: true}
		}
		return nil
	}
}
