package cli

import (
	"fmt"
	"strings"

	"oboegaki/model"
	"oboegaki/runner"

	"github.com/spf13/cobra"
)

func (a *App) newRunCmd() *cobra.Command {
	var (
		index  string
		params []string
		shell  bool
	)

	cmd := &cobra.Command{
		Use:   "run [index]",
		Short: "Run a command by its index",
		Long: `Run the command at the given index with the terminal's stdin, stdout and stderr.

The command text is split on whitespace into a program and its arguments, with
no shell quoting. Pass --shell (or set "shell: true" in config.yaml) to run it
through "sh -c" instead. Placeholders like {{host}} are filled from --param.

The exit status of the command becomes the exit status of oboegaki.`,
		Example: "  oboegaki run --index 2\n  oboegaki run 3 --param host=example.com",
		Args:    usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseIndex(cmd, index, args)
			if err != nil {
				return err
			}
			values, err := runner.ParseParams(params)
			if err != nil {
				return usageErrorf("%v", err)
			}

			entries, err := a.store.Load()
			if err != nil {
				return err
			}
			entry, ok := model.At(entries, idx)
			if !ok {
				return &NotFoundError{Index: idx}
			}

			if missing := runner.MissingParams(entry.Command, values); len(missing) > 0 {
				return usageErrorf("missing value for %s (use --param name=value)", strings.Join(missing, ", "))
			}
			text := runner.SubstituteParams(entry.Command, values)
			argv := runner.Argv(text, shell || a.cfg.Shell)
			if len(argv) == 0 {
				return fmt.Errorf("command at index %d is empty", idx)
			}

			fmt.Fprintf(a.Stdout, "Running: %s\n", text)
			code, err := a.Runner.Run(cmd.Context(), argv)
			if err != nil {
				errorColor.Fprintf(a.Stderr, "Failed to start %s: %v\n", argv[0], err)
				return &ExitCodeError{Code: ExitError}
			}
			a.record(entry, model.ActionRun, code)

			if code != 0 {
				warnColor.Fprintf(a.Stderr, "Command exited with status %d\n", code)
				if code < 0 {
					code = ExitError
				}
				return &ExitCodeError{Code: code}
			}
			return nil
		},
	}

	addIndexFlag(cmd, &index, "index of the command to run")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "value for a {{name}} placeholder, as name=value (repeatable)")
	cmd.Flags().BoolVar(&shell, "shell", false, `run through "sh -c"`)
	return cmd
}
