package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// UsageError is a missing or malformed argument.
type UsageError struct {
	Msg       string
	ShowUsage bool
}

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError is an index outside the stored sequence.
type NotFoundError struct {
	Index int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no command at index %d", e.Index)
}

// ExitCodeError carries an exit code whose message was already printed.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// report prints err the way its kind requires and maps it to an exit code.
func (a *App) report(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitSuccess
	}

	// cobra reports unknown subcommands as plain errors.
	if strings.HasPrefix(err.Error(), "unknown command") {
		err = &UsageError{Msg: err.Error(), ShowUsage: true}
	}

	var usageErr *UsageError
	var notFound *NotFoundError
	var exitErr *ExitCodeError

	switch {
	case errors.As(err, &notFound):
		fmt.Fprintln(a.Stdout, "Invalid command index.")
		return ExitNotFound
	case errors.As(err, &usageErr):
		errorColor.Fprintf(a.Stderr, "Error: %s\n", usageErr.Msg)
		if usageErr.ShowUsage && cmd != nil {
			fmt.Fprint(a.Stderr, cmd.UsageString())
		}
		return ExitUsage
	case errors.As(err, &exitErr):
		return exitErr.Code
	default:
		errorColor.Fprintf(a.Stderr, "Error: %v\n", err)
		return ExitError
	}
}
