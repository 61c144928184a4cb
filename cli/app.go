// Package cli implements the oboegaki subcommands on top of the entry store.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"oboegaki/clipboard"
	"oboegaki/config"
	"oboegaki/db"
	"oboegaki/model"
	"oboegaki/runner"
	"oboegaki/store"
)

// Runner spawns a program and reports its exit code. The error is only set
// when the program could not be started.
type Runner interface {
	Run(ctx context.Context, argv []string) (int, error)
}

// History records runs and copies.
type History interface {
	Record(entry model.Entry, action model.Action, exitCode int) (int64, error)
	Recent(limit int) ([]model.Run, error)
	LastUsed() (map[string]time.Time, error)
	Close() error
}

type App struct {
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Runner      Runner
	Clipboard   clipboard.Writer
	OpenHistory func(path string) (History, error)

	// Global flags.
	verbose   bool
	storePath string

	// Resolved once per invocation.
	cfg        config.Config
	store      *store.Store
	hist       History
	histOpened bool
}

func New() *App {
	return &App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Runner: runner.Exec{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		},
		Clipboard:   clipboard.System{},
		OpenHistory: openHistoryDB,
	}
}

func openHistoryDB(path string) (History, error) {
	d, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Execute runs one invocation and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	cmd, err := root.ExecuteContextC(ctx)
	a.closeHistory()
	return a.report(cmd, err)
}

func (a *App) setup() error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(a.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	path := a.storePath
	if path == "" {
		path, err = cfg.StorePath()
	} else {
		path, err = config.ResolvePath(path)
	}
	if err != nil {
		return err
	}
	a.store = store.New(path)
	slog.Debug("store resolved", "path", path)
	return nil
}

// history opens the history database on first use. It returns nil when
// history is disabled or unavailable; the latter is only logged.
func (a *App) history() History {
	if a.histOpened {
		return a.hist
	}
	a.histOpened = true

	if !a.cfg.HistoryEnabled() || a.OpenHistory == nil {
		return nil
	}
	path, err := a.cfg.HistoryPath()
	if err != nil {
		slog.Warn("history unavailable", "error", err)
		return nil
	}
	h, err := a.OpenHistory(path)
	if err != nil {
		slog.Warn("history unavailable", "path", path, "error", err)
		return nil
	}
	a.hist = h
	return h
}

func (a *App) record(entry model.Entry, action model.Action, exitCode int) {
	h := a.history()
	if h == nil {
		return
	}
	if _, err := h.Record(entry, action, exitCode); err != nil {
		slog.Warn("failed to record history", "action", action, "error", err)
	}
}

func (a *App) closeHistory() {
	if a.hist == nil {
		return
	}
	if err := a.hist.Close(); err != nil {
		slog.Warn("failed to close history", "error", err)
	}
	a.hist = nil
}
