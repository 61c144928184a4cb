package model

import "time"

type Action string

const (
	ActionRun  Action = "run"
	ActionCopy Action = "copy"
)

type Run struct {
	ID        int64
	Command   string
	Category  string
	Action    Action
	ExitCode  int
	CreatedAt time.Time
}
