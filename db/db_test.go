package db

import (
	"path/filepath"
	"testing"
	"time"

	"oboegaki/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestRecordAndRecent(t *testing.T) {
	d := openTestDB(t)

	echo := model.Entry{Command: "echo hi", Category: "demo"}
	git := model.Entry{Command: "git status", Category: "git"}

	_, err := d.Record(echo, model.ActionRun, 0)
	require.NoError(t, err)
	_, err = d.Record(git, model.ActionCopy, 0)
	require.NoError(t, err)
	_, err = d.Record(echo, model.ActionRun, 2)
	require.NoError(t, err)

	runs, err := d.Recent(0)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "echo hi", runs[0].Command)
	assert.Equal(t, 2, runs[0].ExitCode)
	assert.Equal(t, model.ActionRun, runs[0].Action)
	assert.Equal(t, model.ActionCopy, runs[1].Action)
	assert.Equal(t, "git", runs[1].Category)
	assert.WithinDuration(t, time.Now(), runs[0].CreatedAt, time.Minute)

	limited, err := d.Recent(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestRecentEmpty(t *testing.T) {
	d := openTestDB(t)

	runs, err := d.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLastUsed(t *testing.T) {
	d := openTestDB(t)

	_, err := d.Record(model.Entry{Command: "a"}, model.ActionRun, 0)
	require.NoError(t, err)
	_, err = d.Record(model.Entry{Command: "b"}, model.ActionCopy, 0)
	require.NoError(t, err)
	_, err = d.Record(model.Entry{Command: "a"}, model.ActionRun, 1)
	require.NoError(t, err)

	used, err := d.LastUsed()
	require.NoError(t, err)
	assert.Len(t, used, 2)
	assert.Contains(t, used, "a")
	assert.Contains(t, used, "b")
	assert.False(t, used["a"].Before(used["b"]))
}

func TestReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	d, err := Open(path)
	require.NoError(t, err)
	_, err = d.Record(model.Entry{Command: "uptime"}, model.ActionRun, 0)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	d, err = Open(path)
	require.NoError(t, err)
	defer d.Close()

	runs, err := d.Recent(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "uptime", runs[0].Command)
}
