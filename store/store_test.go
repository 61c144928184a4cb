package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oboegaki/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "oboegaki", "commands.json"))
}

func sample() []model.Entry {
	return []model.Entry{
		{Command: "echo hi", Category: "demo", Note: "test"},
		{Command: "git status -sb", Category: "git", Note: ""},
		{Command: "ls -la", Category: "", Note: "long listing"},
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)

	entries, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)

	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err), "load must not create the file")
}

func TestLoad_UnparsableFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0750))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0640))

	entries, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoad_UnreadableFileIsError(t *testing.T) {
	s := newTestStore(t)
	// A directory in place of the file cannot be read as one.
	require.NoError(t, os.MkdirAll(s.Path(), 0750))

	_, err := s.Load()
	assert.ErrorContains(t, err, "failed to open store")
}

func TestSave_CreatesParentsAndPrettyPrints(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sample()[:1]))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	want := `[
  {
    "command": "echo hi",
    "category": "demo",
    "note": "test"
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestSave_EmptyWritesArray(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestRoundTripIsByteStable(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sample()))
	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		entries, err := s.Load()
		require.NoError(t, err)
		require.NoError(t, s.Save(entries))
	}

	again, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, first, again)

	entries, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sample(), entries)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sample()))
	require.NoError(t, s.Save(sample()[:2]))

	files, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	for _, f := range files {
		assert.False(t, strings.HasPrefix(f.Name(), tempFilePrefix), "leftover temp file %s", f.Name())
	}
	assert.Len(t, files, 1)
}

func TestSave_PreservesUnicodeAndEmptyFields(t *testing.T) {
	s := newTestStore(t)
	in := []model.Entry{{Command: `grep -r "覚え書き" .`, Category: "", Note: ""}}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSave_DoesNotEscapeShellOperators(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save([]model.Entry{{Command: "make build > out.log 2>&1", Category: "build", Note: ""}}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"make build > out.log 2>&1"`)
}
