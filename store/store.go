// Package store persists the ordered list of entries as a single JSON file.
//
// The file is always read and written whole. Callers load the full sequence,
// change it in memory, and hand the complete result back to Save.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"oboegaki/model"
)

const (
	tempFilePrefix = ".commands-tmp-"
	filePerm       = 0640
	dirPerm        = 0750
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored entries. A missing file is an empty sequence, and so
// is a file that does not parse; the parse failure is only logged. Any other
// read failure is returned.
func (s *Store) Load() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to open store %s: %w", s.path, err)
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("failed to parse store, treating as empty", "path", s.path, "error", err)
		return []model.Entry{}, nil
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, nil
}

// Save replaces the store with entries. The previous file stays intact
// unless the new content was fully written.
func (s *Store) Save(entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	data := buf.Bytes()

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := writeFileAtomic(s.path, data, filePerm); err != nil {
		return err
	}

	slog.Debug("store saved", "path", s.path, "entries", len(entries))
	return nil
}

func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to open store for writing: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod store: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to replace store %s: %w", filename, err)
	}
	return nil
}
