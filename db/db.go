package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"oboegaki/model"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) migrate() error {
	_, err := d.conn.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			command TEXT NOT NULL,
			category TEXT DEFAULT '',
			action TEXT NOT NULL,
			exit_code INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
		CREATE INDEX IF NOT EXISTS idx_runs_command ON runs(command);
	`)
	return err
}

func (d *DB) Close() error {
	return d.conn.Close()
}

// Record stores one run or copy of entry.
func (d *DB) Record(entry model.Entry, action model.Action, exitCode int) (int64, error) {
	result, err := d.conn.Exec(
		`INSERT INTO runs (command, category, action, exit_code, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.Command, entry.Category, string(action), exitCode, time.Now().UTC(),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// Recent returns up to limit records, newest first. limit <= 0 means all.
func (d *DB) Recent(limit int) ([]model.Run, error) {
	query := `
		SELECT id, command, category, action, exit_code, created_at
		FROM runs
		ORDER BY id DESC
	`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		var r model.Run
		var action string
		if err := rows.Scan(&r.ID, &r.Command, &r.Category, &action, &r.ExitCode, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Action = model.Action(action)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LastUsed returns the most recent use of each command text.
func (d *DB) LastUsed() (map[string]time.Time, error) {
	rows, err := d.conn.Query(`
		SELECT r.command, r.created_at
		FROM runs r
		WHERE r.id = (SELECT MAX(id) FROM runs WHERE command = r.command)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	used := make(map[string]time.Time)
	for rows.Next() {
		var cmd string
		var last time.Time
		if err := rows.Scan(&cmd, &last); err != nil {
			return nil, err
		}
		used[cmd] = last
	}
	return used, rows.Err()
}
