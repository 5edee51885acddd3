// Package state persists the session (browsed folder, play queue, volume)
// between runs in a SQLite database.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// Session is the state restored at startup.
type Session struct {
	Folder  string
	Queue   []string
	Current int // index into Queue, -1 when nothing was loaded
	Volume  uint8
}

// Store reads and writes the saved session.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. ":memory:" keeps
// everything in memory.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the saved session, or nil on first run.
func (s *Store) Load() (*Session, error) {
	var (
		sess   Session
		folder sql.NullString
		volume int
	)
	row := s.db.QueryRow(`SELECT folder, current_index, volume FROM session WHERE id = 1`)
	err := row.Scan(&folder, &sess.Current, &volume)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is valid on first run
	}
	if err != nil {
		return nil, err
	}
	sess.Folder = folder.String
	sess.Volume = uint8(min(max(volume, 0), 100))

	rows, err := s.db.Query(`SELECT path FROM queue_tracks ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		sess.Queue = append(sess.Queue, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if sess.Current >= len(sess.Queue) {
		sess.Current = -1
	}
	return &sess, nil
}

// Save replaces the saved session.
func (s *Store) Save(sess Session) error {
	return withTx(s.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM queue_tracks`); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO session (id, folder, current_index, volume)
			VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				folder = excluded.folder,
				current_index = excluded.current_index,
				volume = excluded.volume
		`, sess.Folder, sess.Current, int(sess.Volume))
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`INSERT INTO queue_tracks (position, path) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, path := range sess.Queue {
			if _, err := stmt.Exec(i, path); err != nil {
				return err
			}
		}
		return nil
	})
}

// withTx executes fn within a transaction.
// It handles Begin, Rollback on error, and Commit on success.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
