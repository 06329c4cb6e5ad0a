package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matsen/snip/internal/snippet"
	_ "modernc.org/sqlite"
)

const snippetsSchema = `
	CREATE TABLE IF NOT EXISTS snippets (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
`

// SnippetStore persists snippets in a single SQLite table.
// No handle is held between calls: every operation opens the database,
// does its work and closes it again.
type SnippetStore struct {
	path string
}

// NewSnippetStore returns a store backed by the SQLite file at path.
// The file and its parent directory are created on first use.
func NewSnippetStore(path string) *SnippetStore {
	return &SnippetStore{path: path}
}

// openSnippetDB opens the database and makes sure the snippets table exists.
func openSnippetDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if _, err := db.Exec(snippetsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return db, nil
}

// withDB runs fn against a freshly opened database and always closes it.
func (s *SnippetStore) withDB(op string, fn func(*sql.DB) error) (err error) {
	db, err := openSnippetDB(s.path)
	if err != nil {
		return &StoreError{Op: op, Path: s.path, Err: err}
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = &StoreError{Op: op, Path: s.path, Err: fmt.Errorf("closing database: %w", cerr)}
		}
	}()

	if err := fn(db); err != nil {
		return &StoreError{Op: op, Path: s.path, Err: err}
	}
	return nil
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error.
func (s *SnippetStore) withTx(op string, fn func(*sql.Tx) error) error {
	return s.withDB(op, func(db *sql.DB) error {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction: %w", err)
		}
		if err := fn(tx); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing transaction: %w", err)
		}
		return nil
	})
}

// Lookup returns every snippet whose key contains fragment.
// Matching is case-sensitive and unanchored; an empty fragment matches all.
// instr is used instead of LIKE because SQLite's LIKE ignores ASCII case.
func (s *SnippetStore) Lookup(fragment string) ([]snippet.Snippet, error) {
	var found []snippet.Snippet
	err := s.withDB("lookup", func(db *sql.DB) error {
		rows, err := db.Query(`
			SELECT key, value FROM snippets
			WHERE ? = '' OR instr(key, ?) > 0
			ORDER BY key
		`, fragment, fragment)
		if err != nil {
			return fmt.Errorf("querying snippets: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var sn snippet.Snippet
			if err := rows.Scan(&sn.Key, &sn.Value); err != nil {
				return fmt.Errorf("scanning snippet: %w", err)
			}
			found = append(found, sn)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// All returns every stored snippet ordered by key.
func (s *SnippetStore) All() ([]snippet.Snippet, error) {
	return s.Lookup("")
}

// Get returns the snippet stored under exactly key.
// ok is false if no such snippet exists.
func (s *SnippetStore) Get(key string) (sn snippet.Snippet, ok bool, err error) {
	err = s.withDB("get", func(db *sql.DB) error {
		row := db.QueryRow("SELECT key, value FROM snippets WHERE key = ?", key)
		switch scanErr := row.Scan(&sn.Key, &sn.Value); scanErr {
		case nil:
			ok = true
			return nil
		case sql.ErrNoRows:
			return nil
		default:
			return fmt.Errorf("querying snippet: %w", scanErr)
		}
	})
	return sn, ok, err
}

// Upsert inserts the snippet or replaces the value stored under key.
func (s *SnippetStore) Upsert(key, value string) error {
	return s.withTx("upsert", func(tx *sql.Tx) error {
		return upsertTx(tx, key, value)
	})
}

// Delete removes the snippet stored under exactly key.
// Deleting a missing key is not an error.
func (s *SnippetStore) Delete(key string) error {
	return s.withTx("delete", func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM snippets WHERE key = ?", key); err != nil {
			return fmt.Errorf("deleting snippet: %w", err)
		}
		return nil
	})
}

// UpsertAll stores every snippet in one transaction. Either all are written
// or none are.
func (s *SnippetStore) UpsertAll(snippets []snippet.Snippet) error {
	return s.withTx("import", func(tx *sql.Tx) error {
		for i, sn := range snippets {
			if err := upsertTx(tx, sn.Key, sn.Value); err != nil {
				return fmt.Errorf("snippet %d (%q): %w", i+1, sn.Key, err)
			}
		}
		return nil
	})
}

// Count returns the number of stored snippets.
func (s *SnippetStore) Count() (int, error) {
	var n int
	err := s.withDB("count", func(db *sql.DB) error {
		return db.QueryRow("SELECT COUNT(*) FROM snippets").Scan(&n)
	})
	return n, err
}

func upsertTx(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(`
		INSERT INTO snippets (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("upserting snippet: %w", err)
	}
	return nil
}
