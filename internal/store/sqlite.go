package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite stores documents in one table of a local SQLite database.
// Both corpora (days and intake) can share a database file under
// different table names.
type SQLite struct {
	db    *sql.DB
	table string
}

var _ Interface = (*SQLite)(nil)

// Valid table names; queries interpolate the table, so it is restricted
// to this fixed set.
var sqliteTables = map[string]bool{
	"days":   true,
	"intake": true,
}

// OpenSQLite creates or opens a SQLite-backed store at path, keeping
// documents in the named table.
//
// The database is configured with WAL mode, NORMAL synchronous, a
// 5-second busy timeout, and a single connection (SQLite supports one
// writer at a time). Idempotent; safe to call for both tables on the
// same path.
func OpenSQLite(path, table string) (*SQLite, error) {
	if !sqliteTables[table] {
		return nil, fmt.Errorf("unknown store table %q", table)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		address TEXT PRIMARY KEY,
		body    BLOB NOT NULL
	)`, table)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{db: db, table: table}, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Exists reports whether a document is present for the address.
func (s *SQLite) Exists(addr string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT 1 FROM %s WHERE address = ?", s.table), addr,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	return true, nil
}

// Load returns the stored document, or ErrNotFound.
func (s *SQLite) Load(addr string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT body FROM %s WHERE address = ?", s.table), addr,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", addr, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load from %s: %w", s.table, err)
	}
	return body, nil
}

// Save replaces the document for the address in a single transaction.
func (s *SQLite) Save(addr string, body []byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	_, err = tx.Exec(
		fmt.Sprintf("INSERT OR REPLACE INTO %s (address, body) VALUES (?, ?)", s.table),
		addr, body,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to save to %s: %w", s.table, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save to %s: %w", s.table, err)
	}
	return nil
}

// List returns every stored address, sorted ascending.
func (s *SQLite) List() ([]string, error) {
	rows, err := s.db.Query(
		fmt.Sprintf("SELECT address FROM %s ORDER BY address ASC", s.table),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.table, err)
	}
	defer rows.Close()

	var addrs []string
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addrs = append(addrs, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", s.table, err)
	}
	return addrs, nil
}
