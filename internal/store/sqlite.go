// Package store reads and writes gridsheet seed databases.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	_ "github.com/glebarez/sqlite"

	"github.com/young1lin/gridsheet/internal/grid"
)

// ErrNoRecordsTable is returned by OpenReadOnly when the database has no
// records table
var ErrNoRecordsTable = errors.New("database has no records table")

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}

	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// OpenReadOnly opens an existing seed database without writing to it.
// The database must already hold a records table.
func OpenReadOnly(dbPath string) (*DB, error) {
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, err
	}
	dsn := (&url.URL{Scheme: "file", Path: abs, RawQuery: "mode=ro"}).String()

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	var n int
	err = sqlDB.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'records'`).Scan(&n)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	if n == 0 {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoRecordsTable, dbPath)
	}

	return &DB{DB: sqlDB}, nil
}

// createTables creates the records table. Row order is the rowid order.
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Inactive'))
	);
	`

	_, err := db.Exec(query)
	return err
}

// InsertRecords appends records in order inside one transaction
func (db *DB) InsertRecords(records ...grid.Record) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO records (name, email, status) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(r.Name, r.Email, r.Status.String()); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadRecords returns every record in insertion order
func (db *DB) LoadRecords() ([]grid.Record, error) {
	rows, err := db.Query(`SELECT name, email, status FROM records ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []grid.Record
	for rows.Next() {
		var r grid.Record
		var status string
		if err := rows.Scan(&r.Name, &r.Email, &status); err != nil {
			return nil, err
		}
		r.Status, err = grid.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Count returns the number of stored records
func (db *DB) Count() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n)
	return n, err
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
