package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// archiveParams are applied by the driver to every pooled connection of a
// file-backed archive.
const archiveParams = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// DB is a handle to the snapshot archive.
type DB struct {
	conn *sql.DB
}

// Open opens the archive at path, creating its directory when needed, and
// brings the schema up to date.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}
	return open(path+archiveParams, 0)
}

// OpenInMemory opens a private in-memory archive.
func OpenInMemory() (*DB, error) {
	// Every connection to :memory: sees its own database.
	return open(":memory:", 1)
}

func open(dsn string, maxConns int) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		conn.SetMaxOpenConns(maxConns)
	}

	db := &DB{conn: conn}
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrating archive: %w", err)
	}
	return db, nil
}

// Close releases the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
