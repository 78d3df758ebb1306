package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
)

// ErrEmptyLogin is returned when archiving a snapshot without a login.
var ErrEmptyLogin = errors.New("snapshot has no profile login")

// SaveSnapshot archives snap and returns its record. The snapshot must
// already be valid.
func (db *DB) SaveSnapshot(snap *snapshot.Snapshot, importedAt time.Time) (*Record, error) {
	if snap.Profile.Login == "" {
		return nil, ErrEmptyLogin
	}
	payload, err := snapshot.Encode(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	rec := &Record{
		ID:           uuid.NewString(),
		Login:        snap.Profile.Login,
		CapturedAt:   snap.CapturedAt.UTC(),
		ImportedAt:   importedAt.UTC(),
		Repositories: len(snap.Repositories),
		Pinned:       len(snap.Pinned),
		Payload:      payload,
	}

	_, err = db.conn.Exec(
		`INSERT INTO snapshots
		(id, login, captured_at, imported_at, repo_count, pinned_count, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Login, unixNano(rec.CapturedAt), unixNano(rec.ImportedAt),
		rec.Repositories, rec.Pinned, rec.Payload,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting snapshot: %w", err)
	}
	return rec, nil
}

// GetSnapshot returns an archived snapshot by ID, or nil if none exists.
func (db *DB) GetSnapshot(id string) (*Record, error) {
	row := db.conn.QueryRow(
		`SELECT id, login, captured_at, imported_at, repo_count, pinned_count, payload
		FROM snapshots WHERE id = ?`, id)
	return scanRecord(row)
}

// GetLatestSnapshot returns the most recently captured snapshot for login,
// or nil if none exists.
func (db *DB) GetLatestSnapshot(login string) (*Record, error) {
	row := db.conn.QueryRow(
		`SELECT id, login, captured_at, imported_at, repo_count, pinned_count, payload
		FROM snapshots WHERE login = ?
		ORDER BY captured_at DESC, imported_at DESC LIMIT 1`, login)
	return scanRecord(row)
}

// ListSnapshots returns archived snapshots newest first, without payloads.
// An empty login lists every account; a non-positive limit lists everything.
func (db *DB) ListSnapshots(login string, limit int) ([]Record, error) {
	query := `SELECT id, login, captured_at, imported_at, repo_count, pinned_count
		FROM snapshots`
	var args []any
	if login != "" {
		query += " WHERE login = ?"
		args = append(args, login)
	}
	query += " ORDER BY captured_at DESC, imported_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r                  Record
			captured, imported int64
		)
		if err := rows.Scan(&r.ID, &r.Login, &captured, &imported, &r.Repositories, &r.Pinned); err != nil {
			return nil, err
		}
		r.CapturedAt = fromUnixNano(captured)
		r.ImportedAt = fromUnixNano(imported)
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteSnapshot removes an archived snapshot. It reports whether a row was
// deleted.
func (db *DB) DeleteSnapshot(id string) (bool, error) {
	res, err := db.conn.Exec("DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func scanRecord(row *sql.Row) (*Record, error) {
	var (
		r                  Record
		captured, imported int64
	)
	err := row.Scan(&r.ID, &r.Login, &captured, &imported, &r.Repositories, &r.Pinned, &r.Payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.CapturedAt = fromUnixNano(captured)
	r.ImportedAt = fromUnixNano(imported)
	return &r, nil
}

// Zero times are stored as 0 rather than the year-1 nanosecond value, which
// overflows int64.
func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
