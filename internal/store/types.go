// Package store provides the SQLite archive of imported activity snapshots.
package store

import (
	"time"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
)

// Record is one archived snapshot.
type Record struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	CapturedAt   time.Time `json:"captured_at"`
	ImportedAt   time.Time `json:"imported_at"`
	Repositories int       `json:"repositories"`
	Pinned       int       `json:"pinned"`

	// Payload is the canonical JSON encoding of the snapshot. List queries
	// leave it empty.
	Payload []byte `json:"-"`
}

// Snapshot decodes the archived payload.
func (r *Record) Snapshot() (*snapshot.Snapshot, error) {
	return snapshot.Decode(r.Payload, snapshot.FormatJSON)
}
