package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
)

var imported = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func openTest(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sample(login string, captured time.Time) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Profile: snapshot.Profile{Login: login, Followers: 12},
		Repositories: []snapshot.Repository{
			{Name: "api", Stars: 3, Topics: []string{"go"}},
			{Name: "site", Homepage: "https://example.github.io"},
		},
		Pinned:     []string{"site"},
		CapturedAt: captured,
	}
}

func TestMigrate_SetsSchemaVersion(t *testing.T) {
	db := openTest(t)
	v, err := db.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, v)

	// Migrating again is a no-op.
	require.NoError(t, db.Migrate())
}

func TestSaveAndGetSnapshot(t *testing.T) {
	db := openTest(t)
	snap := sample("octocat", imported.Add(-time.Hour))

	rec, err := db.SaveSnapshot(snap, imported)
	require.NoError(t, err)
	_, err = uuid.Parse(rec.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, rec.Repositories)
	assert.Equal(t, 1, rec.Pinned)

	got, err := db.GetSnapshot(rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "octocat", got.Login)
	assert.True(t, got.CapturedAt.Equal(snap.CapturedAt))
	assert.True(t, got.ImportedAt.Equal(imported))

	decoded, err := got.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, snap.Profile, decoded.Profile)
	assert.Equal(t, snap.Pinned, decoded.Pinned)
	assert.Equal(t, snap.Repositories[1].Homepage, decoded.Repositories[1].Homepage)
}

func TestGetSnapshot_Missing(t *testing.T) {
	db := openTest(t)
	got, err := db.GetSnapshot("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveSnapshot_RequiresLogin(t *testing.T) {
	db := openTest(t)
	_, err := db.SaveSnapshot(&snapshot.Snapshot{}, imported)
	assert.ErrorIs(t, err, ErrEmptyLogin)
}

func TestGetLatestSnapshot_ByCaptureTime(t *testing.T) {
	db := openTest(t)
	older, err := db.SaveSnapshot(sample("octocat", imported.AddDate(0, 0, -7)), imported)
	require.NoError(t, err)
	newer, err := db.SaveSnapshot(sample("octocat", imported.AddDate(0, 0, -1)), imported.AddDate(0, 0, -2))
	require.NoError(t, err)
	_, err = db.SaveSnapshot(sample("someone-else", imported), imported)
	require.NoError(t, err)

	got, err := db.GetLatestSnapshot("octocat")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, newer.ID, got.ID)
	assert.NotEqual(t, older.ID, got.ID)

	none, err := db.GetLatestSnapshot("nobody")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestListSnapshots(t *testing.T) {
	db := openTest(t)
	for i := 0; i < 3; i++ {
		_, err := db.SaveSnapshot(sample("octocat", imported.AddDate(0, 0, -i)), imported)
		require.NoError(t, err)
	}
	_, err := db.SaveSnapshot(sample("hubot", time.Time{}), imported)
	require.NoError(t, err)

	all, err := db.ListSnapshots("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	mine, err := db.ListSnapshots("octocat", 2)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].CapturedAt.After(mine[1].CapturedAt))
	assert.Empty(t, mine[0].Payload)

	hubot, err := db.ListSnapshots("hubot", 0)
	require.NoError(t, err)
	require.Len(t, hubot, 1)
	assert.True(t, hubot[0].CapturedAt.IsZero())
}

func TestDeleteSnapshot(t *testing.T) {
	db := openTest(t)
	rec, err := db.SaveSnapshot(sample("octocat", imported), imported)
	require.NoError(t, err)

	ok, err := db.DeleteSnapshot(rec.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = db.DeleteSnapshot(rec.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "devfolio.db")
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.SaveSnapshot(sample("octocat", imported), imported)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestOpen_AppliesArchivePragmas(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "devfolio.db"))
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.conn.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var timeout int
	require.NoError(t, db.conn.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestOpen_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := Open(filepath.Join(blocker, "devfolio.db"))
	assert.ErrorContains(t, err, "creating archive directory")
}
