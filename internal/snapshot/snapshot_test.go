package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	repos := []Repository{{Name: "a"}, {Name: "b"}, {Name: "c"}}

	tests := []struct {
		name    string
		snap    Snapshot
		wantErr error
	}{
		{name: "empty snapshot", snap: Snapshot{}},
		{name: "valid pinned subset", snap: Snapshot{Repositories: repos, Pinned: []string{"c", "a"}}},
		{
			name:    "duplicate repository",
			snap:    Snapshot{Repositories: []Repository{{Name: "a"}, {Name: "a"}}},
			wantErr: ErrDuplicateRepository,
		},
		{
			name:    "unknown pinned",
			snap:    Snapshot{Repositories: repos, Pinned: []string{"zzz"}},
			wantErr: ErrUnknownPinned,
		},
		{
			name:    "duplicate pinned",
			snap:    Snapshot{Repositories: repos, Pinned: []string{"a", "a"}},
			wantErr: ErrDuplicatePinned,
		},
		{
			name:    "too many pinned",
			snap:    Snapshot{Repositories: repos, Pinned: []string{"a", "b", "c", "a", "b", "c", "a"}},
			wantErr: ErrTooManyPinned,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.snap.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	data := []byte(`
profile:
  login: octo
  followers: 12
  created_at: 2022-03-01T00:00:00Z
repositories:
  - name: api
    language: Go
    stars: 4
    topics: [gin, docker]
    quality:
      has_ci: true
    commits:
      - 2026-10-14T09:00:00Z
pinned: [api]
languages:
  Go: 1
`)
	snap, err := Decode(data, FormatYAML)
	require.NoError(t, err)
	require.NoError(t, snap.Validate())

	assert.Equal(t, "octo", snap.Profile.Login)
	assert.Equal(t, 12, snap.Profile.Followers)
	require.Len(t, snap.Repositories, 1)
	r := snap.Repositories[0]
	assert.True(t, r.HasCI())
	assert.False(t, r.HasTests())
	assert.Equal(t, []string{"gin", "docker"}, r.Topics)
	require.Len(t, r.Commits, 1)
	assert.Equal(t, 2026, r.Commits[0].Year())
}

func TestLoad_JSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	body := `{"profile":{"login":"octo"},"repositories":[{"name":"x","stars":3}],"pinned":["x"]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.TotalStars())
}

func TestLoad_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	body := `{"repositories":[{"name":"x"}],"pinned":["y"]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownPinned)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.YAML"))
	assert.Equal(t, FormatYAML, FormatFromPath("snap.yml"))
	assert.Equal(t, FormatJSON, FormatFromPath("snap.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("-"))
}

func TestCommitSamples_SkipsForks(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{Repositories: []Repository{
		{Name: "own", Commits: []time.Time{now, now.Add(-time.Hour)}},
		{Name: "tutorial", Fork: true, Commits: []time.Time{now}},
	}}

	samples := snap.CommitSamples()
	assert.Len(t, samples, 2)
	for _, s := range samples {
		assert.False(t, s.Fork)
	}
}

func TestAccountAgeYears(t *testing.T) {
	asOf := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	snap := Snapshot{Profile: Profile{CreatedAt: asOf.AddDate(-2, 0, 0)}}
	assert.InDelta(t, 2.0, snap.AccountAgeYears(asOf), 0.01)

	assert.Equal(t, 0.0, (&Snapshot{}).AccountAgeYears(asOf))

	future := Snapshot{Profile: Profile{CreatedAt: asOf.AddDate(1, 0, 0)}}
	assert.Equal(t, 0.0, future.AccountAgeYears(asOf))
}

func TestLanguageCounts_FallsBackToRepositories(t *testing.T) {
	snap := Snapshot{Repositories: []Repository{
		{Name: "a", Language: "Go"},
		{Name: "b", Language: "Go"},
		{Name: "c", Language: "Rust"},
		{Name: "d", Language: "PHP", Fork: true},
		{Name: "e"},
	}}

	assert.Equal(t, map[string]int{"Go": 2, "Rust": 1}, snap.LanguageCounts())
	assert.Equal(t, []string{"Go", "Rust"}, snap.TopLanguages(3))

	snap.Languages = map[string]int{"Python": 4, "Shell": 0}
	assert.Equal(t, map[string]int{"Python": 4}, snap.LanguageCounts())
}

func TestTopLanguages_DeterministicTies(t *testing.T) {
	snap := Snapshot{Languages: map[string]int{"Zig": 2, "Go": 2, "C": 5, "Rust": 1}}
	assert.Equal(t, []string{"C", "Go", "Zig"}, snap.TopLanguages(3))
}

func TestRepositoryReadmeHelpers(t *testing.T) {
	r := Repository{Readme: "The Problem: deploys were slow", ReadmeLength: 10}
	assert.True(t, r.HasReadmeEvidence())
	assert.Equal(t, len(r.Readme), r.ReadmeLen())
	assert.True(t, r.ReadmeContains([]string{"problem"}))
	assert.False(t, r.ReadmeContains([]string{"vercel.app"}))

	var empty Repository
	assert.False(t, empty.HasReadmeEvidence())
	assert.False(t, empty.HasLinting())
	assert.False(t, empty.ReadmeContains([]string{"anything"}))
}

func TestEncode_OmitsZeroTimes(t *testing.T) {
	data, err := Encode(&Snapshot{
		Profile:      Profile{Login: "octocat"},
		Repositories: []Repository{{Name: "api"}},
	})
	require.NoError(t, err)
	for _, key := range []string{"captured_at", "created_at", "updated_at"} {
		assert.NotContains(t, string(data), key)
	}

	at := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	data, err = Encode(&Snapshot{
		Profile:      Profile{Login: "octocat", CreatedAt: at},
		Repositories: []Repository{{Name: "api", UpdatedAt: at}},
		CapturedAt:   at,
	})
	require.NoError(t, err)
	for _, key := range []string{"captured_at", "created_at", "updated_at"} {
		assert.Contains(t, string(data), key)
	}

	back, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	assert.True(t, back.CapturedAt.Equal(at))
}
