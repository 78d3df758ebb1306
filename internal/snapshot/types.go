// Package snapshot defines the point-in-time GitHub activity bundle that the
// scoring engine consumes, plus loading, validation and normalization helpers.
package snapshot

import "time"

// MaxPinned is the number of repositories GitHub lets a user pin.
const MaxPinned = 6

// Snapshot is an immutable bundle of a developer's public GitHub activity.
type Snapshot struct {
	// Profile holds account-level data for the user.
	Profile Profile `json:"profile" yaml:"profile"`

	// Repositories is the ordered set of repositories, unique by name.
	Repositories []Repository `json:"repositories" yaml:"repositories"`

	// Pinned lists pinned repository names in curator order.
	Pinned []string `json:"pinned,omitempty" yaml:"pinned,omitempty"`

	// Languages maps a language name to the number of repositories using it.
	Languages map[string]int `json:"languages,omitempty" yaml:"languages,omitempty"`

	// CapturedAt is when the upstream fetcher produced the snapshot.
	CapturedAt time.Time `json:"captured_at,omitzero" yaml:"captured_at,omitempty"`
}

// Profile is the account-level portion of a snapshot.
type Profile struct {
	Login         string    `json:"login" yaml:"login"`
	Name          string    `json:"name,omitempty" yaml:"name,omitempty"`
	Bio           string    `json:"bio,omitempty" yaml:"bio,omitempty"`
	Followers     int       `json:"followers" yaml:"followers"`
	CreatedAt     time.Time `json:"created_at,omitzero" yaml:"created_at,omitempty"`
	TotalIssues   int       `json:"total_issues" yaml:"total_issues"`
	TotalPRs      int       `json:"total_prs" yaml:"total_prs"`
	ContributedTo int       `json:"contributed_to" yaml:"contributed_to"`
}

// Repository summarizes a single repository.
type Repository struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Language    string   `json:"language,omitempty" yaml:"language,omitempty"`
	Topics      []string `json:"topics,omitempty" yaml:"topics,omitempty"`
	Homepage    string   `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Stars       int      `json:"stars" yaml:"stars"`
	Forks       int      `json:"forks" yaml:"forks"`
	OpenIssues  int      `json:"open_issues" yaml:"open_issues"`
	Fork        bool     `json:"fork" yaml:"fork"`
	Size        int      `json:"size" yaml:"size"`

	// UpdatedAt is the last push/update time reported by GitHub.
	UpdatedAt time.Time `json:"updated_at,omitzero" yaml:"updated_at,omitempty"`

	HasReadme    bool   `json:"has_readme" yaml:"has_readme"`
	ReadmeLength int    `json:"readme_length,omitempty" yaml:"readme_length,omitempty"`
	Readme       string `json:"readme,omitempty" yaml:"readme,omitempty"`

	// Quality holds file-tree probe results. Nil means no probe ran, which
	// is read as every flag being false.
	Quality *CodeQuality `json:"quality,omitempty" yaml:"quality,omitempty"`

	// Commits are the sampled commit timestamps for this repository.
	Commits []time.Time `json:"commits,omitempty" yaml:"commits,omitempty"`
}

// CodeQuality holds per-repository file-tree probe results.
type CodeQuality struct {
	HasCI         bool `json:"has_ci" yaml:"has_ci"`
	HasTests      bool `json:"has_tests" yaml:"has_tests"`
	HasTypeScript bool `json:"has_typescript" yaml:"has_typescript"`
	HasLinting    bool `json:"has_linting" yaml:"has_linting"`
}

// CommitSample is one commit timestamp tagged with the fork flag of the
// repository it came from.
type CommitSample struct {
	Fork bool
	At   time.Time
}
