package snapshot

import (
	"sort"
	"strings"
	"time"
)

// HasCI reports whether a CI configuration was detected.
func (r *Repository) HasCI() bool { return r.Quality != nil && r.Quality.HasCI }

// HasTests reports whether a test suite was detected.
func (r *Repository) HasTests() bool { return r.Quality != nil && r.Quality.HasTests }

// HasTypeScript reports whether TypeScript sources were detected.
func (r *Repository) HasTypeScript() bool { return r.Quality != nil && r.Quality.HasTypeScript }

// HasLinting reports whether a lint configuration was detected.
func (r *Repository) HasLinting() bool { return r.Quality != nil && r.Quality.HasLinting }

// HasReadmeEvidence treats any README signal as presence: the explicit flag,
// a reported length, or fetched content.
func (r *Repository) HasReadmeEvidence() bool {
	return r.HasReadme || r.ReadmeLength > 0 || strings.TrimSpace(r.Readme) != ""
}

// ReadmeLen returns the larger of the reported README length and the length
// of the fetched content. Fetchers often truncate content, so the reported
// length wins when it is bigger.
func (r *Repository) ReadmeLen() int {
	if n := len(r.Readme); n > r.ReadmeLength {
		return n
	}
	return r.ReadmeLength
}

// HasDescription reports a non-blank description.
func (r *Repository) HasDescription() bool { return strings.TrimSpace(r.Description) != "" }

// HasTopics reports at least one topic tag.
func (r *Repository) HasTopics() bool { return len(r.Topics) > 0 }

// ReadmeContains reports whether the lowercased README contains any needle.
// Needles are expected in lower case.
func (r *Repository) ReadmeContains(needles []string) bool {
	if r.Readme == "" {
		return false
	}
	text := strings.ToLower(r.Readme)
	for _, n := range needles {
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// HasTopic reports whether any topic appears in the given set.
func (r *Repository) HasTopic(set map[string]bool) bool {
	for _, t := range r.Topics {
		if set[strings.ToLower(t)] {
			return true
		}
	}
	return false
}

// Repository returns the repository with the given name.
func (s *Snapshot) Repository(name string) (*Repository, bool) {
	for i := range s.Repositories {
		if s.Repositories[i].Name == name {
			return &s.Repositories[i], true
		}
	}
	return nil, false
}

// TotalStars sums stars across every repository, forks included.
func (s *Snapshot) TotalStars() int {
	total := 0
	for _, r := range s.Repositories {
		total += r.Stars
	}
	return total
}

// AccountAgeYears returns the account age at asOf. An unknown creation date
// yields 0; creation dates after asOf also yield 0.
func (s *Snapshot) AccountAgeYears(asOf time.Time) float64 {
	if s.Profile.CreatedAt.IsZero() || s.Profile.CreatedAt.After(asOf) {
		return 0
	}
	return asOf.Sub(s.Profile.CreatedAt).Hours() / 24 / 365.25
}

// CommitSamples flattens commit timestamps from non-fork repositories.
// Forked repositories are left out so cloned tutorial work earns no activity.
func (s *Snapshot) CommitSamples() []CommitSample {
	var samples []CommitSample
	for _, r := range s.Repositories {
		if r.Fork {
			continue
		}
		for _, at := range r.Commits {
			samples = append(samples, CommitSample{Fork: false, At: at})
		}
	}
	return samples
}

// LanguageCounts returns the language distribution. When the snapshot carries
// none, it is rebuilt from the primary language of non-fork repositories.
func (s *Snapshot) LanguageCounts() map[string]int {
	counts := make(map[string]int)
	for lang, n := range s.Languages {
		if lang != "" && n > 0 {
			counts[lang] = n
		}
	}
	if len(counts) > 0 {
		return counts
	}
	for _, r := range s.Repositories {
		if r.Fork || r.Language == "" {
			continue
		}
		counts[r.Language]++
	}
	return counts
}

// TopLanguages returns up to n languages by repository count, ties broken by
// name so the result is deterministic.
func (s *Snapshot) TopLanguages(n int) []string {
	counts := s.LanguageCounts()
	langs := make([]string, 0, len(counts))
	for lang := range counts {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		if counts[langs[i]] != counts[langs[j]] {
			return counts[langs[i]] > counts[langs[j]]
		}
		return langs[i] < langs[j]
	})
	if n >= 0 && len(langs) > n {
		langs = langs[:n]
	}
	return langs
}
