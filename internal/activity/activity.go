// Package activity reduces raw commit timestamps into recency, frequency and
// streak metrics.
package activity

import (
	"sort"
	"time"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
)

// WindowMonths is the trailing window used for commit frequency.
const WindowMonths = 6

const day = 24 * time.Hour

// Metrics summarizes commit activity at a fixed point in time.
type Metrics struct {
	// LastCommit is the most recent commit timestamp, nil when none exist.
	LastCommit *time.Time `json:"last_commit,omitempty"`

	// CommitFrequency is commits per month over the trailing window.
	CommitFrequency float64 `json:"commit_frequency"`

	// ActiveDays is the number of distinct calendar days with a commit.
	ActiveDays int `json:"active_days"`

	// CurrentStreak counts consecutive active days ending today or yesterday.
	CurrentStreak int `json:"current_streak"`

	// LongestStreak is the longest run of consecutive active days.
	LongestStreak int `json:"longest_streak"`

	// TotalContributions is the number of commits considered.
	TotalContributions int `json:"total_contributions"`
}

// DaysSinceLastCommit returns whole days between the last commit and asOf,
// and false when there is no commit at all.
func (m Metrics) DaysSinceLastCommit(asOf time.Time) (int, bool) {
	if m.LastCommit == nil {
		return 0, false
	}
	d := asOf.Sub(*m.LastCommit)
	if d < 0 {
		return 0, true
	}
	return int(d / day), true
}

// Compute derives Metrics from commit samples. Calendar dates are taken in
// asOf's location so a single asOf drives every day boundary. Samples flagged
// as forks and commits after asOf are ignored.
func Compute(samples []snapshot.CommitSample, asOf time.Time) Metrics {
	var m Metrics
	loc := asOf.Location()
	windowStart := asOf.AddDate(0, -WindowMonths, 0)

	var (
		last     time.Time
		inWindow int
	)
	dates := make(map[time.Time]struct{})

	for _, s := range samples {
		if s.Fork || s.At.IsZero() || s.At.After(asOf) {
			continue
		}
		m.TotalContributions++
		if s.At.After(last) {
			last = s.At
		}
		if !s.At.Before(windowStart) {
			inWindow++
		}
		dates[calendarDay(s.At, loc)] = struct{}{}
	}

	if m.TotalContributions == 0 {
		return m
	}

	m.LastCommit = &last
	m.CommitFrequency = float64(inWindow) / WindowMonths
	m.ActiveDays = len(dates)

	sorted := make([]time.Time, 0, len(dates))
	for d := range dates {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	m.LongestStreak = longestStreak(sorted)
	m.CurrentStreak = currentStreak(sorted, calendarDay(asOf, loc))
	return m
}

// calendarDay maps t to midnight UTC of its calendar date in loc. Using UTC
// for the key keeps consecutive dates exactly 24h apart across DST changes.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, mo, d := t.In(loc).Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func longestStreak(sorted []time.Time) int {
	if len(sorted) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == day {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// currentStreak walks back from the most recent active date. The streak is
// live only when that date is today or yesterday.
func currentStreak(sorted []time.Time, today time.Time) int {
	if len(sorted) == 0 {
		return 0
	}
	latest := sorted[len(sorted)-1]
	if latest.After(today) || today.Sub(latest) > day {
		return 0
	}
	streak := 1
	for i := len(sorted) - 1; i > 0; i-- {
		if sorted[i].Sub(sorted[i-1]) != day {
			break
		}
		streak++
	}
	return streak
}
