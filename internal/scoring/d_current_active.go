package scoring

import (
	"fmt"

	"github.com/blackwell-systems/devfolio/internal/activity"
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

// CurrentActiveScorer rates commit recency and frequency.
type CurrentActiveScorer struct{}

func (CurrentActiveScorer) Dimension() Dimension { return DimensionCurrentActive }

func (s CurrentActiveScorer) Evaluate(in *Input) ScoreDimension {
	d := s.Dimension()
	b := in.Calibration.Activity
	m := in.Activity

	days, hasCommits := m.DaysSinceLastCommit(in.AsOf)
	recency := b.RecencyFallback
	if hasCommits {
		recency = atMost(b.RecencyTiers, float64(days), b.RecencyFallback)
	}
	frequency := atLeast(b.FrequencyTiers, m.CommitFrequency, b.FrequencyFallback)

	staleDays := staleAfter(b.RecencyTiers)
	slowPace := slowBelow(b.FrequencyTiers)

	var feedback string
	switch {
	case !hasCommits:
		feedback = "No commits found in your own repositories."
	case days > staleDays:
		feedback = fmt.Sprintf("Your last commit was %d days ago. Recent activity shows you are still building.", days)
	case m.CommitFrequency < slowPace:
		feedback = fmt.Sprintf("Recently active, but commits average %.1f per month over the last %d months.", m.CommitFrequency, activity.WindowMonths)
	case m.CurrentStreak > 0:
		feedback = fmt.Sprintf("Active now with a %d-day streak and %.1f commits per month.", m.CurrentStreak, m.CommitFrequency)
	default:
		feedback = fmt.Sprintf("Recently active with %.1f commits per month.", m.CommitFrequency)
	}

	var out []suggest.Suggestion
	if pts := topPoints(b.RecencyTiers, b.RecencyFallback) - recency; pts > 0 {
		p := suggest.PriorityMedium
		switch {
		case !hasCommits || days > staleDays:
			p = suggest.PriorityCritical
		case days > staleDays/3:
			p = suggest.PriorityHigh
		}
		sg := newSuggestion(d, suggest.KindCommitRecently, p, pts)
		sg.Title = "Push a recent commit"
		sg.Description = "Pick up a project again, fix a small bug or refresh dependencies so your profile shows current work."
		sg.Difficulty = suggest.DifficultyEasy
		sg.TimeEstimate = "15 minutes"
		out = append(out, sg)
	}
	if pts := topPoints(b.FrequencyTiers, b.FrequencyFallback) - frequency; pts > 0 {
		p := suggest.PriorityLow
		if m.CommitFrequency < slowPace {
			p = suggest.PriorityMedium
		}
		sg := newSuggestion(d, suggest.KindIncreaseCadence, p, pts)
		sg.Title = "Commit more regularly"
		sg.Description = "Small, frequent commits read better than occasional large ones. Aim for a few sessions every week."
		sg.Difficulty = suggest.DifficultyMedium
		sg.TimeEstimate = "ongoing"
		out = append(out, sg)
	}

	return result(d, in, float64(recency+frequency), feedback, out)
}

// staleAfter is the largest recency threshold, past which activity counts as
// stale.
func staleAfter(tiers []Tier) int {
	if len(tiers) == 0 {
		return 0
	}
	return int(tiers[len(tiers)-1].Threshold)
}

// slowBelow is the smallest frequency threshold that still earns a tier.
func slowBelow(tiers []Tier) float64 {
	if len(tiers) == 0 {
		return 0
	}
	return tiers[len(tiers)-1].Threshold
}
