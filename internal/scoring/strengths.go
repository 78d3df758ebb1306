package scoring

import (
	"github.com/blackwell-systems/devfolio/internal/snapshot"
)

// Badge labels.
const (
	BadgeConsistent = "Consistent committer"
	BadgeStreak     = "On a streak"
	BadgePolyglot   = "Polyglot"
	BadgeFavorite   = "Community favorite"
	BadgeTypeSafe   = "Type-safe codebases"
	BadgeProduction = "Production minded"
)

// deriveStrengths lists high-scoring dimension names in emission order
// followed by activity and repository badges in a fixed order.
func deriveStrengths(dims []ScoreDimension, in *Input) []string {
	t := in.Calibration.Strengths
	strengths := []string{}

	for _, d := range dims {
		if d.Score >= t.DimensionMin {
			strengths = append(strengths, d.Name)
		}
	}

	if t.ConsistentStreak > 0 && in.Activity.LongestStreak >= t.ConsistentStreak {
		strengths = append(strengths, BadgeConsistent)
	}
	if t.LiveStreak > 0 && in.Activity.CurrentStreak >= t.LiveStreak {
		strengths = append(strengths, BadgeStreak)
	}
	if t.PolyglotLanguages > 0 && len(in.Snapshot.LanguageCounts()) >= t.PolyglotLanguages {
		strengths = append(strengths, BadgePolyglot)
	}
	if t.FavoriteStars > 0 && in.Snapshot.TotalStars() >= t.FavoriteStars {
		strengths = append(strengths, BadgeFavorite)
	}
	if countRepos(in.Selected, (*snapshot.Repository).HasTypeScript) > 0 {
		strengths = append(strengths, BadgeTypeSafe)
	}
	if countRepos(in.Selected, (*snapshot.Repository).HasCI) > 0 &&
		countRepos(in.Selected, (*snapshot.Repository).HasTests) > 0 {
		strengths = append(strengths, BadgeProduction)
	}

	return strengths
}
