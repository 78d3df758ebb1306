package scoring

import "github.com/blackwell-systems/devfolio/internal/snapshot"

// LegendRule raises the composite of widely recognized developers to a
// floor. Zero thresholds never match.
type LegendRule struct {
	MinStars     int `mapstructure:"min_stars" json:"min_stars"`
	MinFollowers int `mapstructure:"min_followers" json:"min_followers"`
	Floor        int `mapstructure:"floor" json:"floor"`
}

// DefaultLegendRule returns the built-in thresholds.
func DefaultLegendRule() LegendRule {
	return LegendRule{MinStars: 10000, MinFollowers: 5000, Floor: 90}
}

// Qualifies reports whether the snapshot meets either threshold.
func (r LegendRule) Qualifies(snap *snapshot.Snapshot) bool {
	if r.MinStars > 0 && snap.TotalStars() >= r.MinStars {
		return true
	}
	return r.MinFollowers > 0 && snap.Profile.Followers >= r.MinFollowers
}

// Apply returns the adjusted composite and whether the rule fired. A
// composite already above the floor is left as is.
func (r LegendRule) Apply(total int, snap *snapshot.Snapshot) (int, bool) {
	if !r.Qualifies(snap) {
		return total, false
	}
	return max(total, clampScore(float64(r.Floor))), true
}
