// Package scoring turns a snapshot into a weighted portfolio score: profile
// classification, weight resolution, repository selection, six dimension
// scorers and the composite.
package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/blackwell-systems/devfolio/internal/activity"
	"github.com/blackwell-systems/devfolio/internal/snapshot"
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

// Dimension identifies one of the six scoring axes. The constant order is the
// emission order used throughout a report.
type Dimension int

const (
	DimensionCodeQuality Dimension = iota
	DimensionProjectImpact
	DimensionCurrentActive
	DimensionProductionReadiness
	DimensionTechnicalSkill
	DimensionCommunityTrust
)

// Dimensions lists all dimensions in emission order.
var Dimensions = []Dimension{
	DimensionCodeQuality,
	DimensionProjectImpact,
	DimensionCurrentActive,
	DimensionProductionReadiness,
	DimensionTechnicalSkill,
	DimensionCommunityTrust,
}

var dimensionInfo = map[Dimension]struct {
	key, name, rationale string
}{
	DimensionCodeQuality: {
		"code_quality", "Code Quality",
		"A README, a description and topic tags are the first things a reviewer sees. Lint configuration shows the code is kept to a standard.",
	},
	DimensionProjectImpact: {
		"project_impact", "Project Impact",
		"Reviewers rarely clone a repository. A live demo and a clear story about the problem a project solves show its value in seconds.",
	},
	DimensionCurrentActive: {
		"current_active", "Current & Active",
		"Recent and regular commits show you are still building and keeping your skills current.",
	},
	DimensionProductionReadiness: {
		"production_readiness", "Production Readiness",
		"Continuous integration and automated tests are how teams ship with confidence. They are a bonus, not a requirement.",
	},
	DimensionTechnicalSkill: {
		"technical_skill", "Technical Skill",
		"Working across languages and modern frameworks shows range and the ability to pick up new tools.",
	},
	DimensionCommunityTrust: {
		"community_trust", "Community Trust",
		"Stars, issues, followers and contributions to other projects are signals that other developers find your work useful.",
	},
}

// Key returns the stable machine key, e.g. "code_quality".
func (d Dimension) Key() string {
	if info, ok := dimensionInfo[d]; ok {
		return info.key
	}
	return "unknown"
}

// Name returns the display name, e.g. "Code Quality". Suggestions use it as
// their category.
func (d Dimension) Name() string {
	if info, ok := dimensionInfo[d]; ok {
		return info.name
	}
	return "Unknown"
}

func (d Dimension) String() string { return d.Key() }

// Rationale is the fixed explanation of why the dimension matters.
func (d Dimension) Rationale() string { return dimensionInfo[d].rationale }

// MarshalText encodes the dimension by key.
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.Key()), nil
}

// UnmarshalText decodes a dimension key.
func (d *Dimension) UnmarshalText(text []byte) error {
	for _, dim := range Dimensions {
		if dim.Key() == string(text) {
			*d = dim
			return nil
		}
	}
	return fmt.Errorf("unknown dimension %q", text)
}

// ParseDimension resolves a key or display name.
func ParseDimension(s string) (Dimension, bool) {
	for _, d := range Dimensions {
		if s == d.Key() || s == d.Name() {
			return d, true
		}
	}
	return 0, false
}

// ScoreDimension is the result of one scorer.
type ScoreDimension struct {
	Key         Dimension            `json:"key"`
	Name        string               `json:"name"`
	Score       int                  `json:"score"`
	Weight      int                  `json:"weight"`
	Feedback    string               `json:"feedback"`
	Rationale   string               `json:"rationale"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

// Input is everything a scorer may look at. Scorers treat it as read-only.
type Input struct {
	Snapshot    *snapshot.Snapshot
	Selected    []snapshot.Repository
	Activity    activity.Metrics
	Profile     ProfileType
	AsOf        time.Time
	Weight      int
	Calibration *Calibration
}

// Scorer evaluates one dimension. Implementations must be pure: the same
// Input always yields the same result.
type Scorer interface {
	Dimension() Dimension
	Evaluate(in *Input) ScoreDimension
}

// DefaultScorers returns the six built-in scorers in emission order.
func DefaultScorers() []Scorer {
	return []Scorer{
		CodeQualityScorer{},
		ProjectImpactScorer{},
		CurrentActiveScorer{},
		ProductionReadinessScorer{},
		TechnicalSkillScorer{},
		CommunityTrustScorer{},
	}
}

// result builds the final ScoreDimension, clamping the raw score.
func result(d Dimension, in *Input, raw float64, feedback string, suggestions []suggest.Suggestion) ScoreDimension {
	if suggestions == nil {
		suggestions = []suggest.Suggestion{}
	}
	return ScoreDimension{
		Key:         d,
		Name:        d.Name(),
		Score:       clampScore(raw),
		Weight:      in.Weight,
		Feedback:    feedback,
		Rationale:   d.Rationale(),
		Suggestions: suggestions,
	}
}

func clampScore(raw float64) int {
	if math.IsNaN(raw) || raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return int(math.Round(raw))
}

// ratio divides with a denominator of at least one.
func ratio(count float64, total int) float64 {
	return count / float64(max(total, 1))
}

// lost is the rounded number of points a sub-component left on the table.
func lost(budget, earned float64) int {
	if earned >= budget {
		return 0
	}
	return int(math.Round(budget - earned))
}

func countRepos(repos []snapshot.Repository, pred func(*snapshot.Repository) bool) int {
	n := 0
	for i := range repos {
		if pred(&repos[i]) {
			n++
		}
	}
	return n
}

func namesWhere(repos []snapshot.Repository, pred func(*snapshot.Repository) bool) []string {
	var names []string
	for i := range repos {
		if pred(&repos[i]) {
			names = append(names, repos[i].Name)
		}
	}
	return names
}

func newSuggestion(d Dimension, kind suggest.Kind, p suggest.Priority, points int) suggest.Suggestion {
	return suggest.Suggestion{
		Kind:     kind,
		Category: d.Name(),
		Priority: p,
		Points:   points,
	}
}

// publishProject is emitted by every scorer that depends on selected
// repositories when there are none. The prioritizer collapses the copies.
func publishProject(d Dimension, points int) suggest.Suggestion {
	s := newSuggestion(d, suggest.KindPublishProject, suggest.PriorityCritical, points)
	s.Title = "Publish or pin a project"
	s.Description = "There are no original repositories to showcase. Publish a project you are proud of and pin it to your profile."
	s.Difficulty = suggest.DifficultyMedium
	s.TimeEstimate = "1-2 days"
	return s
}
