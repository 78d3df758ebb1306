package scoring

import (
	"github.com/blackwell-systems/devfolio/internal/snapshot"
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

// ProductionReadinessScorer rates CI and automated tests. It starts from a
// neutral base so missing signals are a bonus opportunity rather than a
// penalty.
type ProductionReadinessScorer struct{}

func (ProductionReadinessScorer) Dimension() Dimension { return DimensionProductionReadiness }

func (s ProductionReadinessScorer) Evaluate(in *Input) ScoreDimension {
	d := s.Dimension()
	b := in.Calibration.Production
	sel := in.Selected

	if len(sel) == 0 {
		return result(d, in, float64(b.Base),
			"No repositories to check for CI or tests yet.",
			[]suggest.Suggestion{publishProject(d, b.CIPoints+b.TestPoints)})
	}

	hasCI := countRepos(sel, (*snapshot.Repository).HasCI) > 0
	hasTests := countRepos(sel, (*snapshot.Repository).HasTests) > 0

	raw := b.Base
	if hasCI {
		raw += b.CIPoints
	}
	if hasTests {
		raw += b.TestPoints
	}

	var feedback string
	switch {
	case !hasCI && !hasTests:
		feedback = "No CI or automated tests detected. They are not required, but they set a project apart."
	case !hasCI:
		feedback = "Tests detected, but no CI pipeline runs them."
	case !hasTests:
		feedback = "CI is configured, but no test suite was detected."
	default:
		feedback = "CI and automated tests detected."
	}

	// Students are not expected to run production pipelines yet.
	prio := func(p suggest.Priority) suggest.Priority {
		if in.Profile == ProfileStudent {
			return p.Demote()
		}
		return p
	}

	var out []suggest.Suggestion
	if !hasCI && b.CIPoints > 0 {
		sg := newSuggestion(d, suggest.KindSetUpCI, prio(suggest.PriorityHigh), b.CIPoints)
		sg.Title = "Set up continuous integration"
		sg.Description = "Add a GitHub Actions workflow that builds the project and runs its checks on every push."
		sg.Difficulty = suggest.DifficultyMedium
		sg.TimeEstimate = "1 hour"
		out = append(out, sg)
	}
	if !hasTests && b.TestPoints > 0 {
		sg := newSuggestion(d, suggest.KindAddTests, prio(suggest.PriorityHigh), b.TestPoints)
		sg.Title = "Add automated tests"
		sg.Description = "Cover the core logic of your main project with a handful of unit tests."
		sg.Difficulty = suggest.DifficultyMedium
		sg.TimeEstimate = "2-4 hours"
		out = append(out, sg)
	}

	return result(d, in, float64(raw), feedback, out)
}
