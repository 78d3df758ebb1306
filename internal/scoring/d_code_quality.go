package scoring

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

// CodeQualityScorer rates documentation and hygiene of the selected
// repositories: README presence, description and topic metadata, and lint
// configuration.
type CodeQualityScorer struct{}

func (CodeQualityScorer) Dimension() Dimension { return DimensionCodeQuality }

func (s CodeQualityScorer) Evaluate(in *Input) ScoreDimension {
	d := s.Dimension()
	b := in.Calibration.CodeQuality
	sel := in.Selected
	n := len(sel)

	if n == 0 {
		return result(d, in, 0,
			"No repositories to review yet. Publish or pin a project so its documentation can be assessed.",
			[]suggest.Suggestion{publishProject(d, int(b.ReadmePoints+b.MetadataPoints+b.LintPoints))})
	}

	readme := countRepos(sel, (*snapshot.Repository).HasReadmeEvidence)
	lint := countRepos(sel, (*snapshot.Repository).HasLinting)
	var meta float64
	for i := range sel {
		if sel[i].HasDescription() {
			meta += 0.5
		}
		if sel[i].HasTopics() {
			meta += 0.5
		}
	}

	readmeRatio := ratio(float64(readme), n)
	metaRatio := ratio(meta, n)
	lintRatio := ratio(float64(lint), n)

	readmePts := b.ReadmePoints * readmeRatio
	metaPts := b.MetadataPoints * metaRatio
	lintPts := b.LintPoints * lintRatio

	var feedback string
	switch {
	case readmeRatio < 0.5:
		feedback = fmt.Sprintf("Only %d of %d showcased repositories have a README. Visitors judge a project by its README first.", readme, n)
	case metaRatio < 0.5:
		feedback = "Most showcased repositories are missing a description or topic tags, which makes them hard to discover."
	case lintRatio < 0.5:
		feedback = "Documentation is in good shape. Adding lint configuration would show a consistent code style."
	default:
		feedback = "Showcased repositories are documented, tagged and linted."
	}

	var out []suggest.Suggestion
	if pts := lost(b.ReadmePoints, readmePts); pts > 0 {
		p := suggest.PriorityHigh
		if readmeRatio < 0.5 {
			p = suggest.PriorityCritical
		}
		sg := newSuggestion(d, suggest.KindAddReadme, p, pts)
		sg.Title = "Add a README to every showcased repository"
		sg.Description = "Explain what the project does, how to run it and what it looks like. Missing: " +
			strings.Join(namesWhere(sel, func(r *snapshot.Repository) bool { return !r.HasReadmeEvidence() }), ", ") + "."
		sg.Difficulty = suggest.DifficultyEasy
		sg.TimeEstimate = "30 minutes per repository"
		out = append(out, sg)
	}
	if pts := lost(b.MetadataPoints, metaPts); pts > 0 {
		sg := newSuggestion(d, suggest.KindAddRepoMetadata, suggest.PriorityMedium, pts)
		sg.Title = "Add descriptions and topic tags"
		sg.Description = "A one-line description and a few topics make repositories searchable and easy to scan. Incomplete: " +
			strings.Join(namesWhere(sel, func(r *snapshot.Repository) bool { return !r.HasDescription() || !r.HasTopics() }), ", ") + "."
		sg.Difficulty = suggest.DifficultyEasy
		sg.TimeEstimate = "5 minutes per repository"
		out = append(out, sg)
	}
	if pts := lost(b.LintPoints, lintPts); pts > 0 {
		p := suggest.PriorityLow
		if lintRatio < 0.5 {
			p = suggest.PriorityMedium
		}
		sg := newSuggestion(d, suggest.KindAddLinting, p, pts)
		sg.Title = "Configure a linter"
		sg.Description = "Commit a linter configuration such as ESLint, Ruff or golangci-lint so style is enforced automatically."
		sg.Difficulty = suggest.DifficultyEasy
		sg.TimeEstimate = "1 hour"
		out = append(out, sg)
	}

	return result(d, in, readmePts+metaPts+lintPts, feedback, out)
}
