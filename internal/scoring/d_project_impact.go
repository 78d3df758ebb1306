package scoring

import (
	"fmt"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

// ProjectImpactScorer rates how well selected projects present themselves:
// live demos, a stated motivation and complete documentation.
type ProjectImpactScorer struct{}

func (ProjectImpactScorer) Dimension() Dimension { return DimensionProjectImpact }

func (s ProjectImpactScorer) Evaluate(in *Input) ScoreDimension {
	d := s.Dimension()
	b := in.Calibration.ProjectImpact
	sel := in.Selected
	n := len(sel)

	if n == 0 {
		return result(d, in, 0,
			"No projects to showcase yet. A single polished project with a live demo makes a strong first impression.",
			[]suggest.Suggestion{publishProject(d, int(b.DemoPoints+b.NarrativePoints+b.CompletenessPoints))})
	}

	hosting := lowerAll(b.HostingDomains)
	keywords := lowerAll(b.NarrativeKeywords)

	demo := countRepos(sel, func(r *snapshot.Repository) bool {
		return r.Homepage != "" || r.ReadmeContains(hosting)
	})
	narrative := countRepos(sel, func(r *snapshot.Repository) bool {
		return r.ReadmeContains(keywords)
	})
	complete := countRepos(sel, func(r *snapshot.Repository) bool {
		return r.HasDescription() && r.ReadmeLen() > b.CompleteReadmeChars
	})

	demoPts := b.DemoPoints * ratio(float64(demo), n)
	narrativePts := b.NarrativePoints * ratio(float64(narrative), n)
	completePts := b.CompletenessPoints * ratio(float64(complete), n)

	demoLost := lost(b.DemoPoints, demoPts)
	narrativeLost := lost(b.NarrativePoints, narrativePts)
	completeLost := lost(b.CompletenessPoints, completePts)

	var feedback string
	switch {
	case demoLost == 0 && narrativeLost == 0 && completeLost == 0:
		feedback = "Every showcased project has a live demo, a clear motivation and complete documentation."
	case demoLost >= narrativeLost && demoLost >= completeLost:
		feedback = fmt.Sprintf("%d of %d showcased projects link to a live demo. Reviewers rarely clone code to try it.", demo, n)
	case narrativeLost >= completeLost:
		feedback = "Project READMEs describe what was built but not why. Explain the problem each project solves."
	default:
		feedback = "Several projects lack a description or a substantial README."
	}

	var out []suggest.Suggestion
	if demoLost > 0 {
		sg := newSuggestion(d, suggest.KindAddLiveDemo, suggest.PriorityHigh, demoLost)
		sg.Title = "Deploy a live demo"
		sg.Description = "Host your strongest project on a free tier such as Vercel, Netlify or GitHub Pages and set it as the repository homepage."
		sg.Difficulty = suggest.DifficultyMedium
		sg.TimeEstimate = "1-2 hours"
		out = append(out, sg)
	}
	if narrativeLost > 0 {
		sg := newSuggestion(d, suggest.KindWriteProjectStory, suggest.PriorityMedium, narrativeLost)
		sg.Title = "Tell the story behind each project"
		sg.Description = "Add a short section covering the problem, your motivation and the challenges you solved."
		sg.Difficulty = suggest.DifficultyEasy
		sg.TimeEstimate = "30 minutes per repository"
		out = append(out, sg)
	}
	if completeLost > 0 {
		sg := newSuggestion(d, suggest.KindCompleteProjectDocs, suggest.PriorityMedium, completeLost)
		sg.Title = "Complete project documentation"
		sg.Description = fmt.Sprintf("Give every showcased project a description and a README longer than %d characters with setup and usage steps.", b.CompleteReadmeChars)
		sg.Difficulty = suggest.DifficultyEasy
		sg.TimeEstimate = "1 hour"
		out = append(out, sg)
	}

	return result(d, in, demoPts+narrativePts+completePts, feedback, out)
}
