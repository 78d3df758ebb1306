package scoring

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

// TechnicalSkillScorer rates language breadth, use of a modern language and
// framework experience.
type TechnicalSkillScorer struct{}

func (TechnicalSkillScorer) Dimension() Dimension { return DimensionTechnicalSkill }

func (s TechnicalSkillScorer) Evaluate(in *Input) ScoreDimension {
	d := s.Dimension()
	b := in.Calibration.Technical

	langCount := len(in.Snapshot.LanguageCounts())
	langPts := atLeast(b.LanguageTiers, float64(langCount), b.LanguageFallback)

	modern := false
	allow := toSet(b.ModernLanguages)
	for _, l := range in.Snapshot.TopLanguages(b.TopLanguages) {
		if allow[strings.ToLower(l)] {
			modern = true
			break
		}
	}
	modernPts := 0
	if modern {
		modernPts = b.ModernPoints
	}

	frameworks := toSet(b.FrameworkTopics)
	fwRepos := countRepos(in.Selected, func(r *snapshot.Repository) bool { return r.HasTopic(frameworks) })
	fwPts := min(fwRepos*b.FrameworkPointsPerRepo, b.FrameworkCap)

	langLost := topPoints(b.LanguageTiers, b.LanguageFallback) - langPts
	modernLost := b.ModernPoints - modernPts
	fwLost := b.FrameworkCap - fwPts

	var feedback string
	switch {
	case langLost <= 0 && modernLost <= 0 && fwLost <= 0:
		feedback = fmt.Sprintf("Broad range across %d languages with modern tooling and framework experience.", langCount)
	case modernLost > 0 && modernLost >= langLost && modernLost >= fwLost:
		feedback = "None of your most used languages are in high demand right now."
	case langLost >= fwLost:
		feedback = fmt.Sprintf("Your work spans %d %s. More range shows you can pick up new tools.", langCount, plural(langCount, "language", "languages"))
	default:
		feedback = "Few showcased projects are tagged with the frameworks they use."
	}

	var out []suggest.Suggestion
	if langLost > 0 {
		sg := newSuggestion(d, suggest.KindDiversifyLanguages, suggest.PriorityLow, langLost)
		sg.Title = "Build something in another language"
		sg.Description = "A small project in a second or third language shows range beyond your primary stack."
		sg.Difficulty = suggest.DifficultyHard
		sg.TimeEstimate = "2-4 weeks"
		out = append(out, sg)
	}
	if modernLost > 0 {
		sg := newSuggestion(d, suggest.KindAdoptModernLanguage, suggest.PriorityMedium, modernLost)
		sg.Title = "Use a modern, in-demand language"
		sg.Description = "Ship a project in a language such as " + strings.Join(first(b.ModernLanguages, 4), ", ") + "."
		sg.Difficulty = suggest.DifficultyHard
		sg.TimeEstimate = "2-4 weeks"
		out = append(out, sg)
	}
	if fwLost > 0 && len(in.Selected) > 0 {
		sg := newSuggestion(d, suggest.KindTagFrameworks, suggest.PriorityLow, fwLost)
		sg.Title = "Tag the frameworks you use"
		sg.Description = "Add framework topics such as react, django or docker to showcased repositories."
		sg.Difficulty = suggest.DifficultyEasy
		sg.TimeEstimate = "5 minutes"
		out = append(out, sg)
	}
	if len(in.Selected) == 0 {
		out = append(out, publishProject(d, fwLost))
	}

	return result(d, in, float64(langPts+modernPts+fwPts), feedback, out)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func first(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
