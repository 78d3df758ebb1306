package suggest

import "sort"

// DefaultLimit is how many suggestions a portfolio report carries.
const DefaultLimit = 5

// RankSuggestions orders suggestions by priority tier (critical first), then
// by points descending. Priorities outside critical..low rank as low. The
// sort is stable, so suggestions that tie on both keep their emission order.
// The input slice is not modified.
func RankSuggestions(suggestions []Suggestion) []Suggestion {
	sorted := make([]Suggestion, len(suggestions))
	copy(sorted, suggestions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if pi, pj := sorted[i].Priority.rank(), sorted[j].Priority.rank(); pi != pj {
			return pi < pj
		}
		return sorted[i].Points > sorted[j].Points
	})
	return sorted
}

func (p Priority) rank() Priority {
	if p < PriorityCritical || p > PriorityLow {
		return PriorityLow
	}
	return p
}

// Dedupe keeps the first suggestion of each Kind.
func Dedupe(suggestions []Suggestion) []Suggestion {
	seen := make(map[Kind]bool, len(suggestions))
	out := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if seen[s.Kind] {
			continue
		}
		seen[s.Kind] = true
		out = append(out, s)
	}
	return out
}

// Prioritize ranks, deduplicates and caps suggestions. Ranking happens before
// deduplication so the surviving copy of a repeated Kind is its best-ranked
// one. A limit of zero or less returns every unique suggestion.
func Prioritize(suggestions []Suggestion, limit int) []Suggestion {
	ranked := Dedupe(RankSuggestions(suggestions))
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
