package suggest

import (
	"encoding/json"
	"testing"
)

// --- RankSuggestions ---

func TestRankSuggestions_PriorityDominatesPoints(t *testing.T) {
	input := []Suggestion{
		{Kind: KindTagFrameworks, Priority: PriorityLow, Points: 50},
		{Kind: KindAddReadme, Priority: PriorityCritical, Points: 1},
	}
	sorted := RankSuggestions(input)
	if sorted[0].Priority != PriorityCritical {
		t.Errorf("expected critical first, got %s", sorted[0].Priority)
	}
	if sorted[1].Priority != PriorityLow {
		t.Errorf("expected low second, got %s", sorted[1].Priority)
	}
}

func TestRankSuggestions_PointsBreakTies(t *testing.T) {
	input := []Suggestion{
		{Title: "small", Priority: PriorityHigh, Points: 5},
		{Title: "big", Priority: PriorityHigh, Points: 25},
		{Title: "mid", Priority: PriorityHigh, Points: 10},
	}
	sorted := RankSuggestions(input)
	want := []string{"big", "mid", "small"}
	for i, w := range want {
		if sorted[i].Title != w {
			t.Errorf("position %d: expected %q, got %q", i, w, sorted[i].Title)
		}
	}
}

func TestRankSuggestions_StableOnFullTies(t *testing.T) {
	input := []Suggestion{
		{Title: "code-quality", Priority: PriorityMedium, Points: 10},
		{Title: "impact", Priority: PriorityMedium, Points: 10},
		{Title: "activity", Priority: PriorityMedium, Points: 10},
	}
	sorted := RankSuggestions(input)
	for i := range input {
		if sorted[i].Title != input[i].Title {
			t.Errorf("position %d: expected %q, got %q", i, input[i].Title, sorted[i].Title)
		}
	}
}

func TestRankSuggestions_DoesNotMutateInput(t *testing.T) {
	input := []Suggestion{
		{Title: "low", Priority: PriorityLow},
		{Title: "critical", Priority: PriorityCritical},
	}
	_ = RankSuggestions(input)
	if input[0].Title != "low" {
		t.Error("RankSuggestions mutated the input slice")
	}
}

func TestRankSuggestions_EmptySlice(t *testing.T) {
	if got := RankSuggestions(nil); len(got) != 0 {
		t.Fatalf("expected 0 suggestions, got %d", len(got))
	}
}

// --- Prioritize ---

func TestPrioritize_DedupesKeepingBestRanked(t *testing.T) {
	input := []Suggestion{
		{Kind: KindPublishProject, Category: "Code Quality", Priority: PriorityHigh, Points: 50},
		{Kind: KindAddTests, Category: "Production Readiness", Priority: PriorityMedium, Points: 20},
		{Kind: KindPublishProject, Category: "Project Impact", Priority: PriorityCritical, Points: 100},
	}
	got := Prioritize(input, DefaultLimit)
	if len(got) != 2 {
		t.Fatalf("expected 2 unique suggestions, got %d", len(got))
	}
	if got[0].Kind != KindPublishProject || got[0].Category != "Project Impact" {
		t.Errorf("expected the critical publish-project copy first, got %+v", got[0])
	}
	if got[1].Kind != KindAddTests {
		t.Errorf("expected add-tests second, got %s", got[1].Kind)
	}
}

func TestPrioritize_CapsAtLimit(t *testing.T) {
	var input []Suggestion
	for k := KindPublishProject; k <= KindGrowNetwork; k++ {
		input = append(input, Suggestion{Kind: k, Priority: PriorityMedium, Points: int(k)})
	}
	got := Prioritize(input, 5)
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(got))
	}
	if got[0].Kind != KindGrowNetwork {
		t.Errorf("expected highest-points kind first, got %s", got[0].Kind)
	}
}

func TestPrioritize_NonPositiveLimitReturnsAll(t *testing.T) {
	input := []Suggestion{{Kind: KindAddReadme}, {Kind: KindAddLinting}, {Kind: KindAddReadme}}
	if got := Prioritize(input, 0); len(got) != 2 {
		t.Errorf("expected 2 unique suggestions, got %d", len(got))
	}
}

func TestRankSuggestions_UnsetPriorityRanksAsLow(t *testing.T) {
	input := []Suggestion{
		{Title: "unset", Points: 90},
		{Title: "critical", Priority: PriorityCritical, Points: 1},
		{Title: "bogus", Priority: Priority(42), Points: 80},
		{Title: "low", Priority: PriorityLow, Points: 95},
	}
	sorted := RankSuggestions(input)
	want := []string{"critical", "low", "unset", "bogus"}
	for i, title := range want {
		if sorted[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, sorted[i].Title)
		}
	}
}

// --- Priority / Kind ---

func TestPriorityOrdering(t *testing.T) {
	if !(PriorityCritical < PriorityHigh && PriorityHigh < PriorityMedium && PriorityMedium < PriorityLow) {
		t.Error("priority constants are not ordered critical < high < medium < low")
	}
}

func TestPriorityDemote(t *testing.T) {
	tests := []struct {
		in, want Priority
	}{
		{PriorityCritical, PriorityHigh},
		{PriorityHigh, PriorityMedium},
		{PriorityMedium, PriorityLow},
		{PriorityLow, PriorityLow},
	}
	for _, tc := range tests {
		if got := tc.in.Demote(); got != tc.want {
			t.Errorf("%s.Demote() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestKindKeysAreUniqueAndParse(t *testing.T) {
	seen := make(map[string]Kind)
	for k := KindPublishProject; k <= KindGrowNetwork; k++ {
		key := k.String()
		if key == "unknown" {
			t.Errorf("kind %d has no key", k)
			continue
		}
		if prev, dup := seen[key]; dup {
			t.Errorf("key %q shared by kinds %d and %d", key, prev, k)
		}
		seen[key] = k

		parsed, ok := ParseKind(key)
		if !ok || parsed != k {
			t.Errorf("ParseKind(%q) = %d, %v; want %d", key, parsed, ok, k)
		}
	}
}

func TestSuggestionJSON(t *testing.T) {
	in := Suggestion{
		Kind:       KindSetUpCI,
		Title:      "Set up CI",
		Points:     25,
		Category:   "Production Readiness",
		Difficulty: DifficultyMedium,
		Priority:   PriorityHigh,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["id"] != "set-up-ci" {
		t.Errorf("expected id set-up-ci, got %v", raw["id"])
	}
	if raw["priority"] != "high" {
		t.Errorf("expected priority high, got %v", raw["priority"])
	}

	var out Suggestion
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}
