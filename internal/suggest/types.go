// Package suggest defines improvement suggestions and the prioritizer that
// merges them across scoring dimensions.
package suggest

import "fmt"

// Priority tiers for suggestions. Lower values are more severe.
type Priority int

const (
	PriorityCritical Priority = iota + 1
	PriorityHigh
	PriorityMedium
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// Demote moves a priority one tier toward low.
func (p Priority) Demote() Priority {
	if p >= PriorityLow {
		return PriorityLow
	}
	return p + 1
}

// MarshalText encodes the priority by name.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a priority name.
func (p *Priority) UnmarshalText(text []byte) error {
	switch string(text) {
	case "critical":
		*p = PriorityCritical
	case "high":
		*p = PriorityHigh
	case "medium":
		*p = PriorityMedium
	case "low":
		*p = PriorityLow
	default:
		return fmt.Errorf("unknown priority %q", text)
	}
	return nil
}

// Difficulty estimates the effort needed to act on a suggestion.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Suggestion is an actionable improvement produced by one scoring dimension.
type Suggestion struct {
	// Kind identifies the suggestion across dimensions and drives deduplication.
	Kind Kind `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// Points is the estimated score gain if the suggestion is actioned.
	Points int `json:"points"`

	// Category is the name of the dimension that emitted the suggestion.
	Category string `json:"category"`

	Difficulty   Difficulty `json:"difficulty"`
	TimeEstimate string     `json:"time_estimate"`
	Priority     Priority   `json:"priority"`
}
