package scoring

import (
	"time"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
)

// ProfileType is the coarse archetype that selects scoring weights.
type ProfileType string

const (
	ProfileStudent      ProfileType = "student"
	ProfileProfessional ProfileType = "professional"
	ProfileOpenSource   ProfileType = "open-source"
)

// ProfileTypes lists every archetype in display order.
var ProfileTypes = []ProfileType{ProfileStudent, ProfileProfessional, ProfileOpenSource}

// Valid reports whether p is one of the enumerated archetypes.
func (p ProfileType) Valid() bool {
	switch p {
	case ProfileStudent, ProfileProfessional, ProfileOpenSource:
		return true
	}
	return false
}

func (p ProfileType) configKey() string {
	if p == ProfileOpenSource {
		return "open_source"
	}
	return string(p)
}

// ProfileInput is the normalized data the classifier looks at.
type ProfileInput struct {
	AccountAgeYears float64
	Repositories    int
	Stars           int
	Followers       int
}

// ProfileInputFrom extracts classifier input from a snapshot. Repository count
// includes forks.
func ProfileInputFrom(snap *snapshot.Snapshot, asOf time.Time) ProfileInput {
	return ProfileInput{
		AccountAgeYears: snap.AccountAgeYears(asOf),
		Repositories:    len(snap.Repositories),
		Stars:           snap.TotalStars(),
		Followers:       snap.Profile.Followers,
	}
}

// Classify assigns a profile archetype. The first matching rule wins:
// young, small, low-star accounts are students; otherwise high stars or
// followers mean open-source; everything else is professional.
func Classify(in ProfileInput, t ClassifierThresholds) ProfileType {
	if in.AccountAgeYears < t.StudentMaxAgeYears &&
		in.Repositories <= t.StudentMaxRepos &&
		in.Stars < t.StudentMaxStars {
		return ProfileStudent
	}
	if in.Stars > t.OpenSourceMinStars || in.Followers > t.OpenSourceMinFollowers {
		return ProfileOpenSource
	}
	return ProfileProfessional
}
