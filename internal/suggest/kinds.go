package suggest

import "fmt"

// Kind is the closed set of suggestion identities. Two suggestions with the
// same Kind are the same advice, whichever dimension produced them.
type Kind int

const (
	KindUnknown Kind = iota
	KindPublishProject
	KindAddReadme
	KindAddRepoMetadata
	KindAddLinting
	KindAddLiveDemo
	KindWriteProjectStory
	KindCompleteProjectDocs
	KindCommitRecently
	KindIncreaseCadence
	KindSetUpCI
	KindAddTests
	KindDiversifyLanguages
	KindAdoptModernLanguage
	KindTagFrameworks
	KindInviteIssueFeedback
	KindPromoteProjects
	KindContributeUpstream
	KindGrowNetwork
)

var kindKeys = map[Kind]string{
	KindPublishProject:      "publish-project",
	KindAddReadme:           "add-readme",
	KindAddRepoMetadata:     "add-description-topics",
	KindAddLinting:          "add-linting",
	KindAddLiveDemo:         "add-live-demo",
	KindWriteProjectStory:   "write-project-story",
	KindCompleteProjectDocs: "complete-project-docs",
	KindCommitRecently:      "commit-recently",
	KindIncreaseCadence:     "increase-commit-cadence",
	KindSetUpCI:             "set-up-ci",
	KindAddTests:            "add-tests",
	KindDiversifyLanguages:  "diversify-languages",
	KindAdoptModernLanguage: "adopt-modern-language",
	KindTagFrameworks:       "tag-frameworks",
	KindInviteIssueFeedback: "invite-issue-feedback",
	KindPromoteProjects:     "promote-projects",
	KindContributeUpstream:  "contribute-upstream",
	KindGrowNetwork:         "grow-network",
}

// String returns the stable key for the kind.
func (k Kind) String() string {
	if s, ok := kindKeys[k]; ok {
		return s
	}
	return "unknown"
}

// MarshalText encodes the kind as its stable key.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a stable key.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown suggestion kind %q", text)
	}
	*k = kind
	return nil
}

// ParseKind looks up a kind by its stable key.
func ParseKind(key string) (Kind, bool) {
	for k, s := range kindKeys {
		if s == key {
			return k, true
		}
	}
	return KindUnknown, false
}
