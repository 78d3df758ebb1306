package scoring

import (
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

// CommunityTrustScorer rates outside engagement. It adds small integer points
// and multiplies at the end.
type CommunityTrustScorer struct{}

func (CommunityTrustScorer) Dimension() Dimension { return DimensionCommunityTrust }

func (s CommunityTrustScorer) Evaluate(in *Input) ScoreDimension {
	d := s.Dimension()
	b := in.Calibration.Community
	snap := in.Snapshot

	issues := 0
	for _, r := range snap.Repositories {
		if r.OpenIssues > 0 {
			issues = b.OpenIssuePoints
			break
		}
	}
	stars := atLeast(b.StarTiers, float64(snap.TotalStars()), 0)
	followers := atLeast(b.FollowerTiers, float64(snap.Profile.Followers), 0)
	upstream := 0
	if snap.Profile.ContributedTo > 0 {
		upstream = b.UpstreamPoints
	}
	prs := 0
	if snap.Profile.TotalPRs >= b.PRMin {
		prs = b.PRPoints
	}

	points := issues + stars + followers + upstream + prs
	mult := b.Multiplier

	var feedback string
	switch {
	case points == 0:
		feedback = "No community signals yet: no open issues, stars, followers or outside contributions."
	case stars < topPoints(b.StarTiers, 0):
		feedback = "Few stars so far. Sharing projects where developers gather helps them get noticed."
	case upstream == 0:
		feedback = "Your own projects get attention, but there are no contributions to other repositories."
	default:
		feedback = "Projects attract issues and stars, and you contribute beyond your own repositories."
	}

	var out []suggest.Suggestion
	if upstream == 0 || prs == 0 {
		pts := (b.UpstreamPoints - upstream + b.PRPoints - prs) * mult
		if pts > 0 {
			sg := newSuggestion(d, suggest.KindContributeUpstream, suggest.PriorityMedium, pts)
			sg.Title = "Contribute to an open-source project"
			sg.Description = "Fix a documentation gap or a good-first-issue in a library you already use."
			sg.Difficulty = suggest.DifficultyMedium
			sg.TimeEstimate = "a weekend"
			out = append(out, sg)
		}
	}
	if pts := (topPoints(b.StarTiers, 0) - stars) * mult; pts > 0 {
		sg := newSuggestion(d, suggest.KindPromoteProjects, suggest.PriorityMedium, pts)
		sg.Title = "Share your projects"
		sg.Description = "Post your best project on forums, newsletters or social media where your audience is."
		sg.Difficulty = suggest.DifficultyMedium
		sg.TimeEstimate = "ongoing"
		out = append(out, sg)
	}
	if issues == 0 && b.OpenIssuePoints > 0 {
		sg := newSuggestion(d, suggest.KindInviteIssueFeedback, suggest.PriorityLow, b.OpenIssuePoints*mult)
		sg.Title = "Invite feedback through issues"
		sg.Description = "Open a few issues for planned features or known bugs so visitors can see where a project is heading."
		sg.Difficulty = suggest.DifficultyEasy
		sg.TimeEstimate = "15 minutes"
		out = append(out, sg)
	}
	if pts := (topPoints(b.FollowerTiers, 0) - followers) * mult; pts > 0 {
		sg := newSuggestion(d, suggest.KindGrowNetwork, suggest.PriorityLow, pts)
		sg.Title = "Grow your network"
		sg.Description = "Follow developers whose work you use and engage with their projects."
		sg.Difficulty = suggest.DifficultyEasy
		sg.TimeEstimate = "ongoing"
		out = append(out, sg)
	}

	return result(d, in, float64(points*mult), feedback, out)
}
