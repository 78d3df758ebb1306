package scoring

import (
	"errors"
	"fmt"
)

// CalibrationVersion identifies the built-in threshold set. Bump it whenever
// a default below changes so archived reports can be told apart.
const CalibrationVersion = "2026.10"

// Calibration holds every tier boundary and point budget used by the
// classifier and the dimension scorers. Scorer code reads thresholds only
// from here.
type Calibration struct {
	Version     string               `mapstructure:"version" json:"version"`
	MaxSelected int                  `mapstructure:"max_selected" json:"max_selected"`
	Classifier  ClassifierThresholds `mapstructure:"classifier" json:"classifier"`
	Weights     ProfileWeights       `mapstructure:"weights" json:"weights"`

	CodeQuality   CodeQualityBudget   `mapstructure:"code_quality" json:"code_quality"`
	ProjectImpact ProjectImpactBudget `mapstructure:"project_impact" json:"project_impact"`
	Activity      ActivityBudget      `mapstructure:"activity" json:"activity"`
	Production    ProductionBudget    `mapstructure:"production" json:"production"`
	Technical     TechnicalBudget     `mapstructure:"technical" json:"technical"`
	Community     CommunityBudget     `mapstructure:"community" json:"community"`
	Strengths     StrengthThresholds  `mapstructure:"strengths" json:"strengths"`
}

// Tier awards Points once a value crosses Threshold. Whether "crosses" means
// at-most or at-least depends on the table using it.
type Tier struct {
	Threshold float64 `mapstructure:"threshold" json:"threshold"`
	Points    int     `mapstructure:"points" json:"points"`
}

// ClassifierThresholds drive profile classification.
type ClassifierThresholds struct {
	StudentMaxAgeYears     float64 `mapstructure:"student_max_age_years" json:"student_max_age_years"`
	StudentMaxRepos        int     `mapstructure:"student_max_repos" json:"student_max_repos"`
	StudentMaxStars        int     `mapstructure:"student_max_stars" json:"student_max_stars"`
	OpenSourceMinStars     int     `mapstructure:"open_source_min_stars" json:"open_source_min_stars"`
	OpenSourceMinFollowers int     `mapstructure:"open_source_min_followers" json:"open_source_min_followers"`
}

// CodeQualityBudget splits the Code Quality points.
type CodeQualityBudget struct {
	ReadmePoints   float64 `mapstructure:"readme_points" json:"readme_points"`
	MetadataPoints float64 `mapstructure:"metadata_points" json:"metadata_points"`
	LintPoints     float64 `mapstructure:"lint_points" json:"lint_points"`
}

// ProjectImpactBudget splits the Project Impact points and lists the text
// signals it searches READMEs for.
type ProjectImpactBudget struct {
	DemoPoints          float64  `mapstructure:"demo_points" json:"demo_points"`
	NarrativePoints     float64  `mapstructure:"narrative_points" json:"narrative_points"`
	CompletenessPoints  float64  `mapstructure:"completeness_points" json:"completeness_points"`
	CompleteReadmeChars int      `mapstructure:"complete_readme_chars" json:"complete_readme_chars"`
	HostingDomains      []string `mapstructure:"hosting_domains" json:"hosting_domains"`
	NarrativeKeywords   []string `mapstructure:"narrative_keywords" json:"narrative_keywords"`
}

// ActivityBudget holds the recency (days, at most) and frequency
// (commits per month, at least) tiers.
type ActivityBudget struct {
	RecencyTiers      []Tier `mapstructure:"recency_tiers" json:"recency_tiers"`
	RecencyFallback   int    `mapstructure:"recency_fallback" json:"recency_fallback"`
	FrequencyTiers    []Tier `mapstructure:"frequency_tiers" json:"frequency_tiers"`
	FrequencyFallback int    `mapstructure:"frequency_fallback" json:"frequency_fallback"`
}

// ProductionBudget holds the neutral base and the CI/test bonuses.
type ProductionBudget struct {
	Base       int `mapstructure:"base" json:"base"`
	CIPoints   int `mapstructure:"ci_points" json:"ci_points"`
	TestPoints int `mapstructure:"test_points" json:"test_points"`
}

// TechnicalBudget holds language tiers, the modern language allowlist and the
// framework topic set.
type TechnicalBudget struct {
	LanguageTiers          []Tier   `mapstructure:"language_tiers" json:"language_tiers"`
	LanguageFallback       int      `mapstructure:"language_fallback" json:"language_fallback"`
	TopLanguages           int      `mapstructure:"top_languages" json:"top_languages"`
	ModernPoints           int      `mapstructure:"modern_points" json:"modern_points"`
	ModernLanguages        []string `mapstructure:"modern_languages" json:"modern_languages"`
	FrameworkPointsPerRepo int      `mapstructure:"framework_points_per_repo" json:"framework_points_per_repo"`
	FrameworkCap           int      `mapstructure:"framework_cap" json:"framework_cap"`
	FrameworkTopics        []string `mapstructure:"framework_topics" json:"framework_topics"`
}

// CommunityBudget uses small integer points that are multiplied at the end.
// The star and follower tiers are at-least tables.
type CommunityBudget struct {
	OpenIssuePoints int    `mapstructure:"open_issue_points" json:"open_issue_points"`
	StarTiers       []Tier `mapstructure:"star_tiers" json:"star_tiers"`
	FollowerTiers   []Tier `mapstructure:"follower_tiers" json:"follower_tiers"`
	UpstreamPoints  int    `mapstructure:"upstream_points" json:"upstream_points"`
	PRPoints        int    `mapstructure:"pr_points" json:"pr_points"`
	PRMin           int    `mapstructure:"pr_min" json:"pr_min"`
	Multiplier      int    `mapstructure:"multiplier" json:"multiplier"`
}

// StrengthThresholds control the strength labels and badges.
type StrengthThresholds struct {
	DimensionMin      int `mapstructure:"dimension_min" json:"dimension_min"`
	ConsistentStreak  int `mapstructure:"consistent_streak" json:"consistent_streak"`
	LiveStreak        int `mapstructure:"live_streak" json:"live_streak"`
	PolyglotLanguages int `mapstructure:"polyglot_languages" json:"polyglot_languages"`
	FavoriteStars     int `mapstructure:"favorite_stars" json:"favorite_stars"`
}

// DefaultCalibration returns the built-in calibration.
func DefaultCalibration() Calibration {
	return Calibration{
		Version:     CalibrationVersion,
		MaxSelected: 6,
		Classifier: ClassifierThresholds{
			StudentMaxAgeYears:     3,
			StudentMaxRepos:        20,
			StudentMaxStars:        200,
			OpenSourceMinStars:     500,
			OpenSourceMinFollowers: 100,
		},
		Weights: DefaultWeights(),
		CodeQuality: CodeQualityBudget{
			ReadmePoints:   50,
			MetadataPoints: 30,
			LintPoints:     20,
		},
		ProjectImpact: ProjectImpactBudget{
			DemoPoints:          35,
			NarrativePoints:     35,
			CompletenessPoints:  30,
			CompleteReadmeChars: 200,
			HostingDomains: []string{
				"vercel.app", "netlify.app", "github.io", "herokuapp.com",
				"onrender.com", "railway.app", "fly.dev", "pages.dev",
				"surge.sh", "glitch.me", "streamlit.app", "huggingface.co/spaces",
			},
			NarrativeKeywords: []string{
				"problem", "motivation", "why i built", "why this", "the goal",
				"purpose", "solves", "challenge", "inspired", "use case",
			},
		},
		Activity: ActivityBudget{
			RecencyTiers:      []Tier{{Threshold: 7, Points: 50}, {Threshold: 30, Points: 40}, {Threshold: 90, Points: 25}},
			RecencyFallback:   10,
			FrequencyTiers:    []Tier{{Threshold: 20, Points: 50}, {Threshold: 10, Points: 35}, {Threshold: 5, Points: 20}},
			FrequencyFallback: 5,
		},
		Production: ProductionBudget{
			Base:       50,
			CIPoints:   25,
			TestPoints: 20,
		},
		Technical: TechnicalBudget{
			LanguageTiers:    []Tier{{Threshold: 5, Points: 40}, {Threshold: 3, Points: 30}, {Threshold: 2, Points: 20}},
			LanguageFallback: 10,
			TopLanguages:     3,
			ModernPoints:     30,
			ModernLanguages: []string{
				"TypeScript", "Rust", "Go", "Kotlin", "Swift", "Python",
				"Dart", "Elixir", "Zig", "Scala",
			},
			FrameworkPointsPerRepo: 10,
			FrameworkCap:           30,
			FrameworkTopics: []string{
				"react", "nextjs", "vue", "nuxt", "svelte", "angular", "django",
				"flask", "fastapi", "express", "nestjs", "spring-boot", "rails",
				"laravel", "tailwindcss", "pytorch", "tensorflow", "docker",
				"kubernetes", "graphql", "gin", "fiber", "flutter", "react-native",
				"nodejs", "dotnet",
			},
		},
		Community: CommunityBudget{
			OpenIssuePoints: 3,
			StarTiers:       []Tier{{Threshold: 200, Points: 2}, {Threshold: 50, Points: 1}},
			FollowerTiers:   []Tier{{Threshold: 50, Points: 2}, {Threshold: 10, Points: 1}},
			UpstreamPoints:  2,
			PRPoints:        1,
			PRMin:           5,
			Multiplier:      10,
		},
		Strengths: StrengthThresholds{
			DimensionMin:      70,
			ConsistentStreak:  7,
			LiveStreak:        3,
			PolyglotLanguages: 5,
			FavoriteStars:     200,
		},
	}
}

// Validate rejects calibrations that would break scoring invariants.
func (c *Calibration) Validate() error {
	var errs []error

	if c.MaxSelected <= 0 {
		errs = append(errs, fmt.Errorf("max_selected must be positive, got %d", c.MaxSelected))
	}
	// Keeps the student and open-source branches mutually exclusive: a
	// student always has fewer stars than the open-source floor.
	if c.Classifier.StudentMaxStars > c.Classifier.OpenSourceMinStars {
		errs = append(errs, fmt.Errorf("classifier: student_max_stars (%d) exceeds open_source_min_stars (%d)",
			c.Classifier.StudentMaxStars, c.Classifier.OpenSourceMinStars))
	}
	for _, p := range ProfileTypes {
		if sum := c.Weights.For(p).Sum(); sum != 100 {
			errs = append(errs, fmt.Errorf("weights.%s sum to %d, want 100", p.configKey(), sum))
		}
	}
	if c.Community.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("community.multiplier must be positive, got %d", c.Community.Multiplier))
	}
	if !ascending(c.Activity.RecencyTiers) {
		errs = append(errs, errors.New("activity.recency_tiers must have ascending thresholds"))
	}
	for _, t := range []struct {
		name  string
		tiers []Tier
	}{
		{"activity.frequency_tiers", c.Activity.FrequencyTiers},
		{"technical.language_tiers", c.Technical.LanguageTiers},
		{"community.star_tiers", c.Community.StarTiers},
		{"community.follower_tiers", c.Community.FollowerTiers},
	} {
		if !descending(t.tiers) {
			errs = append(errs, fmt.Errorf("%s must have descending thresholds", t.name))
		}
	}

	return errors.Join(errs...)
}

// atMost returns the points of the first tier whose threshold is >= v.
// Tiers must be sorted by ascending threshold.
func atMost(tiers []Tier, v float64, fallback int) int {
	for _, t := range tiers {
		if v <= t.Threshold {
			return t.Points
		}
	}
	return fallback
}

// atLeast returns the points of the first tier whose threshold is <= v.
// Tiers must be sorted by descending threshold.
func atLeast(tiers []Tier, v float64, fallback int) int {
	for _, t := range tiers {
		if v >= t.Threshold {
			return t.Points
		}
	}
	return fallback
}

// topPoints is the best award a tier table can give.
func topPoints(tiers []Tier, fallback int) int {
	best := fallback
	for _, t := range tiers {
		if t.Points > best {
			best = t.Points
		}
	}
	return best
}

func ascending(tiers []Tier) bool {
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Threshold <= tiers[i-1].Threshold {
			return false
		}
	}
	return true
}

func descending(tiers []Tier) bool {
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Threshold >= tiers[i-1].Threshold {
			return false
		}
	}
	return true
}
