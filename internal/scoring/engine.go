package scoring

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/devfolio/internal/activity"
	"github.com/blackwell-systems/devfolio/internal/snapshot"
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

// ErrNilSnapshot is returned when Score is called without a snapshot.
var ErrNilSnapshot = errors.New("scoring: nil snapshot")

// PortfolioScore is the complete result of one scoring run.
type PortfolioScore struct {
	Login              string               `json:"login"`
	AsOf               time.Time            `json:"as_of"`
	Total              int                  `json:"total"`
	ProfileType        ProfileType          `json:"profile_type"`
	Dimensions         []ScoreDimension     `json:"dimensions"`
	Representative     []RepositoryView     `json:"representative"`
	Strengths          []string             `json:"strengths"`
	Suggestions        []suggest.Suggestion `json:"suggestions"`
	Activity           activity.Metrics     `json:"activity"`
	CalibrationVersion string               `json:"calibration_version"`
	Legend             bool                 `json:"legend,omitempty"`
}

// Dimension returns the scored dimension d, if present.
func (p *PortfolioScore) Dimension(d Dimension) (ScoreDimension, bool) {
	for _, sd := range p.Dimensions {
		if sd.Key == d {
			return sd, true
		}
	}
	return ScoreDimension{}, false
}

// RepositoryView is the summary of a selected repository shown in reports.
type RepositoryView struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	Homepage    string    `json:"homepage,omitempty"`
	Topics      []string  `json:"topics,omitempty"`
	Pinned      bool      `json:"pinned"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// Engine runs the scoring pipeline. It is safe for concurrent use once
// constructed.
type Engine struct {
	scorers []Scorer
	cal     Calibration
	limit   int
	legend  *LegendRule
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCalibration replaces the built-in calibration.
func WithCalibration(c Calibration) Option {
	return func(e *Engine) { e.cal = c }
}

// WithSuggestionLimit sets how many prioritized suggestions a report keeps.
// Non-positive values keep all of them.
func WithSuggestionLimit(n int) Option {
	return func(e *Engine) { e.limit = n }
}

// WithLegend enables the legend override.
func WithLegend(r LegendRule) Option {
	return func(e *Engine) { e.legend = &r }
}

// WithLogger sets the debug logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithScorers replaces the built-in scorers.
func WithScorers(s ...Scorer) Option {
	return func(e *Engine) { e.scorers = s }
}

// NewEngine builds an engine and validates its calibration.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		scorers: DefaultScorers(),
		cal:     DefaultCalibration(),
		limit:   suggest.DefaultLimit,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.cal.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calibration: %w", err)
	}
	return e, nil
}

// Calibration returns the engine's calibration.
func (e *Engine) Calibration() Calibration { return e.cal }

// Score evaluates snap as of asOf. The same snapshot and asOf always produce
// the same report.
func (e *Engine) Score(snap *snapshot.Snapshot, asOf time.Time) (*PortfolioScore, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	log := e.logger.With("login", snap.Profile.Login)

	profile := Classify(ProfileInputFrom(snap, asOf), e.cal.Classifier)
	weights := ResolveWeights(profile, &e.cal)
	log.Debug("classified profile", "profile", profile, "weights", weights)

	base := Input{
		Snapshot:    snap,
		Selected:    SelectRepositories(snap.Repositories, snap.Pinned, e.cal.MaxSelected),
		Activity:    activity.Compute(snap.CommitSamples(), asOf),
		Profile:     profile,
		AsOf:        asOf,
		Calibration: &e.cal,
	}
	log.Debug("selected repositories", "count", len(base.Selected))

	dims := make([]ScoreDimension, len(e.scorers))
	var g errgroup.Group
	for i, s := range e.scorers {
		g.Go(func() error {
			in := base
			in.Weight = weights.For(s.Dimension())
			dims[i] = s.Evaluate(&in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := Composite(dims)
	legend := false
	if e.legend != nil {
		total, legend = e.legend.Apply(total, snap)
	}
	log.Debug("composite", "total", total, "legend", legend)

	var all []suggest.Suggestion
	for _, d := range dims {
		all = append(all, d.Suggestions...)
	}
	top := suggest.Prioritize(all, e.limit)
	if top == nil {
		top = []suggest.Suggestion{}
	}

	return &PortfolioScore{
		Login:              snap.Profile.Login,
		AsOf:               asOf,
		Total:              total,
		ProfileType:        profile,
		Dimensions:         dims,
		Representative:     views(base.Selected, snap.Pinned),
		Strengths:          deriveStrengths(dims, &base),
		Suggestions:        top,
		Activity:           base.Activity,
		CalibrationVersion: e.cal.Version,
		Legend:             legend,
	}, nil
}

func views(repos []snapshot.Repository, pinned []string) []RepositoryView {
	isPinned := make(map[string]bool, len(pinned))
	for _, p := range pinned {
		isPinned[p] = true
	}
	out := make([]RepositoryView, 0, len(repos))
	for _, r := range repos {
		out = append(out, RepositoryView{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
			Forks:       r.Forks,
			Homepage:    r.Homepage,
			Topics:      r.Topics,
			Pinned:      isPinned[r.Name],
			UpdatedAt:   r.UpdatedAt,
		})
	}
	return out
}
