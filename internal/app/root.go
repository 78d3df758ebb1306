// Package app contains the Cobra command tree for devfolio.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/devfolio/internal/config"
	"github.com/blackwell-systems/devfolio/internal/output"
	"github.com/blackwell-systems/devfolio/internal/scoring"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
	flagAsOf    string
)

var rootCmd = &cobra.Command{
	Use:   "devfolio",
	Short: "Score a developer's public GitHub portfolio",
	Long: `devfolio scores a snapshot of a developer's public GitHub activity
across six weighted dimensions, adapts the weights to the kind of developer
it describes, and produces a prioritized list of improvements.

Snapshots are JSON or YAML files produced by an upstream fetcher. They can
be scored directly or imported into a local archive first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "devfolio", appVersion)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Use a subcommand:")
		fmt.Fprintln(w, "  score       Score one or more snapshots")
		fmt.Fprintln(w, "  suggest     Show prioritized improvement suggestions")
		fmt.Fprintln(w, "  import      Validate and archive snapshots")
		fmt.Fprintln(w, "  snapshots   List archived snapshots")
		fmt.Fprintln(w, "  weights     Show the weight table for each profile type")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/devfolio/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Score as of this time (RFC 3339 or YYYY-MM-DD, default: now)")
}

// invocation is the state shared by subcommands for one run.
type invocation struct {
	cfg    *config.Config
	logger *slog.Logger
	asOf   time.Time
}

// setup loads config, configures color and logging, and fixes the
// evaluation time once for the whole invocation.
func setup(cmd *cobra.Command) (*invocation, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	} else {
		output.AutoColor()
	}

	asOf, err := parseAsOf(flagAsOf, time.Now)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), flagVerbose)
	logger.Debug("configuration loaded",
		"config", flagConfig,
		"calibration", cfg.Calibration.Version,
		"as_of", asOf.Format(time.RFC3339))

	return &invocation{cfg: cfg, logger: logger, asOf: asOf}, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseAsOf accepts RFC 3339 timestamps or plain dates (midnight UTC).
func parseAsOf(value string, now func() time.Time) (time.Time, error) {
	if value == "" {
		return now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid --as-of %q: want RFC 3339 or YYYY-MM-DD", value)
}

// newEngine builds a scoring engine from config. A topN of zero uses the
// configured default; a negative topN keeps every suggestion.
func (rt *invocation) newEngine(topN int, legend bool) (*scoring.Engine, error) {
	if topN == 0 {
		topN = rt.cfg.Scoring.TopN
	}
	opts := []scoring.Option{
		scoring.WithCalibration(rt.cfg.Calibration),
		scoring.WithSuggestionLimit(topN),
		scoring.WithLogger(rt.logger),
	}
	if legend || rt.cfg.Scoring.Legend.Enabled {
		opts = append(opts, scoring.WithLegend(rt.cfg.Scoring.Legend.Rule()))
	}
	return scoring.NewEngine(opts...)
}
