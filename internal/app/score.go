package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/devfolio/internal/scoring"
	"github.com/blackwell-systems/devfolio/internal/snapshot"
	"github.com/blackwell-systems/devfolio/internal/store"
)

var (
	scoreLogin  string
	scoreTop    int
	scoreLegend bool
	scoreJobs   int
	scoreJSON   bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [snapshot files...]",
	Short: "Score one or more snapshots",
	Long: `Score reads activity snapshots (JSON or YAML, "-" for stdin) and prints
a portfolio report for each: the composite score, the six dimension scores
with feedback, strengths, representative repositories and the top
improvement suggestions.

With --login and no files, the latest archived snapshot for that account is
scored instead.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreLogin, "login", "", "Score the latest archived snapshot for this login")
	scoreCmd.Flags().IntVar(&scoreTop, "top", 0, "Number of suggestions to keep (default: scoring.top_n)")
	scoreCmd.Flags().BoolVar(&scoreLegend, "legend", false, "Apply the legend floor for widely recognized developers")
	scoreCmd.Flags().IntVar(&scoreJobs, "jobs", 4, "Snapshots scored in parallel")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}

	engine, err := rt.newEngine(scoreTop, scoreLegend)
	if err != nil {
		return err
	}

	var reports []*scoring.PortfolioScore
	if len(args) == 0 {
		if scoreLogin == "" {
			return fmt.Errorf("provide snapshot files or --login")
		}
		snap, err := rt.loadArchived(scoreLogin)
		if err != nil {
			return err
		}
		report, err := engine.Score(snap, rt.asOf)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	} else {
		reports, err = scoreFiles(engine, args, rt, scoreJobs)
		if err != nil {
			return err
		}
	}

	if scoreJSON || flagJSON {
		if len(reports) == 1 {
			return writeJSON(cmd.OutOrStdout(), reports[0])
		}
		return writeJSON(cmd.OutOrStdout(), reports)
	}

	for _, r := range reports {
		renderReport(cmd.OutOrStdout(), r, rt.cfg.Output.Width)
	}
	return nil
}

// scoreFiles loads and scores each path with at most jobs in flight. Reports
// keep the order of paths.
func scoreFiles(engine *scoring.Engine, paths []string, rt *invocation, jobs int) ([]*scoring.PortfolioScore, error) {
	reports := make([]*scoring.PortfolioScore, len(paths))

	var g errgroup.Group
	g.SetLimit(max(jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			snap, err := snapshot.Load(path)
			if err != nil {
				return err
			}
			report, err := engine.Score(snap, rt.asOf)
			if err != nil {
				return fmt.Errorf("scoring %s: %w", path, err)
			}
			rt.logger.Debug("scored snapshot", "path", path, "login", report.Login, "total", report.Total)
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// loadArchived returns the latest archived snapshot for login.
func (rt *invocation) loadArchived(login string) (*snapshot.Snapshot, error) {
	db, err := store.Open(rt.cfg.Archive.Path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer func() { _ = db.Close() }()

	rec, err := db.GetLatestSnapshot(login)
	if err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("no archived snapshot for %q; run 'devfolio import' first", login)
	}
	rt.logger.Debug("loaded archived snapshot", "id", rec.ID, "captured_at", rec.CapturedAt)

	snap, err := rec.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("decoding archived snapshot %s: %w", rec.ID, err)
	}
	return snap, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
