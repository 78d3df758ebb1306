package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/devfolio/internal/scoring"
	"github.com/blackwell-systems/devfolio/internal/snapshot"
	"github.com/blackwell-systems/devfolio/internal/suggest"
)

var (
	suggestLimit    int
	suggestCategory string
	suggestLogin    string
	suggestJSON     bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [snapshot file]",
	Short: "Show prioritized improvement suggestions",
	Long: `Score a snapshot and print only its improvement suggestions, ranked by
priority and then by the points they are worth. Suggestions shared by
several dimensions are listed once.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "Maximum number of suggestions to show (default: scoring.top_n, -1 for all)")
	suggestCmd.Flags().StringVar(&suggestCategory, "category", "", "Only show suggestions from one dimension (e.g. code_quality)")
	suggestCmd.Flags().StringVar(&suggestLogin, "login", "", "Use the latest archived snapshot for this login")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}

	var (
		category    scoring.Dimension
		hasCategory bool
	)
	if suggestCategory != "" {
		if category, hasCategory = scoring.ParseDimension(suggestCategory); !hasCategory {
			return fmt.Errorf("unknown category %q", suggestCategory)
		}
	}

	var snap *snapshot.Snapshot
	switch {
	case len(args) == 1:
		snap, err = snapshot.Load(args[0])
	case suggestLogin != "":
		snap, err = rt.loadArchived(suggestLogin)
	default:
		err = fmt.Errorf("provide a snapshot file or --login")
	}
	if err != nil {
		return err
	}

	limit := suggestLimit
	if limit == 0 {
		limit = rt.cfg.Scoring.TopN
	}

	engine, err := rt.newEngine(limit, false)
	if err != nil {
		return err
	}
	report, err := engine.Score(snap, rt.asOf)
	if err != nil {
		return err
	}

	suggestions := report.Suggestions
	if hasCategory {
		// The report list is deduplicated across dimensions, so a shared Kind
		// may be tagged with another category there.
		dim, _ := report.Dimension(category)
		suggestions = suggest.Prioritize(dim.Suggestions, limit)
	}
	if suggestions == nil {
		suggestions = []suggest.Suggestion{}
	}

	if suggestJSON || flagJSON {
		return writeJSON(cmd.OutOrStdout(), suggestions)
	}
	renderSuggestions(cmd.OutOrStdout(), suggestions, rt.cfg.Output.Width)
	return nil
}
