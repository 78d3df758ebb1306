package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/devfolio/internal/output"
	"github.com/blackwell-systems/devfolio/internal/scoring"
)

var weightsJSON bool

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the weight table for each profile type",
	Long: `Print the percentage weight of every dimension for the student,
professional and open-source profiles, after config overrides.`,
	RunE: runWeights,
}

func init() {
	weightsCmd.Flags().BoolVar(&weightsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(weightsCmd)
}

func runWeights(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	cal := rt.cfg.Calibration

	if weightsJSON || flagJSON {
		return writeJSON(cmd.OutOrStdout(), cal.Weights)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, output.Section("Dimension Weights", rt.cfg.Output.Width-2))
	fmt.Fprintln(w)

	headers := []string{"Dimension"}
	for _, p := range scoring.ProfileTypes {
		headers = append(headers, string(p))
	}
	tbl := output.NewTable(headers...)
	for _, d := range scoring.Dimensions {
		row := []string{d.Name()}
		for _, p := range scoring.ProfileTypes {
			row = append(row, strconv.Itoa(scoring.ResolveWeights(p, &cal).For(d))+"%")
		}
		tbl.AddRow(row...)
	}
	tbl.Fprint(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleMuted.Render(" calibration "+cal.Version))
	return nil
}
