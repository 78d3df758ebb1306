package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/devfolio/internal/output"
	"github.com/blackwell-systems/devfolio/internal/store"
)

var (
	snapshotsLogin string
	snapshotsLimit int
	snapshotsJSON  bool
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List archived snapshots",
	RunE:  runSnapshots,
}

func init() {
	snapshotsCmd.Flags().StringVar(&snapshotsLogin, "login", "", "Only list snapshots for this login")
	snapshotsCmd.Flags().IntVar(&snapshotsLimit, "limit", 20, "Maximum number of snapshots to list (0 for all)")
	snapshotsCmd.Flags().BoolVar(&snapshotsJSON, "json", false, "Output as JSON")
	snapshotsCmd.AddCommand(snapshotsShowCmd, snapshotsRmCmd)
	rootCmd.AddCommand(snapshotsCmd)
}

var snapshotsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an archived snapshot",
	Long: `Show prints the archived input snapshot with the given id as JSON, in
the same form accepted by 'devfolio score'. Without --json a short summary
is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotsShow,
}

var snapshotsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an archived snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsRm,
}

// openArchive loads config and opens the snapshot archive.
func openArchive(cmd *cobra.Command) (*invocation, *store.DB, error) {
	rt, err := setup(cmd)
	if err != nil {
		return nil, nil, err
	}
	db, err := store.Open(rt.cfg.Archive.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening archive: %w", err)
	}
	return rt, db, nil
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	rt, db, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	records, err := db.ListSnapshots(snapshotsLogin, snapshotsLimit)
	if err != nil {
		return fmt.Errorf("listing snapshots: %w", err)
	}
	if records == nil {
		records = []store.Record{}
	}

	if snapshotsJSON || flagJSON {
		return writeJSON(cmd.OutOrStdout(), records)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, output.Section("Archived Snapshots", rt.cfg.Output.Width-2))
	fmt.Fprintln(w)
	if len(records) == 0 {
		fmt.Fprintln(w, " No snapshots archived yet. Use 'devfolio import <file>'.")
		return nil
	}

	tbl := output.NewTable("ID", "Login", "Captured", "Imported", "Repos", "Pinned")
	for _, r := range records {
		tbl.AddRow(r.ID, r.Login, formatTime(r.CapturedAt), formatTime(r.ImportedAt),
			strconv.Itoa(r.Repositories), strconv.Itoa(r.Pinned))
	}
	tbl.Fprint(w)
	return nil
}

func runSnapshotsShow(cmd *cobra.Command, args []string) error {
	rt, db, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	rec, err := db.GetSnapshot(args[0])
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("no archived snapshot with id %q", args[0])
	}

	snap, err := rec.Snapshot()
	if err != nil {
		return fmt.Errorf("decoding archived snapshot %s: %w", rec.ID, err)
	}
	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), snap)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, output.Section("Snapshot "+rec.ID, rt.cfg.Output.Width-2))
	fmt.Fprintln(w)
	tbl := output.NewTable("Field", "Value")
	tbl.AddRow("Login", rec.Login)
	tbl.AddRow("Captured", formatTime(rec.CapturedAt))
	tbl.AddRow("Imported", formatTime(rec.ImportedAt))
	tbl.AddRow("Repositories", strconv.Itoa(rec.Repositories))
	tbl.AddRow("Pinned", strconv.Itoa(rec.Pinned))
	tbl.AddRow("Stars", strconv.Itoa(snap.TotalStars()))
	tbl.AddRow("Followers", strconv.Itoa(snap.Profile.Followers))
	tbl.Fprint(w)
	return nil
}

func runSnapshotsRm(cmd *cobra.Command, args []string) error {
	rt, db, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ok, err := db.DeleteSnapshot(args[0])
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	if !ok {
		return fmt.Errorf("no archived snapshot with id %q", args[0])
	}
	rt.logger.Debug("deleted snapshot", "id", args[0])
	fmt.Fprintf(cmd.OutOrStdout(), " Deleted %s\n", args[0])
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
