package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/devfolio/internal/snapshot"
	"github.com/blackwell-systems/devfolio/internal/store"
)

var importJSON bool

var importCmd = &cobra.Command{
	Use:   "import <snapshot files...>",
	Short: "Validate and archive snapshots",
	Long: `Import validates activity snapshots and stores them in the local
SQLite archive so they can be scored later with --login. Only the input
snapshot is stored; scores are always recomputed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}

	// Validate everything before writing anything.
	snaps := make([]*snapshot.Snapshot, len(args))
	for i, path := range args {
		if snaps[i], err = snapshot.Load(path); err != nil {
			return err
		}
	}

	db, err := store.Open(rt.cfg.Archive.Path)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer func() { _ = db.Close() }()

	importedAt := time.Now().UTC()
	records := make([]*store.Record, 0, len(snaps))
	for i, snap := range snaps {
		rec, err := db.SaveSnapshot(snap, importedAt)
		if err != nil {
			return fmt.Errorf("archiving %s: %w", args[i], err)
		}
		rt.logger.Debug("archived snapshot", "path", args[i], "id", rec.ID, "login", rec.Login)
		records = append(records, rec)
	}

	if importJSON || flagJSON {
		return writeJSON(cmd.OutOrStdout(), records)
	}
	w := cmd.OutOrStdout()
	for _, rec := range records {
		fmt.Fprintf(w, " Imported %s (%d repositories) as %s\n", rec.Login, rec.Repositories, rec.ID)
	}
	return nil
}
