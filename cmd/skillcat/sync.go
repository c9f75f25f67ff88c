package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillcat-dev/skillcat/pkg/presenter"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the catalog with the skill directories",
	Long: `Runs one reconciliation pass: discovers skill definitions under the bundled
and custom roots, diffs them against the persisted catalog, and applies the
result. Enabled/disabled flags survive the sync.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		manager, cleanup, err := openManager(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		report := manager.LastReport()
		presenter.Success(fmt.Sprintf("catalog synced: %d added, %d updated, %d removed",
			report.Inserted, report.Updated, report.Deleted))
		if report.Skipped > 0 {
			presenter.Warning(fmt.Sprintf("%d malformed definition(s) skipped", report.Skipped))
		}
		if report.Conflicts > 0 {
			presenter.Warning(fmt.Sprintf("%d duplicate identity key(s) ignored", report.Conflicts))
		}

		return nil
	},
}
