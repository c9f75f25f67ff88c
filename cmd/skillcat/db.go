package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillcat-dev/skillcat/pkg/db"
	"github.com/skillcat-dev/skillcat/pkg/db/migrations"
	"github.com/skillcat-dev/skillcat/pkg/presenter"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management commands",
	Long:  `Commands for managing the skillcat database (migrations, status, etc.)`,
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database migration status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		applied, err := db.GetMigrationStatus(ctx)
		if err != nil {
			return err
		}

		appliedMap := make(map[int64]bool)
		for _, v := range applied {
			appliedMap[v] = true
		}

		dbPath, err := db.DefaultDBPath()
		if err != nil {
			return err
		}

		presenter.Section("Database Migration Status")
		presenter.Info(fmt.Sprintf("Database: %s\n", dbPath))

		appliedCount := 0
		for _, m := range migrations.All() {
			status := "[ ]"
			if appliedMap[m.Version] {
				status = "[x]"
				appliedCount++
			}
			presenter.Info(fmt.Sprintf("%s %d - %s", status, m.Version, m.Description))
		}

		presenter.Info(fmt.Sprintf("\nApplied: %d/%d migrations", appliedCount, len(migrations.All())))
		return nil
	},
}

var dbRollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Rollback the last database migration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		applied, err := db.GetMigrationStatus(ctx)
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			presenter.Warning("No migrations to rollback")
			return nil
		}

		sqlDB, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		runner := db.NewMigrationRunner(sqlDB)
		if err := runner.Rollback(ctx, migrations.All()); err != nil {
			return err
		}

		presenter.Success(fmt.Sprintf("rolled back migration %d", applied[len(applied)-1]))
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbRollbackCmd)
}
