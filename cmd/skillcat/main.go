package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillcat-dev/skillcat/pkg/db"
	"github.com/skillcat-dev/skillcat/pkg/db/migrations"
	"github.com/skillcat-dev/skillcat/pkg/logger"
	"github.com/skillcat-dev/skillcat/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLCAT")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillcat")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillcat",
	Short: "Manage the skill catalog",
	Long: `skillcat manages a catalog of skill definitions: capability bundles
discovered from a bundled read-only tree and a user-writable custom tree,
reconciled against a local SQLite catalog.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))

		// Bring the schema to the current version before any catalog
		// component touches the store.
		return db.RunMigrations(cmd.Context(), migrations.All())
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-error output")
	rootCmd.PersistentFlags().String("official-skills-dir", "", "Override the bundled skills directory")
	rootCmd.PersistentFlags().String("custom-skills-dir", "", "Override the custom skills directory")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("official_skills_dir", rootCmd.PersistentFlags().Lookup("official-skills-dir"))
	viper.BindPFlag("custom_skills_dir", rootCmd.PersistentFlags().Lookup("custom-skills-dir"))

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(credentialCmd)
	rootCmd.AddCommand(dbCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
