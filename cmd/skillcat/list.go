package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillcat-dev/skillcat/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills in the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		manager, cleanup, err := openManager(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		all := manager.GetAllSkills()
		if len(all) == 0 {
			presenter.Info("No skills in the catalog. Add one with 'skillcat add <path>'.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSOURCE\tENABLED\tCOMMAND\tDESCRIPTION")
		for _, record := range all {
			enabled := "yes"
			if !record.IsEnabled {
				enabled = "no"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				record.ID, record.Name, record.SourceKind, enabled, record.Command, record.Description)
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one skill, including its body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager, cleanup, err := openManager(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		record, err := manager.GetSkillByID(args[0])
		if err != nil {
			return err
		}

		presenter.Section(record.Name)
		presenter.Info(fmt.Sprintf("ID:          %s", record.ID))
		presenter.Info(fmt.Sprintf("Source:      %s", record.SourceKind))
		presenter.Info(fmt.Sprintf("Enabled:     %t", record.IsEnabled))
		if record.Command != "" {
			presenter.Info(fmt.Sprintf("Command:     %s", record.Command))
		}
		presenter.Info(fmt.Sprintf("Verified:    %t", record.Verified))
		presenter.Info(fmt.Sprintf("Description: %s", record.Description))
		presenter.Info(fmt.Sprintf("File:        %s", record.FilePath))
		if record.Body != "" {
			presenter.Info("")
			fmt.Println(record.Body)
		}
		return nil
	},
}
