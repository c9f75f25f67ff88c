package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/skillcat-dev/skillcat/pkg/presenter"
)

var addCmd = &cobra.Command{
	Use:   "add <path-to-SKILL.md>",
	Short: "Import a definition file as a custom skill",
	Long: `Parses the given SKILL.md, copies it into the custom skills tree under a
fresh subdirectory, and registers it as an enabled custom skill. The source
file is left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		manager, cleanup, err := openManager(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		record, err := manager.AddSkill(cmd.Context(), path)
		if err != nil {
			return err
		}

		presenter.Success(fmt.Sprintf("skill %q added as %s (id %s)", record.Name, record.IdentityKey, record.ID))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom skill",
	Long: `Removes a custom skill: its catalog row and its directory under the custom
tree. Official skills cannot be deleted; disable them instead.`,
	Args: cobra.ExactArgs(1),
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

		deleted, err := manager.DeleteSkill(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if !deleted {
			presenter.Warning(fmt.Sprintf("skill %q is an official skill and cannot be deleted; use 'skillcat disable'", record.Name))
			return nil
		}

		presenter.Success(fmt.Sprintf("skill %q deleted", record.Name))
		return nil
	},
}
