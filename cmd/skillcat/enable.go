package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillcat-dev/skillcat/pkg/presenter"
)

var enableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(cmd, args[0], true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable a skill without removing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(cmd, args[0], false)
	},
}

func setEnabled(cmd *cobra.Command, id string, enabled bool) error {
	manager, cleanup, err := openManager(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	if err := manager.SetSkillEnabled(cmd.Context(), id, enabled); err != nil {
		return err
	}

	record, err := manager.GetSkillByID(id)
	if err != nil {
		return err
	}

	verb := "enabled"
	if !enabled {
		verb = "disabled"
	}
	presenter.Success(fmt.Sprintf("skill %q %s", record.Name, verb))
	return nil
}
