package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillcat-dev/skillcat/pkg/presenter"
	"github.com/skillcat-dev/skillcat/pkg/secrets"
)

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage per-provider credentials",
}

var credentialSetCmd = &cobra.Command{
	Use:   "set <provider> <credential>",
	Short: "Store a credential for a provider",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sqlDB, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := secrets.NewStore(sqlDB).Set(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("credential for %q stored", args[0]))
		return nil
	},
}

var credentialRemoveCmd = &cobra.Command{
	Use:   "remove <provider>",
	Short: "Remove a provider's credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sqlDB, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := secrets.NewStore(sqlDB).Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("credential for %q removed", args[0]))
		return nil
	},
}

var credentialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List providers with stored credentials",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sqlDB, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		providers, err := secrets.NewStore(sqlDB).List(cmd.Context())
		if err != nil {
			return err
		}
		if len(providers) == 0 {
			presenter.Info("No credentials stored.")
			return nil
		}
		for _, provider := range providers {
			presenter.Info(provider)
		}
		return nil
	},
}

func init() {
	credentialCmd.AddCommand(credentialSetCmd)
	credentialCmd.AddCommand(credentialRemoveCmd)
	credentialCmd.AddCommand(credentialListCmd)
}
