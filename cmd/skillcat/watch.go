package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillcat-dev/skillcat/pkg/presenter"
	"github.com/skillcat-dev/skillcat/pkg/skills"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the skill directories and resync on changes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		manager, cleanup, err := openManager(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		official, custom, err := skillRoots()
		if err != nil {
			return err
		}

		watcher, err := skills.NewWatcher(manager, official, custom)
		if err != nil {
			return err
		}
		defer watcher.Close()

		presenter.Info(fmt.Sprintf("watching %s and %s (ctrl-c to stop)", official, custom))

		if err := watcher.Run(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}
