package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"task-tracker/internal/scheduler"
	"task-tracker/internal/tracker/delivery/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer a.Close()

			sched := scheduler.New(a.l, a.uc, a.cfg.Tracker.PollInterval)
			sched.Start(ctx)
			defer sched.Stop()

			return tui.Run(ctx, a.uc)
		},
	}
}
