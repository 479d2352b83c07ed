package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-tracker/internal/model"
	"task-tracker/pkg/timefmt"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current task, reservations and today's totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			out := a.uc.State(ctx)
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, out.Header)
			fmt.Fprintln(w, strings.Repeat("=", 40))
			fmt.Fprintf(w, "Storage:  %s\n", a.cfg.Storage.Driver)
			keys, err := a.store.Keys(ctx)
			if err != nil {
				fmt.Fprintf(w, "Days:     unavailable (%s)\n", err)
			} else {
				fmt.Fprintf(w, "Days:     %d (%s)\n", len(keys), strings.Join(keys, ", "))
			}
			fmt.Fprintf(w, "Now:      %s＞%s (%s, since %s)\n",
				out.Current.Category, out.Current.Title, out.ElapsedCompact, out.Current.StartClock)

			fmt.Fprintln(w, "\nReserved:")
			if len(out.Reserving) == 0 {
				fmt.Fprintln(w, "  none")
			}
			for i, r := range out.Reserving {
				fmt.Fprintf(w, "  [%d] %s %s＞%s\n", i, r.StartClock, r.Category, r.Title)
			}

			fmt.Fprintln(w, "\nFinished:")
			for _, t := range out.Finished {
				fmt.Fprintf(w, "  %s-%s %s %s＞%s\n", t.StartClock, t.FinishClock, t.DurationClock, t.Category, t.Title)
			}

			fmt.Fprintln(w, "\nTotals:")
			for _, c := range out.Totals {
				fmt.Fprintf(w, "  %-8s %s\n", c.Category, timefmt.FormatDurationCompact(c.Duration))
			}
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the selectable tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, k := range model.TaskKinds() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s＞%s\n", i, k.Category, k.Title)
			}
			return nil
		},
	}
}
