package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "export [today|all]",
		Short:     "Write tracked days as JSON",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"today", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			var data []byte
			switch args[0] {
			case "today":
				data, err = a.uc.ExportToday(ctx)
			default:
				data, err = a.uc.ExportAll(ctx)
			}
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultExportName(args[0], a.uc.State(ctx).DayKey)
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, - for stdout")
	return cmd
}

func defaultExportName(scope, dayKey string) string {
	if scope == "all" {
		return "tracker-all.json"
	}
	return "tracker-" + strings.ReplaceAll(dayKey, "/", "-") + ".json"
}
