package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "tracker",
		Short:   "Personal time tracker",
		Version: Version,
	}

	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(categoriesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
