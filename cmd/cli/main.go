package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "empinsight-cli",
		Short: "Employee performance analytics from the command line",
	}

	rootCmd.AddCommand(
		newSummaryCmd(),
		newMatrixCmd(),
		newGenerateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
