// finsim is the command-line front end for the goal simulator: it loads a
// YAML simulation configuration, runs the Monte Carlo engine, and renders
// the result as a console report, JSON, or CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "finsim",
		Short: "Monte Carlo simulator for recurring-contribution portfolios",
		Long: `finsim estimates the distribution of outcomes of a savings plan under
uncertain returns. It simulates many independent monthly-return paths,
applies fees, contributions and optional inflation adjustment, and reports
the p10/p50/p90 percentile band, the final-value distribution, and the
invested-capital baseline.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the finsim version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "finsim %s\n", version)
		},
	}
}
