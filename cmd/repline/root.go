package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var interpretersURL string

var rootCmd = &cobra.Command{
	Use:   "repline",
	Short: "Scratchpad evaluator for interactive interpreters",
	Long: `Repline feeds source text to an interactive interpreter running under a
simulated terminal and scrapes one result line per executed statement.

The run subcommand evaluates a file once and prints the source with the
results alongside; check reports which interpreters are usable on this
system.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&interpretersURL, "interpreters", "", "URL of a YAML file with extra interpreter definitions")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
