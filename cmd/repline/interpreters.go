package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/repline/service/registry"
)

var interpretersCmd = &cobra.Command{
	Use:   "interpreters",
	Short: "List the registered interpreters",
	RunE: func(cmd *cobra.Command, args []string) error {
		aRegistry := registry.New()
		if interpretersURL != "" {
			if err := aRegistry.Load(cmd.Context(), interpretersURL); err != nil {
				return err
			}
		}
		out := cmd.OutOrStdout()
		for _, filetype := range aRegistry.Filetypes() {
			descriptor, err := aRegistry.Resolve(filetype)
			if err != nil {
				continue
			}
			fmt.Fprintf(out, "%-12s %-24s %s\n", filetype, descriptor.Bin, descriptor.Prompt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interpretersCmd)
}
