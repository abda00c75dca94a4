package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/viant/repline/service/capability"
	"github.com/viant/repline/service/registry"
)

var okStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("42"))

var missingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196"))

var checkCmd = &cobra.Command{
	Use:   "check [filetype...]",
	Short: "Report which interpreters are usable on this system",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		aRegistry := registry.New()
		if interpretersURL != "" {
			if err := aRegistry.Load(ctx, interpretersURL); err != nil {
				return err
			}
		}
		checker := capability.New()

		filetypes := args
		if len(filetypes) == 0 {
			filetypes = aRegistry.Filetypes()
		}
		out := cmd.OutOrStdout()
		for _, filetype := range filetypes {
			descriptor, err := aRegistry.Resolve(filetype)
			if err != nil {
				fmt.Fprintf(out, "%-12s %s\n", filetype, missingStyle.Render(err.Error()))
				continue
			}
			if missing := checker.Missing(ctx, descriptor.Executables()); len(missing) > 0 {
				fmt.Fprintf(out, "%-12s %s\n", filetype,
					missingStyle.Render("missing "+strings.Join(missing, ", ")))
				continue
			}
			fmt.Fprintf(out, "%-12s %s\n", filetype, okStyle.Render("ok"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
