package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/viant/repline"
	"github.com/viant/repline/service/host/memory"
)

var width int
var raw bool
var rightAlign bool
var filetypeFlag string

var sourceStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240"))

var resultStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("42"))

var filetypeByExtension = map[string]string{
	".py":     "python",
	".js":     "javascript",
	".jsx":    "javascript",
	".rb":     "ruby",
	".lua":    "lua",
	".hs":     "haskell",
	".jl":     "julia",
	".r":      "r",
	".ml":     "ocaml",
	".php":    "php",
	".exs":    "elixir",
	".coffee": "coffee",
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Evaluate a file once and print results alongside the source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		filetype := filetypeFlag
		if filetype == "" {
			filetype = filetypeByExtension[strings.ToLower(filepath.Ext(args[0]))]
		}
		if filetype == "" {
			return fmt.Errorf("cannot derive filetype from %v, use --filetype", args[0])
		}

		aHost := memory.New()
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		view := aHost.NewView(filetype, width, lines...)

		engine, err := repline.New(aHost, repline.WithConfig(&repline.Config{
			Width:           width,
			Raw:             raw,
			RightAlign:      rightAlign,
			RightSplit:      true,
			BaseTools:       []string{"sh", "env"},
			InterpretersURL: interpretersURL,
		}))
		if err != nil {
			return err
		}
		if err = engine.Command(ctx, view.ID(), false, ""); err != nil {
			return err
		}

		aSession := engine.Sessions().Session(view.ID())
		companion, _ := aHost.View(aSession.CompanionID)
		results := companion.Lines()

		out := cmd.OutOrStdout()
		if raw {
			for _, result := range results {
				fmt.Fprintln(out, resultStyle.Render(result))
			}
			return nil
		}
		sourceWidth := 0
		for _, line := range lines {
			if len(line) > sourceWidth {
				sourceWidth = len(line)
			}
		}
		for i, line := range lines {
			result := ""
			if i < len(results) {
				result = results[i]
			}
			fmt.Fprintf(out, "%s  %s\n",
				sourceStyle.Render(fmt.Sprintf("%-*s", sourceWidth, line)),
				resultStyle.Render(result))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntVarP(&width, "width", "w", 40, "Result pane width in columns")
	runCmd.Flags().BoolVar(&raw, "raw", false, "Print the reconciled transcript instead of scraped results")
	runCmd.Flags().BoolVar(&rightAlign, "right-align", false, "Right-align result lines")
	runCmd.Flags().StringVarP(&filetypeFlag, "filetype", "t", "", "Interpreter filetype (derived from the file extension when empty)")
	rootCmd.AddCommand(runCmd)
}
