package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arnavsurve/cnote/internal/analyzer"
	"github.com/arnavsurve/cnote/internal/report"
)

var TokensCmd = &cobra.Command{
	Use:   "tokens <source.c>",
	Short: "Dump the classified token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := analyzer.AnalyzeFile(args[0], options())
		if err != nil {
			return err
		}
		report.NewPrinter(cmd.OutOrStdout(), !noColor).Tokens(res.Tokens)
		return nil
	},
}

var OutlineCmd = &cobra.Command{
	Use:   "outline <source.c>",
	Short: "List control structures, assignments and empty functions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := analyzer.AnalyzeFile(args[0], options())
		if err != nil {
			return err
		}
		report.NewPrinter(cmd.OutOrStdout(), !noColor).Outline(res.Outline)
		return nil
	},
}
