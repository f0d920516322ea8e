package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/cnote/internal/analyzer"
	"github.com/arnavsurve/cnote/internal/report"
)

// check: report errors, fail when there are any
var CheckCmd = &cobra.Command{
	Use:   "check <source.c>",
	Short: "Report lexical and structural errors",
	Args:  cobra.ExactArgs(1),
	RunE:  checkRun,
}

func checkRun(cmd *cobra.Command, args []string) error {
	src := args[0]
	fmt.Fprintf(cmd.OutOrStdout(), "↪ checking %q ...\n", src)

	res, err := analyzer.AnalyzeFile(src, options())
	if err != nil {
		return err
	}

	report.NewPrinter(cmd.OutOrStdout(), !noColor).Diagnostics(res.Diagnostics)
	if res.HasErrors() {
		return fmt.Errorf("%s: %d errors", src, len(res.Diagnostics))
	}
	return nil
}
