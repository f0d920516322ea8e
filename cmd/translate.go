package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/cnote/internal/analyzer"
	"github.com/arnavsurve/cnote/internal/report"
)

var printOnly bool

// translate: .c -> .es.c
var TranslateCmd = &cobra.Command{
	Use:   "translate <source.c>",
	Short: "Render a C file with Spanish keywords",
	Args:  cobra.ExactArgs(1),
	RunE:  translateRun,
}

func init() {
	TranslateCmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the translation instead of writing a file")
}

func translateRun(cmd *cobra.Command, args []string) error {
	src := args[0]
	out := cmd.OutOrStdout()

	res, err := analyzer.AnalyzeFile(src, options())
	if err != nil {
		return err
	}
	if res.HasErrors() {
		fmt.Fprintf(out, "⚠ %s has %d errors; translating anyway\n", src, len(res.Diagnostics))
	}

	if printOnly {
		report.NewPrinter(out, !noColor).Highlight(res.Source, res.Tokens)
		return nil
	}

	fmt.Fprintf(out, "↪ translating %q → %q ...\n", src, outDir+"/")
	outFile, err := analyzer.WriteTranslation(res, src, outDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "✔︎ wrote translation to %s\n", outFile)
	return nil
}
