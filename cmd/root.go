package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arnavsurve/cnote/internal/analyzer"
)

var (
	outDir  string
	suggest bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "cnote",
	Short: "C analyzer and Spanish keyword translator for the note editor",
	Long: `cnote tokenizes and checks small C programs and renders them with
Spanish keywords.

Commands:
  check      Report lexical and structural errors in a .c file
  translate  Write the Spanish rendering of a .c file
  tokens     Dump the classified token stream
  outline    List control structures, assignments and empty functions
  repl       Type C interactively and analyze it on demand
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for translated files")
	rootCmd.PersistentFlags().BoolVar(&suggest, "suggest", false, "suggest keywords for misspelled names")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(CheckCmd, TranslateCmd, TokensCmd, OutlineCmd, ReplCmd)
}

func options() analyzer.Options {
	return analyzer.Options{SuggestKeywords: suggest}
}
