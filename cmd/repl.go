package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/arnavsurve/cnote/internal/analyzer"
	"github.com/arnavsurve/cnote/internal/report"
)

const (
	historyFile = ".cnote_history"
	promptMain  = "c> "
)

const replHelp = `Lines without a leading ':' are appended to the buffer.

REPL commands:
  :check      Report errors in the buffer
  :translate  Show the Spanish rendering of the buffer
  :tokens     Dump the classified tokens
  :outline    List control structures, assignments and empty functions
  :show       Print the buffer with line numbers
  :clear      Empty the buffer
  :quit       Exit the REPL
`

// repl: the buffer stands in for the editor's text area
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Type C interactively and analyze it on demand",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd.OutOrStdout())
	},
}

func runRepl(out io.Writer) error {
	fmt.Fprintln(out, "cnote REPL. Type :help for commands, Ctrl+D exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		if _, err := ln.ReadHistory(f); err != nil {
			log.Printf("reading history: %v", err)
		}
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(histPath)
		if err != nil {
			log.Printf("saving history: %v", err)
			return
		}
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}()

	s := newSession(out, options(), !noColor)
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.handle(line) {
			return nil
		}
	}
}

// session is the REPL state: the source buffer and where output goes.
// Every command analyzes the whole buffer from scratch.
type session struct {
	buf     []string
	out     io.Writer
	opts    analyzer.Options
	printer *report.Printer
}

func newSession(out io.Writer, opts analyzer.Options, color bool) *session {
	return &session{
		out:     out,
		opts:    opts,
		printer: report.NewPrinter(out, color),
	}
}

func (s *session) source() string {
	return strings.Join(s.buf, "\n")
}

// handle processes one input line and reports whether the REPL should
// exit.
func (s *session) handle(line string) bool {
	cmd := strings.TrimSpace(line)
	if !strings.HasPrefix(cmd, ":") {
		s.buf = append(s.buf, line)
		return false
	}

	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprint(s.out, replHelp)
	case ":clear":
		s.buf = nil
	case ":show":
		for i, l := range s.buf {
			fmt.Fprintf(s.out, "%4d  %s\n", i+1, l)
		}
	case ":check":
		s.printer.Diagnostics(analyzer.Analyze(s.source(), s.opts).Diagnostics)
	case ":translate":
		fmt.Fprintln(s.out, analyzer.Analyze(s.source(), s.opts).Translation)
	case ":tokens":
		s.printer.Tokens(analyzer.Analyze(s.source(), s.opts).Tokens)
	case ":outline":
		s.printer.Outline(analyzer.Analyze(s.source(), s.opts).Outline)
	default:
		fmt.Fprintln(s.out, "unknown command. Type :help for the list.")
	}
	return false
}
