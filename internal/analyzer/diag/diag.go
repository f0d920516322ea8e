package diag

import (
	"fmt"
	"strings"
)

type Severity int

const (
	Lexical Severity = iota
	Structural
)

func (s Severity) String() string {
	switch s {
	case Lexical:
		return "Lexical"
	case Structural:
		return "Structural"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

type Diagnostic struct {
	Message  string
	Line     int
	Severity Severity
}

func New(sev Severity, line int, format string, args ...any) Diagnostic {
	return Diagnostic{Message: fmt.Sprintf(format, args...), Line: line, Severity: sev}
}

// String renders the line the way the editor's terminal panel prints it.
func (d Diagnostic) String() string {
	return fmt.Sprintf("Error in Line %d: %s", d.Line, d.Message)
}

// GroupBySeverity splits a list into lexical and structural findings,
// keeping detection order inside each group.
func GroupBySeverity(ds []Diagnostic) (lexical, structural []Diagnostic) {
	for _, d := range ds {
		if d.Severity == Lexical {
			lexical = append(lexical, d)
		} else {
			structural = append(structural, d)
		}
	}
	return lexical, structural
}

// Filter returns the diagnostics whose message contains substr.
func Filter(ds []Diagnostic, substr string) []Diagnostic {
	var out []Diagnostic
	for _, d := range ds {
		if strings.Contains(d.Message, substr) {
			out = append(out, d)
		}
	}
	return out
}

// Lines returns the rendered form of every diagnostic.
func Lines(ds []Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}
