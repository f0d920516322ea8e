package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arnavsurve/cnote/internal/analyzer/diag"
	"github.com/arnavsurve/cnote/internal/analyzer/outline"
	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

func TestDiagnosticsNone(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Diagnostics(nil)
	if got := buf.String(); got != "✔︎ no errors found\n" {
		t.Errorf("expected=%q, got=%q", "✔︎ no errors found\n", got)
	}
}

func TestDiagnosticsGrouped(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Diagnostics([]diag.Diagnostic{
		diag.New(diag.Structural, 2, "undeclared variable '%s'", "y"),
		diag.New(diag.Lexical, 1, "illegal character '%c'", '@'),
	})
	expected := `Lexical errors (1)
  Error in Line 1: illegal character '@'
Structural errors (1)
  Error in Line 2: undeclared variable 'y'
`
	if got := buf.String(); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestTokens(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Tokens([]token.Token{
		{Kind: token.TypeName, Text: "int", Line: 1},
		{Kind: token.BlockComment, Text: "/* a\nb */", Line: 12},
	})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected=2 rows, got=%d: %q", len(lines), buf.String())
	}
	if want := "    1  TypeName      int"; lines[0] != want {
		t.Errorf("expected=%q, got=%q", want, lines[0])
	}
	if want := `   12  BlockComment  /* a\nb */`; lines[1] != want {
		t.Errorf("expected=%q, got=%q", want, lines[1])
	}
}

func TestHighlight(t *testing.T) {
	source := "/* a\n b */ x = 1;\n\n    return 0;"
	toks := []token.Token{
		{Kind: token.BlockComment, Text: "/* a\n b */", Line: 1},
		{Kind: token.Identifier, Text: "x", Line: 2},
		{Kind: token.Symbol, Text: "=", Line: 2},
		{Kind: token.IntegerLiteral, Text: "1", Line: 2},
		{Kind: token.Symbol, Text: ";", Line: 2},
		{Kind: token.Keyword, Text: "return", Line: 4},
		{Kind: token.IntegerLiteral, Text: "0", Line: 4},
		{Kind: token.Symbol, Text: ";", Line: 4},
	}
	var buf bytes.Buffer
	NewPrinter(&buf, false).Highlight(source, toks)
	want := "/* a\n b */ x = 1 ;\n\n    retornar 0 ;\n"
	if buf.String() != want {
		t.Errorf("expected=%q, got=%q", want, buf.String())
	}
}

func TestOutline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Outline(outline.Outline{})
	if buf.String() != "nothing detected\n" {
		t.Errorf("expected=%q, got=%q", "nothing detected\n", buf.String())
	}

	buf.Reset()
	p.Outline(outline.Outline{
		Controls:       []outline.Control{{Keyword: "while", Line: 4}},
		Assignments:    []outline.Assignment{{Name: "x", Value: "3", Line: 2}},
		EmptyFunctions: []outline.Function{{Name: "f", Line: 1}},
	})
	expected := `Control structures
  line 4: while
Assignments
  line 2: x = 3
Functions without body
  line 1: f without body
`
	if buf.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}
