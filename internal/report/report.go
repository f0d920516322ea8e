package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arnavsurve/cnote/internal/analyzer/diag"
	"github.com/arnavsurve/cnote/internal/analyzer/outline"
	"github.com/arnavsurve/cnote/internal/analyzer/token"
	"github.com/arnavsurve/cnote/internal/analyzer/translate"
)

type styles struct {
	header     lipgloss.Style
	lexical    lipgloss.Style
	structural lipgloss.Style
	ok         lipgloss.Style
	line       lipgloss.Style
	kinds      map[token.Kind]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	keyword := r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	literal := r.NewStyle().Foreground(lipgloss.Color("10"))
	errTok := r.NewStyle().Foreground(lipgloss.Color("9")).Underline(true)
	comment := r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	return styles{
		header:     r.NewStyle().Bold(true),
		lexical:    r.NewStyle().Foreground(lipgloss.Color("11")),
		structural: r.NewStyle().Foreground(lipgloss.Color("9")),
		ok:         r.NewStyle().Foreground(lipgloss.Color("10")),
		line:       r.NewStyle().Foreground(lipgloss.Color("8")).Width(5).Align(lipgloss.Right),
		kinds: map[token.Kind]lipgloss.Style{
			token.Keyword:             keyword,
			token.TypeName:            r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			token.FunctionDeclaration: r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
			token.FunctionCall:        r.NewStyle().Foreground(lipgloss.Color("14")),
			token.LibraryStandard:     keyword,
			token.LibraryCustom:       keyword,
			token.StringLiteral:       literal,
			token.CharLiteral:         literal,
			token.IntegerLiteral:      r.NewStyle().Foreground(lipgloss.Color("3")),
			token.DecimalLiteral:      r.NewStyle().Foreground(lipgloss.Color("3")),
			token.StringUnterminated:  errTok,
			token.CharMalformed:       errTok,
			token.CommentUnterminated: errTok,
			token.LineComment:         comment,
			token.BlockComment:        comment,
		},
	}
}

// Printer writes analysis results for a terminal. With color off every
// line is plain text, which is what tests and pipes see.
type Printer struct {
	w      io.Writer
	color  bool
	styles styles
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{
		w:      w,
		color:  color,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

func (p *Printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Diagnostics prints the findings grouped by severity, each group in
// detection order.
func (p *Printer) Diagnostics(ds []diag.Diagnostic) {
	if len(ds) == 0 {
		fmt.Fprintln(p.w, p.paint(p.styles.ok, "✔︎ no errors found"))
		return
	}
	lexical, structural := diag.GroupBySeverity(ds)
	p.group("Lexical errors", lexical, p.styles.lexical)
	p.group("Structural errors", structural, p.styles.structural)
}

func (p *Printer) group(title string, ds []diag.Diagnostic, style lipgloss.Style) {
	if len(ds) == 0 {
		return
	}
	fmt.Fprintln(p.w, p.paint(p.styles.header, fmt.Sprintf("%s (%d)", title, len(ds))))
	for _, d := range ds {
		fmt.Fprintln(p.w, "  "+p.paint(style, d.String()))
	}
}

// Tokens prints one token per row: line, kind, text.
func (p *Printer) Tokens(toks []token.Token) {
	width := 0
	for _, t := range toks {
		width = max(width, len(t.Kind.String()))
	}
	for _, t := range toks {
		text := strings.ReplaceAll(t.Text, "\n", `\n`)
		if style, ok := p.styles.kinds[t.Kind]; ok {
			text = p.paint(style, text)
		}
		line := fmt.Sprintf("%5d", t.Line)
		if p.color {
			line = p.styles.line.Render(fmt.Sprint(t.Line))
		}
		fmt.Fprintf(p.w, "%s  %-*s  %s\n", line, width, t.Kind, text)
	}
}

// Highlight prints the translated source with every token colored by
// kind. Lines and indentation follow the source exactly as in the plain
// translation.
func (p *Printer) Highlight(source string, toks []token.Token) {
	out := translate.RenderStyled(source, toks, func(t token.Token, piece string) string {
		if style, ok := p.styles.kinds[t.Kind]; ok {
			return p.paint(style, piece)
		}
		return piece
	})
	fmt.Fprintln(p.w, out)
}

// Outline prints the detected constructs.
func (p *Printer) Outline(o outline.Outline) {
	if o.Empty() {
		fmt.Fprintln(p.w, "nothing detected")
		return
	}
	if len(o.Controls) > 0 {
		fmt.Fprintln(p.w, p.paint(p.styles.header, "Control structures"))
		for _, c := range o.Controls {
			fmt.Fprintf(p.w, "  line %d: %s\n", c.Line, c.Keyword)
		}
	}
	if len(o.Assignments) > 0 {
		fmt.Fprintln(p.w, p.paint(p.styles.header, "Assignments"))
		for _, a := range o.Assignments {
			fmt.Fprintf(p.w, "  line %d: %s\n", a.Line, a)
		}
	}
	if len(o.EmptyFunctions) > 0 {
		fmt.Fprintln(p.w, p.paint(p.styles.header, "Functions without body"))
		for _, f := range o.EmptyFunctions {
			fmt.Fprintf(p.w, "  line %d: %s\n", f.Line, f)
		}
	}
}
