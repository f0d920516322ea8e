package translate

import (
	"strings"

	"github.com/arnavsurve/cnote/internal/analyzer/lexer"
	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

// Renderer rebuilds source text line by line from a token stream.
type Renderer struct {
	lines  []string
	pieces [][]string // rendered token texts per line, 0-indexed

	// Style, when set, decorates every piece. A piece never spans lines.
	Style func(t token.Token, piece string) string
}

func NewRenderer(source string) *Renderer {
	lines := lexer.SplitLines(source)
	return &Renderer{
		lines:  lines,
		pieces: make([][]string, len(lines)),
	}
}

// Render re-emits every source line with its original indentation followed
// by the space-joined tokens of that line. Keywords and type names are
// replaced through the keyword table; everything else is kept verbatim.
// The output has exactly as many lines as the source.
func Render(source string, toks []token.Token) string {
	return RenderStyled(source, toks, nil)
}

// RenderStyled is Render with every piece passed through style, e.g. to
// color it by token kind.
func RenderStyled(source string, toks []token.Token, style func(token.Token, string) string) string {
	r := NewRenderer(source)
	r.Style = style
	for _, t := range toks {
		r.add(t)
	}
	return r.String()
}

func (r *Renderer) add(t token.Token) {
	text := Word(t)
	parts := strings.Split(text, "\n")
	for k, part := range parts {
		line := t.Line - 1 + k
		if line < 0 || line >= len(r.pieces) {
			continue
		}
		if k > 0 {
			// Continuation of a block comment: its own line's indentation is
			// emitted again below.
			part = strings.TrimLeft(part, " \t")
		}
		if part == "" {
			continue
		}
		if r.Style != nil {
			part = r.Style(t, part)
		}
		r.pieces[line] = append(r.pieces[line], part)
	}
}

func (r *Renderer) String() string {
	var out strings.Builder
	for i, src := range r.lines {
		if i > 0 {
			out.WriteByte('\n')
		}
		if len(r.pieces[i]) == 0 {
			continue
		}
		out.WriteString(indentation(src))
		out.WriteString(strings.Join(r.pieces[i], " "))
	}
	return out.String()
}

// Word returns the rendered text of a single token.
func Word(t token.Token) string {
	if t.Kind != token.Keyword && t.Kind != token.TypeName {
		return t.Text
	}
	if tr, ok := token.Translate(t.Text); ok {
		return tr
	}
	return t.Text
}

func indentation(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
