package outline

import (
	"fmt"
	"strings"

	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

// Outline lists the constructs found in a program: control structures,
// plain assignments and functions defined without a body.
type Outline struct {
	Controls       []Control
	Assignments    []Assignment
	EmptyFunctions []Function
}

type Control struct {
	Keyword string
	Line    int
}

type Assignment struct {
	Name  string
	Value string
	Line  int
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value)
}

type Function struct {
	Name string
	Line int
}

func (f Function) String() string {
	return fmt.Sprintf("%s without body", f.Name)
}

func (o Outline) Empty() bool {
	return len(o.Controls) == 0 && len(o.Assignments) == 0 && len(o.EmptyFunctions) == 0
}

// Build walks a classified token stream. Comments are ignored.
func Build(all []token.Token) Outline {
	var toks []token.Token
	for _, t := range all {
		if !t.Kind.IsComment() {
			toks = append(toks, t)
		}
	}
	match := matchBraces(toks)

	var o Outline
	for i, t := range toks {
		switch {
		case t.Kind == token.Keyword:
			switch t.Text {
			case "if", "for", "switch", "do":
				o.Controls = append(o.Controls, Control{Keyword: t.Text, Line: t.Line})
			case "while":
				if !isDoWhileTail(toks, match, i) {
					o.Controls = append(o.Controls, Control{Keyword: t.Text, Line: t.Line})
				}
			}
		case t.Kind == token.Identifier && isAssignment(toks, i):
			o.Assignments = append(o.Assignments, Assignment{
				Name:  t.Text,
				Value: valueAfter(toks, i+2),
				Line:  t.Line,
			})
		case t.Kind == token.FunctionDeclaration || t.Kind == token.FunctionCall:
			if hasEmptyBody(toks, i) {
				o.EmptyFunctions = append(o.EmptyFunctions, Function{Name: t.Text, Line: t.Line})
			}
		}
	}
	return o
}

func at(toks []token.Token, i int) token.Token {
	if i < 0 || i >= len(toks) {
		return token.Token{}
	}
	return toks[i]
}

// matchBraces maps every '}' to its '{'.
func matchBraces(toks []token.Token) map[int]int {
	match := make(map[int]int)
	var stack []int
	for i, t := range toks {
		switch {
		case t.IsSymbol("{"):
			stack = append(stack, i)
		case t.IsSymbol("}") && len(stack) > 0:
			match[i] = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
	}
	return match
}

func isDoWhileTail(toks []token.Token, match map[int]int, i int) bool {
	open, ok := match[i-1]
	return ok && at(toks, open-1).IsKeyword("do")
}

// isAssignment matches `name = value` with a single '='. Compound
// operators and comparisons never put the identifier right before '='.
func isAssignment(toks []token.Token, i int) bool {
	if !at(toks, i+1).IsSymbol("=") || at(toks, i+2).IsSymbol("=") {
		return false
	}
	p := at(toks, i-1)
	return p.Kind != token.TypeName && !p.IsSymbol("*") && !p.IsSymbol(".") && !p.IsSymbol(">")
}

// valueAfter joins the tokens of an expression up to ';', ',' or an
// unbalanced ')'.
func valueAfter(toks []token.Token, i int) string {
	var parts []string
	depth := 0
	for ; i < len(toks); i++ {
		t := toks[i]
		switch {
		case t.IsSymbol("(") || t.IsSymbol("["):
			depth++
		case t.IsSymbol(")") || t.IsSymbol("]"):
			if depth == 0 {
				return strings.Join(parts, " ")
			}
			depth--
		case depth == 0 && (t.IsSymbol(";") || t.IsSymbol(",") || t.IsSymbol("{") || t.IsSymbol("}")):
			return strings.Join(parts, " ")
		}
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}

// hasEmptyBody matches `name(...) { }`.
func hasEmptyBody(toks []token.Token, i int) bool {
	if !at(toks, i+1).IsSymbol("(") {
		return false
	}
	depth := 0
	for j := i + 1; j < len(toks); j++ {
		switch {
		case toks[j].IsSymbol("("):
			depth++
		case toks[j].IsSymbol(")"):
			depth--
			if depth == 0 {
				return at(toks, j+1).IsSymbol("{") && at(toks, j+2).IsSymbol("}")
			}
		}
	}
	return false
}
