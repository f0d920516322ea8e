package validate

import (
	"github.com/arnavsurve/cnote/internal/analyzer/classify"
	"github.com/arnavsurve/cnote/internal/analyzer/diag"
	"github.com/arnavsurve/cnote/internal/analyzer/scope"
	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

type Options struct {
	// SuggestKeywords appends "did you mean" hints to undeclared names
	// one edit away from a reserved word.
	SuggestKeywords bool
}

// pending is a control construct whose header has been read and whose
// body brace has not been seen yet.
type pending struct {
	keyword  string
	line     int
	braceIdx int
}

type checker struct {
	opts  Options
	toks  []token.Token // code tokens, comments removed
	diags []diag.Diagnostic

	unterminated []token.Token // CommentUnterminated tokens, reported at the end

	directive []bool // token belongs to a preprocessor line
	match     []int  // index of the matching bracket, -1 when unmatched

	// Pass 1 results
	declared  map[string]bool
	functions map[string]bool
	macros    map[string]bool
	typedefs  map[string]bool

	// Pass 2 state
	braces   []int // opener indices; len is the brace depth
	parens   []int
	brackets []int
	scopes   *scope.Stack
	controls []pending
	doBodies []int // '{' indices of do bodies awaiting their while

	params      []paramName // names declared inside the current paren group
	paramsBrace int         // '{' index that receives params, -1 when none
	paramsReady []paramName

	headerClose map[int]bool // ')' closing a control header
	labelEnds   map[int]bool // ':' ending a case, default or goto label
	ifBraces    map[int]bool // '{' opening an if body
	ifBodyEnds  map[int]bool // ';' ending an unbraced if body
	initBraces  map[int]bool // '{' opening an initializer list
	doWhile     map[int]bool // 'while' tails of do bodies
	reported    map[int]bool // openers already reported as unclosed
}

type paramName struct {
	name string
	line int
}

// Validate checks bracket balance, statement termination, control
// structure shape and declare-before-use over a classified token stream.
func Validate(toks []token.Token) []diag.Diagnostic {
	return Run(toks, Options{})
}

func Run(toks []token.Token, opts Options) []diag.Diagnostic {
	c := newChecker(toks, opts)
	c.collect()
	for i := 0; i < len(c.toks); i++ {
		i = c.step(i)
	}
	c.finish()
	return c.diags
}

func newChecker(all []token.Token, opts Options) *checker {
	c := &checker{
		opts:        opts,
		declared:    make(map[string]bool),
		functions:   make(map[string]bool),
		macros:      make(map[string]bool),
		typedefs:    make(map[string]bool),
		scopes:      scope.NewStack(),
		paramsBrace: -1,
		headerClose: make(map[int]bool),
		labelEnds:   make(map[int]bool),
		ifBraces:    make(map[int]bool),
		ifBodyEnds:  make(map[int]bool),
		initBraces:  make(map[int]bool),
		doWhile:     make(map[int]bool),
		reported:    make(map[int]bool),
	}
	for _, t := range all {
		switch {
		case t.Kind == token.CommentUnterminated:
			c.unterminated = append(c.unterminated, t)
		case t.Kind.IsComment():
		default:
			c.toks = append(c.toks, t)
		}
	}
	c.markDirectives()
	c.matchBrackets()
	return c
}

// --- Error Handling ---

func (c *checker) addError(line int, format string, args ...any) {
	c.diags = append(c.diags, diag.New(diag.Structural, line, format, args...))
}

// --- Token Helpers ---

func (c *checker) at(i int) token.Token {
	if i < 0 || i >= len(c.toks) {
		return token.Token{}
	}
	return c.toks[i]
}

// markDirectives flags every token on a line that starts with '#'.
func (c *checker) markDirectives() {
	c.directive = make([]bool, len(c.toks))
	for i := 0; i < len(c.toks); i++ {
		if !c.toks[i].IsSymbol("#") || (i > 0 && c.toks[i-1].Line == c.toks[i].Line) {
			continue
		}
		line := c.toks[i].Line
		for ; i < len(c.toks) && c.toks[i].Line == line; i++ {
			c.directive[i] = true
		}
		i--
	}
}

// matchBrackets pairs every bracket outside directives, one stack per
// bracket kind.
func (c *checker) matchBrackets() {
	c.match = make([]int, len(c.toks))
	stacks := map[string][]int{}
	for i, t := range c.toks {
		c.match[i] = -1
		if t.Kind != token.Symbol || c.directive[i] {
			continue
		}
		switch t.Text {
		case "(", "[", "{":
			stacks[t.Text] = append(stacks[t.Text], i)
		case ")", "]", "}":
			open := openerOf(t.Text)
			st := stacks[open]
			if len(st) == 0 {
				continue
			}
			o := st[len(st)-1]
			stacks[open] = st[:len(st)-1]
			c.match[o] = i
			c.match[i] = o
		}
	}
}

func openerOf(closer string) string {
	switch closer {
	case ")":
		return "("
	case "]":
		return "["
	}
	return "{"
}

// typeHead reports whether the tokens before i form a type: the fixed
// heads classify knows plus typedef names collected in pass 1.
func (c *checker) typeHead(i int) bool {
	if classify.TypeHeadBefore(c.toks, i) {
		return true
	}
	j := i - 1
	for j >= 0 && c.toks[j].IsSymbol("*") {
		j--
	}
	return j >= 0 && c.toks[j].Kind == token.Identifier && c.typedefs[c.toks[j].Text] && !c.directive[j]
}

func (c *checker) isTypeUse(name string) bool {
	return c.typedefs[name] || classify.IsStandardType(name)
}

func (c *checker) isTag(i int) bool {
	p := c.at(i - 1)
	return p.IsKeyword("struct") || p.IsKeyword("union") || p.IsKeyword("enum")
}

// isMember reports whether toks[i] is the field name in a.b or a->b.
func (c *checker) isMember(i int) bool {
	if c.at(i - 1).IsSymbol(".") {
		return true
	}
	gt, minus := c.at(i-1), c.at(i-2)
	return gt.IsSymbol(">") && minus.IsSymbol("-") && gt.Line == minus.Line
}

func (c *checker) known(name string) bool {
	if _, ok := c.scopes.Lookup(name); ok {
		return true
	}
	return c.declared[name] || c.macros[name] || c.functions[name] ||
		classify.IsStandardIdentifier(name) || classify.IsStandardFunction(name)
}

// statementStart reports whether toks[i] begins a statement.
func (c *checker) statementStart(i int) bool {
	if len(c.parens) > 0 || len(c.brackets) > 0 {
		return false
	}
	p := i - 1
	if p < 0 || c.directive[p] {
		return true
	}
	prev := c.toks[p]
	switch {
	case prev.IsSymbol(";"), prev.IsSymbol("}"):
		return true
	case prev.IsSymbol("{"):
		return !c.initBraces[p]
	case prev.IsKeyword("else"), prev.IsKeyword("do"):
		return true
	case prev.IsSymbol(")"):
		return c.headerClose[p]
	case prev.IsSymbol(":"):
		return c.labelEnds[p]
	}
	return false
}

func isOperandEnd(t token.Token) bool {
	switch {
	case t.Kind == token.Identifier, t.Kind.IsLiteral():
		return true
	case t.IsSymbol(")"), t.IsSymbol("]"):
		return true
	}
	return false
}

// operandEndAt reports whether toks[j] ends an operand, counting the
// postfix pairs `++` and `--`.
func (c *checker) operandEndAt(j int) bool {
	t := c.at(j)
	if isOperandEnd(t) {
		return true
	}
	if !t.IsSymbol("+") && !t.IsSymbol("-") {
		return false
	}
	p := c.at(j - 1)
	return p.Kind == token.Symbol && p.Text == t.Text && p.Line == t.Line && isOperandEnd(c.at(j-2))
}

func isOperandStart(t token.Token) bool {
	return t.Kind == token.Identifier || t.Kind == token.FunctionCall || t.Kind.IsLiteral()
}

// scanTerminator looks for the ';' ending the statement or declaration
// that contains toks[start]. It returns the index of the ';', or of the
// last token that belongs to the statement when the ';' is missing.
// An unmatched opener ends the scan successfully: its own diagnostic
// already covers the statement.
func (c *checker) scanTerminator(start int) (int, bool) {
	last := start
	for j := start + 1; j < len(c.toks); j++ {
		t := c.toks[j]
		if c.directive[j] {
			return last, false
		}

		switch {
		case t.IsSymbol(";"):
			return j, true
		case t.IsSymbol("(") || t.IsSymbol("["):
			if c.match[j] < 0 {
				return j, true
			}
			j = c.match[j]
			last = j
			continue
		case t.IsSymbol("{") && c.at(j-1).IsSymbol("="):
			if c.match[j] < 0 {
				return j, true
			}
			j = c.match[j]
			last = j
			continue
		case t.IsSymbol("{"), t.IsSymbol("}"), t.IsSymbol(")"), t.IsSymbol("]"):
			return last, false
		case t.Kind == token.TypeName:
			return last, false
		case t.Kind == token.Keyword && t.Text != "sizeof":
			return last, false
		case t.Kind == token.FunctionDeclaration:
			return last, false
		}

		prev := c.toks[j-1]
		if c.operandEndAt(j-1) && isOperandStart(t) && t.Line > prev.Line &&
			!(prev.Kind == token.StringLiteral && t.Kind == token.StringLiteral) {
			return last, false
		}
		last = j
	}
	return last, false
}

// statementEnd returns the index of the ';' ending the simple statement
// that starts at i, or -1.
func (c *checker) statementEnd(i int) int {
	if c.at(i).IsSymbol(";") {
		return i
	}
	end, ok := c.scanTerminator(i)
	if !ok || !c.at(end).IsSymbol(";") {
		return -1
	}
	return end
}
