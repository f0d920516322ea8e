package validate

import (
	"github.com/arnavsurve/cnote/internal/analyzer/diag"
	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

// step checks toks[i] and returns the index of the last token it
// consumed.
func (c *checker) step(i int) int {
	t := c.toks[i]
	if c.directive[i] {
		return c.checkDirective(i)
	}

	switch t.Kind {
	case token.Symbol:
		c.checkSymbol(i)
	case token.Keyword:
		c.checkKeyword(i)
	case token.FunctionCall:
		c.checkCall(i)
	case token.FunctionDeclaration:
		c.checkFunctionDeclaration(i)
	case token.Identifier:
		c.checkIdentifier(i)
	}
	return i
}

// --- Preprocessor Lines ---

// checkDirective validates one preprocessor line and returns the index of
// its last token.
func (c *checker) checkDirective(i int) int {
	end := i
	for end+1 < len(c.toks) && c.directive[end+1] && c.toks[end+1].Line == c.toks[i].Line {
		end++
	}
	if c.at(i+1).Text == "include" && i+1 <= end {
		target := c.at(i + 2)
		ok := i+2 == end && (target.Kind == token.LibraryStandard || target.Kind == token.LibraryCustom)
		if !ok {
			c.addError(c.toks[i].Line, "malformed #include directive")
		}
	}
	return end
}

// --- Brackets ---

func (c *checker) checkSymbol(i int) {
	t := c.toks[i]
	switch t.Text {
	case "{":
		c.openBrace(i)
	case "}":
		c.closeBrace(i)
	case "(":
		c.parens = append(c.parens, i)
	case ")":
		if len(c.parens) == 0 {
			c.addError(t.Line, "close parenthesis without matching open")
			return
		}
		c.parens = c.parens[:len(c.parens)-1]
		if len(c.parens) == 0 {
			c.closeParamList(i)
		}
	case "[":
		c.brackets = append(c.brackets, i)
	case "]":
		if len(c.brackets) == 0 {
			c.addError(t.Line, "close bracket without matching open")
			return
		}
		c.brackets = c.brackets[:len(c.brackets)-1]
	}
}

func (c *checker) openBrace(i int) {
	if c.at(i-1).IsSymbol("=") || c.enumBody(i) || (len(c.braces) > 0 && c.initBraces[c.braces[len(c.braces)-1]] && !c.at(i-1).IsSymbol(";")) {
		c.initBraces[i] = true
	}
	c.braces = append(c.braces, i)
	c.scopes.Push(c.toks[i].Line)

	if c.paramsBrace == i {
		for _, p := range c.paramsReady {
			c.scopes.Define(p.name, p.line)
		}
		c.paramsReady = nil
		c.paramsBrace = -1
	}

	kept := c.controls[:0]
	for _, p := range c.controls {
		if p.braceIdx != i {
			kept = append(kept, p)
		}
	}
	c.controls = kept
}

// enumBody matches the '{' of `enum {` and `enum Tag {`. Its constants
// read like an initializer list, not statements.
func (c *checker) enumBody(i int) bool {
	p := c.at(i - 1)
	if p.Kind == token.Identifier {
		p = c.at(i - 2)
	}
	return p.IsKeyword("enum")
}

func (c *checker) closeBrace(i int) {
	if len(c.braces) == 0 {
		c.addError(c.toks[i].Line, "close brace without matching open")
		return
	}
	open := c.braces[len(c.braces)-1]
	c.braces = c.braces[:len(c.braces)-1]
	c.scopes.Pop()

	if n := len(c.doBodies); n > 0 && c.doBodies[n-1] == open {
		c.doBodies = c.doBodies[:n-1]
		if next := c.at(i + 1); next.IsKeyword("while") {
			c.doWhile[i+1] = true
		} else {
			c.addError(c.toks[i].Line, "missing 'while' after 'do' body")
		}
	}
}

// closeParamList runs when a top-level paren group closes. Names declared
// inside it belong to the block that directly follows, if any.
func (c *checker) closeParamList(i int) {
	if c.at(i + 1).IsSymbol("{") {
		c.paramsReady = c.params
		c.paramsBrace = i + 1
	}
	c.params = nil
}

// --- Keywords ---

func (c *checker) checkKeyword(i int) {
	switch c.toks[i].Text {
	case "if", "for", "while", "switch":
		c.checkControl(i)
	case "else":
		c.checkElse(i)
	case "do":
		c.checkDo(i)
	case "return", "break", "continue", "goto":
		c.checkTerminated(i)
	case "case", "default":
		c.markLabel(i)
	}
}

// markLabel records the ':' ending `case expr:` or `default:` so the
// statement after it is checked like any other.
func (c *checker) markLabel(i int) {
	depth := 0
	for j := i + 1; j < len(c.toks); j++ {
		t := c.toks[j]
		switch {
		case t.IsSymbol("(") || t.IsSymbol("["):
			depth++
		case t.IsSymbol(")") || t.IsSymbol("]"):
			depth--
		case t.IsSymbol(":") && depth == 0:
			c.labelEnds[j] = true
			return
		case t.IsSymbol(";"), t.IsSymbol("{"), t.IsSymbol("}"):
			return
		}
	}
}

func isControlStart(t token.Token) bool {
	if t.Kind != token.Keyword {
		return false
	}
	switch t.Text {
	case "if", "else", "while", "for", "switch", "do":
		return true
	}
	return false
}

// checkControl validates `kw (cond) body`.
func (c *checker) checkControl(i int) {
	kw := c.toks[i]
	open := i + 1
	if !c.at(open).IsSymbol("(") {
		c.addError(kw.Line, "missing '(' after '%s'", kw.Text)
		return
	}
	close := c.match[open]
	if close < 0 {
		c.addError(c.toks[open].Line, "missing ')' to close condition of '%s'", kw.Text)
		c.reported[open] = true
		return
	}
	c.headerClose[close] = true

	if c.doWhile[i] {
		if !c.at(close + 1).IsSymbol(";") {
			c.addError(c.toks[close].Line, "missing ';' after do-while condition")
		}
		return
	}

	body := close + 1
	switch next := c.at(body); {
	case body >= len(c.toks):
		c.controls = append(c.controls, pending{keyword: kw.Text, line: kw.Line, braceIdx: body})
	case next.IsSymbol("{"):
		c.controls = append(c.controls, pending{keyword: kw.Text, line: kw.Line, braceIdx: body})
		if kw.Text == "if" {
			c.ifBraces[body] = true
		}
	case next.IsSymbol(";"):
		if kw.Text == "if" {
			c.ifBodyEnds[body] = true
		}
	case isControlStart(next):
		c.addError(next.Line, "missing opening brace after '%s'", kw.Text)
	default:
		if kw.Text == "if" {
			if end := c.statementEnd(body); end >= 0 {
				c.ifBodyEnds[end] = true
			}
		}
	}
}

// checkElse accepts an else only directly after the body of an if.
func (c *checker) checkElse(i int) {
	kw := c.toks[i]
	p := i - 1
	valid := false
	switch prev := c.at(p); {
	case prev.IsSymbol("}"):
		valid = c.match[p] >= 0 && c.ifBraces[c.match[p]]
	case prev.IsSymbol(";"):
		valid = c.ifBodyEnds[p]
	}
	if !valid {
		c.addError(kw.Line, "else without matching if")
	}

	next := c.at(i + 1)
	if next.IsKeyword("if") || next.IsSymbol("{") || i+1 >= len(c.toks) {
		if next.IsSymbol("{") {
			c.controls = append(c.controls, pending{keyword: "else", line: kw.Line, braceIdx: i + 1})
		}
		return
	}
	if isControlStart(next) {
		c.addError(next.Line, "missing opening brace after 'else'")
	}
}

func (c *checker) checkDo(i int) {
	next := c.at(i + 1)
	switch {
	case next.IsSymbol("{"):
		c.doBodies = append(c.doBodies, i+1)
		c.controls = append(c.controls, pending{keyword: "do", line: c.toks[i].Line, braceIdx: i + 1})
	case isControlStart(next):
		c.addError(next.Line, "missing opening brace after 'do'")
	case i+1 >= len(c.toks):
		c.controls = append(c.controls, pending{keyword: "do", line: c.toks[i].Line, braceIdx: i + 1})
	}
}

// checkTerminated requires `return ...;`, `break;`, `continue;` and
// `goto label;` to end with a semicolon before the next brace.
func (c *checker) checkTerminated(i int) {
	end, ok := c.scanTerminator(i)
	if !ok {
		c.addError(c.toks[end].Line, "missing ';' after '%s'", c.toks[i].Text)
	}
}

// --- Names ---

func (c *checker) checkFunctionDeclaration(i int) {
	open := i + 1
	if len(c.parens) > 0 || !c.at(open).IsSymbol("(") || c.match[open] < 0 {
		return
	}
	close := c.match[open]
	switch next := c.at(close + 1); {
	case next.IsSymbol("{"), next.IsSymbol(";"), next.IsSymbol(","):
	default:
		c.addError(c.toks[close].Line, "missing ';' after declaration of '%s'", c.toks[i].Text)
	}
}

func (c *checker) checkCall(i int) {
	t := c.toks[i]
	if c.typeHead(i) {
		c.checkFunctionDeclaration(i)
		return
	}
	if c.definesWithoutType(i) {
		return
	}

	if !c.functions[t.Text] && !c.macros[t.Text] && !c.known(t.Text) {
		c.addError(t.Line, "undeclared function '%s'%s", t.Text, c.suggestion(t.Text))
		c.scopes.Define(t.Text, t.Line)
	}

	open := i + 1
	if c.at(open).IsSymbol("(") && c.match[open] < 0 {
		c.addError(c.toks[open].Line, "missing ')' in call to '%s'", t.Text)
		c.reported[open] = true
		return
	}

	if c.statementStart(i) {
		c.checkStatement(i)
	}
}

func (c *checker) checkIdentifier(i int) {
	t := c.toks[i]
	switch {
	case c.isTag(i), c.isMember(i), c.isTypeUse(t.Text):
		return
	case c.typeHead(i):
		c.declare(i)
		return
	case c.at(i - 1).IsKeyword("goto"):
		return
	case c.at(i+1).IsSymbol(":") && c.statementStart(i):
		c.labelEnds[i+1] = true
		return
	}

	if !c.known(t.Text) {
		c.addError(t.Line, "undeclared variable '%s'%s", t.Text, c.suggestion(t.Text))
		c.scopes.Define(t.Text, t.Line)
	}
	if c.statementStart(i) {
		c.checkStatement(i)
	}
}

// declare records a declared name and, outside parameter lists and for
// headers, requires the declaration to end with a semicolon. A name
// followed directly by a body is a function missing its parameter list.
func (c *checker) declare(i int) {
	t := c.toks[i]
	if len(c.parens) > 0 {
		c.params = append(c.params, paramName{name: t.Text, line: t.Line})
		return
	}
	c.scopes.Define(t.Text, t.Line)
	if len(c.brackets) == 0 && c.at(i+1).IsSymbol("{") {
		c.addError(t.Line, "missing '(' after function name '%s'", t.Text)
		return
	}
	if len(c.brackets) > 0 {
		return
	}
	if end, ok := c.scanTerminator(i); !ok {
		c.addError(c.toks[end].Line, "missing ';' after declaration of '%s'", t.Text)
	}
}

func (c *checker) checkStatement(i int) {
	if end, ok := c.scanTerminator(i); !ok {
		c.addError(c.toks[end].Line, "missing ';' after statement")
	}
}

// --- End Of Stream ---

func (c *checker) finish() {
	c.reportUnclosed(c.braces, "'{' is never closed")
	c.reportUnclosed(c.parens, "'(' is never closed")
	c.reportUnclosed(c.brackets, "'[' is never closed")

	for _, p := range c.controls {
		c.addError(p.line, "missing body for '%s'", p.keyword)
	}

	for _, t := range c.unterminated {
		c.diags = append(c.diags, diag.New(diag.Lexical, t.Line, "unterminated block comment"))
	}
}

// reportUnclosed emits one diagnostic for a non-empty stack, citing the
// innermost opener not already reported.
func (c *checker) reportUnclosed(stack []int, msg string) {
	for k := len(stack) - 1; k >= 0; k-- {
		if !c.reported[stack[k]] {
			c.addError(c.toks[stack[k]].Line, "%s", msg)
			return
		}
	}
}
