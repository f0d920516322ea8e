package validate

import (
	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

// collect is pass 1: it records every declared name anywhere in the
// stream so that pass 2 accepts forward references.
func (c *checker) collect() {
	for i := 0; i < len(c.toks); i++ {
		t := c.toks[i]

		if c.directive[i] {
			if t.IsSymbol("#") && c.at(i+1).Text == "define" && c.directive[i+1] {
				if name := c.at(i + 2); c.directive[i+2] && isName(name) {
					c.macros[name.Text] = true
				}
			}
			continue
		}

		switch {
		case t.Kind == token.FunctionDeclaration:
			c.functions[t.Text] = true
		case t.Kind == token.FunctionCall && c.typeHead(i):
			c.functions[t.Text] = true
		case t.Kind == token.FunctionCall && c.definesWithoutType(i):
			c.functions[t.Text] = true
		case t.Kind == token.Identifier && c.typeHead(i):
			c.declared[t.Text] = true
			c.collectDeclarators(i)
		case t.IsKeyword("enum"):
			c.collectEnum(i)
		case t.IsKeyword("typedef"):
			c.collectTypedef(i)
		case t.IsSymbol("}"):
			c.collectTrailingDeclarator(i)
		}
	}
}

func isName(t token.Token) bool {
	return t.Kind == token.Identifier || t.Kind == token.FunctionCall || t.Kind == token.FunctionDeclaration
}

// definesWithoutType matches `main() {`: a call-shaped name at statement
// level whose parameter list is followed by a body.
func (c *checker) definesWithoutType(i int) bool {
	open := i + 1
	if !c.at(open).IsSymbol("(") || c.match[open] < 0 {
		return false
	}
	if !c.at(c.match[open] + 1).IsSymbol("{") {
		return false
	}
	p := c.at(i - 1)
	return i == 0 || p.IsSymbol(";") || p.IsSymbol("}") || c.directive[i-1]
}

// collectDeclarators records the names after commas in `int a, *b, c[3];`.
func (c *checker) collectDeclarators(i int) {
	for j := i + 1; j < len(c.toks); j++ {
		t := c.toks[j]
		switch {
		case c.directive[j]:
			return
		case t.IsSymbol(";"), t.IsSymbol(")"), t.IsSymbol("}"):
			return
		case t.IsSymbol("{") && !c.at(j-1).IsSymbol("="):
			return
		case t.IsSymbol("(") || t.IsSymbol("[") || t.IsSymbol("{"):
			if c.match[j] < 0 {
				return
			}
			j = c.match[j]
		case t.IsSymbol(","):
			k := j + 1
			for c.at(k).IsSymbol("*") {
				k++
			}
			if c.at(k).Kind == token.Identifier {
				c.declared[c.at(k).Text] = true
			}
		}
	}
}

// collectEnum records the constants of `enum [Tag] { A, B = 2, C }`.
func (c *checker) collectEnum(i int) {
	open := i + 1
	if c.at(open).Kind == token.Identifier {
		open++
	}
	if !c.at(open).IsSymbol("{") || c.match[open] < 0 {
		return
	}
	expectName := true
	for j := open + 1; j < c.match[open]; j++ {
		t := c.toks[j]
		switch {
		case expectName && t.Kind == token.Identifier:
			c.declared[t.Text] = true
			expectName = false
		case t.IsSymbol(","):
			expectName = true
		}
	}
}

// collectTypedef records NAME from `typedef ... NAME;`, skipping a struct
// or union body if there is one.
func (c *checker) collectTypedef(i int) {
	for j := i + 1; j < len(c.toks); j++ {
		t := c.toks[j]
		switch {
		case c.directive[j]:
			return
		case t.IsSymbol("{") || t.IsSymbol("("):
			if c.match[j] < 0 {
				return
			}
			j = c.match[j]
		case t.IsSymbol(";"):
			if name := c.at(j - 1); name.Kind == token.Identifier {
				c.typedefs[name.Text] = true
			}
			return
		}
	}
}

// collectTrailingDeclarator records `p` in `struct P { ... } p;`.
func (c *checker) collectTrailingDeclarator(i int) {
	open := c.match[i]
	if open < 0 {
		return
	}
	head := c.at(open - 1)
	if head.Kind == token.Identifier {
		head = c.at(open - 2)
	}
	if !head.IsKeyword("struct") && !head.IsKeyword("union") && !head.IsKeyword("enum") {
		return
	}
	if c.at(open-2).IsKeyword("typedef") || c.at(open-3).IsKeyword("typedef") {
		return
	}
	name := c.at(i + 1)
	if name.Kind == token.Identifier {
		c.declared[name.Text] = true
		c.collectDeclarators(i + 1)
	}
}
