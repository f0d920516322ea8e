package classify

import (
	"strings"

	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

// Classify assigns the semantic kind of raw. next is the following raw
// token (nil at end of stream) and typeHead tells whether the tokens
// right before raw form a type, e.g. `int`, `char *` or `struct node *`.
func Classify(raw token.Token, typeHead bool, next *token.Token) token.Kind {
	switch raw.Kind {
	case token.LineComment, token.BlockComment, token.CommentUnterminated:
		return raw.Kind
	case token.LibraryStandard, token.LibraryCustom:
		return raw.Kind
	case token.StringLiteral, token.StringUnterminated, token.CharLiteral, token.CharMalformed:
		return raw.Kind
	case token.Symbol:
		return token.Symbol
	}

	text := raw.Text
	switch {
	case token.IsTypeName(text):
		return token.TypeName
	case token.IsKeyword(text):
		return token.Keyword
	case len(text) == 1 && token.IsSymbolChar(text[0]):
		return token.Symbol
	case raw.Kind == token.IntegerLiteral || raw.Kind == token.DecimalLiteral:
		return raw.Kind
	case isAllDigits(text):
		return token.IntegerLiteral
	case isDecimal(text):
		return token.DecimalLiteral
	}

	if next != nil && next.IsSymbol("(") {
		if typeHead {
			return token.FunctionDeclaration
		}
		return token.FunctionCall
	}
	return token.Identifier
}

// Stream classifies a raw token slice into a new slice. raw is not
// modified; every decision reads the raw lookahead and the already
// classified lookbehind.
func Stream(raw []token.Token) []token.Token {
	out := make([]token.Token, 0, len(raw))
	for i, tok := range raw {
		var next *token.Token
		for j := i + 1; j < len(raw); j++ {
			if !raw[j].Kind.IsComment() {
				next = &raw[j]
				break
			}
		}
		tok.Kind = Classify(tok, TypeHeadBefore(out, len(out)), next)
		out = append(out, tok)
	}
	return out
}

// TypeHeadBefore reports whether toks[:end] ends in a type head: a type
// name, a `struct|union|enum Tag`, or an identifier already known as a
// type by the caller, each optionally followed by pointer stars.
// Comments are skipped.
func TypeHeadBefore(toks []token.Token, end int) bool {
	i := prevCode(toks, end)
	for i >= 0 && toks[i].IsSymbol("*") {
		i = prevCode(toks, i)
	}
	if i < 0 {
		return false
	}
	if toks[i].Kind == token.TypeName {
		return true
	}
	if toks[i].Kind == token.Identifier {
		j := prevCode(toks, i)
		if j >= 0 && isTagKeyword(toks[j]) {
			return true
		}
		return IsStandardType(toks[i].Text)
	}
	return false
}

func prevCode(toks []token.Token, i int) int {
	for i--; i >= 0; i-- {
		if !toks[i].Kind.IsComment() {
			return i
		}
	}
	return -1
}

func isTagKeyword(t token.Token) bool {
	return t.Kind == token.Keyword && (t.Text == "struct" || t.Text == "union" || t.Text == "enum")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isDecimal(s string) bool {
	whole, frac, ok := strings.Cut(s, ".")
	return ok && isAllDigits(whole) && isAllDigits(frac)
}
