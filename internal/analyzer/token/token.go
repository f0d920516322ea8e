package token

type Kind string

const (
	// Reserved words
	Keyword  Kind = "Keyword"  // if, while, return, include ...
	TypeName Kind = "TypeName" // int, char, float ...

	// Names
	Identifier          Kind = "Identifier"          // x
	FunctionDeclaration Kind = "FunctionDeclaration" // int main(
	FunctionCall        Kind = "FunctionCall"        // printf(

	// Include targets
	LibraryStandard Kind = "LibraryStandard" // <stdio.h>
	LibraryCustom   Kind = "LibraryCustom"   // "util.h"

	// Literals
	StringLiteral      Kind = "StringLiteral"      // "..."
	StringUnterminated Kind = "StringUnterminated" // "... (no closing quote on the line)
	CharLiteral        Kind = "CharLiteral"        // 'a' or '\n'
	CharMalformed      Kind = "CharMalformed"      // '', 'ab'
	IntegerLiteral     Kind = "IntegerLiteral"     // 42, 0xFF
	DecimalLiteral     Kind = "DecimalLiteral"     // 3.14

	Symbol Kind = "Symbol" // single character from Symbols

	// Comments
	LineComment         Kind = "LineComment"         // // ...
	BlockComment        Kind = "BlockComment"        // /* ... */
	CommentUnterminated Kind = "CommentUnterminated" // /* ... EOF
)

type Token struct {
	Kind Kind
	Text string
	Line int
}

func (k Kind) String() string { return string(k) }

// IsComment reports whether the kind is trivia for the structural checks.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment || k == CommentUnterminated
}

// IsError reports whether the kind tags a malformed literal or comment.
func (k Kind) IsError() bool {
	return k == StringUnterminated || k == CharMalformed || k == CommentUnterminated
}

func (k Kind) IsLiteral() bool {
	switch k {
	case StringLiteral, StringUnterminated, CharLiteral, CharMalformed, IntegerLiteral, DecimalLiteral:
		return true
	}
	return false
}

func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

func (t Token) IsSymbol(text string) bool {
	return t.Kind == Symbol && t.Text == text
}

func (t Token) IsKeyword(text string) bool {
	return t.Kind == Keyword && t.Text == text
}

// Symbols is the fixed single-character symbol set.
const Symbols = "#<>(){};,.+-*/=[]!&|%^~?:"

func IsSymbolChar(ch byte) bool {
	for i := 0; i < len(Symbols); i++ {
		if Symbols[i] == ch {
			return true
		}
	}
	return false
}

var typeNames = map[string]bool{
	"int":      true,
	"char":     true,
	"float":    true,
	"double":   true,
	"void":     true,
	"long":     true,
	"short":    true,
	"unsigned": true,
	"signed":   true,
}

func IsTypeName(word string) bool {
	return typeNames[word]
}
