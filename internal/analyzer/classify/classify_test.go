package classify

import (
	"testing"

	"github.com/arnavsurve/cnote/internal/analyzer/lexer"
	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

func checkKinds(t *testing.T, input string, expected map[string]token.Kind) {
	t.Helper()
	raw, _ := lexer.Tokenize(input)
	toks := Stream(raw)
	seen := make(map[string]bool)
	for _, tok := range toks {
		want, ok := expected[tok.Text]
		if !ok || seen[tok.Text] {
			continue
		}
		seen[tok.Text] = true
		if tok.Kind != want {
			t.Errorf("%q in %q: expected=%s, got=%s", tok.Text, input, want, tok.Kind)
		}
	}
	for text := range expected {
		if !seen[text] {
			t.Errorf("%q: no token %q", input, text)
		}
	}
}

func TestDeclaration(t *testing.T) {
	raw, _ := lexer.Tokenize("int x = 5;")
	toks := Stream(raw)
	expected := []token.Kind{token.TypeName, token.Identifier, token.Symbol, token.IntegerLiteral, token.Symbol}
	if len(toks) != len(expected) {
		t.Fatalf("expected=%d tokens, got=%d", len(expected), len(toks))
	}
	for i, kind := range expected {
		if toks[i].Kind != kind {
			t.Errorf("token %d (%q): expected=%s, got=%s", i, toks[i].Text, kind, toks[i].Kind)
		}
	}
}

func TestInclude(t *testing.T) {
	checkKinds(t, "#include <stdio.h>", map[string]token.Kind{
		"#":         token.Symbol,
		"include":   token.Keyword,
		"<stdio.h>": token.LibraryStandard,
	})
}

func TestFunctionNames(t *testing.T) {
	checkKinds(t, "int main() { printf(\"hi\"); }", map[string]token.Kind{
		"int":    token.TypeName,
		"main":   token.FunctionDeclaration,
		"printf": token.FunctionCall,
	})
	checkKinds(t, "char *name(void);", map[string]token.Kind{
		"name": token.FunctionDeclaration,
		"void": token.TypeName,
	})
	checkKinds(t, "struct node *make(int v);", map[string]token.Kind{
		"struct": token.Keyword,
		"node":   token.Identifier,
		"make":   token.FunctionDeclaration,
		"v":      token.Identifier,
	})
	checkKinds(t, "size_t count(void);", map[string]token.Kind{
		"count": token.FunctionDeclaration,
	})
	checkKinds(t, "x = compute /* note */ (1);", map[string]token.Kind{
		"x":       token.Identifier,
		"compute": token.FunctionCall,
	})
}

func TestControlKeywords(t *testing.T) {
	checkKinds(t, "while (n) { if (n) break; else return 0; }", map[string]token.Kind{
		"while":  token.Keyword,
		"if":     token.Keyword,
		"break":  token.Keyword,
		"else":   token.Keyword,
		"return": token.Keyword,
		"n":      token.Identifier,
	})
}

func TestClassify(t *testing.T) {
	paren := token.Token{Kind: token.Symbol, Text: "("}
	tests := []struct {
		raw      token.Token
		typeHead bool
		next     *token.Token
		want     token.Kind
	}{
		{token.Token{Kind: token.Identifier, Text: "unsigned"}, false, nil, token.TypeName},
		{token.Token{Kind: token.Identifier, Text: "sizeof"}, false, &paren, token.Keyword},
		{token.Token{Kind: token.Identifier, Text: "foo"}, true, &paren, token.FunctionDeclaration},
		{token.Token{Kind: token.Identifier, Text: "foo"}, false, &paren, token.FunctionCall},
		{token.Token{Kind: token.Identifier, Text: "foo"}, true, nil, token.Identifier},
		{token.Token{Kind: token.StringLiteral, Text: `"int"`}, false, nil, token.StringLiteral},
		{token.Token{Kind: token.LineComment, Text: "// if"}, false, nil, token.LineComment},
		{token.Token{Kind: token.Identifier, Text: "123"}, false, nil, token.IntegerLiteral},
		{token.Token{Kind: token.Identifier, Text: "1.5"}, false, nil, token.DecimalLiteral},
	}
	for _, tt := range tests {
		if got := Classify(tt.raw, tt.typeHead, tt.next); got != tt.want {
			t.Errorf("Classify(%q, %v): expected=%s, got=%s", tt.raw.Text, tt.typeHead, tt.want, got)
		}
	}
}

func TestStreamLeavesRawUntouched(t *testing.T) {
	raw, _ := lexer.Tokenize("int f(void);")
	before := make([]token.Token, len(raw))
	copy(before, raw)

	toks := Stream(raw)
	if len(toks) != len(raw) {
		t.Fatalf("expected=%d tokens, got=%d", len(raw), len(toks))
	}
	for i := range raw {
		if raw[i] != before[i] {
			t.Errorf("raw token %d changed: expected=%v, got=%v", i, before[i], raw[i])
		}
	}
	if toks[1].Kind != token.FunctionDeclaration {
		t.Errorf("expected=%s, got=%s", token.FunctionDeclaration, toks[1].Kind)
	}
}
