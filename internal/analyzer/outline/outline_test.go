package outline

import (
	"testing"

	"github.com/arnavsurve/cnote/internal/analyzer/classify"
	"github.com/arnavsurve/cnote/internal/analyzer/lexer"
)

func build(input string) Outline {
	raw, _ := lexer.Tokenize(input)
	return Build(classify.Stream(raw))
}

func TestBuild(t *testing.T) {
	input := `int f() { }
int main() {
    int x;
    x = 3;
    for (x = 0; x < 2; x++) { }
    do { x--; } while (x > 0);
    if (x == 1) { }
    switch (x) { }
    while (x) { x = x - 1; /* x = 9; */ }
}`
	o := build(input)

	controls := []Control{{"for", 5}, {"do", 6}, {"if", 7}, {"switch", 8}, {"while", 9}}
	if len(o.Controls) != len(controls) {
		t.Fatalf("expected=%d controls, got=%d: %v", len(controls), len(o.Controls), o.Controls)
	}
	for i, c := range controls {
		if o.Controls[i] != c {
			t.Errorf("control %d: expected=%v, got=%v", i, c, o.Controls[i])
		}
	}

	assignments := []struct {
		text string
		line int
	}{
		{"x = 3", 4},
		{"x = 0", 5},
		{"x = x - 1", 9},
	}
	if len(o.Assignments) != len(assignments) {
		t.Fatalf("expected=%d assignments, got=%d: %v", len(assignments), len(o.Assignments), o.Assignments)
	}
	for i, a := range assignments {
		got := o.Assignments[i]
		if got.String() != a.text || got.Line != a.line {
			t.Errorf("assignment %d: expected=%q (line %d), got=%q (line %d)", i, a.text, a.line, got.String(), got.Line)
		}
	}

	if len(o.EmptyFunctions) != 1 || o.EmptyFunctions[0].String() != "f without body" || o.EmptyFunctions[0].Line != 1 {
		t.Errorf("expected f without body on line 1, got=%v", o.EmptyFunctions)
	}
}

func TestEmpty(t *testing.T) {
	if o := build("int x;\n// x = 1;"); !o.Empty() {
		t.Errorf("expected empty outline, got=%+v", o)
	}
	if o := build("x = 1;"); o.Empty() {
		t.Errorf("expected an assignment, got empty outline")
	}
}
