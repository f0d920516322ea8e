package diag

import "testing"

func TestDiagnosticString(t *testing.T) {
	d := New(Structural, 7, "undeclared variable '%s'", "x")
	want := "Error in Line 7: undeclared variable 'x'"
	if d.String() != want {
		t.Errorf("String() expected=%q, got=%q", want, d.String())
	}
}

func TestGroupBySeverityKeepsOrder(t *testing.T) {
	ds := []Diagnostic{
		New(Structural, 3, "a"),
		New(Lexical, 1, "b"),
		New(Structural, 2, "c"),
		New(Lexical, 5, "d"),
	}
	lexical, structural := GroupBySeverity(ds)
	if len(lexical) != 2 || lexical[0].Message != "b" || lexical[1].Message != "d" {
		t.Errorf("lexical group expected=[b d], got=%v", lexical)
	}
	if len(structural) != 2 || structural[0].Message != "a" || structural[1].Message != "c" {
		t.Errorf("structural group expected=[a c], got=%v", structural)
	}
}

func TestFilter(t *testing.T) {
	ds := []Diagnostic{New(Structural, 1, "missing ';' after statement"), New(Structural, 2, "else without matching if")}
	got := Filter(ds, "else")
	if len(got) != 1 || got[0].Line != 2 {
		t.Errorf("Filter expected the line 2 diagnostic, got=%v", got)
	}
}
