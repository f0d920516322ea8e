package analyzer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arnavsurve/cnote/internal/analyzer/diag"
)

func TestAnalyze(t *testing.T) {
	r := Analyze("int x = 5;", Options{})
	if r.HasErrors() {
		t.Fatalf("expected no errors, got=%v", r.Diagnostics)
	}
	if r.Translation != "entero x = 5 ;" {
		t.Errorf("expected=%q, got=%q", "entero x = 5 ;", r.Translation)
	}
	if len(r.Tokens) != 5 {
		t.Errorf("expected=5 tokens, got=%d", len(r.Tokens))
	}
}

func TestAnalyzeOrdersLexicalFirst(t *testing.T) {
	r := Analyze("int a = 1 @\nfoo();\n/* open", Options{})
	if len(r.Diagnostics) != 4 {
		t.Fatalf("expected=4 diagnostics, got=%d: %v", len(r.Diagnostics), r.Diagnostics)
	}
	if d := r.Diagnostics[0]; d.Severity != diag.Lexical || d.Message != "illegal character '@'" {
		t.Errorf("first: expected illegal character, got=%s", d)
	}
	lexical, structural := diag.GroupBySeverity(r.Diagnostics)
	if len(lexical) != 2 || len(structural) != 2 {
		t.Errorf("expected 2 lexical and 2 structural, got=%d and %d", len(lexical), len(structural))
	}
	// The translation is produced even for broken input.
	if r.Translation == "" {
		t.Errorf("expected a translation")
	}
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.c")
	if err := os.WriteFile(src, []byte("int main() {\n    return 0;\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := AnalyzeFile(src, Options{})
	if err != nil {
		t.Fatalf("AnalyzeFile: %v", err)
	}
	if r.HasErrors() {
		t.Fatalf("expected no errors, got=%v", r.Diagnostics)
	}

	out := filepath.Join(dir, "build")
	path, err := WriteTranslation(r, src, out)
	if err != nil {
		t.Fatalf("WriteTranslation: %v", err)
	}
	if path != filepath.Join(out, "hello.es.c") {
		t.Errorf("expected=%q, got=%q", filepath.Join(out, "hello.es.c"), path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expected := "entero main ( ) {\n    retornar 0 ;\n}\n"
	if string(b) != expected {
		t.Errorf("expected=%q, got=%q", expected, string(b))
	}
}

func TestAnalyzeFileErrors(t *testing.T) {
	_, err := AnalyzeFile("notes.txt", Options{})
	if !errors.Is(err, ErrUnsupportedExtension) {
		t.Errorf("expected ErrUnsupportedExtension, got=%v", err)
	}

	_, err = AnalyzeFile(filepath.Join(t.TempDir(), "missing.c"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got=%v", err)
	}
}

func TestTranslatedName(t *testing.T) {
	tests := map[string]string{
		"hello.c":         "hello.es.c",
		"dir/list.h":      "list.es.h",
		"/tmp/a.b/prog.c": "prog.es.c",
	}
	for in, want := range tests {
		if got := TranslatedName(in); got != want {
			t.Errorf("TranslatedName(%q): expected=%q, got=%q", in, want, got)
		}
	}
}
