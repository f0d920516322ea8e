package analyzer

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arnavsurve/cnote/internal/analyzer/diag"
)

const expectPrefix = "// expect: "

// Good programs analyze cleanly and translate to testdata/good/expected.
func TestGoodPrograms(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "good", "*.c"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no good test files found")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".c")
		t.Run(name, func(t *testing.T) {
			res, err := AnalyzeFile(file, Options{})
			if err != nil {
				t.Fatalf("AnalyzeFile: %v", err)
			}
			if res.HasErrors() {
				t.Fatalf("expected no errors, got:\n%s", strings.Join(diag.Lines(res.Diagnostics), "\n"))
			}

			expectedPath := filepath.Join("testdata", "good", "expected", TranslatedName(file))
			expected, err := os.ReadFile(expectedPath)
			if err != nil {
				t.Fatalf("missing expected translation: %s", expectedPath)
			}
			expected = bytes.ReplaceAll(expected, []byte("\r\n"), []byte("\n"))
			if res.Translation != string(expected) {
				t.Errorf("translation mismatch\nexpected (%s):\n%s\nactual:\n%s", expectedPath, expected, res.Translation)
			}
		})
	}
}

// Bad programs name the diagnostic they must produce on their first line.
func TestBadPrograms(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "bad", "*.c"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no bad test files found")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".c")
		t.Run(name, func(t *testing.T) {
			want := expectation(t, file)
			res, err := AnalyzeFile(file, Options{})
			if err != nil {
				t.Fatalf("AnalyzeFile: %v", err)
			}
			if len(diag.Filter(res.Diagnostics, want)) == 0 {
				t.Errorf("expected a %q diagnostic, got:\n%s", want, strings.Join(diag.Lines(res.Diagnostics), "\n"))
			}
		})
	}
}

func expectation(t *testing.T, file string) string {
	t.Helper()
	f, err := os.Open(file)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() || !strings.HasPrefix(sc.Text(), expectPrefix) {
		t.Fatalf("%s: first line must start with %q", file, expectPrefix)
	}
	return strings.TrimPrefix(sc.Text(), expectPrefix)
}
