package analyzer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arnavsurve/cnote/internal/analyzer/classify"
	"github.com/arnavsurve/cnote/internal/analyzer/diag"
	"github.com/arnavsurve/cnote/internal/analyzer/lexer"
	"github.com/arnavsurve/cnote/internal/analyzer/outline"
	"github.com/arnavsurve/cnote/internal/analyzer/token"
	"github.com/arnavsurve/cnote/internal/analyzer/translate"
	"github.com/arnavsurve/cnote/internal/analyzer/validate"
)

var ErrUnsupportedExtension = errors.New("source must have a .c or .h extension")

type Options struct {
	SuggestKeywords bool
}

// Result holds everything one analysis run produces. Nothing in it is
// shared with another run.
type Result struct {
	Source      string
	Tokens      []token.Token
	Diagnostics []diag.Diagnostic
	Translation string
	Outline     outline.Outline
}

// Analyze runs the lexer, the classifier, then the validator, the
// translator and the outline over the same token stream. It never fails:
// malformed input shows up in Diagnostics and the translation is produced
// regardless.
func Analyze(source string, opts Options) *Result {
	raw, lexDiags := lexer.Tokenize(source)
	toks := classify.Stream(raw)

	diags := make([]diag.Diagnostic, 0, len(lexDiags))
	diags = append(diags, lexDiags...)
	diags = append(diags, validate.Run(toks, validate.Options{SuggestKeywords: opts.SuggestKeywords})...)

	return &Result{
		Source:      source,
		Tokens:      toks,
		Diagnostics: diags,
		Translation: translate.Render(source, toks),
		Outline:     outline.Build(toks),
	}
}

func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// AnalyzeFile reads a C source or header and analyzes it.
func AnalyzeFile(path string, opts Options) (*Result, error) {
	if err := validateExtension(path); err != nil {
		return nil, err
	}
	src, err := readSource(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Analyze(src, opts), nil
}

// WriteTranslation writes the rendered text next to the other build
// artifacts as <name>.es<ext> and returns the file path.
func WriteTranslation(r *Result, srcPath, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", outDir, err)
	}
	outFile := filepath.Join(outDir, TranslatedName(srcPath))
	if err := os.WriteFile(outFile, []byte(r.Translation), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outFile, err)
	}
	return outFile, nil
}

// TranslatedName maps "dir/hello.c" to "hello.es.c".
func TranslatedName(srcPath string) string {
	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".es" + ext
}

func validateExtension(path string) error {
	switch filepath.Ext(path) {
	case ".c", ".h":
		return nil
	}
	return fmt.Errorf("%s: %w", path, ErrUnsupportedExtension)
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}
