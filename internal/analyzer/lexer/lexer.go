package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/arnavsurve/cnote/internal/analyzer/diag"
	"github.com/arnavsurve/cnote/internal/analyzer/token"
)

// Lexer scans C source one line at a time. The only state carried from one
// line to the next is an open block comment.
type Lexer struct {
	lines []string

	line int    // current line number (1-indexed)
	src  string // text of the current line
	pos  int    // current byte index into src

	inBlockComment bool
	commentLine    int // line the open block comment started on
	commentBuf     strings.Builder

	tokens []token.Token
	diags  []diag.Diagnostic
}

func NewLexer(input string) *Lexer {
	return &Lexer{lines: SplitLines(input)}
}

// Tokenize scans the whole source. Words come out as Identifier; the
// classify package decides keywords, type names and function names.
func Tokenize(source string) ([]token.Token, []diag.Diagnostic) {
	return NewLexer(source).Tokenize()
}

// SplitLines splits on '\n' and drops a trailing '\r' from every line, so
// CRLF input counts the same lines as LF input.
func SplitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

func (l *Lexer) Tokenize() ([]token.Token, []diag.Diagnostic) {
	for i, src := range l.lines {
		l.line = i + 1
		l.src = src
		l.pos = 0

		if l.inBlockComment {
			end := strings.Index(src, "*/")
			if end < 0 {
				l.commentBuf.WriteByte('\n')
				l.commentBuf.WriteString(src)
				continue
			}
			l.commentBuf.WriteByte('\n')
			l.commentBuf.WriteString(src[:end+2])
			l.closeBlockComment()
			l.pos = end + 2
		}

		l.scanLine()
	}

	if l.inBlockComment {
		// Reported by the validator, which owns end-of-stream findings.
		l.tokens = append(l.tokens, token.Token{
			Kind: token.CommentUnterminated,
			Text: l.commentBuf.String(),
			Line: l.commentLine,
		})
		l.inBlockComment = false
	}

	return l.tokens, l.diags
}

func (l *Lexer) scanLine() {
	for l.pos < len(l.src) {
		ch := l.src[l.pos]

		switch {
		case ch == ' ' || ch == '\t' || ch == '\f' || ch == '\v':
			l.pos++
		case strings.HasPrefix(l.src[l.pos:], "/*"):
			l.readBlockComment()
		case strings.HasPrefix(l.src[l.pos:], "//"):
			l.emit(token.LineComment, l.src[l.pos:])
			l.pos = len(l.src)
		case ch == '"':
			if !l.readLibrary('"', '"', token.LibraryCustom) {
				l.readString()
			}
		case ch == '\'':
			l.readChar()
		case ch == '<' && l.readLibrary('<', '>', token.LibraryStandard):
		case isLetter(ch):
			l.readIdentifier()
		case isDigit(ch):
			l.readNumber()
		case token.IsSymbolChar(ch):
			l.emit(token.Symbol, string(ch))
			l.pos++
		default:
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			l.addError("illegal character '%c'", r)
			l.pos += size
		}
	}
}

func (l *Lexer) emit(kind token.Kind, text string) {
	l.tokens = append(l.tokens, token.Token{Kind: kind, Text: text, Line: l.line})
}

func (l *Lexer) addError(format string, args ...any) {
	l.diags = append(l.diags, diag.New(diag.Lexical, l.line, format, args...))
}

func (l *Lexer) readBlockComment() {
	start := l.pos
	end := strings.Index(l.src[start+2:], "*/")
	if end >= 0 {
		stop := start + 2 + end + 2
		l.emit(token.BlockComment, l.src[start:stop])
		l.pos = stop
		return
	}

	l.inBlockComment = true
	l.commentLine = l.line
	l.commentBuf.Reset()
	l.commentBuf.WriteString(l.src[start:])
	l.pos = len(l.src)
}

func (l *Lexer) closeBlockComment() {
	l.tokens = append(l.tokens, token.Token{
		Kind: token.BlockComment,
		Text: l.commentBuf.String(),
		Line: l.commentLine,
	})
	l.inBlockComment = false
	l.commentBuf.Reset()
}

// readString consumes a double-quoted literal. A literal must close on its
// own line; otherwise the rest of the line becomes StringUnterminated.
func (l *Lexer) readString() {
	start := l.pos
	i := start + 1
	for i < len(l.src) {
		switch l.src[i] {
		case '\\':
			i += 2
			continue
		case '"':
			l.emit(token.StringLiteral, l.src[start:i+1])
			l.pos = i + 1
			return
		}
		i++
	}

	l.emit(token.StringUnterminated, l.src[start:])
	l.addError("unterminated string literal")
	l.pos = len(l.src)
}

// readChar consumes 'x' or '\x'. Anything else up to the next quote on the
// line (or the lone quote when there is none) is CharMalformed.
func (l *Lexer) readChar() {
	s, i := l.src, l.pos
	switch {
	case i+3 < len(s) && s[i+1] == '\\' && s[i+3] == '\'':
		l.emit(token.CharLiteral, s[i:i+4])
		l.pos = i + 4
		return
	case i+2 < len(s) && s[i+1] != '\'' && s[i+1] != '\\' && s[i+2] == '\'':
		l.emit(token.CharLiteral, s[i:i+3])
		l.pos = i + 3
		return
	}

	end := i + 1
	if close := strings.IndexByte(s[i+1:], '\''); close >= 0 {
		end = i + 1 + close + 1
	}
	text := s[i:end]
	l.emit(token.CharMalformed, text)
	l.addError("malformed character literal %s", text)
	l.pos = end
}

// readLibrary recognizes <name.h> and "name.h" right after `# include` on
// the same line. It leaves the position untouched when the form does not
// match.
func (l *Lexer) readLibrary(open, close byte, kind token.Kind) bool {
	if !l.afterInclude() {
		return false
	}
	s := l.src[l.pos:]
	end := strings.IndexByte(s[1:], close)
	if end < 0 {
		return false
	}
	name := s[1 : 1+end]
	if !isHeaderName(name) {
		return false
	}
	l.emit(kind, s[:end+2])
	l.pos += end + 2
	return true
}

func (l *Lexer) afterInclude() bool {
	n := len(l.tokens)
	if n < 2 {
		return false
	}
	hash, word := l.tokens[n-2], l.tokens[n-1]
	if hash.Line != l.line || word.Line != l.line || !hash.IsSymbol("#") {
		return false
	}
	// Translated sources spell the directive in Spanish.
	translated, _ := token.Translate("include")
	return word.Text == "include" || word.Text == translated
}

func isHeaderName(name string) bool {
	if !strings.HasSuffix(name, ".h") || len(name) < 3 {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if !isLetter(ch) && !isDigit(ch) && ch != '.' && ch != '/' && ch != '-' {
			return false
		}
	}
	return true
}

func (l *Lexer) readIdentifier() {
	start := l.pos
	for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
		l.pos++
	}
	l.emit(token.Identifier, l.src[start:l.pos])
}

// readNumber consumes decimal, hexadecimal and fractional literals together
// with their u/l/f suffixes.
func (l *Lexer) readNumber() {
	s, start := l.src, l.pos
	i := start
	kind := token.IntegerLiteral

	if s[i] == '0' && i+2 < len(s) && (s[i+1] == 'x' || s[i+1] == 'X') && isHexDigit(s[i+2]) {
		i += 2
		for i < len(s) && isHexDigit(s[i]) {
			i++
		}
	} else {
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
			kind = token.DecimalLiteral
			i++
			for i < len(s) && isDigit(s[i]) {
				i++
			}
		}
	}

	if kind == token.DecimalLiteral {
		if i < len(s) && (s[i] == 'f' || s[i] == 'F') {
			i++
		}
	} else {
		for i < len(s) && strings.IndexByte("uUlL", s[i]) >= 0 {
			i++
		}
	}

	l.emit(kind, s[start:i])
	l.pos = i
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}
