package htxgen

import (
	"strings"
	"unicode/utf8"
)

// SpanKind distinguishes plain Go code from embedded markup.
type SpanKind int

const (
	SpanCode   SpanKind = iota // ordinary Go source
	SpanMarkup                 // an embedded markup literal
)

// String returns a human-readable name for the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanCode:
		return "Code"
	case SpanMarkup:
		return "Markup"
	}
	return "Unknown"
}

// Span is a contiguous region of source text, tagged as code or markup.
// Pos is the location of the span's first character in the original file.
type Span struct {
	Kind SpanKind
	Text string
	Pos  Position
}

// Lines returns the number of lines the span occupies (1 for a span with no
// newline).
func (s Span) Lines() int {
	return strings.Count(s.Text, "\n") + 1
}

// Scanner splits mixed Go/markup source into spans. A '<' begins a markup
// span only when the scanner is in an expression-expected position and the
// next character is an identifier start, '/', '>', or '!'. String literals,
// rune literals, and comments are tracked so their contents never trigger
// markup detection; inside markup the scanner tracks attribute quotes,
// balanced {} interpolations, and a named tag stack.
type Scanner struct {
	filename string
	source   string
	pos      int  // current position in source
	readPos  int  // next position to read
	ch       rune // current character
	line     int  // current line (1-based)
	column   int  // current column (1-based)

	lastSig  rune   // last significant rune seen in code (0 at statement start)
	wordPos  int    // start of the identifier being read, -1 if none
	lastWord string // last full identifier, for keyword checks

	errors *ErrorList
}

// NewScanner creates a new Scanner for the given source.
func NewScanner(filename, source string) *Scanner {
	return NewScannerAt(filename, source, Position{File: filename, Line: 1, Column: 1})
}

// NewScannerAt creates a Scanner whose first character sits at start in the
// original file. Used when rescanning expression text embedded in markup.
func NewScannerAt(filename, source string, start Position) *Scanner {
	line := start.Line
	column := start.Column
	if line == 0 {
		line = 1
	}
	if column == 0 {
		column = 1
	}
	s := &Scanner{
		filename: filename,
		source:   source,
		line:     line,
		column:   column - 1,
		wordPos:  -1,
		errors:   NewErrorList(),
	}
	s.readChar()
	return s
}

// Errors returns any errors encountered while scanning.
func (s *Scanner) Errors() *ErrorList {
	return s.errors
}

// ScanSpans splits source into an ordered span list. The concatenation of
// all span texts reproduces the source exactly.
func ScanSpans(filename, source string) ([]Span, error) {
	s := NewScanner(filename, source)
	spans := s.Scan()
	return spans, s.errors.Err()
}

// ScanSpansAt is ScanSpans with the source anchored at start in the original
// file, so span positions stay file-relative during recursive rescans.
func ScanSpansAt(filename, source string, start Position) ([]Span, error) {
	s := NewScannerAt(filename, source, start)
	spans := s.Scan()
	return spans, s.errors.Err()
}

// readChar advances to the next character in the source.
func (s *Scanner) readChar() {
	prevWasNewline := s.ch == '\n'

	if s.readPos >= len(s.source) {
		s.ch = 0 // EOF
		s.pos = s.readPos
		if prevWasNewline {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
		return
	}

	r, size := utf8.DecodeRuneInString(s.source[s.readPos:])
	s.ch = r
	s.pos = s.readPos
	s.readPos += size

	if prevWasNewline {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
}

// peekChar returns the next character without advancing.
func (s *Scanner) peekChar() rune {
	if s.readPos >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.readPos:])
	return r
}

// position returns the current Position for error reporting.
func (s *Scanner) position() Position {
	return Position{File: s.filename, Line: s.line, Column: s.column}
}

// Scan walks the whole source and returns the span list.
func (s *Scanner) Scan() []Span {
	var spans []Span

	codeStart := 0
	codePos := s.position()

	flushCode := func(end int) {
		if end > codeStart {
			spans = append(spans, Span{Kind: SpanCode, Text: s.source[codeStart:end], Pos: codePos})
		}
	}

	for s.ch != 0 {
		switch {
		case s.ch == '/' && s.peekChar() == '/':
			s.endWord()
			s.skipLineComment()

		case s.ch == '/' && s.peekChar() == '*':
			s.endWord()
			s.skipBlockComment()

		case s.ch == '"':
			s.endWord()
			s.skipString()
			s.lastSig = '"'

		case s.ch == '`':
			s.endWord()
			s.skipRawString()
			s.lastSig = '`'

		case s.ch == '\'':
			s.endWord()
			s.skipRune()
			s.lastSig = '\''

		case s.ch == '<' && s.markupStarts():
			s.endWord()
			flushCode(s.pos)
			markupStart := s.pos
			markupPos := s.position()
			s.scanMarkup()
			spans = append(spans, Span{Kind: SpanMarkup, Text: s.source[markupStart:s.pos], Pos: markupPos})
			codeStart = s.pos
			codePos = s.position()
			// A markup literal is an expression; what follows it is not.
			s.lastSig = ')'

		case s.ch == '\n':
			s.endWord()
			// Semicolon insertion: a newline after a statement-ending token
			// starts a new statement, which is an expression position.
			if asiTriggers(s.lastSig) {
				s.lastSig = ';'
			}
			s.readChar()

		case s.ch == ' ' || s.ch == '\t' || s.ch == '\r':
			s.endWord()
			s.readChar()

		default:
			if isIdentChar(s.ch) {
				if s.wordPos < 0 {
					s.wordPos = s.pos
				}
			} else {
				s.endWord()
			}
			s.lastSig = s.ch
			s.readChar()
		}
	}
	s.endWord()
	flushCode(len(s.source))

	return spans
}

// endWord finishes the identifier currently being read, if any.
func (s *Scanner) endWord() {
	if s.wordPos >= 0 {
		s.lastWord = s.source[s.wordPos:s.pos]
		s.wordPos = -1
	}
}

// markupStarts reports whether the '<' at the current position begins a
// markup span rather than a comparison or shift operator.
func (s *Scanner) markupStarts() bool {
	next := s.peekChar()
	if !isIdentStart(next) && next != '/' && next != '>' && next != '!' {
		return false
	}
	return s.exprPosition()
}

// exprPosition reports whether the scanner sits where an expression is
// expected, based on the last significant code token.
func (s *Scanner) exprPosition() bool {
	switch s.lastSig {
	case 0, '(', '[', '{', ',', ';', '=', ':', '&', '|', '!', '+', '-', '*', '/', '%', '^', '<', '>':
		return true
	}
	if isIdentChar(s.lastSig) {
		switch s.lastWord {
		case "return", "case", "range", "go", "defer":
			return true
		}
	}
	return false
}

// asiTriggers reports whether a newline after the given rune would insert a
// semicolon under Go's rules.
func asiTriggers(r rune) bool {
	if isIdentChar(r) {
		return true
	}
	switch r {
	case ')', ']', '}', '"', '`', '\'':
		return true
	}
	return false
}

// skipLineComment consumes a // comment up to (not including) the newline.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch != 0 {
		s.readChar()
	}
}

// skipBlockComment consumes a /* */ comment.
func (s *Scanner) skipBlockComment() {
	s.readChar() // consume /
	s.readChar() // consume *
	for s.ch != 0 {
		if s.ch == '*' && s.peekChar() == '/' {
			s.readChar()
			s.readChar()
			return
		}
		s.readChar()
	}
}

// skipString consumes an interpreted string literal.
func (s *Scanner) skipString() {
	s.readChar() // consume opening "
	for s.ch != '"' && s.ch != '\n' && s.ch != 0 {
		if s.ch == '\\' {
			s.readChar()
		}
		s.readChar()
	}
	if s.ch == '"' {
		s.readChar()
	}
}

// skipRawString consumes a raw string literal, which may span lines.
func (s *Scanner) skipRawString() {
	s.readChar() // consume opening `
	for s.ch != '`' && s.ch != 0 {
		s.readChar()
	}
	if s.ch == '`' {
		s.readChar()
	}
}

// skipRune consumes a rune literal.
func (s *Scanner) skipRune() {
	s.readChar() // consume opening '
	if s.ch == '\\' {
		s.readChar()
	}
	s.readChar()
	if s.ch == '\'' {
		s.readChar()
	}
}

// scanMarkup consumes one complete markup literal starting at '<'. The tag
// stack tracks open element names so same-named nesting balances and a
// mismatched close is reported at its own position.
func (s *Scanner) scanMarkup() {
	start := s.position()
	var stack []string

	for {
		if s.ch == 0 {
			s.errors.AddError(start, "unterminated tag: reached end of file inside markup")
			return
		}

		switch s.ch {
		case '<':
			if s.peekChar() == '!' {
				s.skipMarkupDirective()
				// A comment or <!...> directive at top level is a complete span.
				if len(stack) == 0 {
					return
				}
				continue
			}

			closing := false
			s.readChar() // consume <
			if s.ch == '/' {
				closing = true
				s.readChar()
			}
			name := s.readTagName()

			if closing {
				s.skipMarkupSpace()
				if s.ch != '>' {
					s.errors.AddErrorf(s.position(), "malformed closing tag </%s>", name)
					return
				}
				s.readChar() // consume >
				if len(stack) == 0 {
					s.errors.AddErrorf(start, "closing tag </%s> without matching open tag", name)
					return
				}
				top := stack[len(stack)-1]
				if top != name {
					s.errors.AddErrorf(start, "mismatched closing tag: expected </%s>, got </%s>", top, name)
					return
				}
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					return
				}
				continue
			}

			selfClose, ok := s.scanTagRest(start)
			if !ok {
				return
			}
			if !selfClose {
				stack = append(stack, name)
			}
			if len(stack) == 0 {
				return
			}

		case '{':
			if !s.skipBraces() {
				return
			}

		default:
			s.readChar()
		}
	}
}

// scanTagRest consumes the remainder of an open tag after its name: attributes
// with quoted or braced values, then '>' or '/>'. Returns selfClose and ok.
func (s *Scanner) scanTagRest(start Position) (bool, bool) {
	for {
		switch s.ch {
		case 0:
			s.errors.AddError(start, "unterminated tag: reached end of file inside tag")
			return false, false
		case '>':
			s.readChar()
			return false, true
		case '/':
			if s.peekChar() == '>' {
				s.readChar()
				s.readChar()
				return true, true
			}
			s.readChar()
		case '"', '\'':
			if !s.skipAttrString() {
				return false, false
			}
		case '{':
			if !s.skipBraces() {
				return false, false
			}
		default:
			s.readChar()
		}
	}
}

// skipAttrString consumes a quoted attribute value, single or double quoted.
func (s *Scanner) skipAttrString() bool {
	quote := s.ch
	pos := s.position()
	s.readChar()
	for s.ch != quote {
		if s.ch == 0 || s.ch == '\n' {
			s.errors.AddError(pos, "unterminated attribute value")
			return false
		}
		s.readChar()
	}
	s.readChar() // consume closing quote
	return true
}

// skipBraces consumes a balanced {} interpolation, skipping Go string, raw
// string, and rune literals so braces inside them do not count.
func (s *Scanner) skipBraces() bool {
	pos := s.position()
	s.readChar() // consume {
	depth := 1

	for depth > 0 {
		switch s.ch {
		case 0:
			s.errors.AddError(pos, "unbalanced interpolation: unmatched '{'")
			return false
		case '{':
			depth++
			s.readChar()
		case '}':
			depth--
			s.readChar()
		case '"':
			s.skipString()
		case '`':
			s.skipRawString()
		case '\'':
			s.skipRune()
		default:
			s.readChar()
		}
	}
	return true
}

// skipMarkupDirective consumes <!-- --> comments and <!...> directives.
func (s *Scanner) skipMarkupDirective() {
	pos := s.position()
	s.readChar() // consume <
	s.readChar() // consume !

	if s.ch == '-' && s.peekChar() == '-' {
		for s.ch != 0 {
			if s.ch == '-' && s.peekChar() == '-' {
				s.readChar()
				s.readChar()
				if s.ch == '>' {
					s.readChar()
					return
				}
				continue
			}
			s.readChar()
		}
		s.errors.AddError(pos, "unterminated markup comment")
		return
	}

	for s.ch != '>' && s.ch != 0 {
		s.readChar()
	}
	if s.ch == '>' {
		s.readChar()
	}
}

// readTagName reads a tag name: letters, digits, '.', '-', '_' . Empty for
// fragments (<> and </>).
func (s *Scanner) readTagName() string {
	start := s.pos
	for isIdentChar(s.ch) || s.ch == '.' || s.ch == '-' {
		s.readChar()
	}
	return s.source[start:s.pos]
}

// skipMarkupSpace consumes whitespace inside a tag.
func (s *Scanner) skipMarkupSpace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.readChar()
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentChar(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}
