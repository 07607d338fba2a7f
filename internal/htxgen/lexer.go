package htxgen

import (
	"unicode/utf8"
)

// Lexer tokenizes a single markup span. It is mode-driven by the parser:
// NextTag returns tokens inside a tag (names, =, values, >, />), NextChild
// returns tokens in child position (text runs, expression slots, tag
// delimiters). Positions are reported relative to the original file via the
// span's start position.
type Lexer struct {
	filename string
	source   string
	pos      int  // current position in source
	readPos  int  // next position to read
	ch       rune // current character
	line     int  // current line (1-based, in the original file)
	column   int  // current column (1-based)

	// Track the start position of current token
	tokenLine     int
	tokenColumn   int
	tokenStartPos int

	errors *ErrorList
}

// NewLexer creates a new Lexer for a markup span whose first character sits
// at start in the original file.
func NewLexer(filename, source string, start Position) *Lexer {
	line := start.Line
	column := start.Column
	if line == 0 {
		line = 1
	}
	if column == 0 {
		column = 1
	}
	l := &Lexer{
		filename: filename,
		source:   source,
		line:     line,
		column:   column - 1,
		errors:   NewErrorList(),
	}
	l.readChar()
	return l
}

// Errors returns any errors encountered during lexing.
func (l *Lexer) Errors() *ErrorList {
	return l.errors
}

// readChar advances to the next character in the source.
func (l *Lexer) readChar() {
	prevWasNewline := l.ch == '\n'

	if l.readPos >= len(l.source) {
		l.ch = 0 // EOF
		l.pos = l.readPos
		if prevWasNewline {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		return
	}

	r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size

	if prevWasNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

// peekChar2 returns the character after next without advancing.
func (l *Lexer) peekChar2() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.readPos:])
	if l.readPos+size >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos+size:])
	return r
}

// startToken marks the beginning of a new token.
func (l *Lexer) startToken() {
	l.tokenLine = l.line
	l.tokenColumn = l.column
	l.tokenStartPos = l.pos
}

// makeToken creates a token with the current start position.
func (l *Lexer) makeToken(typ TokenType, literal string) Token {
	return Token{
		Type:     typ,
		Literal:  literal,
		Line:     l.tokenLine,
		Column:   l.tokenColumn,
		StartPos: l.tokenStartPos,
	}
}

// position returns the current token's Position for error reporting.
func (l *Lexer) position() Position {
	return Position{
		File:   l.filename,
		Line:   l.tokenLine,
		Column: l.tokenColumn,
	}
}

// NextTag returns the next token inside a tag. Whitespace between attributes
// is skipped, including newlines.
func (l *Lexer) NextTag() Token {
	l.skipSpace()
	l.startToken()

	switch {
	case l.ch == 0:
		return l.makeToken(TokenEOF, "")

	case l.ch == '>':
		l.readChar()
		return l.makeToken(TokenRAngle, ">")

	case l.ch == '/' && l.peekChar() == '>':
		l.readChar()
		l.readChar()
		return l.makeToken(TokenSlashAngle, "/>")

	case l.ch == '=':
		l.readChar()
		return l.makeToken(TokenEquals, "=")

	case l.ch == '"' || l.ch == '\'':
		return l.readAttrString()

	case l.ch == '{':
		return l.readExprToken()

	case isIdentStart(l.ch):
		return l.readName()

	case isDigit(l.ch) || l.ch == '-' || l.ch == '+' || (l.ch == '.' && isDigit(l.peekChar())):
		return l.readNumber()

	default:
		ch := l.ch
		l.readChar()
		l.errors.AddErrorf(l.position(), "unexpected character %q in tag", ch)
		return l.makeToken(TokenError, string(ch))
	}
}

// NextChild returns the next token in child position: a text run, an
// expression slot, a comment, or a tag delimiter.
func (l *Lexer) NextChild() Token {
	l.startToken()

	switch {
	case l.ch == 0:
		return l.makeToken(TokenEOF, "")

	case l.ch == '<':
		if l.peekChar() == '!' {
			return l.readMarkupComment()
		}
		if l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return l.makeToken(TokenLAngleSlash, "</")
		}
		l.readChar()
		return l.makeToken(TokenLAngle, "<")

	case l.ch == '{':
		return l.readExprToken()

	default:
		return l.readText()
	}
}

// readText reads a raw text run up to the next '<', '{', or end of span.
// Whitespace is preserved; normalization happens in the parser.
func (l *Lexer) readText() Token {
	start := l.pos
	for l.ch != '<' && l.ch != '{' && l.ch != 0 {
		l.readChar()
	}
	return l.makeToken(TokenText, l.source[start:l.pos])
}

// readName reads a tag or attribute name: letters, digits, '_', '-', '.',
// ':' (namespaced attributes).
func (l *Lexer) readName() Token {
	start := l.pos
	for isIdentChar(l.ch) || l.ch == '-' || l.ch == '.' || l.ch == ':' {
		l.readChar()
	}
	return l.makeToken(TokenIdent, l.source[start:l.pos])
}

// readNumber reads a numeric literal, keeping the text as written.
func (l *Lexer) readNumber() Token {
	start := l.pos
	if l.ch == '-' || l.ch == '+' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.makeToken(TokenNumber, l.source[start:l.pos])
}

// readAttrString reads a quoted attribute value. Both quote styles are
// accepted; the literal excludes the quotes. Attribute values may not span
// lines.
func (l *Lexer) readAttrString() Token {
	quote := l.ch
	l.readChar() // consume opening quote
	start := l.pos

	for l.ch != quote {
		if l.ch == 0 || l.ch == '\n' {
			l.errors.AddError(l.position(), "unterminated attribute value")
			return l.makeToken(TokenError, l.source[start:l.pos])
		}
		l.readChar()
	}

	value := l.source[start:l.pos]
	l.readChar() // consume closing quote
	return l.makeToken(TokenString, value)
}

// readMarkupComment reads <!-- ... --> and returns the inner text.
func (l *Lexer) readMarkupComment() Token {
	l.readChar() // consume <
	l.readChar() // consume !
	if l.ch == '-' && l.peekChar() == '-' {
		l.readChar()
		l.readChar()
		start := l.pos
		for l.ch != 0 {
			if l.ch == '-' && l.peekChar() == '-' && l.peekChar2() == '>' {
				text := l.source[start:l.pos]
				l.readChar()
				l.readChar()
				l.readChar()
				return l.makeToken(TokenComment, text)
			}
			l.readChar()
		}
		l.errors.AddError(l.position(), "unterminated markup comment")
		return l.makeToken(TokenError, l.source[start:l.pos])
	}

	// <!DOCTYPE ...> and other directives: skip through '>'.
	start := l.pos
	for l.ch != '>' && l.ch != 0 {
		l.readChar()
	}
	text := l.source[start:l.pos]
	if l.ch == '>' {
		l.readChar()
	}
	return l.makeToken(TokenComment, text)
}

// skipSpace consumes whitespace inside a tag.
func (l *Lexer) skipSpace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
