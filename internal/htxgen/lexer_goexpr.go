package htxgen

// readExprToken reads a {expr} or {**expr} token. The current character is
// the opening '{'.
func (l *Lexer) readExprToken() Token {
	l.startToken()
	l.readChar() // consume {

	spread := false
	if l.ch == '*' && l.peekChar() == '*' {
		spread = true
		l.readChar()
		l.readChar()
	}

	expr, ok := l.readGoExpr()
	if !ok {
		return l.makeToken(TokenError, expr)
	}
	if spread {
		return l.makeToken(TokenSpread, expr)
	}
	return l.makeToken(TokenGoExpr, expr)
}

// readGoExpr reads a Go expression up to the brace matching the already
// consumed '{', handling nested braces and skipping string, raw string, and
// rune literals so braces inside them do not count. Markup nested inside the
// expression passes through as raw text; the generator transpiles it
// recursively.
func (l *Lexer) readGoExpr() (string, bool) {
	startPos := l.pos
	braceDepth := 1

	for braceDepth > 0 && l.ch != 0 {
		switch l.ch {
		case '{':
			braceDepth++
		case '}':
			braceDepth--
		case '"':
			l.skipStringInExpr()
			continue
		case '`':
			l.skipRawStringInExpr()
			continue
		case '\'':
			l.skipCharInExpr()
			continue
		}

		if braceDepth > 0 {
			l.readChar()
		}
	}

	if braceDepth != 0 {
		l.errors.AddError(l.position(), "unterminated Go expression: unmatched '{'")
		return l.source[startPos:l.pos], false
	}

	expr := l.source[startPos:l.pos]
	l.readChar() // consume closing }

	return expr, true
}

// skipStringInExpr skips a string literal inside a Go expression.
func (l *Lexer) skipStringInExpr() {
	l.readChar() // consume opening "
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar() // skip escape
		}
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar() // consume closing "
	}
}

// skipRawStringInExpr skips a raw string literal inside a Go expression.
func (l *Lexer) skipRawStringInExpr() {
	l.readChar() // consume opening `
	for l.ch != '`' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == '`' {
		l.readChar() // consume closing `
	}
}

// skipCharInExpr skips a character literal inside a Go expression.
func (l *Lexer) skipCharInExpr() {
	l.readChar() // consume opening '
	if l.ch == '\\' {
		l.readChar() // skip escape
	}
	l.readChar() // skip character
	if l.ch == '\'' {
		l.readChar() // consume closing '
	}
}
