package htxgen

import "fmt"

// TokenType represents the type of a lexical token inside a markup span.
type TokenType int

const (
	// Special tokens
	TokenEOF   TokenType = iota // end of span
	TokenError                  // lexer error

	// Literals
	TokenText    // raw text between tags
	TokenIdent   // tag or attribute name
	TokenString  // quoted attribute value: "..." or '...'
	TokenNumber  // numeric attribute value: 123 or 1.5
	TokenComment // <!-- ... -->

	// Punctuation
	TokenEquals      // =
	TokenLAngle      // <
	TokenRAngle      // >
	TokenLAngleSlash // </
	TokenSlashAngle  // />

	// Composite tokens
	TokenGoExpr // Go expression inside {}
	TokenSpread // Go expression inside {**}
)

// tokenNames maps token types to their string names for debugging.
var tokenNames = map[TokenType]string{
	TokenEOF:         "EOF",
	TokenError:       "Error",
	TokenText:        "Text",
	TokenIdent:       "Ident",
	TokenString:      "String",
	TokenNumber:      "Number",
	TokenComment:     "Comment",
	TokenEquals:      "=",
	TokenLAngle:      "<",
	TokenRAngle:      ">",
	TokenLAngleSlash: "</",
	TokenSlashAngle:  "/>",
	TokenGoExpr:      "GoExpr",
	TokenSpread:      "Spread",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Token represents a lexical token with its type, literal value, and source position.
type Token struct {
	Type     TokenType
	Literal  string
	Line     int
	Column   int
	StartPos int // byte offset in source where token starts
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s at %d:%d", t.Type, t.Line, t.Column)
	}
	// Truncate long literals for readability
	lit := t.Literal
	if len(lit) > 20 {
		lit = lit[:17] + "..."
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, lit, t.Line, t.Column)
}

// Position represents a source code location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
