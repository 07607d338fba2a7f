package htxgen

import "strings"

// Parser builds a markup tree from a single markup span. The lexer is
// mode-driven, so the parser pulls tag-mode and child-mode tokens explicitly
// instead of keeping a fixed lookahead window; a one-token pushback covers
// the bare-attribute case where the parser has to look past a name for '='.
type Parser struct {
	filename string
	lex      *Lexer
	errors   *ErrorList

	pushback    Token
	hasPushback bool
}

// NewParser creates a Parser for a markup span whose first character sits at
// start in the original file.
func NewParser(filename, source string, start Position) *Parser {
	return &Parser{
		filename: filename,
		lex:      NewLexer(filename, source, start),
		errors:   NewErrorList(),
	}
}

// Errors returns any errors encountered during parsing, including lexer
// errors.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// ParseFile scans source into spans and parses every markup span, returning
// the ordered part list whose concatenated output reproduces the file with
// markup rewritten.
func ParseFile(filename, source string) (*File, error) {
	spans, err := ScanSpans(filename, source)
	if err != nil {
		return nil, err
	}

	file := &File{Name: filename}
	errs := NewErrorList()

	for _, span := range spans {
		part := &Part{
			Kind:     span.Kind,
			Position: span.Pos,
			EndLine:  span.Pos.Line + strings.Count(span.Text, "\n"),
		}
		if span.Kind == SpanCode {
			part.Code = span.Text
		} else {
			root, err := ParseMarkup(filename, span.Text, span.Pos)
			if err != nil {
				mergeErrors(errs, err)
			}
			part.Root = root
		}
		file.Parts = append(file.Parts, part)
	}

	return file, errs.Err()
}

// ParseMarkup parses one markup span into its tree. start anchors positions
// in the original file.
func ParseMarkup(filename, source string, start Position) (Node, error) {
	p := NewParser(filename, source, start)
	root := p.parseRoot()
	p.errors.merge(p.lex.Errors())
	return root, p.errors.Err()
}

// parseRoot parses the single root node of a span and verifies nothing but
// whitespace follows it.
func (p *Parser) parseRoot() Node {
	first := p.lex.NextChild()

	var root Node
	switch first.Type {
	case TokenLAngle:
		root = p.parseElement(first)
	case TokenComment:
		root = p.commentNode(first)
	case TokenEOF:
		p.errors.AddError(p.tokenPos(first), "empty markup span")
		return nil
	case TokenError:
		return nil
	default:
		p.errors.AddErrorf(p.tokenPos(first), "markup must start with '<', got %s", first.Type)
		return nil
	}

	if root == nil || p.errors.HasErrors() {
		return root
	}

	for {
		trailing := p.lex.NextChild()
		if trailing.Type == TokenEOF {
			return root
		}
		if trailing.Type == TokenText && strings.TrimSpace(trailing.Literal) == "" {
			continue
		}
		p.errors.AddError(p.tokenPos(trailing), "unexpected content after root element")
		return root
	}
}

// nextTag returns the next tag-mode token, honoring the pushback slot.
func (p *Parser) nextTag() Token {
	if p.hasPushback {
		p.hasPushback = false
		return p.pushback
	}
	return p.lex.NextTag()
}

// pushTag saves one tag-mode token for the next nextTag call.
func (p *Parser) pushTag(tok Token) {
	p.pushback = tok
	p.hasPushback = true
}

// tokenPos converts a token's location to a Position.
func (p *Parser) tokenPos(tok Token) Position {
	return Position{File: p.filename, Line: tok.Line, Column: tok.Column}
}

// commentNode turns a comment token into a CommentNode, or a DoctypeNode for
// <!DOCTYPE ...> declarations.
func (p *Parser) commentNode(tok Token) Node {
	if rest, ok := cutDoctype(tok.Literal); ok {
		return &DoctypeNode{Doctype: rest, Position: p.tokenPos(tok)}
	}
	return &CommentNode{Text: tok.Literal, Position: p.tokenPos(tok)}
}

// cutDoctype reports whether a directive body is a DOCTYPE declaration and
// returns the declaration text after the keyword.
func cutDoctype(body string) (string, bool) {
	const keyword = "doctype"
	if len(body) < len(keyword) || !strings.EqualFold(body[:len(keyword)], keyword) {
		return "", false
	}
	return strings.TrimSpace(body[len(keyword):]), true
}

// normalizeText applies the child whitespace policy: text with no newline is
// kept verbatim; whitespace-only text containing a newline is dropped
// entirely; multi-line text has each line trimmed, blank lines dropped, and
// the remaining lines joined with single spaces.
func normalizeText(s string) (string, bool) {
	if !strings.Contains(s, "\n") {
		return s, s != ""
	}
	if strings.TrimSpace(s) == "" {
		return "", false
	}

	var kept []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " "), true
}

// mergeErrors folds err into errs, flattening ErrorLists.
func mergeErrors(errs *ErrorList, err error) {
	if err == nil {
		return
	}
	if el, ok := err.(*ErrorList); ok {
		errs.merge(el)
		return
	}
	errs.AddError(Position{}, err.Error())
}
