package htxgen

import (
	"strconv"
	"strings"
)

// parseElement parses one element or fragment. langle is the already
// consumed '<' token marking the element's position.
func (p *Parser) parseElement(langle Token) Node {
	pos := p.tokenPos(langle)

	tok := p.nextTag()
	if tok.Type == TokenRAngle {
		frag := &FragmentNode{Position: pos}
		frag.Children, frag.EndLine = p.parseChildren("", pos)
		return frag
	}
	if tok.Type != TokenIdent {
		p.errors.AddErrorf(p.tokenPos(tok), "expected tag name, got %s", tok.Type)
		return nil
	}

	el := &ElementNode{Name: tok.Literal, Position: pos}
	if !p.parseAttributes(el) {
		return nil
	}
	if el.SelfClose {
		return el
	}
	el.Children, el.EndLine = p.parseChildren(el.Name, pos)
	return el
}

// parseAttributes consumes attributes up to and including the tag's '>' or
// '/>'. Returns false if the tag is malformed.
func (p *Parser) parseAttributes(el *ElementNode) bool {
	for {
		tok := p.nextTag()
		switch tok.Type {
		case TokenRAngle:
			return true

		case TokenSlashAngle:
			el.SelfClose = true
			el.EndLine = tok.Line
			return true

		case TokenIdent:
			attr := p.parseAttribute(tok)
			if attr == nil {
				return false
			}
			el.Attrs = append(el.Attrs, attr)

		case TokenSpread:
			el.Attrs = append(el.Attrs, &Attribute{
				Spread:   true,
				Expr:     tok.Literal,
				Position: p.tokenPos(tok),
			})

		case TokenGoExpr:
			p.errors.Add(NewErrorWithHint(p.tokenPos(tok),
				"expected attribute name, got an expression",
				"use {**expr} to spread props into a tag"))
			return false

		case TokenEOF:
			p.errors.AddErrorf(el.Position, "unterminated tag <%s>", el.Name)
			return false

		case TokenError:
			return false

		default:
			p.errors.AddErrorf(p.tokenPos(tok), "unexpected %s in tag <%s>", tok.Type, el.Name)
			return false
		}
	}
}

// parseAttribute parses one attribute after its name token. A name with no
// '=' is a bare attribute, equivalent to name={true}.
func (p *Parser) parseAttribute(name Token) *Attribute {
	attr := &Attribute{Name: name.Literal, Position: p.tokenPos(name)}

	tok := p.nextTag()
	if tok.Type != TokenEquals {
		p.pushTag(tok)
		return attr
	}

	val := p.nextTag()
	pos := p.tokenPos(val)
	switch val.Type {
	case TokenString, TokenIdent:
		// Quoted or unquoted single-word values take literal coercion.
		attr.Value = coerceLiteral(val.Literal, pos)

	case TokenNumber:
		attr.Value = &NumberValue{
			Text:     val.Literal,
			IsFloat:  strings.Contains(val.Literal, "."),
			Position: pos,
		}

	case TokenGoExpr:
		attr.Value = &ExprValue{Expr: val.Literal, Position: pos}

	case TokenSpread:
		p.errors.Add(NewErrorWithHint(pos,
			"cannot spread into an attribute value",
			"a {**expr} spread stands alone inside the tag"))
		return nil

	case TokenEOF, TokenError:
		p.errors.AddErrorf(pos, "missing value for attribute %q", name.Literal)
		return nil

	default:
		p.errors.AddErrorf(pos, "unexpected %s as value for attribute %q", val.Type, name.Literal)
		return nil
	}
	return attr
}

// parseChildren parses child nodes up to the parent's closing tag and
// returns them with the line of the closing '>'. parentName is empty for
// fragments.
func (p *Parser) parseChildren(parentName string, parentPos Position) ([]Node, int) {
	var children []Node
	for {
		tok := p.lex.NextChild()
		switch tok.Type {
		case TokenText:
			if text, keep := normalizeText(tok.Literal); keep {
				children = append(children, &TextNode{Text: text, Position: p.tokenPos(tok)})
			}

		case TokenGoExpr:
			children = append(children, &ExprNode{Expr: tok.Literal, Position: p.tokenPos(tok)})

		case TokenSpread:
			p.errors.Add(NewErrorWithHint(p.tokenPos(tok),
				"spread is only valid inside a tag",
				"write {expr} to interpolate a value"))
			return children, tok.Line

		case TokenComment:
			children = append(children, p.commentNode(tok))

		case TokenLAngle:
			child := p.parseElement(tok)
			if child == nil {
				return children, tok.Line
			}
			children = append(children, child)

		case TokenLAngleSlash:
			return children, p.parseCloseTag(parentName)

		case TokenEOF:
			if parentName == "" {
				p.errors.AddError(parentPos, "unterminated fragment: missing </>")
			} else {
				p.errors.AddErrorf(parentPos, "unterminated tag: missing </%s>", parentName)
			}
			return children, tok.Line

		case TokenError:
			return children, tok.Line
		}
	}
}

// parseCloseTag parses the remainder of a closing tag after '</' and checks
// it matches the open tag. Returns the line of the closing '>'.
func (p *Parser) parseCloseTag(parentName string) int {
	tok := p.nextTag()
	name := ""
	if tok.Type == TokenIdent {
		name = tok.Literal
		tok = p.nextTag()
	}
	if tok.Type != TokenRAngle {
		p.errors.AddErrorf(p.tokenPos(tok), "malformed closing tag </%s>", name)
		return tok.Line
	}
	if name != parentName {
		if parentName == "" {
			p.errors.AddErrorf(p.tokenPos(tok), "closing tag </%s> without matching open tag", name)
		} else {
			p.errors.AddErrorf(p.tokenPos(tok), "mismatched closing tag: expected </%s>, got </%s>", parentName, name)
		}
	}
	return tok.Line
}

// coerceLiteral applies attribute literal coercion: case-insensitive
// keywords first, then numbers, then plain strings.
func coerceLiteral(text string, pos Position) Node {
	switch strings.ToLower(text) {
	case "true":
		return &BoolValue{Value: true, Position: pos}
	case "false":
		return &BoolValue{Value: false, Position: pos}
	case "none":
		return &NilValue{Position: pos}
	case "notprovided":
		return &NotProvidedValue{Position: pos}
	}

	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return &NumberValue{Text: text, Position: pos}
	}
	// Reject letters so strings like "inf" or "nan" stay strings.
	if !strings.ContainsAny(text, "iInN") {
		if _, err := strconv.ParseFloat(text, 64); err == nil {
			return &NumberValue{Text: text, IsFloat: true, Position: pos}
		}
	}

	return &StringValue{Value: text, Position: pos}
}
