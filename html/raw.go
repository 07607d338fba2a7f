package html

import (
	htx "github.com/grindlemire/go-htx"
)

// Raw marks text to write without escaping.
func Raw(text string) htx.Raw { return htx.Raw(text) }

// CData wraps text in a CDATA section.
func CData(text string) htx.Raw { return htx.Raw("<![CDATA[" + text + "]]>") }

type comment struct {
	htx.Element

	text string
}

// Render drops the comment: source comments never reach output.
func (c *comment) Render(ctx *htx.Context) any { return nil }

// Comment holds a markup comment. Comments render to nothing; use Raw to
// emit a visible one.
func Comment(text string) htx.Component {
	c := &comment{text: text}
	return htx.New(c, nil)
}

type doctype struct {
	htx.Element

	doctype string
}

func (d *doctype) Render(ctx *htx.Context) any {
	return htx.Raw("<!DOCTYPE " + d.doctype + ">")
}

// Doctype builds a document type declaration, defaulting to html.
func Doctype(kind string) htx.Component {
	if kind == "" {
		kind = "html"
	}
	return htx.New(&doctype{doctype: kind}, nil)
}

type conditionalComment struct {
	htx.Element

	condition string
}

func (c *conditionalComment) Render(ctx *htx.Context) any {
	return []any{
		htx.Raw("<!--[if " + c.condition + "]>"),
		c.Children(),
		htx.Raw("<![endif]-->"),
	}
}

// ConditionalComment wraps children in a downlevel-hidden conditional
// comment for legacy Internet Explorer in served documents.
func ConditionalComment(condition string, children ...any) htx.Component {
	return htx.New(&conditionalComment{condition: condition}, nil, children...)
}
