package htxgen

import (
	"bytes"
	"strconv"
	"strings"
)

// Options control code generation.
type Options struct {
	// Header prepends the generated-code header and a //line directive so
	// compiler diagnostics point back into the source file.
	Header bool
}

// Generator emits Go source from a parsed file. Code parts pass through
// verbatim; markup parts become nested constructor calls. The hard invariant
// is line preservation: every span occupies exactly as many output lines as
// it did in the source, padded with newlines placed only after a '(', '{',
// or ',' so the padding is inert.
type Generator struct {
	opts Options

	buf    bytes.Buffer
	line   int // source-equivalent line currently being written (1-based)
	header int // physical lines the header added before the body
	errors *ErrorList

	sourceMap *SourceMap
}

// NewGenerator creates a new Generator.
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Generate produces Go source for a parsed and analyzed file.
func (g *Generator) Generate(file *File) ([]byte, error) {
	g.buf.Reset()
	g.line = 1
	g.header = 0
	g.errors = NewErrorList()
	g.sourceMap = NewSourceMap(file.Name)

	if g.opts.Header {
		g.writeHeader(file.Name)
	}

	for _, part := range file.Parts {
		if part.Kind == SpanCode {
			g.write(part.Code)
			continue
		}
		g.sourceMap.Add(Mapping{
			HtxLine: part.Position.Line,
			GoLine:  g.line + g.header,
			Lines:   part.EndLine - part.Position.Line + 1,
		})
		if part.Root != nil {
			g.emitNode(part.Root)
		}
		g.padTo(part.EndLine)
	}
	g.sourceMap.HeaderLines = g.header

	return g.buf.Bytes(), g.errors.Err()
}

// GetSourceMap returns the source map built during the last Generate call.
func (g *Generator) GetSourceMap() *SourceMap {
	return g.sourceMap
}

// ParseAndGenerate runs the full pipeline on one source file: scan, parse,
// analyze, generate.
func ParseAndGenerate(filename, source string, opts Options) ([]byte, *SourceMap, error) {
	file, err := ParseFile(filename, source)
	if err != nil {
		return nil, nil, err
	}
	if err := NewAnalyzer().Analyze(file); err != nil {
		return nil, nil, err
	}
	g := NewGenerator(opts)
	out, err := g.Generate(file)
	if err != nil {
		return nil, nil, err
	}
	return out, g.GetSourceMap(), nil
}

// writeHeader emits the generated-code header. The //line directive re-bases
// diagnostics so the body maps 1:1 onto the source file again.
func (g *Generator) writeHeader(name string) {
	g.write("// Code generated by htx generate. DO NOT EDIT.\n")
	g.write("// Source: " + name + "\n")
	g.write("\n")
	g.write("//line " + name + ":1\n")
	g.header = g.line - 1
	g.line = 1
}

// write appends text, tracking the current line.
func (g *Generator) write(s string) {
	g.buf.WriteString(s)
	g.line += strings.Count(s, "\n")
}

// padTo writes newlines until the output reaches the given source line.
func (g *Generator) padTo(line int) {
	for g.line < line {
		g.buf.WriteByte('\n')
		g.line++
	}
}

// closeCall closes a constructor call, padding to the line of the closing
// tag first. A trailing comma keeps the padded newlines inert; after a bare
// '(' the newlines need no comma.
func (g *Generator) closeCall(endLine int, hasArgs bool) {
	if endLine > g.line {
		if hasArgs {
			g.write(",")
		}
		g.padTo(endLine)
	}
	g.write(")")
}

// sep writes the separator before the next argument. The space is dropped
// when the argument pads to a later line, so padded lines never end in a
// trailing blank.
func (g *Generator) sep(next Position) {
	g.write(",")
	if next.Line <= g.line {
		g.write(" ")
	}
}

// emitNode writes the constructor expression for one node.
func (g *Generator) emitNode(node Node) {
	switch n := node.(type) {
	case *ElementNode:
		g.emitElement(n)

	case *FragmentNode:
		g.padTo(n.Position.Line)
		g.write("htx.Frag(")
		for i, child := range n.Children {
			if i > 0 {
				g.sep(child.Pos())
			}
			g.emitNode(child)
		}
		g.closeCall(n.EndLine, len(n.Children) > 0)

	case *TextNode:
		g.padTo(n.Position.Line)
		quoted := strconv.Quote(n.Text)
		if textNeedsRaw(n.Text) {
			g.write("htx.Raw(" + quoted + ")")
		} else {
			g.write(quoted)
		}

	case *ExprNode:
		g.emitExpr(n.Expr, n.Position)

	case *CommentNode:
		g.padTo(n.Position.Line)
		g.write("html.Comment(" + strconv.Quote(n.Text) + ")")

	case *DoctypeNode:
		g.padTo(n.Position.Line)
		doctype := n.Doctype
		if doctype == "" {
			doctype = "html"
		}
		g.write("html.Doctype(" + strconv.Quote(doctype) + ")")
	}
}

// emitElement writes a constructor call for one element: a vocabulary
// constructor for known tags, htx.New for components.
func (g *Generator) emitElement(el *ElementNode) {
	g.padTo(el.Position.Line)

	switch {
	case isComponentName(el.Name):
		g.write("htx.New(&" + el.Name + "{}, ")
	case isKnownTag(el.Name):
		g.write("html." + tagIdent(el.Name) + "(")
	default:
		g.errors.AddErrorf(el.Position, "unknown tag <%s>", el.Name)
		return
	}

	g.emitProps(el.Attrs)
	for _, child := range el.Children {
		g.sep(child.Pos())
		g.emitNode(child)
	}
	g.closeCall(el.EndLine, true)
}

// emitProps writes the props argument: nil when there are no attributes, a
// Props literal for plain attributes, or an htx.Merge call interleaving
// literal runs with spreads in source order so later entries win.
func (g *Generator) emitProps(attrs []*Attribute) {
	if len(attrs) == 0 {
		g.write("nil")
		return
	}

	hasSpread := false
	for _, attr := range attrs {
		if attr.Spread {
			hasSpread = true
			break
		}
	}
	if !hasSpread {
		g.emitPropsLiteral(attrs)
		return
	}

	g.write("htx.Merge(")
	for i := 0; i < len(attrs); {
		if attrs[i].Spread {
			if i > 0 {
				g.sep(attrs[i].Position)
			}
			g.emitExpr(attrs[i].Expr, attrs[i].Position)
			i++
			continue
		}
		if i > 0 {
			g.write(", ")
		}
		j := i
		for j < len(attrs) && !attrs[j].Spread {
			j++
		}
		g.emitPropsLiteral(attrs[i:j])
		i = j
	}
	g.write(")")
}

// emitPropsLiteral writes one htx.Props composite literal.
func (g *Generator) emitPropsLiteral(attrs []*Attribute) {
	g.write("htx.Props{")
	for i, attr := range attrs {
		if i > 0 {
			g.sep(attr.Position)
		}
		g.padTo(attr.Position.Line)
		g.write(strconv.Quote(attr.Name) + ": ")
		g.emitAttrValue(attr)
	}
	g.write("}")
}

// emitAttrValue writes one attribute value per the literal coercion already
// applied by the parser. A bare attribute emits true.
func (g *Generator) emitAttrValue(attr *Attribute) {
	switch v := attr.Value.(type) {
	case nil:
		g.write("true")
	case *StringValue:
		g.write(strconv.Quote(v.Value))
	case *NumberValue:
		g.write(v.Text)
	case *BoolValue:
		g.write(strconv.FormatBool(v.Value))
	case *NilValue:
		g.write("nil")
	case *NotProvidedValue:
		g.write("htx.NotProvided")
	case *ExprValue:
		g.emitExpr(v.Expr, v.Position)
	}
}

// emitExpr writes an expression slot. The text is rescanned so markup nested
// inside it is transpiled recursively; plain Go passes through verbatim,
// which keeps the line count intact either way.
func (g *Generator) emitExpr(expr string, pos Position) {
	g.padTo(pos.Line)

	if !strings.Contains(expr, "<") {
		g.write(expr)
		return
	}

	start := Position{File: pos.File, Line: pos.Line, Column: pos.Column + 1}
	spans, err := ScanSpansAt(pos.File, expr, start)
	if err != nil {
		mergeErrors(g.errors, err)
		g.write(expr)
		return
	}

	for _, span := range spans {
		if span.Kind == SpanCode {
			g.write(span.Text)
			continue
		}
		root, err := ParseMarkup(pos.File, span.Text, span.Pos)
		if err != nil {
			mergeErrors(g.errors, err)
		}
		if root == nil {
			g.write(span.Text)
			continue
		}
		g.emitNode(root)
		g.padTo(span.Pos.Line + strings.Count(span.Text, "\n"))
	}
}
