package htxgen

// Node is the interface implemented by all markup tree nodes.
type Node interface {
	node()         // marker method to ensure type safety
	Pos() Position // returns the source position of the node
}

// File represents a scanned and parsed source file: an ordered sequence of
// parts whose concatenated output reproduces the file with markup spans
// rewritten.
type File struct {
	Name  string
	Parts []*Part
}

// Part is one span of the file. Code parts carry raw Go source; markup parts
// carry the parsed tree plus the line footprint of the original span.
type Part struct {
	Kind     SpanKind
	Code     string // raw Go source (code parts)
	Root     Node   // parsed markup tree (markup parts)
	Position Position
	EndLine  int // last source line of the span
}

func (p *Part) node()         {}
func (p *Part) Pos() Position { return p.Position }

// ElementNode represents <name attrs>children</name> or <name attrs />.
// Lowercase names refer to the tag vocabulary; capitalized or dotted names
// refer to user components.
type ElementNode struct {
	Name      string
	Attrs     []*Attribute
	Children  []Node
	SelfClose bool
	Position  Position
	EndLine   int // line of '/>' or of the closing tag's '>'
}

func (e *ElementNode) node()         {}
func (e *ElementNode) Pos() Position { return e.Position }

// FragmentNode represents <>children</>: pure grouping with no element.
type FragmentNode struct {
	Children []Node
	Position Position
	EndLine  int // line of the closing </>'s '>'
}

func (f *FragmentNode) node()         {}
func (f *FragmentNode) Pos() Position { return f.Position }

// CommentNode is a <!-- ... --> markup comment. It renders to nothing but is
// kept in the tree so a comment-only span still emits a valid expression.
type CommentNode struct {
	Text     string
	Position Position
}

func (c *CommentNode) node()         {}
func (c *CommentNode) Pos() Position { return c.Position }

// DoctypeNode is a <!DOCTYPE ...> declaration.
type DoctypeNode struct {
	Doctype  string
	Position Position
}

func (d *DoctypeNode) node()         {}
func (d *DoctypeNode) Pos() Position { return d.Position }

// TextNode is literal text between tags, already normalized per the
// whitespace policy.
type TextNode struct {
	Text     string
	Position Position
}

func (t *TextNode) node()         {}
func (t *TextNode) Pos() Position { return t.Position }

// ExprNode is an expression slot: {expr} in child position. The expression
// text is raw Go source and may itself contain nested markup.
type ExprNode struct {
	Expr     string
	Position Position
}

func (x *ExprNode) node()         {}
func (x *ExprNode) Pos() Position { return x.Position }

// Attribute is name=value, a bare name (value nil, meaning true), or a
// {**expr} spread (Spread true, Expr set, Name empty).
type Attribute struct {
	Name     string
	Value    Node // StringValue, NumberValue, BoolValue, NilValue, NotProvidedValue, or ExprValue; nil for bare names
	Spread   bool
	Expr     string // raw Go expression for spreads
	Position Position
}

func (a *Attribute) node()         {}
func (a *Attribute) Pos() Position { return a.Position }

// StringValue is a quoted attribute literal.
type StringValue struct {
	Value    string
	Position Position
}

func (v *StringValue) node()         {}
func (v *StringValue) Pos() Position { return v.Position }

// NumberValue is a numeric attribute literal, kept as written.
type NumberValue struct {
	Text     string
	IsFloat  bool
	Position Position
}

func (v *NumberValue) node()         {}
func (v *NumberValue) Pos() Position { return v.Position }

// BoolValue is a true/false attribute literal.
type BoolValue struct {
	Value    bool
	Position Position
}

func (v *BoolValue) node()         {}
func (v *BoolValue) Pos() Position { return v.Position }

// NilValue is the none keyword.
type NilValue struct {
	Position Position
}

func (v *NilValue) node()         {}
func (v *NilValue) Pos() Position { return v.Position }

// NotProvidedValue is the notprovided keyword: the explicit "unset" sentinel.
type NotProvidedValue struct {
	Position Position
}

func (v *NotProvidedValue) node()         {}
func (v *NotProvidedValue) Pos() Position { return v.Position }

// ExprValue is a braced attribute value: name={expr}. Bypasses literal
// coercion entirely.
type ExprValue struct {
	Expr     string
	Position Position
}

func (v *ExprValue) node()         {}
func (v *ExprValue) Pos() Position { return v.Position }
