package htxgen

import (
	"strings"
	"testing"
)

func parseOne(t *testing.T, source string) Node {
	t.Helper()
	root, err := ParseMarkup("test.htx", source, Position{File: "test.htx", Line: 1, Column: 1})
	if err != nil {
		t.Fatalf("ParseMarkup(%q) error: %v", source, err)
	}
	return root
}

func TestParser_Element(t *testing.T) {
	root := parseOne(t, `<div class="card" id="main">hello</div>`)

	el, ok := root.(*ElementNode)
	if !ok {
		t.Fatalf("root = %T, want *ElementNode", root)
	}
	if el.Name != "div" {
		t.Errorf("Name = %q, want %q", el.Name, "div")
	}
	if len(el.Attrs) != 2 {
		t.Fatalf("got %d attrs, want 2", len(el.Attrs))
	}
	if el.Attrs[0].Name != "class" || el.Attrs[1].Name != "id" {
		t.Errorf("attr names = %q, %q; want class, id", el.Attrs[0].Name, el.Attrs[1].Name)
	}
	if len(el.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(el.Children))
	}
	text, ok := el.Children[0].(*TextNode)
	if !ok || text.Text != "hello" {
		t.Errorf("child = %#v, want TextNode(hello)", el.Children[0])
	}
	if el.SelfClose {
		t.Error("SelfClose = true, want false")
	}
}

func TestParser_SelfClose(t *testing.T) {
	root := parseOne(t, `<br />`)
	el := root.(*ElementNode)
	if el.Name != "br" || !el.SelfClose {
		t.Errorf("got %q selfClose=%v, want br selfClose=true", el.Name, el.SelfClose)
	}
	if el.EndLine != 1 {
		t.Errorf("EndLine = %d, want 1", el.EndLine)
	}
}

func TestParser_Fragment(t *testing.T) {
	root := parseOne(t, `<><p>a</p><p>b</p></>`)
	frag, ok := root.(*FragmentNode)
	if !ok {
		t.Fatalf("root = %T, want *FragmentNode", root)
	}
	if len(frag.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(frag.Children))
	}
	for i, want := range []string{"a", "b"} {
		p := frag.Children[i].(*ElementNode)
		if p.Name != "p" {
			t.Errorf("child %d = <%s>, want <p>", i, p.Name)
		}
		if text := p.Children[0].(*TextNode); text.Text != want {
			t.Errorf("child %d text = %q, want %q", i, text.Text, want)
		}
	}
}

func TestParser_NestedElements(t *testing.T) {
	root := parseOne(t, `<ul><li><a href="/x">x</a></li></ul>`)
	ul := root.(*ElementNode)
	li := ul.Children[0].(*ElementNode)
	a := li.Children[0].(*ElementNode)
	if a.Name != "a" || a.Attrs[0].Name != "href" {
		t.Errorf("innermost = <%s %s>, want <a href>", a.Name, a.Attrs[0].Name)
	}
}

func TestParser_ExpressionChild(t *testing.T) {
	root := parseOne(t, `<div>{user.Name}</div>`)
	el := root.(*ElementNode)
	expr, ok := el.Children[0].(*ExprNode)
	if !ok {
		t.Fatalf("child = %T, want *ExprNode", el.Children[0])
	}
	if expr.Expr != "user.Name" {
		t.Errorf("Expr = %q, want %q", expr.Expr, "user.Name")
	}
}

func TestParser_CommentChild(t *testing.T) {
	root := parseOne(t, `<div><!-- note --></div>`)
	el := root.(*ElementNode)
	c, ok := el.Children[0].(*CommentNode)
	if !ok {
		t.Fatalf("child = %T, want *CommentNode", el.Children[0])
	}
	if c.Text != " note " {
		t.Errorf("Text = %q, want %q", c.Text, " note ")
	}
}

func TestParser_AttributeValues(t *testing.T) {
	type tc struct {
		attr     string
		expected Node
	}

	tests := map[string]tc{
		"quoted string": {
			attr:     `name="alice"`,
			expected: &StringValue{Value: "alice"},
		},
		"bare attribute": {
			attr:     `disabled`,
			expected: nil,
		},
		"quoted true": {
			attr:     `open="true"`,
			expected: &BoolValue{Value: true},
		},
		"unquoted false": {
			attr:     `open=false`,
			expected: &BoolValue{Value: false},
		},
		"case insensitive keyword": {
			attr:     `open="True"`,
			expected: &BoolValue{Value: true},
		},
		"none keyword": {
			attr:     `value="none"`,
			expected: &NilValue{},
		},
		"notprovided keyword": {
			attr:     `value="notprovided"`,
			expected: &NotProvidedValue{},
		},
		"quoted integer": {
			attr:     `max="10"`,
			expected: &NumberValue{Text: "10"},
		},
		"unquoted integer": {
			attr:     `max=10`,
			expected: &NumberValue{Text: "10"},
		},
		"negative integer": {
			attr:     `offset=-3`,
			expected: &NumberValue{Text: "-3"},
		},
		"float": {
			attr:     `step="1.5"`,
			expected: &NumberValue{Text: "1.5", IsFloat: true},
		},
		"inf stays a string": {
			attr:     `value="inf"`,
			expected: &StringValue{Value: "inf"},
		},
		"mixed digits stay a string": {
			attr:     `value="10x"`,
			expected: &StringValue{Value: "10x"},
		},
		"expression": {
			attr:     `value={total()}`,
			expected: &ExprValue{Expr: "total()"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := parseOne(t, "<div "+tt.attr+">x</div>")
			el := root.(*ElementNode)
			if len(el.Attrs) != 1 {
				t.Fatalf("got %d attrs, want 1", len(el.Attrs))
			}
			got := el.Attrs[0].Value

			switch want := tt.expected.(type) {
			case nil:
				if got != nil {
					t.Errorf("Value = %#v, want nil (bare attribute)", got)
				}
			case *StringValue:
				v, ok := got.(*StringValue)
				if !ok || v.Value != want.Value {
					t.Errorf("Value = %#v, want StringValue(%q)", got, want.Value)
				}
			case *BoolValue:
				v, ok := got.(*BoolValue)
				if !ok || v.Value != want.Value {
					t.Errorf("Value = %#v, want BoolValue(%v)", got, want.Value)
				}
			case *NilValue:
				if _, ok := got.(*NilValue); !ok {
					t.Errorf("Value = %#v, want NilValue", got)
				}
			case *NotProvidedValue:
				if _, ok := got.(*NotProvidedValue); !ok {
					t.Errorf("Value = %#v, want NotProvidedValue", got)
				}
			case *NumberValue:
				v, ok := got.(*NumberValue)
				if !ok || v.Text != want.Text || v.IsFloat != want.IsFloat {
					t.Errorf("Value = %#v, want NumberValue(%q, float=%v)", got, want.Text, want.IsFloat)
				}
			case *ExprValue:
				v, ok := got.(*ExprValue)
				if !ok || v.Expr != want.Expr {
					t.Errorf("Value = %#v, want ExprValue(%q)", got, want.Expr)
				}
			}
		})
	}
}

func TestParser_Spread(t *testing.T) {
	root := parseOne(t, `<div id="x" {**extra} class="y">ok</div>`)
	el := root.(*ElementNode)
	if len(el.Attrs) != 3 {
		t.Fatalf("got %d attrs, want 3", len(el.Attrs))
	}
	spread := el.Attrs[1]
	if !spread.Spread || spread.Expr != "extra" {
		t.Errorf("attr 1 = %+v, want spread(extra)", spread)
	}
	if el.Attrs[0].Name != "id" || el.Attrs[2].Name != "class" {
		t.Errorf("literal attrs around spread lost their order")
	}
}

func TestNormalizeText(t *testing.T) {
	type tc struct {
		input    string
		expected string
		keep     bool
	}

	tests := map[string]tc{
		"plain word": {
			input:    "hello",
			expected: "hello",
			keep:     true,
		},
		"single line kept verbatim": {
			input:    "  two words  ",
			expected: "  two words  ",
			keep:     true,
		},
		"empty": {
			input:    "",
			expected: "",
			keep:     false,
		},
		"whitespace with newline dropped": {
			input:    "\n\t\t",
			expected: "",
			keep:     false,
		},
		"leading indentation trimmed": {
			input:    "  \n  New ",
			expected: "New",
			keep:     true,
		},
		"lines joined with single spaces": {
			input:    "line one\n\t\tline two\n",
			expected: "line one line two",
			keep:     true,
		},
		"blank interior lines dropped": {
			input:    " a \n\n b ",
			expected: "a b",
			keep:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, keep := normalizeText(tt.input)
			if keep != tt.keep {
				t.Errorf("keep = %v, want %v", keep, tt.keep)
			}
			if got != tt.expected {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParser_MultilineWhitespace(t *testing.T) {
	root := parseOne(t, "<div>\n\t<p>\n\t\tBody text\n\t</p>\n</div>")
	div := root.(*ElementNode)

	// The whitespace-only runs between tags are dropped.
	if len(div.Children) != 1 {
		t.Fatalf("div has %d children, want 1: %#v", len(div.Children), div.Children)
	}
	p := div.Children[0].(*ElementNode)
	text := p.Children[0].(*TextNode)
	if text.Text != "Body text" {
		t.Errorf("text = %q, want %q", text.Text, "Body text")
	}
	if div.EndLine != 5 {
		t.Errorf("div EndLine = %d, want 5", div.EndLine)
	}
	if p.EndLine != 4 {
		t.Errorf("p EndLine = %d, want 4", p.EndLine)
	}
}

func TestParser_Errors(t *testing.T) {
	type tc struct {
		input    string
		contains string
	}

	tests := map[string]tc{
		"mismatched closing tag": {
			input:    `<div>a</span>`,
			contains: "mismatched closing tag: expected </div>, got </span>",
		},
		"unterminated tag": {
			input:    `<div>a`,
			contains: "unterminated tag: missing </div>",
		},
		"unterminated fragment": {
			input:    `<>a`,
			contains: "unterminated fragment: missing </>",
		},
		"content after root": {
			input:    `<br />extra`,
			contains: "unexpected content after root element",
		},
		"second root element": {
			input:    `<br /><br />`,
			contains: "unexpected content after root element",
		},
		"spread in child position": {
			input:    `<div>{**props}</div>`,
			contains: "spread is only valid inside a tag",
		},
		"expression instead of attribute": {
			input:    `<div {props}>x</div>`,
			contains: "use {**expr} to spread props",
		},
		"spread as attribute value": {
			input:    `<div a={**props}>x</div>`,
			contains: "cannot spread into an attribute value",
		},
		"missing attribute value": {
			input:    `<div a=`,
			contains: `missing value for attribute "a"`,
		},
		"empty span": {
			input:    ``,
			contains: "empty markup span",
		},
		"text before root": {
			input:    `hello`,
			contains: "markup must start with '<'",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMarkup("test.htx", tt.input, Position{File: "test.htx", Line: 1, Column: 1})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error = %q, want it to contain %q", err, tt.contains)
			}
		})
	}
}

func TestParser_TrailingWhitespaceAfterRoot(t *testing.T) {
	// Whitespace after the root element is fine; content is not.
	if _, err := ParseMarkup("test.htx", "<br />\n\t", Position{Line: 1, Column: 1}); err != nil {
		t.Errorf("trailing whitespace should parse, got: %v", err)
	}
}

func TestParseFile_Parts(t *testing.T) {
	source := "package v\n\nfunc f() any {\n\treturn <div>\n\t\t<p>hi</p>\n\t</div>\n}\n"
	file, err := ParseFile("test.htx", source)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}

	if file.Name != "test.htx" {
		t.Errorf("Name = %q, want test.htx", file.Name)
	}
	if len(file.Parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(file.Parts))
	}

	if file.Parts[0].Kind != SpanCode || !strings.HasSuffix(file.Parts[0].Code, "return ") {
		t.Errorf("part 0 = %v %q, want code ending in 'return '", file.Parts[0].Kind, file.Parts[0].Code)
	}

	markup := file.Parts[1]
	if markup.Kind != SpanMarkup {
		t.Fatalf("part 1 kind = %v, want Markup", markup.Kind)
	}
	if markup.Position.Line != 4 {
		t.Errorf("markup part starts at line %d, want 4", markup.Position.Line)
	}
	if markup.EndLine != 6 {
		t.Errorf("markup part EndLine = %d, want 6", markup.EndLine)
	}
	if _, ok := markup.Root.(*ElementNode); !ok {
		t.Errorf("markup root = %T, want *ElementNode", markup.Root)
	}

	if file.Parts[2].Kind != SpanCode || file.Parts[2].Code != "\n}\n" {
		t.Errorf("part 2 = %v %q, want trailing code", file.Parts[2].Kind, file.Parts[2].Code)
	}
}

func TestParseFile_DoctypeRoot(t *testing.T) {
	source := "package v\n\nfunc f() any {\n\treturn <!DOCTYPE html>\n}\n"
	file, err := ParseFile("test.htx", source)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	d, ok := file.Parts[1].Root.(*DoctypeNode)
	if !ok {
		t.Fatalf("root = %T, want *DoctypeNode", file.Parts[1].Root)
	}
	if d.Doctype != "html" {
		t.Errorf("Doctype = %q, want html", d.Doctype)
	}
}

func TestParseFile_CollectsErrorsAcrossSpans(t *testing.T) {
	source := "a := <div>{**p}</div>\nb := <p>{**q}</p>\n"
	_, err := ParseFile("test.htx", source)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	el, ok := err.(*ErrorList)
	if !ok {
		t.Fatalf("err = %T, want *ErrorList", err)
	}
	if el.Len() != 2 {
		t.Errorf("got %d errors, want 2: %v", el.Len(), el)
	}
}
