package htxgen

import (
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

const (
	// RuntimeImportPath is the import path of the element runtime package,
	// referenced as htx in generated code.
	RuntimeImportPath = "github.com/grindlemire/go-htx"

	// HTMLImportPath is the import path of the tag vocabulary package,
	// referenced as html in generated code.
	HTMLImportPath = "github.com/grindlemire/go-htx/html"
)

// Analyzer validates a parsed file before generation: tag names must be
// known or refer to components, void tags take no children, attributes are
// not duplicated, expressions are not empty, and the imports the generated
// code relies on are present.
type Analyzer struct {
	errors *ErrorList

	usesRuntime bool // generated code references htx.
	usesHTML    bool // generated code references html.
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{errors: NewErrorList()}
}

// Errors returns the errors accumulated so far.
func (a *Analyzer) Errors() *ErrorList {
	return a.errors
}

// Analyze checks the whole file. Import requirements are only verified when
// the file carries Go code parts, so bare markup trees can be analyzed in
// isolation.
func (a *Analyzer) Analyze(file *File) error {
	for _, part := range file.Parts {
		if part.Kind == SpanMarkup && part.Root != nil {
			a.checkNode(part.Root)
		}
	}
	a.checkImports(file)
	return a.errors.Err()
}

// checkNode validates one node and recurses into children and embedded
// expressions.
func (a *Analyzer) checkNode(node Node) {
	switch n := node.(type) {
	case *ElementNode:
		a.checkElement(n)

	case *FragmentNode:
		a.usesRuntime = true
		for _, child := range n.Children {
			a.checkNode(child)
		}

	case *TextNode:
		if textNeedsRaw(n.Text) {
			a.usesRuntime = true
		}

	case *ExprNode:
		a.checkExpr(n.Expr, n.Position)

	case *CommentNode, *DoctypeNode:
		a.usesHTML = true
	}
}

// checkElement validates a single element: its name, its attributes, and the
// void-tag children rule.
func (a *Analyzer) checkElement(el *ElementNode) {
	switch {
	case isComponentName(el.Name):
		a.usesRuntime = true
		a.checkComponentName(el)

	case isKnownTag(el.Name):
		a.usesHTML = true
		if isVoidTag(el.Name) && len(el.Children) > 0 {
			a.errors.AddErrorf(el.Position, "tag <%s> does not allow children", el.Name)
		}

	default:
		a.errors.Add(NewErrorWithHint(el.Position,
			"unknown tag <"+el.Name+">",
			"user components must start with an uppercase letter"))
	}

	seen := make(map[string]bool, len(el.Attrs))
	for _, attr := range el.Attrs {
		if attr.Spread {
			a.usesRuntime = true
			a.checkExpr(attr.Expr, attr.Position)
			continue
		}
		a.usesRuntime = true
		if seen[attr.Name] {
			a.errors.AddErrorf(attr.Position, "duplicate attribute %q on <%s>", attr.Name, el.Name)
		}
		seen[attr.Name] = true
		if v, ok := attr.Value.(*ExprValue); ok {
			a.checkExpr(v.Expr, v.Position)
		}
	}

	for _, child := range el.Children {
		a.checkNode(child)
	}
}

// checkComponentName verifies a component reference is a usable Go
// expression: each dotted part an identifier, the final part exported.
func (a *Analyzer) checkComponentName(el *ElementNode) {
	parts := strings.Split(el.Name, ".")
	if len(parts) > 2 {
		a.errors.AddErrorf(el.Position, "component name %q has too many qualifiers", el.Name)
		return
	}
	last := parts[len(parts)-1]
	if last == "" || !(last[0] >= 'A' && last[0] <= 'Z') {
		a.errors.AddErrorf(el.Position, "component %q must be an exported type", el.Name)
	}
	for _, part := range parts {
		if strings.Contains(part, "-") {
			a.errors.AddErrorf(el.Position, "component name %q is not a valid Go identifier", el.Name)
			return
		}
	}
}

// checkExpr validates an expression slot. Markup nested inside the
// expression is parsed and analyzed recursively, so errors surface at check
// time rather than at generation.
func (a *Analyzer) checkExpr(expr string, pos Position) {
	if strings.TrimSpace(expr) == "" {
		a.errors.AddError(pos, "empty expression")
		return
	}
	if !strings.Contains(expr, "<") {
		return
	}

	spans, err := ScanSpansAt(pos.File, expr, pos)
	if err != nil {
		mergeErrors(a.errors, err)
		return
	}
	for _, span := range spans {
		if span.Kind != SpanMarkup {
			continue
		}
		root, err := ParseMarkup(pos.File, span.Text, span.Pos)
		if err != nil {
			mergeErrors(a.errors, err)
		}
		if root != nil {
			a.checkNode(root)
		}
	}
}

// checkImports verifies the file imports the packages the generated code
// references, unaliased so the emitted qualifiers resolve.
func (a *Analyzer) checkImports(file *File) {
	if !a.usesRuntime && !a.usesHTML {
		return
	}
	if len(file.Parts) == 0 || file.Parts[0].Kind != SpanCode {
		return
	}

	// ImportsOnly stops after the import declarations, so truncated Go code
	// after them (the remainder of the first code part) is never parsed.
	src := file.Parts[0].Code
	parsed, err := parser.ParseFile(token.NewFileSet(), file.Name, src, parser.ImportsOnly)
	if err != nil {
		a.errors.AddErrorf(Position{File: file.Name, Line: 1, Column: 1},
			"cannot parse package clause: %v", err)
		return
	}

	aliases := make(map[string]string, len(parsed.Imports))
	paths := make(map[string]bool, len(parsed.Imports))
	for _, imp := range parsed.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		paths[path] = true
		if imp.Name != nil {
			aliases[path] = imp.Name.Name
		}
	}

	if a.usesRuntime {
		a.requireImport(file.Name, paths, aliases, RuntimeImportPath, "htx")
	}
	if a.usesHTML {
		a.requireImport(file.Name, paths, aliases, HTMLImportPath, "html")
	}
}

// requireImport checks one required import and its local name.
func (a *Analyzer) requireImport(filename string, paths map[string]bool, aliases map[string]string, path, want string) {
	pos := Position{File: filename, Line: 1, Column: 1}
	if !paths[path] {
		a.errors.Add(NewErrorWithHint(pos,
			"markup requires the "+want+" package",
			`add import "`+path+`"`))
		return
	}
	if alias, ok := aliases[path]; ok && alias != want {
		a.errors.AddErrorf(pos, "package %q must be imported as %s, not %s", path, want, alias)
	}
}

// textNeedsRaw reports whether rendering would escape the text differently
// from how it was written, in which case it is emitted wrapped in htx.Raw.
func textNeedsRaw(s string) bool {
	return strings.ContainsAny(s, "&<>")
}
