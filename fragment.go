package htx

// Fragment groups children without wrapping them in a tag. The <>...</>
// markup form compiles to Frag, and fragments placed in a child list are
// spliced into it.
type Fragment struct {
	Element
}

// Frag builds a fragment from the given children.
func Frag(children ...any) *Fragment {
	f := &Fragment{}
	f.init(f, "Fragment", schemaFor(f), nil, children)
	return f
}

// Render passes the fragment's children through unchanged.
func (f *Fragment) Render(ctx *Context) any { return f.Children() }
