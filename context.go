package htx

// Context carries named values down the element tree during a render.
// Each provider pushes a new frame, so lookup finds the nearest enclosing
// value for a name and shadowed values reappear once the inner provider's
// subtree is done.
type Context struct {
	parent *Context
	owner  string
	values map[string]any
}

var emptyContext = &Context{}

// EmptyContext returns the context used at the root of a render, with no
// values in scope.
func EmptyContext() *Context { return emptyContext }

// With returns a child context adding the given values. The owner names
// the element that provided them.
func (c *Context) With(owner string, values map[string]any) *Context {
	return &Context{parent: c, owner: owner, values: values}
}

// Lookup returns the nearest value for name and whether one is in scope.
func (c *Context) Lookup(name string) (any, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if v, ok := cur.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether a value for name is in scope.
func (c *Context) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Value returns the nearest value for name and panics with a ContextError
// when no provider in scope supplies it.
func (c *Context) Value(name string) any {
	v, ok := c.Lookup(name)
	if !ok {
		panic(&ContextError{Name: name})
	}
	return v
}

// ContextProvider is the base for components whose props become context
// values for their subtree. Declare the values as props on the concrete
// type's schema and let the default Render pass children through.
type ContextProvider struct {
	Element
}

// Render passes the provider's children through unchanged.
func (p *ContextProvider) Render(ctx *Context) any { return p.Children() }

// contextValues freezes the props a provider pushes: every declared prop
// that is set or has a default, plus any freeform data- and aria- values.
func (p *ContextProvider) contextValues() map[string]any {
	el := p.base()
	values := make(map[string]any)
	for name, v := range el.props {
		values[name] = v
	}
	if el.schema != nil {
		for _, name := range el.schema.names {
			if _, ok := values[name]; ok {
				continue
			}
			if def, ok := el.schema.defaultFor(name); ok {
				values[name] = def
			}
		}
	}
	return values
}
