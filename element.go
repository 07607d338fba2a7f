package htx

import "reflect"

// Component is implemented by every element type: embed Element and
// define Render. Render returns the subtree to put in the component's
// place. It may return markup elements, strings, numbers, other
// components, slices, nil, or a Deferred.
type Component interface {
	Render(ctx *Context) any

	base() *Element
}

// TagElement is implemented by markup tag types that serialize straight
// to output instead of expanding to a subtree. Tags get no lifecycle
// hooks.
type TagElement interface {
	Component

	// TagName returns the name written in the opening tag.
	TagName() string
	// Void reports whether the tag self-closes and rejects children.
	Void() bool
}

// Element is the base struct all components and tags embed. It owns the
// validated props and the flattened children.
type Element struct {
	self       Component
	schema     *Schema
	name       string
	props      Props
	children   []any
	parent     Component
	pendingRef RefBinder
	inited     bool
}

func (e *Element) base() *Element { return e }

// New builds a component: props are validated against the type's schema
// and children are flattened. Returns its first argument so construction
// nests.
func New[T Component](c T, props Props, children ...any) T {
	base := c.base()
	base.init(c, componentName(c), schemaFor(c), props, children)
	return c
}

// NewWithSchema builds an element against an explicit schema and display
// name instead of the type registry. Tag packages use it because all
// their tags share one Go type.
func NewWithSchema[T Component](c T, name string, schema *Schema, props Props, children ...any) T {
	c.base().init(c, name, schema, props, children)
	return c
}

func componentName(c Component) string {
	rt := reflect.TypeOf(c)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return rt.Name()
}

func (e *Element) init(self Component, name string, schema *Schema, props Props, children []any) {
	e.self = self
	e.name = name
	e.schema = schema
	e.props = make(Props, len(props))
	if raw, ok := props["ref"]; ok {
		e.setRef(raw)
	}
	for pname, value := range props {
		if pname == "ref" {
			continue
		}
		e.SetProp(pname, value)
	}
	e.children = flattenChildren(self, children)
	e.inited = true
	if tag, ok := self.(TagElement); ok && tag.Void() && len(e.children) > 0 {
		panic(&InvalidChildrenError{Element: e.name, Message: "does not allow children"})
	}
}

// ensureInit fills in the base fields for components built without New,
// such as a bare &App{} passed straight to Render.
func (e *Element) ensureInit(self Component) {
	if e.inited {
		return
	}
	e.init(self, componentName(self), schemaFor(self), nil, nil)
}

func (e *Element) setRef(raw any) {
	if raw == nil {
		return
	}
	if _, ok := raw.(notProvidedType); ok {
		return
	}
	binder, ok := raw.(RefBinder)
	if !ok {
		panic(&InvalidPropValueError{Element: e.name, Prop: "ref", Value: raw, Expected: "htx.RefBinder"})
	}
	e.pendingRef = binder
}

// Name returns the element's display name: the tag name for markup tags,
// the Go type name for components.
func (e *Element) Name() string { return e.name }

// Parent returns the component this element was placed under, or nil at
// the root.
func (e *Element) Parent() Component { return e.parent }

// Children returns a copy of the element's flattened children.
func (e *Element) Children() []any {
	out := make([]any, len(e.children))
	copy(out, e.children)
	return out
}

// Props returns a copy of the element's set props, for spreading into
// another element.
func (e *Element) Props() Props {
	return e.props.clone()
}

// SetProp validates and stores a prop value. Setting NotProvided removes
// the value, as if it were never passed.
func (e *Element) SetProp(name string, value any) {
	if _, ok := value.(notProvidedType); ok {
		delete(e.props, name)
		return
	}
	if e.schema != nil {
		value = e.schema.set(e.name, name, value)
	}
	e.props[name] = value
}

// HasProp reports whether the prop has a value or a schema default.
func (e *Element) HasProp(name string) bool {
	if _, ok := e.props[name]; ok {
		return true
	}
	if e.schema != nil {
		if _, ok := e.schema.defaultFor(name); ok {
			return true
		}
	}
	return false
}

// Prop returns the prop's value or its schema default. Access to a prop
// with neither panics: RequiredPropError for declared required props,
// UnsetPropError otherwise. Undeclared names panic InvalidPropNameError.
func (e *Element) Prop(name string) any {
	if v, ok := e.props[name]; ok {
		return v
	}
	if e.schema == nil {
		panic(&UnsetPropError{Element: e.name, Prop: name})
	}
	if def, ok := e.schema.defaultFor(name); ok {
		return def
	}
	if !e.schema.Allows(name) {
		panic(&InvalidPropNameError{Element: e.name, Prop: name})
	}
	if e.schema.required(name) {
		panic(&RequiredPropError{Element: e.name, Prop: name})
	}
	panic(&UnsetPropError{Element: e.name, Prop: name})
}

// PropDefault returns the prop's value, or fallback when it has neither a
// value nor a schema default.
func (e *Element) PropDefault(name string, fallback any) any {
	if v, ok := e.props[name]; ok {
		return v
	}
	if e.schema != nil {
		if def, ok := e.schema.defaultFor(name); ok {
			return def
		}
	}
	return fallback
}

// PropString returns a string prop, panicking like Prop when unset and
// with InvalidPropValueError when the value is not a string.
func (e *Element) PropString(name string) string {
	v := e.Prop(name)
	s, ok := v.(string)
	if !ok {
		panic(&InvalidPropValueError{Element: e.name, Prop: name, Value: v, Expected: "string"})
	}
	return s
}

// PropInt returns an int prop, panicking like Prop when unset and with
// InvalidPropValueError when the value is not an int.
func (e *Element) PropInt(name string) int {
	v := e.Prop(name)
	n, ok := v.(int)
	if !ok {
		panic(&InvalidPropValueError{Element: e.name, Prop: name, Value: v, Expected: "int"})
	}
	return n
}

// PropBool returns a bool prop, panicking like Prop when unset and with
// InvalidPropValueError when the value is not a bool.
func (e *Element) PropBool(name string) bool {
	v := e.Prop(name)
	b, ok := v.(bool)
	if !ok {
		panic(&InvalidPropValueError{Element: e.name, Prop: name, Value: v, Expected: "bool"})
	}
	return b
}

// PropFloat returns a float64 prop, panicking like Prop when unset and
// with InvalidPropValueError when the value is not a float64.
func (e *Element) PropFloat(name string) float64 {
	v := e.Prop(name)
	f, ok := v.(float64)
	if !ok {
		panic(&InvalidPropValueError{Element: e.name, Prop: name, Value: v, Expected: "float64"})
	}
	return f
}

// flattenChildren normalizes a child list: nil and false are dropped,
// nested slices and fragments are spliced in place, and component
// children get their parent set. Everything else is kept for the
// serializer to stringify.
func flattenChildren(parent Component, children []any) []any {
	out := make([]any, 0, len(children))
	for _, child := range children {
		out = appendChild(out, parent, child)
	}
	return out
}

func appendChild(out []any, parent Component, child any) []any {
	switch c := child.(type) {
	case nil:
		return out
	case bool:
		if !c {
			return out
		}
	case *Fragment:
		if c == nil {
			return out
		}
		for _, sub := range c.base().children {
			out = appendChild(out, parent, sub)
		}
		return out
	case []any:
		for _, sub := range c {
			out = appendChild(out, parent, sub)
		}
		return out
	case []Component:
		for _, sub := range c {
			out = appendChild(out, parent, sub)
		}
		return out
	case []string:
		for _, sub := range c {
			out = append(out, sub)
		}
		return out
	case Component:
		c.base().ensureInit(c)
		if parent != nil {
			c.base().parent = parent
		}
	default:
		if rv := reflect.ValueOf(child); rv.Kind() == reflect.Slice {
			for i := 0; i < rv.Len(); i++ {
				out = appendChild(out, parent, rv.Index(i).Interface())
			}
			return out
		}
	}
	return append(out, child)
}
