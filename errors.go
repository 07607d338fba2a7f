package htx

import "fmt"

// renderFailure marks the error types Render converts from panics into
// returned errors. Panics of any other type propagate.
type renderFailure interface {
	error
	renderFailure()
}

// ElementError reports a failure tied to one element.
type ElementError struct {
	Element string
	Message string
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("<%s>: %s", e.Element, e.Message)
}

func (e *ElementError) renderFailure() {}

// UnsetPropError reports access to a prop that has neither a value nor a
// default.
type UnsetPropError struct {
	Element string
	Prop    string
}

func (e *UnsetPropError) Error() string {
	return fmt.Sprintf("<%s>.%s: prop is not set", e.Element, e.Prop)
}

func (e *UnsetPropError) renderFailure() {}

// RequiredPropError reports access to a required prop that was never
// supplied.
type RequiredPropError struct {
	Element string
	Prop    string
}

func (e *RequiredPropError) Error() string {
	return fmt.Sprintf("<%s>.%s: is a required prop but is not set", e.Element, e.Prop)
}

func (e *RequiredPropError) renderFailure() {}

// InvalidPropNameError reports a prop name the element does not declare.
type InvalidPropNameError struct {
	Element string
	Prop    string
}

func (e *InvalidPropNameError) Error() string {
	return fmt.Sprintf("<%s>.%s: is not an allowed prop", e.Element, e.Prop)
}

func (e *InvalidPropNameError) renderFailure() {}

// InvalidPropValueError reports a value that does not satisfy the prop's
// declared type.
type InvalidPropValueError struct {
	Element  string
	Prop     string
	Value    any
	Expected string
}

func (e *InvalidPropValueError) Error() string {
	return fmt.Sprintf("<%s>.%s: `%v` is not a valid value for this prop (type: %T, expected: %s)",
		e.Element, e.Prop, e.Value, e.Value, e.Expected)
}

func (e *InvalidPropValueError) renderFailure() {}

// InvalidPropChoiceError reports a value outside a choices prop's declared
// list.
type InvalidPropChoiceError struct {
	Element string
	Prop    string
	Value   any
	Choices []any
}

func (e *InvalidPropChoiceError) Error() string {
	return fmt.Sprintf("<%s>.%s: `%v` is not a valid choice for this prop (must be in %v)",
		e.Element, e.Prop, e.Value, e.Choices)
}

func (e *InvalidPropChoiceError) renderFailure() {}

// InvalidPropBoolError reports a value a boolean prop cannot absorb.
type InvalidPropBoolError struct {
	Element string
	Prop    string
	Value   any
}

func (e *InvalidPropBoolError) Error() string {
	return fmt.Sprintf("<%s>.%s: `%v` is not a valid choice for this boolean prop (must be in [true, false, \"true\", \"false\", \"\", %q])",
		e.Element, e.Prop, e.Value, e.Prop)
}

func (e *InvalidPropBoolError) renderFailure() {}

// InvalidChildrenError reports children given to an element that cannot take
// any.
type InvalidChildrenError struct {
	Element string
	Message string
}

func (e *InvalidChildrenError) Error() string {
	return fmt.Sprintf("<%s>: %s", e.Element, e.Message)
}

func (e *InvalidChildrenError) renderFailure() {}

// ContextError reports a context lookup for a name no provider in scope
// supplies.
type ContextError struct {
	Name string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("context value `%s` is not provided", e.Name)
}

func (e *ContextError) renderFailure() {}

// SchemaDefinitionError reports an invalid prop declaration, raised when the
// schema is built rather than when an element is instantiated.
type SchemaDefinitionError struct {
	Owner   string
	Prop    string
	Message string
}

func (e *SchemaDefinitionError) Error() string {
	return e.Message
}

func (e *SchemaDefinitionError) renderFailure() {}
