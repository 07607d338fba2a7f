package htx

import (
	"reflect"
	"strconv"
	"strings"
)

// NotProvided is the explicit "no value" marker. Setting a prop to
// NotProvided removes any value it had, as if it were never passed.
type notProvidedType struct{}

func (notProvidedType) String() string { return "htx.NotProvided" }

// NotProvided unsets a prop when used as its value.
var NotProvided notProvidedType

// PropType describes one kind of prop value and how candidate values are
// converted into it. Conversion runs whenever a prop is set; whether a
// failed conversion is an error depends on dev mode, except for Bool which
// always reports bad values because attribute rendering depends on real
// booleans.
type PropType struct {
	name   string
	accept func(v any) (any, bool)
}

// Name returns the type's name as used in validation errors.
func (t *PropType) Name() string { return t.name }

func (t *PropType) convert(v any) (any, bool) {
	if t == nil || t.accept == nil {
		return v, true
	}
	return t.accept(v)
}

// Any accepts every value unchanged.
var Any = &PropType{
	name:   "any",
	accept: func(v any) (any, bool) { return v, true },
}

// String accepts strings and formats numeric values into their decimal
// representation.
var String = &PropType{
	name: "string",
	accept: func(v any) (any, bool) {
		switch x := v.(type) {
		case string:
			return x, true
		case int:
			return strconv.Itoa(x), true
		case int64:
			return strconv.FormatInt(x, 10), true
		case float64:
			return strconv.FormatFloat(x, 'g', -1, 64), true
		case float32:
			return strconv.FormatFloat(float64(x), 'g', -1, 32), true
		}
		return nil, false
	},
}

// Int accepts the signed and unsigned integer kinds and normalizes them to
// int.
var Int = &PropType{
	name: "int",
	accept: func(v any) (any, bool) {
		switch x := v.(type) {
		case int:
			return x, true
		case int8:
			return int(x), true
		case int16:
			return int(x), true
		case int32:
			return int(x), true
		case int64:
			return int(x), true
		case uint:
			return int(x), true
		case uint8:
			return int(x), true
		case uint16:
			return int(x), true
		case uint32:
			return int(x), true
		}
		return nil, false
	},
}

// Float accepts float and integer kinds and normalizes them to float64.
var Float = &PropType{
	name: "float64",
	accept: func(v any) (any, bool) {
		switch x := v.(type) {
		case float64:
			return x, true
		case float32:
			return float64(x), true
		case int:
			return float64(x), true
		case int64:
			return float64(x), true
		}
		return nil, false
	},
}

// Bool accepts booleans and the attribute spellings "", "true" and
// "false", case-insensitively. A string equal to the prop's own name also
// reads as true, which the schema layer resolves since the name is not
// known here.
var Bool = &PropType{
	name: "bool",
	accept: func(v any) (any, bool) {
		switch x := v.(type) {
		case bool:
			return x, true
		case string:
			switch strings.ToLower(x) {
			case "", "true":
				return true, true
			case "false":
				return false, true
			}
		}
		return nil, false
	},
}

// Func accepts any function value.
var Func = &PropType{
	name: "func",
	accept: func(v any) (any, bool) {
		if v == nil {
			return nil, false
		}
		if reflect.TypeOf(v).Kind() == reflect.Func {
			return v, true
		}
		return nil, false
	},
}

// Type builds a PropType accepting values assignable to T. Untyped nil is
// accepted when T is nilable.
func Type[T any]() *PropType {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	return &PropType{
		name: rt.String(),
		accept: func(v any) (any, bool) {
			if x, ok := v.(T); ok {
				return x, true
			}
			if v == nil {
				switch rt.Kind() {
				case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
					var zero T
					return zero, true
				}
			}
			return nil, false
		},
	}
}

// PropDef declares one prop: its type, whether a caller must supply it, an
// optional default, and an optional closed set of valid values.
type PropDef struct {
	Type         *PropType
	IsRequired   bool
	HasDefault   bool
	DefaultValue any
	ChoiceList   []any
}

// Optional declares a prop of the given type with no default.
func Optional(t *PropType) PropDef {
	return PropDef{Type: t}
}

// Required declares a prop the caller must supply.
func Required(t *PropType) PropDef {
	return PropDef{Type: t, IsRequired: true}
}

// Default declares a prop of the given type whose value falls back to def
// when not supplied.
func Default(t *PropType, def any) PropDef {
	return PropDef{Type: t, HasDefault: true, DefaultValue: def}
}

// Choices declares a prop restricted to the given values, with no default.
func Choices(values ...any) PropDef {
	return PropDef{Type: Any, ChoiceList: values}
}

// DefaultChoices declares a prop restricted to the given values where the
// first one doubles as the default.
func DefaultChoices(first any, rest ...any) PropDef {
	values := append([]any{first}, rest...)
	return PropDef{Type: Any, ChoiceList: values, HasDefault: true, DefaultValue: first}
}

// Require returns a copy of the definition marked required. It is mostly
// useful on Choices, which have no required constructor of their own.
func (d PropDef) Require() PropDef {
	d.IsRequired = true
	return d
}

// PropTypes maps prop names to their definitions. Component types expose
// one through their schema.
type PropTypes map[string]PropDef
