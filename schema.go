package htx

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Schema is the validated prop declaration set for one component or tag
// type. Schemas are built once, up front, so bad declarations surface at
// definition time instead of first use.
type Schema struct {
	owner string
	specs map[string]PropDef
	names []string
}

// SchemaOption adjusts how a schema is assembled.
type SchemaOption func(*schemaConfig)

type schemaConfig struct {
	parents []*Schema
	exclude []string
}

// Extends merges the parent's props into the new schema. Props declared
// directly take precedence over inherited ones.
func Extends(parent *Schema) SchemaOption {
	return func(c *schemaConfig) { c.parents = append(c.parents, parent) }
}

// Exclude removes inherited props by name. Setting an excluded prop fails
// the same way an undeclared one does.
func Exclude(names ...string) SchemaOption {
	return func(c *schemaConfig) { c.exclude = append(c.exclude, names...) }
}

// baseProps are available on every element unless excluded.
var baseProps = PropTypes{
	"ref":   Optional(Type[RefBinder]()),
	"id":    Optional(String),
	"class": Optional(String),
}

// NewSchema builds a schema for the named owner. It reports a
// SchemaDefinitionError for declarations that can never be satisfied:
// an empty choice list, a default on a required prop, or a default that
// fails its own prop's validation.
func NewSchema(owner string, props PropTypes, opts ...SchemaOption) (*Schema, error) {
	var cfg schemaConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	specs := make(map[string]PropDef, len(baseProps)+len(props))
	for name, def := range baseProps {
		specs[name] = def
	}
	for _, parent := range cfg.parents {
		for name, def := range parent.specs {
			specs[name] = def
		}
	}
	for name, def := range props {
		specs[name] = def
	}
	for _, name := range cfg.exclude {
		delete(specs, name)
	}

	s := &Schema{owner: owner, specs: specs}
	for name, def := range specs {
		if def.ChoiceList != nil && len(def.ChoiceList) == 0 {
			return nil, &SchemaDefinitionError{
				Owner: owner, Prop: name,
				Message: fmt.Sprintf("<%s> must have a list of values for prop `%s`", owner, name),
			}
		}
		if def.IsRequired && def.HasDefault {
			return nil, &SchemaDefinitionError{
				Owner: owner, Prop: name,
				Message: fmt.Sprintf("<%s> cannot have a default value for the required prop `%s`", owner, name),
			}
		}
		if def.HasDefault {
			converted, ok := s.checkValue(def, name, def.DefaultValue)
			if !ok {
				return nil, &SchemaDefinitionError{
					Owner: owner, Prop: name,
					Message: fmt.Sprintf("<%s>.%s: %s `%v` is not a valid default value",
						owner, name, def.Type.Name(), def.DefaultValue),
				}
			}
			def.DefaultValue = converted
			specs[name] = def
		}
	}

	s.names = make([]string, 0, len(specs))
	for name := range specs {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s, nil
}

// MustNewSchema is NewSchema panicking on definition errors, for package
// level schema variables.
func MustNewSchema(owner string, props PropTypes, opts ...SchemaOption) *Schema {
	s, err := NewSchema(owner, props, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Owner returns the name the schema was defined for.
func (s *Schema) Owner() string { return s.owner }

// Names returns the declared prop names in sorted order. The slice is
// shared and must not be modified.
func (s *Schema) Names() []string { return s.names }

// Spec returns the definition of a declared prop.
func (s *Schema) Spec(name string) (PropDef, bool) {
	def, ok := s.specs[name]
	return def, ok
}

// Allows reports whether the prop name may be set on elements using this
// schema. data- and aria- attributes are always writable.
func (s *Schema) Allows(name string) bool {
	if isFreeformAttr(name) {
		return true
	}
	_, ok := s.specs[name]
	return ok
}

func isFreeformAttr(name string) bool {
	return strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-")
}

// set validates a prop assignment on behalf of the named element and
// returns the value to store. Unknown names always fail. Bool conversion
// always runs because attribute rendering depends on real booleans. Other
// value and choice checks run only in dev mode.
func (s *Schema) set(element, name string, value any) any {
	if isFreeformAttr(name) {
		return value
	}
	def, declared := s.specs[name]
	if !declared {
		panic(&InvalidPropNameError{Element: element, Prop: name})
	}
	if def.Type == Bool {
		converted, ok := Bool.convert(value)
		if !ok {
			if str, isStr := value.(string); isStr && strings.EqualFold(str, name) {
				converted = true
			} else {
				panic(&InvalidPropBoolError{Element: element, Prop: name, Value: value})
			}
		}
		return converted
	}
	if !InDevMode() {
		return value
	}
	converted, ok := s.checkValue(def, name, value)
	if !ok {
		if len(def.ChoiceList) > 0 {
			panic(&InvalidPropChoiceError{Element: element, Prop: name, Value: value, Choices: def.ChoiceList})
		}
		panic(&InvalidPropValueError{Element: element, Prop: name, Value: value, Expected: def.Type.Name()})
	}
	return converted
}

// checkValue converts a value per the definition and checks choice
// membership. It never panics; callers decide which error the failure is.
func (s *Schema) checkValue(def PropDef, name string, value any) (any, bool) {
	if len(def.ChoiceList) > 0 {
		for _, choice := range def.ChoiceList {
			if choiceEqual(choice, value) {
				return value, true
			}
		}
		return nil, false
	}
	converted, ok := def.Type.convert(value)
	if !ok && def.Type == Bool {
		if str, isStr := value.(string); isStr && strings.EqualFold(str, name) {
			return true, true
		}
	}
	return converted, ok
}

func choiceEqual(choice, value any) bool {
	if choice == nil || value == nil {
		return choice == value
	}
	if !reflect.TypeOf(choice).Comparable() || !reflect.TypeOf(value).Comparable() {
		return false
	}
	return choice == value
}

// defaultFor returns the declared default for a prop, if any.
func (s *Schema) defaultFor(name string) (any, bool) {
	def, ok := s.specs[name]
	if !ok || !def.HasDefault {
		return nil, false
	}
	return def.DefaultValue, true
}

// required reports whether the prop is declared required.
func (s *Schema) required(name string) bool {
	def, ok := s.specs[name]
	return ok && def.IsRequired
}

var (
	schemaMu sync.RWMutex
	schemas  = map[reflect.Type]*Schema{}
)

// Define registers the prop schema for a component type. Call it once per
// type, usually from a package level variable or init.
func Define[T Component](props PropTypes, opts ...SchemaOption) (*Schema, error) {
	st, err := structTypeOf(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	s, err := NewSchema(st.Name(), props, opts...)
	if err != nil {
		return nil, err
	}
	schemaMu.Lock()
	schemas[st] = s
	schemaMu.Unlock()
	return s, nil
}

// MustDefine is Define panicking on definition errors.
func MustDefine[T Component](props PropTypes, opts ...SchemaOption) *Schema {
	s, err := Define[T](props, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func structTypeOf(rt reflect.Type) (reflect.Type, error) {
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("htx: component type %s is not a struct", rt)
	}
	return rt, nil
}

// schemaFor returns the registered schema for the component's type,
// building and caching a base-only schema when none was defined.
func schemaFor(c Component) *Schema {
	rt := reflect.TypeOf(c)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	schemaMu.RLock()
	s := schemas[rt]
	schemaMu.RUnlock()
	if s != nil {
		return s
	}
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if s = schemas[rt]; s != nil {
		return s
	}
	s = MustNewSchema(rt.Name(), nil)
	schemas[rt] = s
	return s
}
