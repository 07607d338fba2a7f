package htx

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Prerenderer is implemented by components that need to run before their
// own Render, for example to fetch data.
type Prerenderer interface {
	Prerender(ctx *Context)
}

// Postrenderer is implemented by components that want to see what their
// Render produced.
type Postrenderer interface {
	Postrender(rendered any)
}

// ChildPostrenderer is implemented by components notified each time a
// descendant component finishes rendering. Collectors build on this.
type ChildPostrenderer interface {
	PostrenderChild(child Component, ctx *Context)
}

// Deferred delays producing content until the rest of the document has
// rendered. The function runs while the final string is assembled, so it
// can read state accumulated during the walk, like collected styles or
// elements bound to refs.
type Deferred func() any

// Render walks the tree from root and returns the rendered string.
// Validation and access failures inside component code surface as the
// returned error; unrelated panics propagate.
func Render(root Component) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if fail, ok := r.(renderFailure); ok {
				err = fail
				return
			}
			panic(r)
		}
	}()

	root.base().ensureInit(root)
	r := &renderer{}
	var list []any
	r.toList(root, EmptyContext(), &list)

	// Refs bind once the walk completes, before deferred content renders,
	// so a Deferred can reach elements through their refs. With a shared
	// ref the element bound last, in document order, wins.
	r.bindPending()

	var sb strings.Builder
	r.finish(&sb, list)
	return sb.String(), nil
}

// MustRender is Render panicking on error.
func MustRender(root Component) string {
	s, err := Render(root)
	if err != nil {
		panic(err)
	}
	return s
}

type pendingBind struct {
	binder RefBinder
	comp   Component
}

// renderer accumulates the flat output list in the first phase and the
// ref bindings to apply once the walk completes.
type renderer struct {
	pending []pendingBind
}

// bindPending applies the queued ref bindings and clears the queue.
func (r *renderer) bindPending() {
	for _, p := range r.pending {
		p.binder.bindRef(p.comp)
	}
	r.pending = nil
}

// toList appends v's rendering to list as strings, keeping Deferred
// values unresolved for the second phase.
func (r *renderer) toList(v any, ctx *Context, list *[]any) {
	switch c := v.(type) {
	case nil:
	case string:
		*list = append(*list, escapeText(c))
	case Raw:
		*list = append(*list, string(c))
	case bool:
		if c {
			*list = append(*list, "true")
		}
	case int:
		*list = append(*list, strconv.Itoa(c))
	case int64:
		*list = append(*list, strconv.FormatInt(c, 10))
	case float64:
		*list = append(*list, strconv.FormatFloat(c, 'g', -1, 64))
	case Deferred:
		*list = append(*list, c)
	case *Fragment:
		for _, sub := range c.base().children {
			r.toList(sub, ctx, list)
		}
	case TagElement:
		r.tagToList(c, ctx, list)
	case Component:
		r.componentToList(c, ctx, list)
	case []any:
		for _, sub := range c {
			r.toList(sub, ctx, list)
		}
	default:
		*list = append(*list, escapeText(fmt.Sprint(c)))
	}
}

// tagToList serializes a markup tag. Tags have no lifecycle hooks: the
// open tag, the walked children and the close tag go straight to output.
func (r *renderer) tagToList(tag TagElement, ctx *Context, list *[]any) {
	el := tag.base()
	el.ensureInit(tag)
	if el.pendingRef != nil {
		r.pending = append(r.pending, pendingBind{el.pendingRef, tag})
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag.TagName())
	writeAttrs(&sb, el)
	if tag.Void() {
		sb.WriteString(" />")
		*list = append(*list, sb.String())
		return
	}
	sb.WriteByte('>')
	*list = append(*list, sb.String())

	for _, child := range el.children {
		r.toList(child, ctx, list)
	}
	*list = append(*list, "</"+tag.TagName()+">")
}

// writeAttrs serializes the set props in sorted name order. True booleans
// render as bare names, false ones not at all, nil as an empty value, and
// function values are skipped since they have no text form.
func writeAttrs(sb *strings.Builder, el *Element) {
	if len(el.props) == 0 {
		return
	}
	names := make([]string, 0, len(el.props))
	for name := range el.props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := el.props[name].(type) {
		case bool:
			if v {
				sb.WriteByte(' ')
				sb.WriteString(name)
			}
		case nil:
			sb.WriteByte(' ')
			sb.WriteString(name)
			sb.WriteString(`=""`)
		case Raw:
			sb.WriteByte(' ')
			sb.WriteString(name)
			sb.WriteString(`="`)
			sb.WriteString(string(v))
			sb.WriteByte('"')
		default:
			if reflect.TypeOf(v).Kind() == reflect.Func {
				continue
			}
			sb.WriteByte(' ')
			sb.WriteString(name)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(fmt.Sprint(v)))
			sb.WriteByte('"')
		}
	}
}

// componentToList expands a component: Prerender, context push for
// providers, Render, Postrender, ancestor notification, then the walk of
// what Render produced.
func (r *renderer) componentToList(comp Component, ctx *Context, list *[]any) {
	el := comp.base()
	el.ensureInit(comp)
	if el.pendingRef != nil {
		r.pending = append(r.pending, pendingBind{el.pendingRef, comp})
	}

	if pre, ok := comp.(Prerenderer); ok {
		pre.Prerender(ctx)
	}
	if provider, ok := comp.(interface{ contextValues() map[string]any }); ok {
		ctx = ctx.With(el.name, provider.contextValues())
	}

	out := comp.Render(ctx)

	if post, ok := comp.(Postrenderer); ok {
		post.Postrender(out)
	}
	for p := el.parent; p != nil; p = p.base().parent {
		if cp, ok := p.(ChildPostrenderer); ok {
			cp.PostrenderChild(comp, ctx)
		}
	}

	for _, n := range flattenChildren(comp, []any{out}) {
		r.toList(n, ctx, list)
	}
}

// finish writes the first phase's list into sb, resolving Deferred values
// now that the walk is complete. Deferred output renders with an empty
// context and may itself contain more deferred values.
func (r *renderer) finish(sb *strings.Builder, list []any) {
	for _, item := range list {
		switch v := item.(type) {
		case string:
			sb.WriteString(v)
		case Deferred:
			if v == nil {
				continue
			}
			var sub []any
			for _, n := range flattenChildren(nil, []any{v()}) {
				r.toList(n, EmptyContext(), &sub)
			}
			r.bindPending()
			r.finish(sb, sub)
		}
	}
}
