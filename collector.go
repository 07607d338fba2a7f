package htx

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultNamespace is where contributions land when no namespace is
// named.
const DefaultNamespace = "default"

// CSSRenderer is implemented by components contributing per-instance CSS
// to an enclosing CSS collector.
type CSSRenderer interface {
	RenderCSS(ctx *Context) string
}

// CSSGlobalRenderer is implemented by components contributing CSS that is
// the same for every instance. A collector takes it from the first
// instance of each type it sees and ignores the rest.
type CSSGlobalRenderer interface {
	RenderCSSGlobal(ctx *Context) string
}

// JSRenderer is implemented by components contributing per-instance
// scripts to an enclosing JS collector.
type JSRenderer interface {
	RenderJS(ctx *Context) string
}

// JSGlobalRenderer is the once-per-type counterpart of JSRenderer.
type JSGlobalRenderer interface {
	RenderJSGlobal(ctx *Context) string
}

// CollectMarker is implemented by elements whose children are captured by
// enclosing collectors of the matching kind instead of rendering in
// place.
type CollectMarker interface {
	Component

	CollectKind() string
	CollectNamespace() string
}

// collectorShape is what Collector needs from the concrete type embedding
// it: the kind of contribution it gathers and how gathered content is
// wrapped for the document.
type collectorShape interface {
	CollectorKind() string
	WrapCollected(content string) any
}

// Collector is the base for components that gather contributions of one
// kind from the subtree below them. Embed it and define CollectorKind and
// WrapCollected on the concrete type. It captures matching CollectMarker
// children and, per kind, the Render{CSS,JS} and Render{CSS,JS}Global
// output of descendant components. Placement is driven by the concrete
// type's render_position prop: "before" or "after" the collector's
// children, or unset to place the content manually with a Deferred around
// RenderCollected.
type Collector struct {
	Element

	collected   map[string][]string
	order       []string
	globalsDone map[reflect.Type]bool
}

func (c *Collector) kind() string {
	if shape, ok := c.self.(collectorShape); ok {
		return shape.CollectorKind()
	}
	return ""
}

// Render returns the collector's children with the collected content
// spliced in at the configured position. The content resolves after the
// whole document has rendered, so late contributions still appear even
// when placed before them.
func (c *Collector) Render(ctx *Context) any {
	children := c.Children()
	position := c.PropDefault("render_position", nil)
	deferred := Deferred(func() any { return c.RenderCollected() })
	switch position {
	case "before":
		return []any{deferred, children}
	case "after":
		return []any{children, deferred}
	}
	return children
}

// PostrenderChild captures contributions from each descendant component
// as it finishes rendering, in document order.
func (c *Collector) PostrenderChild(child Component, ctx *Context) {
	kind := c.kind()
	if kind == "" {
		return
	}
	if marker, ok := child.(CollectMarker); ok {
		if marker.CollectKind() == kind {
			c.add(marker.CollectNamespace(), collectText(marker.base().children))
		}
		return
	}
	switch kind {
	case "css":
		if g, ok := child.(CSSGlobalRenderer); ok && c.firstOfType(child) {
			c.add(DefaultNamespace, g.RenderCSSGlobal(ctx))
		}
		if inst, ok := child.(CSSRenderer); ok {
			c.add(DefaultNamespace, inst.RenderCSS(ctx))
		}
	case "js":
		if g, ok := child.(JSGlobalRenderer); ok && c.firstOfType(child) {
			c.add(DefaultNamespace, g.RenderJSGlobal(ctx))
		}
		if inst, ok := child.(JSRenderer); ok {
			c.add(DefaultNamespace, inst.RenderJS(ctx))
		}
	}
}

func (c *Collector) firstOfType(child Component) bool {
	rt := reflect.TypeOf(child)
	if c.globalsDone[rt] {
		return false
	}
	if c.globalsDone == nil {
		c.globalsDone = map[reflect.Type]bool{}
	}
	c.globalsDone[rt] = true
	return true
}

func (c *Collector) add(namespace, text string) {
	if text == "" {
		return
	}
	if c.collected == nil {
		c.collected = map[string][]string{}
	}
	if _, seen := c.collected[namespace]; !seen {
		c.order = append(c.order, namespace)
	}
	c.collected[namespace] = append(c.collected[namespace], text)
}

// Namespaces returns the namespaces contributions arrived under, in
// first-seen order.
func (c *Collector) Namespaces() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Collected returns the raw contributions for one namespace, in
// collection order.
func (c *Collector) Collected(namespace string) []string {
	parts := c.collected[namespace]
	out := make([]string, len(parts))
	copy(out, parts)
	return out
}

// RenderCollected returns the gathered content for the given namespaces,
// or for all of them in first-seen order when none are named, wrapped for
// inclusion in the document. Returns nil when nothing was collected.
func (c *Collector) RenderCollected(namespaces ...string) any {
	if len(namespaces) == 0 {
		namespaces = c.order
	}
	var sb strings.Builder
	for _, ns := range namespaces {
		for _, part := range c.collected[ns] {
			sb.WriteString(part)
		}
	}
	if sb.Len() == 0 {
		return nil
	}
	if shape, ok := c.self.(collectorShape); ok {
		return shape.WrapCollected(sb.String())
	}
	return Raw(sb.String())
}

// collectText joins a marker's children as raw text. Styles and scripts
// must not be entity escaped, so strings are taken verbatim.
func collectText(children []any) string {
	var sb strings.Builder
	for _, child := range children {
		switch v := child.(type) {
		case nil:
		case string:
			sb.WriteString(v)
		case Raw:
			sb.WriteString(string(v))
		default:
			sb.WriteString(fmt.Sprint(v))
		}
	}
	return sb.String()
}
