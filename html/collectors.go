package html

import (
	htx "github.com/grindlemire/go-htx"
)

var (
	_ htx.ChildPostrenderer = (*CSSCollector)(nil)
	_ htx.ChildPostrenderer = (*JSCollector)(nil)
	_ htx.CollectMarker     = (*CSSCollect)(nil)
	_ htx.CollectMarker     = (*JSCollect)(nil)
)

// CSSCollector gathers the styles of the subtree below it: CSSCollect
// children and the RenderCSS and RenderCSSGlobal output of descendant
// components. Set render_position to "before" or "after" to emit a
// <style> tag around the collected content, or leave it unset and place
// the content manually with a Deferred around RenderCollected.
type CSSCollector struct {
	htx.Collector
}

// CollectorKind gathers css contributions.
func (c *CSSCollector) CollectorKind() string { return "css" }

// WrapCollected emits the collected styles in one <style> tag.
func (c *CSSCollector) WrapCollected(content string) any {
	return Style(htx.Props{"type": "text/css"}, htx.Raw(content))
}

// JSCollector is the script counterpart of CSSCollector: it gathers
// JSCollect children and RenderJS and RenderJSGlobal output, emitting a
// <script> tag.
type JSCollector struct {
	htx.Collector
}

// CollectorKind gathers js contributions.
func (c *JSCollector) CollectorKind() string { return "js" }

// WrapCollected emits the collected scripts in one <script> tag.
func (c *JSCollector) WrapCollected(content string) any {
	return Script(htx.Props{"type": "text/javascript"}, htx.Raw(content))
}

// CSSCollect sends its children to the enclosing CSS collectors as
// stylesheet text instead of rendering them in place. The namespace prop
// groups contributions so RenderCollected can emit them selectively.
type CSSCollect struct {
	htx.Element
}

// Render drops the children in place; collectors captured them already.
func (c *CSSCollect) Render(ctx *htx.Context) any { return nil }

// CollectKind contributes to css collectors.
func (c *CSSCollect) CollectKind() string { return "css" }

// CollectNamespace returns the namespace prop.
func (c *CSSCollect) CollectNamespace() string { return c.PropString("namespace") }

// JSCollect is the script counterpart of CSSCollect.
type JSCollect struct {
	htx.Element
}

// Render drops the children in place; collectors captured them already.
func (c *JSCollect) Render(ctx *htx.Context) any { return nil }

// CollectKind contributes to js collectors.
func (c *JSCollect) CollectKind() string { return "js" }

// CollectNamespace returns the namespace prop.
func (c *JSCollect) CollectNamespace() string { return c.PropString("namespace") }

func init() {
	collectorProps := htx.PropTypes{
		"render_position": htx.DefaultChoices(nil, "before", "after"),
	}
	htx.MustDefine[*CSSCollector](collectorProps)
	htx.MustDefine[*JSCollector](collectorProps)

	collectProps := htx.PropTypes{
		"namespace": htx.Default(htx.String, htx.DefaultNamespace),
	}
	htx.MustDefine[*CSSCollect](collectProps)
	htx.MustDefine[*JSCollect](collectProps)
}
