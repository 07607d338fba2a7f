package html

import (
	htx "github.com/grindlemire/go-htx"
)

var _ htx.TagElement = (*Tag)(nil)

// Tag is the element type every markup tag shares. The serializer writes
// tags directly: they have no lifecycle hooks and expand to no subtree.
type Tag struct {
	htx.Element

	void bool
}

// TagName returns the name written in the opening tag.
func (t *Tag) TagName() string { return t.Name() }

// Void reports whether the tag self-closes and rejects children.
func (t *Tag) Void() bool { return t.void }

// Render exists to satisfy htx.Component; the serializer never calls it.
func (t *Tag) Render(ctx *htx.Context) any { return nil }

func newTag(name string, props htx.Props, children []any) *Tag {
	t := &Tag{void: voidTags[name]}
	return htx.NewWithSchema(t, name, schemas[name], props, children...)
}

// IsTag reports whether name is a known markup tag.
func IsTag(name string) bool {
	_, ok := schemas[name]
	return ok
}

// IsVoid reports whether the named tag self-closes and rejects children.
func IsVoid(name string) bool { return voidTags[name] }

// voidTags cannot take children and serialize self-closed.
var voidTags = map[string]bool{
	"base": true, "br": true, "col": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "track": true,
}

// globalProps are the attributes every tag accepts. id, class and ref
// come from the base element schema.
var globalProps = htx.PropTypes{
	"accesskey":       htx.Optional(htx.String),
	"autocapitalize":  htx.Optional(htx.String),
	"contenteditable": htx.Optional(htx.Bool),
	"dir":             htx.Choices("ltr", "rtl", "auto"),
	"draggable":       htx.Optional(htx.Bool),
	"hidden":          htx.Optional(htx.Bool),
	"is":              htx.Optional(htx.String),
	"lang":            htx.Optional(htx.String),
	"role":            htx.Optional(htx.String),
	"slot":            htx.Optional(htx.String),
	"spellcheck":      htx.Optional(htx.Bool),
	"style":           htx.Optional(htx.String),
	"tabindex":        htx.Optional(htx.Int),
	"title":           htx.Optional(htx.String),
	"translate":       htx.Choices("", "yes", "no"),
}

// eventAttrs are the inline handler attributes, all plain strings.
var eventAttrs = []string{
	"onabort", "onblur", "oncancel", "onchange", "onclick", "onclose",
	"oncontextmenu", "oncopy", "oncut", "ondblclick", "ondrag", "ondragend",
	"ondragenter", "ondragleave", "ondragover", "ondragstart", "ondrop",
	"onerror", "onfocus", "oninput", "oninvalid", "onkeydown", "onkeypress",
	"onkeyup", "onload", "onmousedown", "onmouseenter", "onmouseleave",
	"onmousemove", "onmouseout", "onmouseover", "onmouseup", "onpaste",
	"onscroll", "onselect", "onsubmit", "onwheel",
}

// tagProps maps every known tag to its extra attributes beyond the
// globals. A nil entry still declares the tag.
var tagProps = map[string]htx.PropTypes{
	"a": {
		"download":       htx.Optional(htx.String),
		"href":           htx.Optional(htx.String),
		"hreflang":       htx.Optional(htx.String),
		"ping":           htx.Optional(htx.String),
		"referrerpolicy": htx.Optional(htx.String),
		"rel":            htx.Optional(htx.String),
		"target":         htx.Optional(htx.String),
		"type":           htx.Optional(htx.String),
	},
	"abbr":    nil,
	"address": nil,
	"area": {
		"alt":            htx.Optional(htx.String),
		"coords":         htx.Optional(htx.String),
		"download":       htx.Optional(htx.String),
		"href":           htx.Optional(htx.String),
		"hreflang":       htx.Optional(htx.String),
		"ping":           htx.Optional(htx.String),
		"referrerpolicy": htx.Optional(htx.String),
		"rel":            htx.Optional(htx.String),
		"shape":          htx.Optional(htx.String),
		"target":         htx.Optional(htx.String),
	},
	"article": nil,
	"aside":   nil,
	"audio": {
		"autoplay":    htx.Optional(htx.Bool),
		"controls":    htx.Optional(htx.Bool),
		"crossorigin": htx.Optional(htx.String),
		"loop":        htx.Optional(htx.Bool),
		"muted":       htx.Optional(htx.Bool),
		"preload":     htx.Optional(htx.String),
		"src":         htx.Optional(htx.String),
	},
	"b": nil,
	"base": {
		"href":   htx.Optional(htx.String),
		"target": htx.Optional(htx.String),
	},
	"bdi": nil,
	"bdo": nil,
	"blockquote": {
		"cite": htx.Optional(htx.String),
	},
	"body": nil,
	"br":   nil,
	"button": {
		"autofocus":      htx.Optional(htx.Bool),
		"disabled":       htx.Optional(htx.Bool),
		"form":           htx.Optional(htx.String),
		"formaction":     htx.Optional(htx.String),
		"formenctype":    htx.Optional(htx.String),
		"formmethod":     htx.Optional(htx.String),
		"formnovalidate": htx.Optional(htx.Bool),
		"formtarget":     htx.Optional(htx.String),
		"name":           htx.Optional(htx.String),
		"type":           htx.Choices("submit", "reset", "button"),
		"value":          htx.Optional(htx.Any),
	},
	"canvas": {
		"height": htx.Optional(htx.Int),
		"width":  htx.Optional(htx.Int),
	},
	"caption": nil,
	"cite":    nil,
	"code":    nil,
	"col": {
		"span": htx.Optional(htx.Int),
	},
	"colgroup": {
		"span": htx.Optional(htx.Int),
	},
	"data": {
		"value": htx.Optional(htx.String),
	},
	"datalist": nil,
	"dd":       nil,
	"del": {
		"cite":     htx.Optional(htx.String),
		"datetime": htx.Optional(htx.String),
	},
	"details": {
		"open": htx.Optional(htx.Bool),
	},
	"dfn": nil,
	"div": nil,
	"dl":  nil,
	"dt":  nil,
	"em":  nil,
	"embed": {
		"height": htx.Optional(htx.Int),
		"src":    htx.Optional(htx.String),
		"type":   htx.Optional(htx.String),
		"width":  htx.Optional(htx.Int),
	},
	"fieldset": {
		"disabled": htx.Optional(htx.Bool),
		"form":     htx.Optional(htx.String),
		"name":     htx.Optional(htx.String),
	},
	"figcaption": nil,
	"figure":     nil,
	"footer":     nil,
	"form": {
		"accept-charset": htx.Optional(htx.String),
		"action":         htx.Optional(htx.String),
		"autocomplete":   htx.Choices("on", "off"),
		"enctype":        htx.Optional(htx.String),
		"method":         htx.Choices("get", "post", "dialog"),
		"name":           htx.Optional(htx.String),
		"novalidate":     htx.Optional(htx.Bool),
		"target":         htx.Optional(htx.String),
	},
	"h1":     nil,
	"h2":     nil,
	"h3":     nil,
	"h4":     nil,
	"h5":     nil,
	"h6":     nil,
	"head":   nil,
	"header": nil,
	"hr":     nil,
	"html": {
		"xmlns": htx.Optional(htx.String),
	},
	"i": nil,
	"iframe": {
		"allow":           htx.Optional(htx.String),
		"allowfullscreen": htx.Optional(htx.Bool),
		"height":          htx.Optional(htx.Int),
		"loading":         htx.Choices("eager", "lazy"),
		"name":            htx.Optional(htx.String),
		"referrerpolicy":  htx.Optional(htx.String),
		"sandbox":         htx.Optional(htx.String),
		"src":             htx.Optional(htx.String),
		"srcdoc":          htx.Optional(htx.String),
		"width":           htx.Optional(htx.Int),
	},
	"img": {
		"alt":            htx.Optional(htx.String),
		"crossorigin":    htx.Optional(htx.String),
		"decoding":       htx.Choices("sync", "async", "auto"),
		"height":         htx.Optional(htx.Int),
		"ismap":          htx.Optional(htx.Bool),
		"loading":        htx.Choices("eager", "lazy"),
		"referrerpolicy": htx.Optional(htx.String),
		"sizes":          htx.Optional(htx.String),
		"src":            htx.Optional(htx.String),
		"srcset":         htx.Optional(htx.String),
		"usemap":         htx.Optional(htx.String),
		"width":          htx.Optional(htx.Int),
	},
	"input": {
		"accept":         htx.Optional(htx.String),
		"alt":            htx.Optional(htx.String),
		"autocomplete":   htx.Optional(htx.String),
		"autofocus":      htx.Optional(htx.Bool),
		"capture":        htx.Optional(htx.String),
		"checked":        htx.Optional(htx.Bool),
		"dirname":        htx.Optional(htx.String),
		"disabled":       htx.Optional(htx.Bool),
		"form":           htx.Optional(htx.String),
		"formaction":     htx.Optional(htx.String),
		"formenctype":    htx.Optional(htx.String),
		"formmethod":     htx.Optional(htx.String),
		"formnovalidate": htx.Optional(htx.Bool),
		"formtarget":     htx.Optional(htx.String),
		"height":         htx.Optional(htx.Int),
		"list":           htx.Optional(htx.String),
		"max":            htx.Optional(htx.Any),
		"maxlength":      htx.Optional(htx.Int),
		"min":            htx.Optional(htx.Any),
		"minlength":      htx.Optional(htx.Int),
		"multiple":       htx.Optional(htx.Bool),
		"name":           htx.Optional(htx.String),
		"pattern":        htx.Optional(htx.String),
		"placeholder":    htx.Optional(htx.String),
		"readonly":       htx.Optional(htx.Bool),
		"required":       htx.Optional(htx.Bool),
		"size":           htx.Optional(htx.Int),
		"src":            htx.Optional(htx.String),
		"step":           htx.Optional(htx.Any),
		"type":           htx.Optional(htx.String),
		"value":          htx.Optional(htx.Any),
		"width":          htx.Optional(htx.Int),
	},
	"ins": {
		"cite":     htx.Optional(htx.String),
		"datetime": htx.Optional(htx.String),
	},
	"kbd": nil,
	"label": {
		"for":  htx.Optional(htx.String),
		"form": htx.Optional(htx.String),
	},
	"legend": nil,
	"li": {
		"value": htx.Optional(htx.Int),
	},
	"link": {
		"as":             htx.Optional(htx.String),
		"crossorigin":    htx.Optional(htx.String),
		"href":           htx.Optional(htx.String),
		"hreflang":       htx.Optional(htx.String),
		"media":          htx.Optional(htx.String),
		"referrerpolicy": htx.Optional(htx.String),
		"rel":            htx.Optional(htx.String),
		"sizes":          htx.Optional(htx.String),
		"type":           htx.Optional(htx.String),
	},
	"main": nil,
	"map": {
		"name": htx.Optional(htx.String),
	},
	"mark": nil,
	"meta": {
		"charset":    htx.Optional(htx.String),
		"content":    htx.Optional(htx.String),
		"http-equiv": htx.Optional(htx.String),
		"name":       htx.Optional(htx.String),
	},
	"meter": {
		"form":    htx.Optional(htx.String),
		"high":    htx.Optional(htx.Float),
		"low":     htx.Optional(htx.Float),
		"max":     htx.Optional(htx.Float),
		"min":     htx.Optional(htx.Float),
		"optimum": htx.Optional(htx.Float),
		"value":   htx.Optional(htx.Float),
	},
	"nav":      nil,
	"noscript": nil,
	"object": {
		"data":   htx.Optional(htx.String),
		"form":   htx.Optional(htx.String),
		"height": htx.Optional(htx.Int),
		"name":   htx.Optional(htx.String),
		"type":   htx.Optional(htx.String),
		"usemap": htx.Optional(htx.String),
		"width":  htx.Optional(htx.Int),
	},
	"ol": {
		"reversed": htx.Optional(htx.Bool),
		"start":    htx.Optional(htx.Int),
		"type":     htx.Optional(htx.String),
	},
	"optgroup": {
		"disabled": htx.Optional(htx.Bool),
		"label":    htx.Optional(htx.String),
	},
	"option": {
		"disabled": htx.Optional(htx.Bool),
		"label":    htx.Optional(htx.String),
		"selected": htx.Optional(htx.Bool),
		"value":    htx.Optional(htx.Any),
	},
	"output": {
		"for":  htx.Optional(htx.String),
		"form": htx.Optional(htx.String),
		"name": htx.Optional(htx.String),
	},
	"p": nil,
	"param": {
		"name":  htx.Optional(htx.String),
		"value": htx.Optional(htx.Any),
	},
	"picture": nil,
	"pre":     nil,
	"progress": {
		"max":   htx.Optional(htx.Float),
		"value": htx.Optional(htx.Float),
	},
	"q": {
		"cite": htx.Optional(htx.String),
	},
	"rp":   nil,
	"rt":   nil,
	"rtc":  nil,
	"ruby": nil,
	"s":    nil,
	"samp": nil,
	"script": {
		"async":       htx.Optional(htx.Bool),
		"charset":     htx.Optional(htx.String),
		"crossorigin": htx.Optional(htx.String),
		"defer":       htx.Optional(htx.Bool),
		"integrity":   htx.Optional(htx.String),
		"nomodule":    htx.Optional(htx.Bool),
		"src":         htx.Optional(htx.String),
		"type":        htx.Optional(htx.String),
	},
	"section": nil,
	"select": {
		"autocomplete": htx.Optional(htx.String),
		"autofocus":    htx.Optional(htx.Bool),
		"disabled":     htx.Optional(htx.Bool),
		"form":         htx.Optional(htx.String),
		"multiple":     htx.Optional(htx.Bool),
		"name":         htx.Optional(htx.String),
		"required":     htx.Optional(htx.Bool),
		"size":         htx.Optional(htx.Int),
	},
	"slot": {
		"name": htx.Optional(htx.String),
	},
	"source": {
		"media":  htx.Optional(htx.String),
		"sizes":  htx.Optional(htx.String),
		"src":    htx.Optional(htx.String),
		"srcset": htx.Optional(htx.String),
		"type":   htx.Optional(htx.String),
	},
	"span":   nil,
	"strong": nil,
	"style": {
		"media": htx.Optional(htx.String),
		"type":  htx.Optional(htx.String),
	},
	"sub":     nil,
	"summary": nil,
	"sup":     nil,
	"table":   nil,
	"tbody":   nil,
	"td": {
		"colspan": htx.Optional(htx.Int),
		"headers": htx.Optional(htx.String),
		"rowspan": htx.Optional(htx.Int),
	},
	"template": nil,
	"textarea": {
		"autocomplete": htx.Optional(htx.String),
		"autofocus":    htx.Optional(htx.Bool),
		"cols":         htx.Optional(htx.Int),
		"dirname":      htx.Optional(htx.String),
		"disabled":     htx.Optional(htx.Bool),
		"form":         htx.Optional(htx.String),
		"maxlength":    htx.Optional(htx.Int),
		"minlength":    htx.Optional(htx.Int),
		"name":         htx.Optional(htx.String),
		"placeholder":  htx.Optional(htx.String),
		"readonly":     htx.Optional(htx.Bool),
		"required":     htx.Optional(htx.Bool),
		"rows":         htx.Optional(htx.Int),
		"wrap":         htx.Choices("hard", "soft"),
	},
	"tfoot": nil,
	"th": {
		"abbr":    htx.Optional(htx.String),
		"colspan": htx.Optional(htx.Int),
		"headers": htx.Optional(htx.String),
		"rowspan": htx.Optional(htx.Int),
		"scope":   htx.Choices("row", "col", "rowgroup", "colgroup"),
	},
	"thead": nil,
	"time": {
		"datetime": htx.Optional(htx.String),
	},
	"title": nil,
	"tr":    nil,
	"track": {
		"default": htx.Optional(htx.Bool),
		"kind":    htx.Optional(htx.String),
		"label":   htx.Optional(htx.String),
		"src":     htx.Optional(htx.String),
		"srclang": htx.Optional(htx.String),
	},
	"u":   nil,
	"ul":  nil,
	"var": nil,
	"video": {
		"autoplay":    htx.Optional(htx.Bool),
		"controls":    htx.Optional(htx.Bool),
		"crossorigin": htx.Optional(htx.String),
		"height":      htx.Optional(htx.Int),
		"loop":        htx.Optional(htx.Bool),
		"muted":       htx.Optional(htx.Bool),
		"playsinline": htx.Optional(htx.Bool),
		"poster":      htx.Optional(htx.String),
		"preload":     htx.Optional(htx.String),
		"src":         htx.Optional(htx.String),
		"width":       htx.Optional(htx.Int),
	},
}

var (
	globalSchema *htx.Schema
	schemas      map[string]*htx.Schema
)

func init() {
	for _, ev := range eventAttrs {
		globalProps[ev] = htx.Optional(htx.String)
	}
	globalSchema = htx.MustNewSchema("global", globalProps)
	schemas = make(map[string]*htx.Schema, len(tagProps))
	for name, extra := range tagProps {
		schemas[name] = htx.MustNewSchema(name, extra, htx.Extends(globalSchema))
	}
}
