package htx

import "testing"

type greeting struct {
	Element
}

var _ = MustDefine[*greeting](PropTypes{
	"who": Default(String, "World"),
})

func (g *greeting) Render(ctx *Context) any {
	return tag("div", nil, "Hello, "+g.PropString("who"))
}

type needsTitle struct {
	Element
}

var _ = MustDefine[*needsTitle](PropTypes{
	"title": Required(String),
})

func (n *needsTitle) Render(ctx *Context) any {
	return tag("div", nil, "Hello, "+n.PropString("title"))
}

type exploding struct {
	Element
}

func (e *exploding) Render(ctx *Context) any { panic("boom") }

type plain struct {
	Element
}

func (p *plain) Render(ctx *Context) any { return "ok" }

func TestRender_Component(t *testing.T) {
	got, err := Render(New(&greeting{}, nil))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "<div>Hello, World</div>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	got, err = Render(New(&greeting{}, Props{"who": "Go"}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "<div>Hello, Go</div>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	got, err = Render(New(&needsTitle{}, Props{"title": "World"}))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "<div>Hello, World</div>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_Output(t *testing.T) {
	type tc struct {
		root Component
		want string
	}

	tests := map[string]tc{
		"text escaped": {
			root: tag("p", nil, `a <b> & "c"`),
			want: `<p>a &lt;b&gt; &amp; "c"</p>`,
		},
		"raw verbatim": {
			root: tag("div", nil, Raw("<b>hi</b>")),
			want: "<div><b>hi</b></div>",
		},
		"attrs sorted and escaped": {
			root: tag("a", Props{"href": `x "y" & z`, "count": 3, "disabled": true, "id": "link"}),
			want: `<a count="3" disabled href="x &quot;y&quot; &amp; z" id="link"></a>`,
		},
		"false bool attr omitted": {
			root: tag("a", Props{"disabled": false, "id": "x"}),
			want: `<a id="x"></a>`,
		},
		"nil attr empty value": {
			root: tag("span", Props{"data-null": nil}),
			want: `<span data-null=""></span>`,
		},
		"raw attr verbatim": {
			root: tag("span", Props{"data-q": Raw("a&b")}),
			want: `<span data-q="a&b"></span>`,
		},
		"func attr skipped": {
			root: tag("button", Props{"onclick": func() {}, "id": "go"}),
			want: `<button id="go"></button>`,
		},
		"void tag": {
			root: voidTag("br", nil),
			want: "<br />",
		},
		"numeric and bool children": {
			root: tag("p", nil, 1, int64(2), 2.5, true),
			want: "<p>122.5true</p>",
		},
		"fragment splices": {
			root: Frag("a", tag("b", nil, "x"), "c"),
			want: "a<b>x</b>c",
		},
		"other values stringified": {
			root: tag("p", nil, uint(7)),
			want: "<p>7</p>",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Render(tt.root)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_DeferredResolvesInPlace(t *testing.T) {
	root := tag("div", nil,
		"a",
		Deferred(func() any { return tag("i", nil, "x") }),
		"c",
	)
	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "<div>a<i>x</i>c</div>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_DeferredNesting(t *testing.T) {
	root := tag("div", nil, Deferred(func() any {
		return Deferred(func() any { return "z" })
	}))
	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "<div>z</div>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_RecoversPropFailures(t *testing.T) {
	_, err := Render(New(&needsTitle{}, nil))
	if _, ok := err.(*RequiredPropError); !ok {
		t.Fatalf("Render() error = %T (%v), want *RequiredPropError", err, err)
	}
}

func TestRender_UnrelatedPanicsPropagate(t *testing.T) {
	got := expectPanic(t, func() { Render(New(&exploding{}, nil)) })
	if got != "boom" {
		t.Errorf("panic = %v, want boom", got)
	}
}

func TestMustRender(t *testing.T) {
	if got := MustRender(New(&plain{}, nil)); got != "ok" {
		t.Errorf("MustRender() = %q, want ok", got)
	}
	got := expectPanic(t, func() { MustRender(New(&needsTitle{}, nil)) })
	if _, ok := got.(*RequiredPropError); !ok {
		t.Errorf("panic value = %T, want *RequiredPropError", got)
	}
}

func TestRender_BareComponentInitialized(t *testing.T) {
	got, err := Render(&plain{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Render() = %q, want ok", got)
	}
}

type lifecycle struct {
	Element
	calls *[]string
}

func (l *lifecycle) Prerender(ctx *Context) { *l.calls = append(*l.calls, "pre") }

func (l *lifecycle) Render(ctx *Context) any {
	*l.calls = append(*l.calls, "render")
	return nil
}

func (l *lifecycle) Postrender(rendered any) { *l.calls = append(*l.calls, "post") }

func TestRender_LifecycleOrder(t *testing.T) {
	var calls []string
	if _, err := Render(New(&lifecycle{calls: &calls}, nil)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := []string{"pre", "render", "post"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

type observer struct {
	Element
	seen []string
}

func (o *observer) Render(ctx *Context) any { return o.Children() }

func (o *observer) PostrenderChild(child Component, ctx *Context) {
	o.seen = append(o.seen, child.base().Name())
}

// Descendant notifications pass through intermediate tags, which have no
// lifecycle of their own.
func TestRender_ChildPostrenderThroughTags(t *testing.T) {
	obs := New(&observer{}, nil,
		tag("div", nil,
			New(&greeting{}, nil),
		),
	)
	if _, err := Render(obs); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(obs.seen) != 1 || obs.seen[0] != "greeting" {
		t.Errorf("seen = %v, want [greeting]", obs.seen)
	}
}
