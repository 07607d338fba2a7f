package htx

import (
	"reflect"
	"testing"
)

// styleSheet collects CSS from its subtree into a style tag.
type styleSheet struct {
	Collector
}

var _ = MustDefine[*styleSheet](PropTypes{
	"render_position": Choices("before", "after"),
})

func (s *styleSheet) CollectorKind() string { return "css" }

func (s *styleSheet) WrapCollected(content string) any {
	return tag("style", nil, Raw(content))
}

// scriptSheet is the JS counterpart of styleSheet.
type scriptSheet struct {
	Collector
}

var _ = MustDefine[*scriptSheet](PropTypes{
	"render_position": Choices("before", "after"),
})

func (s *scriptSheet) CollectorKind() string { return "js" }

func (s *scriptSheet) WrapCollected(content string) any {
	return tag("script", nil, Raw(content))
}

// badge contributes one global rule per type and one rule per instance.
type badge struct {
	Element
}

var _ = MustDefine[*badge](PropTypes{
	"label": Required(String),
})

func (b *badge) Render(ctx *Context) any {
	return tag("span", Props{"class": "badge"}, b.PropString("label"))
}

func (b *badge) RenderCSSGlobal(ctx *Context) string { return ".badge{font-weight:bold}" }

func (b *badge) RenderCSS(ctx *Context) string { return ".badge{color:red}" }

type pill struct {
	Element
}

func (p *pill) Render(ctx *Context) any { return nil }

func (p *pill) RenderCSSGlobal(ctx *Context) string { return ".pill{border-radius:9in}" }

type counterWidget struct {
	Element
}

func (w *counterWidget) Render(ctx *Context) any { return tag("button", nil, "+") }

func (w *counterWidget) RenderJS(ctx *Context) string { return "bind('.counter');" }

// cssBlock is a marker whose children are captured by an enclosing CSS
// collector instead of rendering in place.
type cssBlock struct {
	Element
}

var _ = MustDefine[*cssBlock](PropTypes{
	"namespace": Default(String, DefaultNamespace),
})

func (b *cssBlock) Render(ctx *Context) any { return nil }

func (b *cssBlock) CollectKind() string { return "css" }

func (b *cssBlock) CollectNamespace() string { return b.PropString("namespace") }

func TestCollector_GathersCSS(t *testing.T) {
	sheet := New(&styleSheet{}, Props{"render_position": "after"},
		New(&badge{}, Props{"label": "b1"}),
		New(&badge{}, Props{"label": "b2"}),
	)

	got, err := Render(sheet)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := `<span class="badge">b1</span><span class="badge">b2</span>` +
		"<style>.badge{font-weight:bold}.badge{color:red}.badge{color:red}</style>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// Content placed before the children still includes contributions that
// arrive after it, since the placeholder resolves once the document is
// done.
func TestCollector_BeforePlacement(t *testing.T) {
	sheet := New(&styleSheet{}, Props{"render_position": "before"},
		New(&badge{}, Props{"label": "b"}),
	)

	got, err := Render(sheet)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<style>.badge{font-weight:bold}.badge{color:red}</style>" +
		`<span class="badge">b</span>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCollector_GlobalOncePerType(t *testing.T) {
	sheet := New(&styleSheet{}, nil,
		New(&badge{}, Props{"label": "b1"}),
		New(&badge{}, Props{"label": "b2"}),
		New(&pill{}, nil),
	)

	if _, err := Render(sheet); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := []string{
		".badge{font-weight:bold}",
		".badge{color:red}",
		".badge{color:red}",
		".pill{border-radius:9in}",
	}
	if got := sheet.Collected(DefaultNamespace); !reflect.DeepEqual(got, want) {
		t.Errorf("Collected() = %v, want %v", got, want)
	}
}

func TestCollector_MarkersAndNamespaces(t *testing.T) {
	var sheet *styleSheet
	sheet = New(&styleSheet{}, nil,
		New(&cssBlock{}, Props{"namespace": "reset"}, "html{margin:0}"),
		New(&cssBlock{}, nil, "body{color:#222}"),
		tag("main", nil, "content"),
		Deferred(func() any { return sheet.RenderCollected("reset") }),
	)
	root := tag("div", nil, sheet)

	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<div><main>content</main><style>html{margin:0}</style></div>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if got := sheet.Namespaces(); !reflect.DeepEqual(got, []string{"reset", "default"}) {
		t.Errorf("Namespaces() = %v, want [reset default]", got)
	}
	if got := sheet.Collected(DefaultNamespace); !reflect.DeepEqual(got, []string{"body{color:#222}"}) {
		t.Errorf("Collected(default) = %v, want the unclaimed block", got)
	}
}

func TestCollector_GathersJS(t *testing.T) {
	sheet := New(&scriptSheet{}, Props{"render_position": "after"},
		New(&counterWidget{}, nil),
	)

	got, err := Render(sheet)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<button>+</button><script>bind('.counter');</script>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// A CSS collector ignores JS contributions and vice versa.
func TestCollector_KindsAreIsolated(t *testing.T) {
	sheet := New(&styleSheet{}, Props{"render_position": "after"},
		New(&counterWidget{}, nil),
	)

	got, err := Render(sheet)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "<button>+</button>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCollector_EmptyRendersNothing(t *testing.T) {
	sheet := New(&styleSheet{}, Props{"render_position": "after"}, "text")

	got, err := Render(sheet)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "text"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if got := sheet.RenderCollected(); got != nil {
		t.Errorf("RenderCollected() = %v, want nil", got)
	}
}
