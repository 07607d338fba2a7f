package html

import (
	"testing"

	htx "github.com/grindlemire/go-htx"
)

func TestCSSCollector(t *testing.T) {
	root := htx.New(&CSSCollector{}, htx.Props{"render_position": "after"},
		Div(nil, "content"),
		htx.New(&CSSCollect{}, nil, ".a{color:red}"),
	)

	got, err := htx.Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := `<div>content</div><style type="text/css">.a{color:red}</style>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestJSCollector(t *testing.T) {
	root := htx.New(&JSCollector{}, htx.Props{"render_position": "after"},
		Div(nil, "content"),
		htx.New(&JSCollect{}, nil, "init();"),
	)

	got, err := htx.Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := `<div>content</div><script type="text/javascript">init();</script>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// Markers contribute through any depth of intermediate tags.
func TestCSSCollect_ThroughLayers(t *testing.T) {
	root := htx.New(&CSSCollector{}, htx.Props{"render_position": "before"},
		Div(nil,
			Div(nil, htx.New(&CSSCollect{}, nil, ".deep{top:0}")),
		),
	)

	got, err := htx.Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := `<style type="text/css">.deep{top:0}</style><div><div></div></div>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// Marker styles never entity escape, since they are stylesheet text.
func TestCSSCollect_KeepsTextVerbatim(t *testing.T) {
	root := htx.New(&CSSCollector{}, htx.Props{"render_position": "after"},
		htx.New(&CSSCollect{}, nil, `a[title="x"]>b{color:red}`),
	)

	got, err := htx.Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "<style type=\"text/css\">a[title=\"x\"]>b{color:red}</style>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
