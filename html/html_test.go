package html

import (
	"testing"

	htx "github.com/grindlemire/go-htx"
)

func expectPanic(t *testing.T, fn func()) any {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	if got == nil {
		t.Fatal("expected panic did not occur")
	}
	return got
}

func TestIsTag(t *testing.T) {
	if !IsTag("div") {
		t.Error("IsTag(div) = false, want true")
	}
	if IsTag("widget") {
		t.Error("IsTag(widget) = true, want false")
	}
}

func TestIsVoid(t *testing.T) {
	if !IsVoid("br") {
		t.Error("IsVoid(br) = false, want true")
	}
	if IsVoid("div") {
		t.Error("IsVoid(div) = true, want false")
	}
}

func TestTag_Render(t *testing.T) {
	type tc struct {
		root htx.Component
		want string
	}

	tests := map[string]tc{
		"text content": {
			root: Div(nil, "hi"),
			want: "<div>hi</div>",
		},
		"anchor attrs": {
			root: A(htx.Props{"href": "/x", "target": "_blank"}, "go"),
			want: `<a href="/x" target="_blank">go</a>`,
		},
		"void img": {
			root: Img(htx.Props{"src": "a.png", "alt": "pic"}),
			want: `<img alt="pic" src="a.png" />`,
		},
		"bool attr": {
			root: Input(htx.Props{"type": "text", "required": true}),
			want: `<input required type="text" />`,
		},
		"event attrs are strings": {
			root: Div(htx.Props{"onclick": "doThing()"}),
			want: `<div onclick="doThing()"></div>`,
		},
		"freeform data attr": {
			root: Div(htx.Props{"data-id": 7}),
			want: `<div data-id="7"></div>`,
		},
		"int attr normalized": {
			root: Div(htx.Props{"tabindex": int64(3)}),
			want: `<div tabindex="3"></div>`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := htx.Render(tt.root)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTag_Document(t *testing.T) {
	root := htx.Frag(
		Doctype(""),
		HTML(htx.Props{"lang": "en"},
			Head(nil, Title(nil, "home")),
			Body(nil, Main(nil, "hi")),
		),
	)

	got, err := htx.Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := `<!DOCTYPE html><html lang="en"><head><title>home</title></head>` +
		"<body><main>hi</main></body></html>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTag_ChoiceValidation(t *testing.T) {
	got := expectPanic(t, func() { Div(htx.Props{"dir": "sideways"}) })
	if _, ok := got.(*htx.InvalidPropChoiceError); !ok {
		t.Errorf("panic value = %T, want *htx.InvalidPropChoiceError", got)
	}
}

func TestTag_UnknownAttr(t *testing.T) {
	got := expectPanic(t, func() { Div(htx.Props{"bogus": 1}) })
	if _, ok := got.(*htx.InvalidPropNameError); !ok {
		t.Errorf("panic value = %T, want *htx.InvalidPropNameError", got)
	}
}

func TestVoidTag_RejectsChildren(t *testing.T) {
	got := expectPanic(t, func() { Br(nil, "x") })
	if _, ok := got.(*htx.InvalidChildrenError); !ok {
		t.Errorf("panic value = %T, want *htx.InvalidChildrenError", got)
	}
}
