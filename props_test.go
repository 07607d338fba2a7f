package htx

import (
	"reflect"
	"testing"
)

func TestMerge(t *testing.T) {
	type tc struct {
		parts []any
		want  Props
	}

	tests := map[string]tc{
		"later values win": {
			parts: []any{Props{"id": "a", "class": "x"}, Props{"id": "b"}},
			want:  Props{"id": "b", "class": "x"},
		},
		"nil parts skipped": {
			parts: []any{nil, Props{"id": "a"}, nil},
			want:  Props{"id": "a"},
		},
		"plain maps spread": {
			parts: []any{map[string]any{"id": "a"}, Props{"class": "x"}},
			want:  Props{"id": "a", "class": "x"},
		},
		"no parts": {
			parts: nil,
			want:  Props{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Merge(tt.parts...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge_RejectsOtherTypes(t *testing.T) {
	got := expectPanic(t, func() { Merge(3) })
	if want := "htx: cannot spread int into props"; got != want {
		t.Errorf("panic = %v, want %q", got, want)
	}
}

func TestProps_Clone(t *testing.T) {
	p := Props{"id": "a"}
	c := p.clone()
	c["id"] = "b"
	if p["id"] != "a" {
		t.Error("mutating the clone changed the original")
	}
	if got := Props(nil).clone(); got != nil {
		t.Errorf("clone() of nil = %v, want nil", got)
	}
}
