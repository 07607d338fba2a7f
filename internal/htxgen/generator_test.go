package htxgen

import (
	"strings"
	"testing"
)

// generate parses and emits a snippet without the file header or import
// analysis, so expected output matches the source layout directly.
func generate(t *testing.T, source string) string {
	t.Helper()
	file, err := ParseFile("test.htx", source)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	out, err := NewGenerator(Options{}).Generate(file)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return string(out)
}

func TestGenerator_Emission(t *testing.T) {
	type tc struct {
		input    string
		expected string
	}

	tests := map[string]tc{
		"tag with text": {
			input:    "v := <div>hi</div>\n",
			expected: "v := html.Div(nil, \"hi\")\n",
		},
		"tag with attribute": {
			input:    "v := <div class=\"card\">hi</div>\n",
			expected: "v := html.Div(htx.Props{\"class\": \"card\"}, \"hi\")\n",
		},
		"attribute coercion": {
			input:    "v := <input type=\"text\" disabled required=false maxlength=10 step=0.5 />\n",
			expected: "v := html.Input(htx.Props{\"type\": \"text\", \"disabled\": true, \"required\": false, \"maxlength\": 10, \"step\": 0.5})\n",
		},
		"keyword values": {
			input:    "v := <Card open=\"true\" x=\"none\" y=\"notprovided\" />\n",
			expected: "v := htx.New(&Card{}, htx.Props{\"open\": true, \"x\": nil, \"y\": htx.NotProvided})\n",
		},
		"text and expression children": {
			input:    "v := <p>Hello, {name}!</p>\n",
			expected: "v := html.P(nil, \"Hello, \", name, \"!\")\n",
		},
		"expression attribute": {
			input:    "v := <a href={url()}>x</a>\n",
			expected: "v := html.A(htx.Props{\"href\": url()}, \"x\")\n",
		},
		"spread keeps source order": {
			input:    "v := <div id=\"x\" {**extra} class=\"y\">ok</div>\n",
			expected: "v := html.Div(htx.Merge(htx.Props{\"id\": \"x\"}, extra, htx.Props{\"class\": \"y\"}), \"ok\")\n",
		},
		"component": {
			input:    "v := <Card title=\"hi\" />\n",
			expected: "v := htx.New(&Card{}, htx.Props{\"title\": \"hi\"})\n",
		},
		"dotted component": {
			input:    "v := <views.Card />\n",
			expected: "v := htx.New(&views.Card{}, nil)\n",
		},
		"component with children": {
			input:    "v := <Card title=\"hi\"><p>body</p></Card>\n",
			expected: "v := htx.New(&Card{}, htx.Props{\"title\": \"hi\"}, html.P(nil, \"body\"))\n",
		},
		"fragment": {
			input:    "v := <><p>a</p><p>b</p></>\n",
			expected: "v := htx.Frag(html.P(nil, \"a\"), html.P(nil, \"b\"))\n",
		},
		"entity text wrapped in raw": {
			input:    "v := <div>a &amp; b</div>\n",
			expected: "v := html.Div(nil, htx.Raw(\"a &amp; b\"))\n",
		},
		"comment child": {
			input:    "v := <div><!-- note --></div>\n",
			expected: "v := html.Div(nil, html.Comment(\" note \"))\n",
		},
		"doctype": {
			input:    "v := <!DOCTYPE html>\n",
			expected: "v := html.Doctype(\"html\")\n",
		},
		"html tag constructor": {
			input:    "v := <html lang=\"en\"></html>\n",
			expected: "v := html.HTML(htx.Props{\"lang\": \"en\"})\n",
		},
		"nested markup in expression": {
			input:    "v := <ul>{wrap(<li>a</li>)}</ul>\n",
			expected: "v := html.Ul(nil, wrap(html.Li(nil, \"a\")))\n",
		},
		"markup in append": {
			input:    "lis = append(lis, <li class=\"item\">{item}</li>)\n",
			expected: "lis = append(lis, html.Li(htx.Props{\"class\": \"item\"}, item))\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := generate(t, tt.input)
			if got != tt.expected {
				t.Errorf("output = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGenerator_MultilinePadding(t *testing.T) {
	input := "func Page(title string) any {\n" +
		"\treturn <div class=\"page\">\n" +
		"\t\t<h1>{title}</h1>\n" +
		"\t\t<p>\n" +
		"\t\t\tBody text\n" +
		"\t\t</p>\n" +
		"\t</div>\n" +
		"}\n"

	expected := "func Page(title string) any {\n" +
		"\treturn html.Div(htx.Props{\"class\": \"page\"},\n" +
		"html.H1(nil, title),\n" +
		"html.P(nil, \"Body text\",\n" +
		"\n" +
		"),\n" +
		")\n" +
		"}\n"

	got := generate(t, input)
	if got != expected {
		t.Errorf("output = %q, want %q", got, expected)
	}
}

func TestGenerator_LinePreservation(t *testing.T) {
	// Every input produces output with exactly the same number of lines, so
	// compiler diagnostics in code parts point at the right source line.
	inputs := map[string]string{
		"single line": "v := <div>hi</div>\n",
		"multiline element": "v := <div>\n" +
			"\t<p>a</p>\n" +
			"\t<p>b</p>\n" +
			"</div>\n",
		"attributes across lines": "v := <div\n" +
			"\tclass=\"a\"\n" +
			"\tid=\"b\">\n" +
			"\tx\n" +
			"</div>\n",
		"expression across lines": "v := <div>{compute(\n" +
			"\ta,\n" +
			"\tb,\n" +
			")}</div>\n",
		"code between markup": "a := <b>1</b>\n" +
			"x := 1\n" +
			"c := <i>2</i>\n",
		"markup comment": "v := <div>\n" +
			"\t<!-- a\n" +
			"\tcomment -->\n" +
			"</div>\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			got := generate(t, input)
			inLines := strings.Count(input, "\n")
			outLines := strings.Count(got, "\n")
			if inLines != outLines {
				t.Errorf("output has %d lines, want %d\noutput:\n%s", outLines, inLines, got)
			}
		})
	}
}

func TestGenerator_Header(t *testing.T) {
	source := importBoth + "func f() any {\n\treturn <br />\n}\n"
	out, sourceMap, err := ParseAndGenerate("test.htx", source, Options{Header: true})
	if err != nil {
		t.Fatalf("ParseAndGenerate() error: %v", err)
	}

	expected := "// Code generated by htx generate. DO NOT EDIT.\n" +
		"// Source: test.htx\n" +
		"\n" +
		"//line test.htx:1\n" +
		importBoth +
		"func f() any {\n" +
		"\treturn html.Br(nil)\n" +
		"}\n"

	if string(out) != expected {
		t.Errorf("output = %q, want %q", out, expected)
	}
	if sourceMap.HeaderLines != 4 {
		t.Errorf("HeaderLines = %d, want 4", sourceMap.HeaderLines)
	}
	if len(sourceMap.Mappings) != 1 {
		t.Fatalf("got %d mappings, want 1", len(sourceMap.Mappings))
	}
	m := sourceMap.Mappings[0]
	if m.HtxLine != 9 || m.GoLine != 13 || m.Lines != 1 {
		t.Errorf("mapping = %+v, want {HtxLine:9 GoLine:13 Lines:1}", m)
	}
}

func TestGenerator_SourceMapSpansWithoutHeader(t *testing.T) {
	source := importBoth + "func f() any {\n\treturn <div id=\"a\">\n\t\t<p>x</p>\n\t</div>\n}\n"
	_, sourceMap, err := ParseAndGenerate("test.htx", source, Options{})
	if err != nil {
		t.Fatalf("ParseAndGenerate() error: %v", err)
	}
	if sourceMap.HeaderLines != 0 {
		t.Errorf("HeaderLines = %d, want 0", sourceMap.HeaderLines)
	}
	if len(sourceMap.Mappings) != 1 {
		t.Fatalf("got %d mappings, want 1", len(sourceMap.Mappings))
	}
	m := sourceMap.Mappings[0]
	if m.HtxLine != 9 || m.GoLine != 9 || m.Lines != 3 {
		t.Errorf("mapping = %+v, want {HtxLine:9 GoLine:9 Lines:3}", m)
	}
}

func TestGenerator_UnknownTag(t *testing.T) {
	// The generator reports unknown tags itself when run without analysis.
	file, err := ParseFile("test.htx", "v := <widget>x</widget>\n")
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	_, err = NewGenerator(Options{}).Generate(file)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unknown tag <widget>") {
		t.Errorf("error = %q, want unknown tag", err)
	}
}

func TestParseAndGenerate_ReportsAnalysisErrors(t *testing.T) {
	source := importBoth + "func f() any {\n\treturn <br>x</br>\n}\n"
	_, _, err := ParseAndGenerate("test.htx", source, Options{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "does not allow children") {
		t.Errorf("error = %q, want void children error", err)
	}
}
