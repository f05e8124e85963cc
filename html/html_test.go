package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/suffixtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestTextFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := `<p>Hello <b>World</b>!<script>var x = 1;</script></p><p>How are you?</p>`
	text, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if text != "Hello World!How are you?" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestInnerText(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := `<html><body><h1>Title</h1><div id="x">Hello <i>dear</i> <style>p{}</style>World</div></body></html>`
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	div := findElement(doc, atom.Div)
	if div == nil {
		t.Fatal("expected to find <div>")
	}
	text, err := InnerText(div)
	if err != nil {
		t.Fatal(err)
	}
	if text != "Hello dear World" {
		t.Errorf("unexpected inner text %q", text)
	}
	if _, err := InnerText(nil); !errors.Is(err, suffixtree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil node, have %v", err)
	}
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func TestHighlight(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := suffixtree.ConstructGeneralized("abc", "b<c>d", '#', '$')
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := Highlight(tree, &out); err != nil {
		t.Fatal(err)
	}
	want := `<div class="lcs" data-length="1">` +
		`<p class="text1">a<mark>b</mark>c</p>` +
		`<p class="text2"><mark>b</mark>&lt;c&gt;d</p></div>`
	if out.String() != want {
		t.Errorf("unexpected HTML:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestHighlightNoCommonSubstring(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree, err := suffixtree.ConstructGeneralized("xyz", "uvw", '#', '$')
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := Highlight(tree, &out); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "<mark>") {
		t.Errorf("did not expect marks, have %s", out.String())
	}
	single, err := suffixtree.Construct("abc$")
	if err != nil {
		t.Fatal(err)
	}
	if err := Highlight(single, &out); !errors.Is(err, suffixtree.ErrNotGeneralized) {
		t.Errorf("expected ErrNotGeneralized, have %v", err)
	}
	if err := Highlight(nil, &out); !errors.Is(err, suffixtree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil tree, have %v", err)
	}
}
