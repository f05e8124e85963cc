package suffixtree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree, err := ConstructGeneralized("ab\"c", "bc", '#', '$')
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := Tree2Dot(tree, &out); err != nil {
		t.Fatal(err)
	}
	dot := out.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("malformed DOT output")
	}
	if !strings.Contains(dot, `label="\"c#bc$"`) {
		t.Errorf("expected escaped edge label in DOT output")
	}
	if strings.Count(dot, "shape=box") != tree.LeafCount() {
		t.Errorf("expected one box per leaf")
	}
}
