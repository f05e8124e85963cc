package suffixtree

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLocate(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := Construct("banana$")
	if err != nil {
		t.Fatal(err)
	}
	n, offset, ok := tree.Locate("an")
	if !ok || offset != 1 || tree.PathLabel(n) != "ana" {
		t.Errorf("expected 'an' to end 1 char above node 'ana', have %v/%d", n, offset)
	}
	n, offset, ok = tree.Locate("na")
	if !ok || offset != 0 || n.Kind() != Internal {
		t.Errorf("expected 'na' to end at an internal node, have %v/%d", n, offset)
	}
	if _, _, ok = tree.Locate("nab"); ok {
		t.Errorf("did not expect to locate 'nab'")
	}
	if _, _, ok = tree.Locate("x"); ok {
		t.Errorf("did not expect to locate 'x'")
	}
	if n, _, ok = tree.Locate(""); !ok || n != tree.Root() {
		t.Errorf("expected empty string to be located at root")
	}
}

func TestOccurrences(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(99))
	text := randomText(rnd, "abc", 200) + "$"
	tree, err := Construct(text)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < 100; k++ {
		pattern := randomText(rnd, "abc", 1+rnd.Intn(5))
		want := naiveOccurrences(text, pattern)
		have := tree.Occurrences(pattern)
		if len(have) != len(want) {
			t.Fatalf("%q: expected %d occurrences, have %d", pattern, len(want), len(have))
		}
		for i := range want {
			if have[i] != want[i] {
				t.Fatalf("%q: expected occurrences %v, have %v", pattern, want, have)
			}
		}
		if tree.Contains(pattern) != (len(want) > 0) {
			t.Fatalf("%q: Contains disagrees with occurrences", pattern)
		}
	}
}

func naiveOccurrences(text, pattern string) []int {
	var positions []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		if strings.HasPrefix(text[i:], pattern) {
			positions = append(positions, i)
		}
	}
	return positions
}
