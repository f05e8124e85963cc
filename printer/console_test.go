package printer

import (
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/suffixtree"
	"github.com/npillmayer/uax/uax11"
)

func TestPrintOutline(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	tree, err := suffixtree.Construct("banana$")
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	config := &Config{NoColor: true, Context: uax11.LatinContext}
	if err := Print(tree, &out, config); err != nil {
		t.Fatal(err)
	}
	outline := out.String()
	t.Logf("\n%s", outline)
	lines := strings.Split(strings.TrimRight(outline, "\n"), "\n")
	if len(lines) != tree.NodeCount() {
		t.Errorf("expected %d lines, one per node, have %d", tree.NodeCount(), len(lines))
	}
	if !strings.Contains(outline, "banana$ ·0") {
		t.Errorf("expected leaf for suffix 0 in outline")
	}
	if strings.Contains(outline, "\x1b[") {
		t.Errorf("did not expect escape sequences in colorless output")
	}
}

func TestTruncateLabels(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tree, err := suffixtree.Construct("banana$")
	if err != nil {
		t.Fatal(err)
	}
	config := &Config{LabelWidth: 4, NoColor: true, Context: uax11.LatinContext}
	outline := Sprint(tree, config)
	if !strings.Contains(outline, "ban… ·0") {
		t.Errorf("expected label 'banana$' to be truncated to 'ban…', have\n%s", outline)
	}
	if !strings.Contains(outline, "na$ ·2") {
		t.Errorf("expected short label 'na$' to be kept, have\n%s", outline)
	}
}

func TestColoredOrigins(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()
	tree, err := suffixtree.ConstructGeneralized("abc", "bcd", '#', '$')
	if err != nil {
		t.Fatal(err)
	}
	config := &Config{Colors: DefaultPalette, Context: uax11.LatinContext}
	outline := Sprint(tree, config)
	if !strings.Contains(outline, "\x1b[") {
		t.Errorf("expected colored output for generalized tree")
	}
	plain := Sprint(tree, &Config{NoColor: true, Context: uax11.LatinContext})
	if !strings.Contains(plain, "── bc\n") {
		t.Errorf("expected branch 'bc' in outline, have\n%s", plain)
	}
}

func TestSprintDefaults(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tree, err := suffixtree.Construct("banana$")
	if err != nil {
		t.Fatal(err)
	}
	config := &Config{LabelWidth: 4, NoColor: true}
	outline := Sprint(tree, config)
	if !strings.Contains(outline, "ban… ·0") {
		t.Errorf("expected truncated label with default width context, have\n%s", outline)
	}
	if config.Context != nil || config.Colors != nil {
		t.Errorf("expected caller's config to stay untouched")
	}
	if !strings.Contains(Sprint(tree, nil), "banana$ ·0") {
		t.Errorf("expected untruncated outline for nil config")
	}
}

func TestPrintIllegalArguments(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var out strings.Builder
	if err := Print(nil, &out, nil); !errors.Is(err, suffixtree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, have %v", err)
	}
}
