package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLCSCommand(t *testing.T) {
	f1 := writeTemp(t, "x.txt", "xabxac")
	f2 := writeTemp(t, "y.txt", "abcabxabcd")
	var out strings.Builder
	if err := run([]string{"sfxlcs", "lcs", f1, f2}, &out); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", out.String())
	if !strings.Contains(out.String(), "length: 4\n") {
		t.Errorf("expected LCS length 4, have\n%s", out.String())
	}
	if !strings.Contains(out.String(), `common: "abxa"`) {
		t.Errorf("expected common substring 'abxa', have\n%s", out.String())
	}
}

func TestLCSCommandHTML(t *testing.T) {
	f1 := writeTemp(t, "x.html", "<p>ab<b>c</b></p>")
	f2 := writeTemp(t, "y.html", "<div>zbcz</div>")
	result := filepath.Join(t.TempDir(), "lcs.html")
	var out strings.Builder
	args := []string{"sfxlcs", "--html-input", "lcs", "--html", result, f1, f2}
	if err := run(args, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `common: "bc"`) {
		t.Errorf("expected common substring 'bc', have\n%s", out.String())
	}
	h, err := os.ReadFile(result)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(h), "<mark>bc</mark>") {
		t.Errorf("expected marked substring in HTML output, have %s", h)
	}
}

func TestLCSCommandArgs(t *testing.T) {
	f1 := writeTemp(t, "x.txt", "a#b")
	var out strings.Builder
	if err := run([]string{"sfxlcs", "lcs", f1}, &out); err == nil {
		t.Errorf("expected error for missing second file")
	}
	if err := run([]string{"sfxlcs", "lcs", "--separator", "#", f1, f1}, &out); err == nil {
		t.Errorf("expected error for separator occurring in text")
	}
	if err := run([]string{"sfxlcs", "lcs", "--terminator", "ab", f1, f1}, &out); err == nil {
		t.Errorf("expected error for multi-character terminator")
	}
}

func TestFindCommand(t *testing.T) {
	f := writeTemp(t, "banana.txt", "banana")
	var out strings.Builder
	if err := run([]string{"sfxlcs", "find", f, "ana"}, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "occurrences: 2\n1\n3\n" {
		t.Errorf("unexpected output\n%s", out.String())
	}
}

func TestTreeCommand(t *testing.T) {
	f := writeTemp(t, "banana.txt", "banana")
	dot := filepath.Join(t.TempDir(), "banana.dot")
	var out strings.Builder
	if err := run([]string{"sfxlcs", "tree", "--terminator", "$", f}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "banana$ ·0") {
		t.Errorf("expected leaf for suffix 0 in outline, have\n%s", out.String())
	}
	if err := run([]string{"sfxlcs", "tree", "--dot", dot, f}, &out); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(dot)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(d), "digraph") {
		t.Errorf("expected DOT output, have %.40s", d)
	}
}

func TestTraceLevel(t *testing.T) {
	f := writeTemp(t, "a.txt", "a")
	var out strings.Builder
	if err := run([]string{"sfxlcs", "--trace", "loud", "find", f, "a"}, &out); err == nil {
		t.Errorf("expected error for unknown trace level")
	}
}
