package suffixtree

import (
	"testing"
)

func TestTextRunes(t *testing.T) {
	text := NewText(Runes, "Gr\u00fc\u00dfe", "#")
	if text.Len() != 6 {
		t.Fatalf("expected 6 runes, have %d", text.Len())
	}
	if text.Char(2) != "\u00fc" || text.At(5) != '#' {
		t.Errorf("unexpected characters %q, %q", text.Char(2), text.Char(5))
	}
	if text.Slice(1, 4) != "r\u00fc\u00df" {
		t.Errorf("expected slice 'rüß', have %q", text.Slice(1, 4))
	}
	if text.String() != "Gr\u00fc\u00dfe#" {
		t.Errorf("unexpected text %q", text.String())
	}
}

func TestTextGraphemes(t *testing.T) {
	// "e" followed by a combining acute accent forms a single grapheme
	text := NewText(Graphemes, "cafe\u0301", "#", "\u0301x")
	if text.Len() != 7 {
		t.Fatalf("expected 7 graphemes, have %d", text.Len())
	}
	if text.Char(3) != "e\u0301" {
		t.Errorf("expected cluster 'é' at 3, have %q", text.Char(3))
	}
	if text.At(4) != '#' {
		t.Errorf("expected separator to stay a character of its own, have %q", text.Char(4))
	}
	syms, ok := text.Symbols("fe\u0301")
	if !ok || len(syms) != 2 || syms[1] != text.At(3) {
		t.Errorf("expected pattern to map onto interned cluster, have %v", syms)
	}
	if _, ok := text.Symbols("o\u0301"); ok {
		t.Errorf("did not expect unknown cluster to be mapped")
	}
}

func TestTextRangeCheck(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected out-of-range access to panic")
		}
	}()
	text := NewText(Runes, "abc")
	_ = text.Char(3)
}
