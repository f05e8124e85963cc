package suffixtree

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
)

// Symbol is an interned character of a text.
//
// For single-rune characters the symbol is the rune itself. Multi-rune
// grapheme clusters are numbered by negative symbols, unique per Text.
type Symbol int32

// Text is an immutable sequence of characters, the corpus of a suffix tree.
//
// Positions are character positions, not byte offsets. Accessing positions
// outside of [0, Len()) is a programming error and panics.
type Text struct {
	syms     []Symbol
	clusters []string       // multi-rune clusters, addressed by -(sym+1)
	interned map[string]Symbol
	seg      Segmentation
}

var setupGraphemes sync.Once

// NewText segments one or more parts into characters and concatenates them.
//
// Parts are segmented separately, so a grapheme cluster never spans across
// the boundary of two parts. This keeps sentinel characters between texts
// intact, even if the text following a sentinel starts with a combining mark.
func NewText(seg Segmentation, parts ...string) *Text {
	total := 0
	for _, p := range parts {
		total += utf8.RuneCountInString(p)
	}
	text := &Text{
		syms: make([]Symbol, 0, total),
		seg:  seg,
	}
	for _, p := range parts {
		text.append(p)
	}
	return text
}

func (text *Text) append(s string) {
	if text.seg != Graphemes {
		for _, r := range s {
			text.syms = append(text.syms, Symbol(r))
		}
		return
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	for i := 0; i < gstr.Len(); i++ {
		text.syms = append(text.syms, text.intern(gstr.Nth(i)))
	}
}

// intern maps a grapheme cluster to a symbol.
func (text *Text) intern(cluster string) Symbol {
	if r, size := utf8.DecodeRuneInString(cluster); size == len(cluster) {
		return Symbol(r)
	}
	if sym, ok := text.interned[cluster]; ok {
		return sym
	}
	if text.interned == nil {
		text.interned = make(map[string]Symbol)
	}
	text.clusters = append(text.clusters, cluster)
	sym := Symbol(-len(text.clusters))
	text.interned[cluster] = sym
	return sym
}

// Len returns the number of characters in the text.
func (text *Text) Len() int {
	if text == nil {
		return 0
	}
	return len(text.syms)
}

// Segmentation returns the segmentation the text has been created with.
func (text *Text) Segmentation() Segmentation {
	return text.seg
}

// At returns the symbol at character position i.
func (text *Text) At(i int) Symbol {
	assert(i >= 0 && i < text.Len(), "text.At: index out of range")
	return text.syms[i]
}

// Char returns the character at position i as a string.
func (text *Text) Char(i int) string {
	return text.SymbolString(text.At(i))
}

// SymbolString returns the string representation of a symbol of this text.
func (text *Text) SymbolString(sym Symbol) string {
	if sym >= 0 {
		return string(rune(sym))
	}
	k := int(-sym) - 1
	assert(k < len(text.clusters), "text.SymbolString: unknown cluster symbol")
	return text.clusters[k]
}

// Slice returns the characters [i, j) as a string.
func (text *Text) Slice(i, j int) string {
	assert(i >= 0 && i <= j && j <= text.Len(), "text.Slice: range out of bounds")
	var b strings.Builder
	for _, sym := range text.syms[i:j] {
		b.WriteString(text.SymbolString(sym))
	}
	return b.String()
}

// String returns the complete text.
func (text *Text) String() string {
	return text.Slice(0, text.Len())
}

// Symbols segments s with the segmentation of text and returns the symbols.
// If s contains a character unknown to text, ok is false.
func (text *Text) Symbols(s string) (syms []Symbol, ok bool) {
	probe := NewText(text.seg, s)
	syms = probe.syms
	for i, sym := range syms {
		if sym >= 0 {
			continue
		}
		known, found := text.interned[probe.SymbolString(sym)]
		if !found {
			return nil, false
		}
		syms[i] = known
	}
	return syms, true
}
