/*
Package html connects generalized suffix trees with HTML: it extracts plain
text from HTML input, and it renders the texts of a generalized tree with
their longest common substring marked up.
*/
package html

import (
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/suffixtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InnerText returns the textual content of an HTML element and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", suffixtree.ErrIllegalArguments
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String(), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	} else if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML extracts the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure
// text.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return b.String(), nil
}

// Highlight renders both texts of a generalized suffix tree as HTML
// paragraphs, marking their longest common substring with <mark> elements:
//
//	<div class="lcs" data-length="2">
//	  <p class="text1">a<mark>bc</mark></p>
//	  <p class="text2"><mark>bc</mark>d</p>
//	</div>
func Highlight(tree *suffixtree.Tree, w io.Writer) error {
	if tree == nil || w == nil {
		return suffixtree.ErrIllegalArguments
	}
	match, err := tree.LongestCommonSubstring()
	if err != nil {
		return err
	}
	sep, err := tree.SeparatorPosition()
	if err != nil {
		return err
	}
	text := tree.Text()
	div := element(atom.Div, "lcs")
	div.Attr = append(div.Attr, html.Attribute{Key: "data-length", Val: strconv.Itoa(match.Length)})
	div.AppendChild(paragraph(text, "text1", 0, sep, match.Start1, match.Length))
	div.AppendChild(paragraph(text, "text2", sep+1, text.Len()-1, sep+1+match.Start2, match.Length))
	gtrace.CoreTracer.Debugf("html: highlighting common substring %q", match.Text)
	return html.Render(w, div)
}

// paragraph creates a <p> element for the characters [from, to) of text, with
// characters [start, start+length) marked.
func paragraph(text *suffixtree.Text, class string, from, to, start, length int) *html.Node {
	p := element(atom.P, class)
	if length == 0 {
		appendText(p, text.Slice(from, to))
		return p
	}
	appendText(p, text.Slice(from, start))
	mark := element(atom.Mark, "")
	appendText(mark, text.Slice(start, start+length))
	p.AppendChild(mark)
	appendText(p, text.Slice(start+length, to))
	return p
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func appendText(n *html.Node, s string) {
	if s == "" {
		return
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}
