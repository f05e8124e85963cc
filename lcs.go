package suffixtree

import "fmt"

// Origin tells from which texts of a generalized tree the suffixes below a
// node stem.
type Origin uint8

const (
	// OriginNone is set for nodes without any leaves below them (only the root
	// of an empty tree).
	OriginNone Origin = 0
	// OriginFirst marks subtrees with suffixes of the first text only.
	OriginFirst Origin = 1
	// OriginSecond marks subtrees with suffixes of the second text only.
	OriginSecond Origin = 2
	// OriginBoth marks subtrees with suffixes of both texts.
	OriginBoth = OriginFirst | OriginSecond
)

func (o Origin) String() string {
	switch o {
	case OriginNone:
		return "-"
	case OriginFirst:
		return "X"
	case OriginSecond:
		return "Y"
	case OriginBoth:
		return "XY"
	}
	return fmt.Sprintf("Origin(%d)", uint8(o))
}

// Match is a common substring of the two texts of a generalized tree.
type Match struct {
	Length int    // length in characters
	Start1 int    // character position within the first text
	Start2 int    // character position within the second text
	Text   string // the common substring
}

// classification is the result of a post-order traversal of a generalized
// tree.
type classification struct {
	origins []Origin
	min1    []int // smallest suffix index of the first text below a node, or -1
	min2    []int // smallest suffix index of the second text below a node, or -1
	deepest NodeID
	height  int
}

// classify tags every node with its origin and finds the deepest node with
// suffixes from both texts. It does not modify the tree.
func (t *Tree) classify() (*classification, error) {
	if !t.IsGeneralized() {
		return nil, ErrNotGeneralized
	}
	cl := &classification{
		origins: make([]Origin, len(t.nodes)),
		min1:    make([]int, len(t.nodes)),
		min2:    make([]int, len(t.nodes)),
		deepest: NoNode,
	}
	type frame struct {
		node     NodeID
		height   int
		children []EdgeID
		next     int
	}
	stack := []*frame{{node: rootID, children: t.sortedChildren(rootID)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next < len(top.children) {
			e := top.children[top.next]
			top.next++
			child := t.edges[e].child
			stack = append(stack, &frame{
				node:     child,
				height:   top.height + t.edgeLen(e),
				children: t.sortedChildren(child),
			})
			continue
		}
		stack = stack[:len(stack)-1]
		cl.settle(t, top.node, top.children, top.height)
	}
	return cl, nil
}

// settle computes the classification of node n after all its children have
// been settled.
func (cl *classification) settle(t *Tree, n NodeID, children []EdgeID, height int) {
	cl.min1[n], cl.min2[n] = -1, -1
	if t.nodes[n].kind == Leaf {
		if suffix := t.nodes[n].suffix; suffix < t.size1 {
			cl.origins[n], cl.min1[n] = OriginFirst, suffix
		} else {
			cl.origins[n], cl.min2[n] = OriginSecond, suffix
		}
		return
	}
	for _, e := range children {
		child := t.edges[e].child
		cl.origins[n] |= cl.origins[child]
		cl.min1[n] = minIndex(cl.min1[n], cl.min1[child])
		cl.min2[n] = minIndex(cl.min2[n], cl.min2[child])
	}
	if cl.origins[n] == OriginBoth && height > cl.height {
		cl.height = height
		cl.deepest = n
	}
}

func minIndex(a, b int) int {
	if a < 0 || (b >= 0 && b < a) {
		return b
	}
	return a
}

// LongestCommonSubstringLength returns the length (in characters) of the
// longest common substring of the two texts of a generalized tree. If the
// texts do not share a single character, 0 is returned.
//
// For trees not constructed by ConstructGeneralized, ErrNotGeneralized is
// returned.
func (t *Tree) LongestCommonSubstringLength() (int, error) {
	cl, err := t.classify()
	if err != nil {
		return 0, err
	}
	return cl.height, nil
}

// LongestCommonSubstring returns the longest common substring of the two
// texts of a generalized tree, together with its positions in both texts. If
// more than one position qualifies, the leftmost ones are reported. If more
// than one substring of maximum length exists, the one first found in
// lexicographic order of symbols is chosen.
func (t *Tree) LongestCommonSubstring() (Match, error) {
	cl, err := t.classify()
	if err != nil {
		return Match{}, err
	}
	if cl.deepest == NoNode {
		return Match{}, nil
	}
	m := Match{
		Length: cl.height,
		Start1: cl.min1[cl.deepest],
		Start2: cl.min2[cl.deepest] - t.size1,
	}
	m.Text = t.text.Slice(m.Start1, m.Start1+m.Length)
	T().Debugf("suffix tree: longest common substring %q at %d/%d", m.Text, m.Start1, m.Start2)
	return m, nil
}

// Origins returns the origin of every node of a generalized tree, indexed by
// NodeID.
func (t *Tree) Origins() ([]Origin, error) {
	cl, err := t.classify()
	if err != nil {
		return nil, err
	}
	return cl.origins, nil
}

// Texts returns the two texts of a generalized tree, without separator and
// terminator.
func (t *Tree) Texts() (text1, text2 string, err error) {
	if !t.IsGeneralized() {
		return "", "", ErrNotGeneralized
	}
	n := t.text.Len()
	return t.text.Slice(0, t.size1-1), t.text.Slice(t.size1, n-1), nil
}

// SeparatorPosition returns the character position of the separator within
// the corpus of a generalized tree. The second text starts right after it.
func (t *Tree) SeparatorPosition() (int, error) {
	if !t.IsGeneralized() {
		return -1, ErrNotGeneralized
	}
	return t.size1 - 1, nil
}
