package suffixtree

import "sort"

// Locate follows the characters of s from the root. It returns the node at or
// below the position where s ends, and the number of characters of the edge
// leading to that node which are not part of s (0 if s ends exactly at the
// node). If s is not a substring of the text, ok is false.
//
// For every node n it holds that Locate(PathLabel(n)) returns n with offset 0.
func (t *Tree) Locate(s string) (n Node, offset int, ok bool) {
	syms, ok := t.text.Symbols(s)
	if !ok {
		return Node{}, 0, false
	}
	at := rootID
	for k := 0; k < len(syms); {
		e, found := t.nodes[at].children[syms[k]]
		if !found {
			return Node{}, 0, false
		}
		start, end := t.edges[e].start, t.edgeEndPos(e)
		j := start
		for ; j <= end && k < len(syms); j, k = j+1, k+1 {
			if t.text.At(j) != syms[k] {
				return Node{}, 0, false
			}
		}
		at = t.edges[e].child
		offset = end - j + 1
	}
	return Node{t: t, id: at}, offset, true
}

// Contains reports whether pattern is a substring of the text of the tree.
func (t *Tree) Contains(pattern string) bool {
	_, _, ok := t.Locate(pattern)
	return ok
}

// Occurrences returns the start positions of all occurrences of pattern in
// the text of the tree, in ascending order. Occurrences which are suffixes
// without a leaf of their own (trees for texts without a unique terminator)
// are not reported.
func (t *Tree) Occurrences(pattern string) []int {
	n, _, ok := t.Locate(pattern)
	if !ok {
		return nil
	}
	var positions []int
	stack := []NodeID{n.id}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.nodes[top].kind == Leaf {
			positions = append(positions, t.nodes[top].suffix)
			continue
		}
		for _, e := range t.nodes[top].children {
			stack = append(stack, t.edges[e].child)
		}
	}
	sort.Ints(positions)
	return positions
}
