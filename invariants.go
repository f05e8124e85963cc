package suffixtree

import (
	"fmt"
	"strings"
)

// Stats holds structural figures of a tree.
type Stats struct {
	Chars     int // length of the corpus in characters
	Nodes     int
	Leaves    int
	Internal  int
	Links     int // internal nodes with a suffix link other than the root
	MaxHeight int // deepest label height of any node
}

func (s Stats) String() string {
	return fmt.Sprintf("%d chars, %d nodes (%d leaves, %d internal, %d links), height %d",
		s.Chars, s.Nodes, s.Leaves, s.Internal, s.Links, s.MaxHeight)
}

// Stats returns structural figures of the tree.
func (t *Tree) Stats() Stats {
	s := Stats{
		Chars:     t.text.Len(),
		Nodes:     len(t.nodes),
		MaxHeight: t.depth,
	}
	for i := range t.nodes {
		switch t.nodes[i].kind {
		case Leaf:
			s.Leaves++
		case Internal:
			s.Internal++
			if t.nodes[i].link != rootID && t.nodes[i].link != NoNode {
				s.Links++
			}
		}
	}
	return s
}

// Check validates structural tree invariants:
//
//   - edge ranges lie within the text,
//   - children are keyed by the first character of their edge label,
//   - parent references of nodes and edges agree,
//   - internal nodes branch into at least two children, and only leaf edges
//     are open,
//   - suffix indices of leaves are unique and every leaf's path label is the
//     suffix of the text starting at its suffix index,
//   - suffix links of internal nodes point to internal nodes (or the root)
//     whose path label is the path label of the source minus its first
//     character.
//
// Check is expensive (quadratic in the size of the text) and intended to be
// used in tests.
func (t *Tree) Check() error {
	if t == nil || t.text == nil || len(t.nodes) == 0 {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}
	n := t.text.Len()
	if t.nodes[rootID].kind != Root || t.nodes[rootID].parent != NoEdge {
		return fmt.Errorf("%w: malformed root", ErrInvalidTree)
	}
	if n > 0 && len(t.nodes[rootID].children) == 0 {
		return fmt.Errorf("%w: root of non-empty text has no children", ErrInvalidTree)
	}
	for id, e := range t.edges {
		end := t.edgeEndPos(EdgeID(id))
		if e.start < 0 || e.start > end || end >= n {
			return fmt.Errorf("%w: edge %d has range [%d,%d] outside text of length %d",
				ErrInvalidTree, id, e.start, end, n)
		}
		if t.nodes[e.child].parent != EdgeID(id) {
			return fmt.Errorf("%w: node %d does not point back to edge %d", ErrInvalidTree, e.child, id)
		}
		if t.nodes[e.parent].children[t.text.At(e.start)] != EdgeID(id) {
			return fmt.Errorf("%w: edge %d not registered with its parent %d", ErrInvalidTree, id, e.parent)
		}
		if e.end.open && t.nodes[e.child].kind != Leaf {
			return fmt.Errorf("%w: open edge %d leads to non-leaf", ErrInvalidTree, id)
		}
	}
	seen := make(map[int]NodeID)
	for i, nd := range t.nodes {
		id := NodeID(i)
		switch nd.kind {
		case Leaf:
			if len(nd.children) > 0 {
				return fmt.Errorf("%w: leaf %d has children", ErrInvalidTree, id)
			}
			if nd.suffix < 0 || nd.suffix >= n {
				return fmt.Errorf("%w: leaf %d has suffix index %d", ErrInvalidTree, id, nd.suffix)
			}
			if other, dup := seen[nd.suffix]; dup {
				return fmt.Errorf("%w: leaves %d and %d share suffix index %d",
					ErrInvalidTree, other, id, nd.suffix)
			}
			seen[nd.suffix] = id
			node := Node{t: t, id: id}
			if label := t.PathLabel(node); label != t.text.Slice(nd.suffix, n) {
				return fmt.Errorf("%w: leaf %d path label %q does not match suffix %d",
					ErrInvalidTree, id, label, nd.suffix)
			}
		case Internal:
			if len(nd.children) < 2 {
				return fmt.Errorf("%w: internal node %d has %d children",
					ErrInvalidTree, id, len(nd.children))
			}
			if err := t.checkLink(id); err != nil {
				return err
			}
		case Root:
			if id != rootID {
				return fmt.Errorf("%w: second root %d", ErrInvalidTree, id)
			}
		}
		if nd.suffix >= 0 && nd.kind != Leaf {
			return fmt.Errorf("%w: %s node %d carries suffix index", ErrInvalidTree, nd.kind, id)
		}
	}
	return nil
}

func (t *Tree) checkLink(id NodeID) error {
	link := t.nodes[id].link
	if link == NoNode || t.nodes[link].kind == Leaf {
		return fmt.Errorf("%w: internal node %d has suffix link to %d", ErrInvalidTree, id, link)
	}
	if link == rootID {
		return nil // default link, not (yet) resolved
	}
	from := t.PathLabel(Node{t: t, id: id})
	to := t.PathLabel(Node{t: t, id: link})
	if !strings.HasSuffix(from, to) || t.Height(Node{t: t, id: link}) != t.Height(Node{t: t, id: id})-1 {
		return fmt.Errorf("%w: suffix link %d→%d joins %q and %q", ErrInvalidTree, id, link, from, to)
	}
	return nil
}
