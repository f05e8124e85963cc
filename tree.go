package suffixtree

import (
	"fmt"
	"sort"
)

// Kind classifies tree nodes.
type Kind int8

const (
	// Leaf nodes represent suffixes of the text.
	Leaf Kind = iota
	// Internal nodes are branching points between root and leaves.
	Internal
	// Root is the kind of the single root node of a tree.
	Root
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Internal:
		return "internal"
	case Root:
		return "root"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// NodeID addresses a node in the node arena of a tree.
type NodeID int32

// EdgeID addresses an edge in the edge arena of a tree.
type EdgeID int32

// NoNode and NoEdge are used for absent references.
const (
	NoNode NodeID = -1
	NoEdge EdgeID = -1
)

const rootID NodeID = 0

// edgeEnd is the end position of an edge label. Open ends refer to the shared
// end marker of the tree, closed ends carry a fixed position.
type edgeEnd struct {
	open  bool
	value int
}

func openEnd() edgeEnd           { return edgeEnd{open: true} }
func closedEnd(pos int) edgeEnd { return edgeEnd{value: pos} }

type node struct {
	kind     Kind
	link     NodeID // suffix link, NoNode for root and leaves
	suffix   int    // suffix index, -1 until finalized
	parent   EdgeID // NoEdge for root
	children map[Symbol]EdgeID
}

type edge struct {
	start  int
	end    edgeEnd
	child  NodeID
	parent NodeID
}

// Tree is a finalized suffix tree.
//
// Trees are read-only after construction and may be shared between
// goroutines.
type Tree struct {
	text  *Text
	nodes []node
	edges []edge
	end   int // shared end marker for open edges
	size1 int // position of the separator + 1 for generalized trees, 0 otherwise
	depth int // maximum label height of any node, set by finalization
}

func newTree(text *Text) *Tree {
	t := &Tree{
		text:  text,
		nodes: make([]node, 0, 2*text.Len()+1),
		edges: make([]edge, 0, 2*text.Len()),
		end:   -1,
	}
	t.nodes = append(t.nodes, node{
		kind:   Root,
		link:   NoNode,
		suffix: -1,
		parent: NoEdge,
	})
	return t
}

// --- Arena operations ------------------------------------------------------

func (t *Tree) newNode(kind Kind) NodeID {
	link := NoNode
	if kind == Internal {
		link = rootID
	}
	t.nodes = append(t.nodes, node{
		kind:   kind,
		link:   link,
		suffix: -1,
		parent: NoEdge,
	})
	return NodeID(len(t.nodes) - 1)
}

// connect creates an edge from parent to child, keyed by the first symbol of
// the edge label.
func (t *Tree) connect(parent NodeID, start int, end edgeEnd, child NodeID) EdgeID {
	t.edges = append(t.edges, edge{
		start:  start,
		end:    end,
		child:  child,
		parent: parent,
	})
	eid := EdgeID(len(t.edges) - 1)
	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[Symbol]EdgeID)
	}
	p.children[t.text.At(start)] = eid
	t.nodes[child].parent = eid
	return eid
}

func (t *Tree) edgeEndPos(e EdgeID) int {
	if t.edges[e].end.open {
		return t.end
	}
	return t.edges[e].end.value
}

func (t *Tree) edgeLen(e EdgeID) int {
	return t.edgeEndPos(e) - t.edges[e].start + 1
}

// sortedChildren returns the child edges of n, ordered by leading symbol.
func (t *Tree) sortedChildren(n NodeID) []EdgeID {
	children := t.nodes[n].children
	if len(children) == 0 {
		return nil
	}
	keys := make([]Symbol, 0, len(children))
	for sym := range children {
		keys = append(keys, sym)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	edges := make([]EdgeID, len(keys))
	for i, sym := range keys {
		edges[i] = children[sym]
	}
	return edges
}

// --- Read-only API ---------------------------------------------------------

// Text returns the corpus of the tree.
func (t *Tree) Text() *Text {
	return t.text
}

// Len returns the number of characters of the corpus.
func (t *Tree) Len() int {
	return t.text.Len()
}

// IsGeneralized reports whether the tree has been built for two texts.
func (t *Tree) IsGeneralized() bool {
	return t.size1 > 0
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return Node{t: t, id: rootID}
}

// NodeAt returns the node with arena index id.
func (t *Tree) NodeAt(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}, false
	}
	return Node{t: t, id: id}, true
}

// NodeCount returns the number of nodes of the tree, including the root.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

// LeafCount returns the number of leaves of the tree.
func (t *Tree) LeafCount() int {
	cnt := 0
	for i := range t.nodes {
		if t.nodes[i].kind == Leaf {
			cnt++
		}
	}
	return cnt
}

// Leaves returns all leaves, ordered by their suffix index.
func (t *Tree) Leaves() []Node {
	var leaves []Node
	for i := range t.nodes {
		if t.nodes[i].kind == Leaf {
			leaves = append(leaves, Node{t: t, id: NodeID(i)})
		}
	}
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].SuffixIndex() < leaves[j].SuffixIndex()
	})
	return leaves
}

// Height returns the label height of a node, i.e. the number of characters on
// the path from the root to the node.
func (t *Tree) Height(n Node) int {
	h := 0
	for e := t.nodes[n.id].parent; e != NoEdge; e = t.nodes[t.edges[e].parent].parent {
		h += t.edgeLen(e)
	}
	return h
}

// PathLabel concatenates the edge labels on the path from the root to n.
func (t *Tree) PathLabel(n Node) string {
	var path []EdgeID
	for e := t.nodes[n.id].parent; e != NoEdge; e = t.nodes[t.edges[e].parent].parent {
		path = append(path, e)
	}
	label := ""
	for i := len(path) - 1; i >= 0; i-- {
		label += t.text.Slice(t.edges[path[i]].start, t.edgeEndPos(path[i])+1)
	}
	return label
}

// --- Nodes and edges -------------------------------------------------------

// Node is a read-only handle for a node of a tree.
// The zero value is not a valid node.
type Node struct {
	t  *Tree
	id NodeID
}

// ID returns the arena index of the node. IDs are stable for the lifetime of
// a tree, the root having ID 0.
func (n Node) ID() NodeID {
	return n.id
}

// IsValid reports whether n refers to a node of a tree.
func (n Node) IsValid() bool {
	return n.t != nil
}

// Kind returns the node type.
func (n Node) Kind() Kind {
	return n.t.nodes[n.id].kind
}

// SuffixIndex returns the start position of the suffix represented by a leaf.
// Root and internal nodes return -1.
func (n Node) SuffixIndex() int {
	return n.t.nodes[n.id].suffix
}

// SuffixLink returns the suffix link target of an internal node.
func (n Node) SuffixLink() (Node, bool) {
	link := n.t.nodes[n.id].link
	if link == NoNode {
		return Node{}, false
	}
	return Node{t: n.t, id: link}, true
}

// Parent returns the edge leading to n. The root has no parent edge.
func (n Node) Parent() (Edge, bool) {
	e := n.t.nodes[n.id].parent
	if e == NoEdge {
		return Edge{}, false
	}
	return Edge{t: n.t, id: e}, true
}

// Children returns the outgoing edges of n, ordered by their leading
// character.
func (n Node) Children() []Edge {
	ids := n.t.sortedChildren(n.id)
	edges := make([]Edge, len(ids))
	for i, e := range ids {
		edges[i] = Edge{t: n.t, id: e}
	}
	return edges
}

// ChildCount returns the number of outgoing edges of n.
func (n Node) ChildCount() int {
	return len(n.t.nodes[n.id].children)
}

// Child returns the outgoing edge starting with character ch.
func (n Node) Child(ch string) (Edge, bool) {
	syms, ok := n.t.text.Symbols(ch)
	if !ok || len(syms) != 1 {
		return Edge{}, false
	}
	e, ok := n.t.nodes[n.id].children[syms[0]]
	if !ok {
		return Edge{}, false
	}
	return Edge{t: n.t, id: e}, true
}

func (n Node) String() string {
	if n.t == nil {
		return "<no node>"
	}
	if n.Kind() == Leaf {
		return fmt.Sprintf("leaf#%d[%d]", n.id, n.SuffixIndex())
	}
	return fmt.Sprintf("%s#%d", n.Kind(), n.id)
}

// Edge is a read-only handle for an edge of a tree.
type Edge struct {
	t  *Tree
	id EdgeID
}

// ID returns the arena index of the edge.
func (e Edge) ID() EdgeID {
	return e.id
}

// Start returns the text position of the first character of the edge label.
func (e Edge) Start() int {
	return e.t.edges[e.id].start
}

// End returns the text position of the last character of the edge label
// (inclusive).
func (e Edge) End() int {
	return e.t.edgeEndPos(e.id)
}

// Len returns the number of characters of the edge label.
func (e Edge) Len() int {
	return e.t.edgeLen(e.id)
}

// Label returns the edge label.
func (e Edge) Label() string {
	return e.t.text.Slice(e.Start(), e.End()+1)
}

// Child returns the node the edge leads to.
func (e Edge) Child() Node {
	return Node{t: e.t, id: e.t.edges[e.id].child}
}

// From returns the node the edge starts from.
func (e Edge) From() Node {
	return Node{t: e.t, id: e.t.edges[e.id].parent}
}
