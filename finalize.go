package suffixtree

// finalize assigns suffix indices to all leaves.
//
// The traversal accumulates the label height from the root; a leaf at height
// h represents the suffix starting at n-h. An explicit stack is used, as
// degenerate texts (e.g., "aaaa…a") produce paths as deep as the text is long.
func (t *Tree) finalize() {
	type frame struct {
		node   NodeID
		height int
	}
	n := t.end + 1
	stack := []frame{{node: rootID}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.height > t.depth {
			t.depth = top.height
		}
		nd := &t.nodes[top.node]
		if nd.kind == Leaf {
			nd.suffix = n - top.height
			continue
		}
		for _, e := range nd.children {
			stack = append(stack, frame{
				node:   t.edges[e].child,
				height: top.height + t.edgeLen(e),
			})
		}
	}
}
