package suffixtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a suffix tree in Graphviz DOT
// format (for debugging purposes). Suffix links are drawn as dashed arcs.
//
// For generalized trees, nodes are colored by their origin.
func Tree2Dot(t *Tree, w io.Writer) error {
	if t == nil {
		return ErrIllegalArguments
	}
	var origins []Origin
	if t.IsGeneralized() {
		var err error
		if origins, err = t.Origins(); err != nil {
			T().Errorf("suffix tree DOT: %s", err.Error())
			return err
		}
	}
	var nodelist, edgelist strings.Builder
	for i, nd := range t.nodes {
		id := NodeID(i)
		var origin Origin
		if origins != nil {
			origin = origins[id]
		}
		styles := nodeDotStyles(nd.kind, origin)
		switch nd.kind {
		case Leaf:
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%d\" %s];\n", id, nd.suffix, styles)
		default:
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"\" %s];\n", id, styles)
		}
		for _, e := range t.sortedChildren(id) {
			label := dotEscape(t.text.Slice(t.edges[e].start, t.edgeEndPos(e)+1))
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=\"%s\"];\n", id, t.edges[e].child, label)
		}
		if nd.kind == Internal && nd.link != NoNode {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [style=dashed,color=gray,constraint=false];\n",
				id, nd.link)
		}
	}
	if _, err := io.WriteString(w, "digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, edgelist.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

func nodeDotStyles(kind Kind, origin Origin) string {
	s := ",style=filled"
	switch kind {
	case Leaf:
		s += ",shape=box"
	case Root:
		s += ",color=black,shape=doublecircle,width=.3"
	default:
		s += ",color=black,shape=circle,width=.3"
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", originColors[origin])
	return s
}

var originColors = [...]string{"white", "#CCDDFF", "#FFCCAA", "#AADDAA"}
