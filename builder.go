package suffixtree

import (
	"fmt"
	"strings"
)

// Builder constructs suffix trees with a given configuration.
//
// A builder may be used for any number of constructions, but not
// concurrently.
type Builder struct {
	cfg Config
}

// New creates a builder for a configuration.
func New(cfg Config) (*Builder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg.normalized()}, nil
}

// Construct builds the suffix tree for a text, using the default
// configuration.
//
// For every suffix to be represented by a leaf of its own, the text should end
// with a character occuring nowhere else in the text. Otherwise suffixes which
// are prefixes of other suffixes end implicitly on inner paths of the tree.
func Construct(text string) (*Tree, error) {
	return (&Builder{}).Construct(text)
}

// ConstructGeneralized builds a generalized suffix tree for two texts, using
// the default configuration. The tree is built for
//
//	text1 + separator + text2 + terminator
//
// Neither separator nor terminator may occur in text1 or text2.
func ConstructGeneralized(text1, text2 string, separator, terminator rune) (*Tree, error) {
	return (&Builder{}).ConstructGeneralized(text1, text2, separator, terminator)
}

// Construct builds the suffix tree for a text.
func (b *Builder) Construct(text string) (*Tree, error) {
	corpus := NewText(b.cfg.Segmentation, text)
	return b.build(corpus, 0)
}

// ConstructGeneralized builds a generalized suffix tree for two texts.
func (b *Builder) ConstructGeneralized(text1, text2 string, separator, terminator rune) (*Tree, error) {
	if separator == terminator {
		return nil, fmt.Errorf("%w: separator and terminator are identical (%q)",
			ErrIllegalSentinel, separator)
	}
	for _, sentinel := range [...]rune{separator, terminator} {
		if strings.ContainsRune(text1, sentinel) || strings.ContainsRune(text2, sentinel) {
			return nil, fmt.Errorf("%w: %q occurs in text", ErrIllegalSentinel, sentinel)
		}
	}
	first := NewText(b.cfg.Segmentation, text1)
	corpus := NewText(b.cfg.Segmentation, text1, string(separator), text2, string(terminator))
	return b.build(corpus, first.Len()+1)
}

func (b *Builder) build(corpus *Text, size1 int) (*Tree, error) {
	if b.cfg.MaxLength > 0 && corpus.Len() > b.cfg.MaxLength {
		return nil, fmt.Errorf("%w: %d characters, limit is %d",
			ErrTextTooLong, corpus.Len(), b.cfg.MaxLength)
	}
	T().Debugf("suffix tree: constructing tree for %d characters", corpus.Len())
	tree, err := newUkkonen(corpus).run()
	if err != nil {
		T().Errorf("suffix tree: %v", err)
		return nil, err
	}
	tree.size1 = size1
	tree.finalize()
	T().Infof("suffix tree: %v", tree.Stats())
	return tree, nil
}

// --- Ukkonen's algorithm ---------------------------------------------------

// activePoint is the position where the next suffix is to be inserted.
// If length is 0, the active point is located at node and edge is
// meaningless. Otherwise it is located length characters down the edge of
// node which starts with the character at text position edge.
type activePoint struct {
	node   NodeID
	edge   int
	length int
}

// ukkonen holds the construction state which is carried from phase to phase.
type ukkonen struct {
	tree      *Tree
	text      *Text
	active    activePoint
	remainder int // suffixes pending explicit insertion
}

func newUkkonen(text *Text) *ukkonen {
	return &ukkonen{
		tree:   newTree(text),
		text:   text,
		active: activePoint{node: rootID, edge: -1},
	}
}

// run executes all phases. If a phase fails, no tree is returned.
func (u *ukkonen) run() (*Tree, error) {
	for i := 0; i < u.text.Len(); i++ {
		if err := u.phase(i); err != nil {
			return nil, err
		}
	}
	return u.tree, nil
}

// phase extends the implicit tree for text[0…i-1] to text[0…i].
func (u *ukkonen) phase(i int) error {
	t := u.tree
	c := u.text.At(i)
	t.end++ // rule 1 for all open leaf edges
	u.remainder++
	pending := NoNode // internal node created in this phase, waiting for a suffix link
	for u.remainder > 0 {
		if u.active.length == 0 {
			u.active.edge = i
		}
		e, ok := t.nodes[u.active.node].children[u.text.At(u.active.edge)]
		if !ok {
			if u.active.length > 0 {
				return fmt.Errorf("%w: phase %d: no active edge for active length %d",
					ErrInvariantViolation, i, u.active.length)
			}
			// rule 2: new leaf directly at the active node
			leaf := t.newNode(Leaf)
			t.connect(u.active.node, i, openEnd(), leaf)
			if pending != NoNode {
				t.nodes[pending].link = u.active.node
				pending = NoNode
			}
		} else {
			if u.walkDown(e) {
				continue // re-evaluate from the new active node
			}
			// walkDown guarantees that pos lies within edge e
			pos := t.edges[e].start + u.active.length
			if u.text.At(pos) == c {
				// rule 3: suffix is already present, phase ends
				if pending != NoNode && u.active.node != rootID {
					t.nodes[pending].link = u.active.node
				}
				u.active.length++
				break
			}
			// rule 2: split the active edge and branch off a new leaf
			inner := u.split(e, i)
			if pending != NoNode {
				t.nodes[pending].link = inner
			}
			pending = inner
		}
		u.remainder--
		if u.active.node == rootID && u.active.length > 0 {
			u.active.length--
			u.active.edge = i - u.remainder + 1
		} else if u.active.node != rootID {
			u.active.node = t.nodes[u.active.node].link
			if u.active.node == NoNode {
				u.active.node = rootID
			}
		}
	}
	return nil
}

// walkDown moves the active point to the child of edge e if the active length
// covers the complete edge (skip/count trick). It reports whether the active
// point has been moved.
func (u *ukkonen) walkDown(e EdgeID) bool {
	t := u.tree
	length := t.edgeLen(e)
	if u.active.length < length {
		return false
	}
	u.active.edge += length
	u.active.length -= length
	u.active.node = t.edges[e].child
	return true
}

// split cuts edge e after the active length, inserts a new internal node and
// hangs a new leaf for text position i below it.
func (u *ukkonen) split(e EdgeID, i int) NodeID {
	t := u.tree
	old := t.edges[e]
	cut := old.start + u.active.length
	inner := t.newNode(Internal)
	t.edges[e].end = closedEnd(cut - 1)
	t.edges[e].child = inner
	t.nodes[inner].parent = e
	t.connect(inner, cut, old.end, old.child)
	leaf := t.newNode(Leaf)
	t.connect(inner, i, openEnd(), leaf)
	T().Debugf("suffix tree: phase %d: split edge %d at %d", i, e, cut)
	return inner
}
