package printer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/suffixtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing.
type Config struct {
	LabelWidth int                                 // maximum width of edge labels in ‘en’s
	NoColor    bool                                // suppress colors
	Colors     map[suffixtree.Origin]*color.Color // colors for node origins
	Context    *uax11.Context                      // context for character widths
}

// DefaultPalette is the default mapping of node origins to colors.
var DefaultPalette = map[suffixtree.Origin]*color.Color{
	suffixtree.OriginFirst:  color.New(color.FgBlue),
	suffixtree.OriginSecond: color.New(color.FgRed),
	suffixtree.OriginBoth:   color.New(color.FgGreen, color.Bold),
}

const ellipsis = "…"

// normalized returns a copy of config with unset fields defaulted.
func (config *Config) normalized() *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Colors == nil {
		c.Colors = DefaultPalette
	}
	return &c
}

var setupGraphemes sync.Once

// Print outputs the outline of a suffix tree to w.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print(tree *suffixtree.Tree, w io.Writer, config *Config) error {
	if tree == nil || w == nil {
		return suffixtree.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	_, err := io.WriteString(w, Sprint(tree, config))
	return err
}

// Sprint returns the outline of a suffix tree as a string.
// A nil config selects defaults for a non-interactive output.
func Sprint(tree *suffixtree.Tree, config *Config) string {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	config = config.normalized()
	var origins []suffixtree.Origin
	if tree.IsGeneralized() {
		var err error
		if origins, err = tree.Origins(); err != nil {
			T().Errorf("printer: %v", err)
		}
	}
	p := &outliner{config: config, origins: origins}
	root := tree.Root()
	outline := treeprint.NewWithRoot(p.colored(root, fmt.Sprintf("root (%d chars)", tree.Len())))
	type frame struct {
		node   suffixtree.Node
		branch treeprint.Tree
	}
	stack := []frame{{node: root, branch: outline}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range top.node.Children() {
			child := e.Child()
			label := p.truncate(e.Label())
			if child.Kind() == suffixtree.Leaf {
				top.branch.AddNode(p.colored(child, fmt.Sprintf("%s ·%d", label, child.SuffixIndex())))
				continue
			}
			branch := top.branch.AddBranch(p.colored(child, label))
			stack = append(stack, frame{node: child, branch: branch})
		}
	}
	return outline.String()
}

type outliner struct {
	config  *Config
	origins []suffixtree.Origin
}

func (p *outliner) colored(n suffixtree.Node, s string) string {
	if p.config.NoColor || p.origins == nil {
		return s
	}
	if c, ok := p.config.Colors[p.origins[n.ID()]]; ok && c != nil {
		return c.Sprint(s)
	}
	return s
}

// truncate shortens a label to fit into LabelWidth fixed-width positions.
// Newlines and tabs are made visible.
func (p *outliner) truncate(label string) string {
	label = strings.NewReplacer("\n", "⏎", "\t", "⇥").Replace(label)
	width := p.config.LabelWidth
	gstr := grapheme.StringFromString(label)
	if width <= 0 || uax11.StringWidth(gstr, p.config.Context) <= width {
		return label
	}
	var b strings.Builder
	for i := 0; i < gstr.Len(); i++ {
		next := b.String() + gstr.Nth(i)
		if uax11.StringWidth(grapheme.StringFromString(next), p.config.Context) > width-1 {
			break
		}
		b.WriteString(gstr.Nth(i))
	}
	return b.String() + ellipsis
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LabelWidth parameter accordingly. For other
// output, colors are switched off.
func ConfigFromTerminal() *Config {
	config := &Config{
		Colors:  DefaultPalette,
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LabelWidth = 40
		} else if w > 80 {
			config.LabelWidth = w - 40
		} else if w > 30 {
			config.LabelWidth = w / 2
		} else {
			config.LabelWidth = 15
		}
	} else {
		config.LabelWidth = 40
		config.NoColor = true
	}
	T().Debugf("printer: setting label width to %d en", config.LabelWidth)
	return config
}
