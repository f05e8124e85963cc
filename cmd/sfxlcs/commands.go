package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/suffixtree"
	sfxhtml "github.com/npillmayer/suffixtree/html"
	"github.com/npillmayer/suffixtree/printer"
	"github.com/npillmayer/suffixtree/textfile"
	"github.com/urfave/cli/v2"
)

// Noncharacters are guaranteed not to be used for interchange of text, which
// makes them good defaults for sentinels.
const (
	defaultSeparator  = "\uFDD0"
	defaultTerminator = "\uFDD1"
)

var sentinelFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "separator",
		Usage: "character to separate the texts (must not occur in them)",
		Value: defaultSeparator,
	},
	&cli.StringFlag{
		Name:  "terminator",
		Usage: "character to terminate the text(s) (must not occur in them)",
		Value: defaultTerminator,
	},
}

var cmdLCS = &cli.Command{
	Name:      "lcs",
	Usage:     "find the longest common substring of two text files",
	ArgsUsage: `<file1> <file2>`,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "html",
			Usage: "write both texts as HTML with the common substring marked to this file",
		},
		&cli.StringFlag{
			Name:  "dot",
			Usage: "write the generalized suffix tree in Graphviz DOT format to this file",
		},
		&cli.BoolFlag{
			Name:  "tree",
			Usage: "print the generalized suffix tree",
		},
	}, sentinelFlags...),
	Action: runLCS,
}

var cmdTree = &cli.Command{
	Name:      "tree",
	Usage:     "print the suffix tree of a text file",
	ArgsUsage: `<file>`,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "dot",
			Usage: "write the suffix tree in Graphviz DOT format to this file instead",
		},
	}, sentinelFlags...),
	Action: runTree,
}

var cmdFind = &cli.Command{
	Name:      "find",
	Usage:     "list all positions of a pattern in a text file",
	ArgsUsage: `<file> <pattern>`,
	Flags:     sentinelFlags,
	Action:    runFind,
}

func runLCS(cctx *cli.Context) error {
	if cctx.Args().Len() != 2 {
		return fmt.Errorf("expected two files as arguments")
	}
	sep, err := sentinel(cctx, "separator")
	if err != nil {
		return err
	}
	term, err := sentinel(cctx, "terminator")
	if err != nil {
		return err
	}
	text1, err := loadInput(cctx, cctx.Args().Get(0))
	if err != nil {
		return err
	}
	text2, err := loadInput(cctx, cctx.Args().Get(1))
	if err != nil {
		return err
	}
	b, err := builderFromFlags(cctx)
	if err != nil {
		return err
	}
	tree, err := b.ConstructGeneralized(text1, text2, sep, term)
	if err != nil {
		return err
	}
	match, err := tree.LongestCommonSubstring()
	if err != nil {
		return err
	}
	out := cctx.App.Writer
	fmt.Fprintf(out, "length: %d\n", match.Length)
	if match.Length > 0 {
		fmt.Fprintf(out, "first:  %d\nsecond: %d\ncommon: %q\n", match.Start1, match.Start2, match.Text)
	}
	if cctx.Bool("tree") {
		if err := printer.Print(tree, out, nil); err != nil {
			return err
		}
	}
	if path := cctx.String("dot"); path != "" {
		if err := writeFile(path, func(f *os.File) error { return suffixtree.Tree2Dot(tree, f) }); err != nil {
			return err
		}
	}
	if path := cctx.String("html"); path != "" {
		return writeFile(path, func(f *os.File) error { return sfxhtml.Highlight(tree, f) })
	}
	return nil
}

func runTree(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return fmt.Errorf("expected a single file as argument")
	}
	tree, err := buildSingle(cctx, cctx.Args().Get(0))
	if err != nil {
		return err
	}
	if path := cctx.String("dot"); path != "" {
		return writeFile(path, func(f *os.File) error { return suffixtree.Tree2Dot(tree, f) })
	}
	return printer.Print(tree, cctx.App.Writer, nil)
}

func runFind(cctx *cli.Context) error {
	if cctx.Args().Len() != 2 {
		return fmt.Errorf("expected a file and a pattern as arguments")
	}
	tree, err := buildSingle(cctx, cctx.Args().Get(0))
	if err != nil {
		return err
	}
	positions := tree.Occurrences(cctx.Args().Get(1))
	out := cctx.App.Writer
	fmt.Fprintf(out, "occurrences: %d\n", len(positions))
	for _, pos := range positions {
		fmt.Fprintf(out, "%d\n", pos)
	}
	return nil
}

// --- Helpers ---------------------------------------------------------------

// buildSingle builds the suffix tree for a file, terminated by the terminator
// sentinel.
func buildSingle(cctx *cli.Context, path string) (*suffixtree.Tree, error) {
	term, err := sentinel(cctx, "terminator")
	if err != nil {
		return nil, err
	}
	text, err := loadInput(cctx, path)
	if err != nil {
		return nil, err
	}
	if strings.ContainsRune(text, term) {
		return nil, fmt.Errorf("%w: terminator %q occurs in %s", suffixtree.ErrIllegalSentinel, term, path)
	}
	b, err := builderFromFlags(cctx)
	if err != nil {
		return nil, err
	}
	return b.Construct(text + string(term))
}

func sentinel(cctx *cli.Context, name string) (rune, error) {
	s := cctx.String(name)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, is %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func loadInput(cctx *cli.Context, path string) (string, error) {
	text, err := textfile.Load(path, 0)
	if err != nil || !cctx.Bool("html-input") {
		return text, err
	}
	return sfxhtml.TextFromHTML(strings.NewReader(text))
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
