// Command sfxlcs finds the longest common substring of two text files, using
// a generalized suffix tree.
//
// Usage:
//
//	sfxlcs [global options] lcs FILE1 FILE2
//	sfxlcs [global options] tree FILE
//	sfxlcs [global options] find FILE PATTERN
//
// Global options may be set from the environment (SFXLCS_*) or a .env file in
// the working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/suffixtree"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "trace",
		Usage:   "trace level: error, info or debug",
		Value:   "error",
		EnvVars: []string{"SFXLCS_TRACE"},
	},
	&cli.BoolFlag{
		Name:    "graphemes",
		Aliases: []string{"g"},
		Usage:   "treat grapheme clusters as characters (default: runes)",
		EnvVars: []string{"SFXLCS_GRAPHEMES"},
	},
	&cli.IntFlag{
		Name:    "max-length",
		Usage:   "maximum number of characters to build a tree for (0 = unlimited)",
		EnvVars: []string{"SFXLCS_MAX_LENGTH"},
	},
	&cli.BoolFlag{
		Name:    "html-input",
		Usage:   "input files are HTML; use their textual content",
		EnvVars: []string{"SFXLCS_HTML_INPUT"},
	},
}

func run(args []string, out io.Writer) error {
	app := cli.App{
		Name:    "sfxlcs",
		Usage:   "suffix tree tool: longest common substrings and substring search",
		Version: versioninfo.Short(),
		Flags:   globalFlags,
		Writer:  out,
		Before:  setupTracing,
	}
	app.Commands = []*cli.Command{
		cmdLCS,
		cmdTree,
		cmdFind,
	}
	return app.Run(args)
}

func setupTracing(cctx *cli.Context) error {
	gtrace.CoreTracer = gologadapter.New()
	switch strings.ToLower(cctx.String("trace")) {
	case "error", "":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("unknown trace level %q", cctx.String("trace"))
	}
	return nil
}

// builderFromFlags creates a suffix tree builder from the global options.
func builderFromFlags(cctx *cli.Context) (*suffixtree.Builder, error) {
	cfg := suffixtree.Config{
		MaxLength: cctx.Int("max-length"),
	}
	if cctx.Bool("graphemes") {
		cfg.Segmentation = suffixtree.Graphemes
	}
	return suffixtree.New(cfg)
}
