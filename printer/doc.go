/*
Package printer outputs suffix trees on consoles with fixed-width fonts.
It is intended for debugging and exploration: trees are shown as an outline,
one edge per line, with edge labels truncated to the width of the terminal.

For generalized trees, nodes are colored by the text their suffixes stem
from (first text, second text, or both). Colors are switched off for output
which is not a terminal.

Label widths are measured in fixed-width positions according to UAX#11 (East
Asian width), as wide characters occupy two positions on a console.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.

*/
package printer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
