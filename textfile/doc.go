/*
Package textfile provides API helpers to load UTF-8 text files as input for
suffix trees.

Files are read in fragments by a background goroutine, which broadcasts every
fragment as soon as it is loaded. The Load API is synchronous nevertheless:
it collects all fragments and returns the complete text.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
