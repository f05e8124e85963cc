/*
Package suffixtree builds suffix trees for texts and answers substring queries
on them.

Suffix Trees

A suffix tree for a text T of length n is a compacted trie of all suffixes of
T. Every path from the root spells out a substring of T, every internal node
(except the root) branches into at least two children, and every leaf stands
for exactly one suffix of T, provided T ends with a character which occurs
nowhere else in T.

Trees are constructed with Ukkonen's online algorithm, which processes the
text one character at a time ("phases") and maintains an implicit tree for
every prefix of the text. Construction runs in time O(n) (amortized), using
three tricks:

    - leaf edges share a single end marker, which is incremented once per phase
      and thereby extends all leaves at once,
    - suffix links between internal nodes relocate the insertion point in O(1),
    - walking down the tree skips over complete edges instead of comparing
      characters one by one.

_________________________________________________________________________

From Esko Ukkonen, On-line construction of suffix trees, 1995:

An on-line algorithm is presented for constructing the suffix tree for a
given string in time linear in the length of the string. The new algorithm
has the desirable property of processing the string symbol by symbol from
left to right. It has always the suffix tree for the scanned part of the
string ready. […]

_________________________________________________________________________

Generalized Trees

A tree may be built for two texts at once. The texts are concatenated with a
separator and a terminator character, both of which must not occur in either
of the texts:

	tree, err := suffixtree.ConstructGeneralized("abc", "bcd", '#', '$')
	n, err := tree.LongestCommonSubstringLength()  // n = 2, "bc"

Generalized trees know which leaf belongs to which text and are able to find
the longest common substring of both texts in time linear to the size of the
tree.

Characters

Texts are handled as sequences of runes by default. Clients may configure
a builder to segment texts into extended grapheme clusters (UAX#29) instead,
treating every user-perceived character as a single symbol of the alphabet.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package suffixtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
