package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/guiguan/caster"
)

/*
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

// Some constants for fragement size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// ErrNotUTF8 is flagged if a file does not contain valid UTF-8 text.
var ErrNotUTF8 = errors.New("textfile: file is not valid UTF-8")

// fragment holds a section of a text-file's content.
type fragment struct {
	content []byte // content of this fragment
	length  int64  // length of this fragment in bytes
	pos     int64  // start position of this fragment within the file
	err     error  // I/O error while loading this fragment
}

// textFile represents a OS file which will be loaded as a text.
type textFile struct {
	path  string         // file name
	info  os.FileInfo    // result from Stat(path)
	file  *os.File       // file handle
	cast  *caster.Caster // broadcaster for async file loading
	frags []*fragment    // fragments in file order
}

// Load reads a file, which must be a UTF-8 text file, and returns its content.
// Clients may indicate a recommended fragment length. If it is 0, Load uses
// sensible defaults, depending on the size of the file.
//
// Fragments are loaded asynchronously, but this is transparent to the client.
func Load(name string, fragSize int64) (string, error) {
	tf, err := openFile(name)
	if err != nil {
		return "", err
	}
	defer tf.file.Close()
	defer tf.cast.Close()
	size := tf.info.Size()
	if size == 0 {
		return "", nil
	}
	if fragSize <= 0 || fragSize > tenKb {
		if size < 64 {
			fragSize = size
		} else if size < 1024 {
			fragSize = 64
		} else if size < tenKb {
			fragSize = 256
		} else if size < hundredKb {
			fragSize = 512
		} else if size < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	tf.makeFragments(fragSize)
	tracer().Debugf("textfile: loading %s in %d fragments of %d bytes", name, len(tf.frags), fragSize)
	return tf.collect()
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

func (tf *textFile) makeFragments(fragSize int64) {
	size := tf.info.Size()
	for k := int64(0); k < size; k += fragSize {
		tf.frags = append(tf.frags, &fragment{
			length: min(fragSize, size-k),
			pos:    k,
		})
	}
}

// collect starts the loading goroutine and waits for all fragments to be
// broadcast. Fragments are then concatenated in file order.
func (tf *textFile) collect() (string, error) {
	ch, ok := tf.cast.Sub(context.Background(), uint(len(tf.frags)))
	if !ok {
		return "", fmt.Errorf("textfile: cannot subscribe to fragment broadcast for %s", tf.path)
	}
	go tf.loadAllFragments()
	for received := 0; received < len(tf.frags); received++ {
		msg, ok := <-ch
		if !ok {
			return "", fmt.Errorf("textfile: fragment broadcast for %s closed early", tf.path)
		}
		frag := msg.(*fragment)
		if frag.err != nil {
			return "", frag.err
		}
	}
	var b strings.Builder
	b.Grow(int(tf.info.Size()))
	for _, frag := range tf.frags {
		b.Write(frag.content)
	}
	if !utf8.ValidString(b.String()) {
		return "", fmt.Errorf("%w: %s", ErrNotUTF8, tf.path)
	}
	return b.String(), nil
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments iterates over fragments and loads the section of text
// referenced by each of them, publishing every fragment when done.
func (tf *textFile) loadAllFragments() {
	for _, frag := range tf.frags {
		buf := make([]byte, frag.length)
		cnt, err := tf.file.ReadAt(buf, frag.pos)
		if err != nil && err != io.EOF {
			frag.err = fmt.Errorf("textfile: error loading text fragment: %w", err)
		} else if int64(cnt) < frag.length {
			frag.err = fmt.Errorf("textfile: not all bytes loaded for text fragment at %d", frag.pos)
		}
		frag.content = buf[:cnt]
		tf.cast.Pub(frag) // signal that this fragment is done loading
		if frag.err != nil {
			return
		}
	}
}

// --- Helpers ---------------------------------------------------------------

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
