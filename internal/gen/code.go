// Copyright 2026 The datakit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"bytes"
	"fmt"
	"hash"
	"hash/fnv"
	"strings"
)

// This file contains utilities for generating code.

// CodeWriter is a utility for writing structured code. It computes the
// content hash of everything written and tracks the size of the emitted
// tables so the generated file can carry both in its trailer. It ensures
// there are newlines between written code blocks.
type CodeWriter struct {
	buf  bytes.Buffer
	Size int
	Hash hash.Hash32 // content hash
	// For comments we skip the usual one-line separator if they are
	// followed by a code block.
	skipSep bool
}

// NewCodeWriter returns a new CodeWriter.
func NewCodeWriter() *CodeWriter {
	return &CodeWriter{Hash: fnv.New32()}
}

func (w *CodeWriter) Write(p []byte) (n int, err error) {
	w.Hash.Write(p)
	return w.buf.Write(p)
}

// AddSize records table bytes accounted for by blocks the generator wrote
// directly to w.
func (w *CodeWriter) AddSize(n int) {
	w.Size += n
}

// WriteGoFile appends a trailer recording the total size and content
// checksum of the written tables and writes the buffer as a Go file with
// the given package name.
func (w *CodeWriter) WriteGoFile(filename, pkg string) {
	sz := w.Size
	w.WriteComment("Total table size %d bytes (%dKiB); checksum: %X", sz, sz/1024, w.Hash.Sum32())
	WriteGoFile(filename, pkg, w.buf.Bytes())
	w.buf.Reset()
}

func (w *CodeWriter) printf(f string, x ...interface{}) {
	fmt.Fprintf(w, f, x...)
}

func (w *CodeWriter) insertSep() {
	if w.skipSep {
		w.skipSep = false
		return
	}
	// Use at least two newlines to ensure a blank space between the
	// previous block. The formatting pass in WriteGo removes extraneous
	// newlines.
	w.printf("\n\n")
}

// WriteComment writes a comment block. All line starts are prefixed with
// "//". Initial empty lines are gobbled.
func (w *CodeWriter) WriteComment(comment string, args ...interface{}) {
	s := fmt.Sprintf(comment, args...)
	s = strings.Trim(s, "\n")

	w.printf("\n\n// ")
	w.skipSep = true

	strings.NewReplacer("\n", "\n// ").WriteString(w, s)

	w.printf("\n")
}

// WriteConst writes a constant of the given name and value.
func (w *CodeWriter) WriteConst(name string, x interface{}) {
	w.insertSep()
	w.printf("const %s = %#v\n", name, x)
}

// WriteVar writes a variable of the given name and value.
func (w *CodeWriter) WriteVar(name string, x interface{}) {
	w.insertSep()
	w.printf("var %s = %#v\n", name, x)
}
