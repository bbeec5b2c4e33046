// Copyright 2026 The datakit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen contains common code for the code generation tools in the
// datakit repository. The generators are build-ignored main programs run
// through "go generate"; their output is written through this package so
// every generated file gets the same header, formatting, and table
// accounting.
package gen

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/tools/imports"
)

// Init performs common initialization for a generator program. It must be
// called after the program's own flags are defined.
func Init() {
	log.SetPrefix("")
	log.SetFlags(0)
	flag.Parse()
}

const header = `// Code generated by running "go generate" in github.com/mattsta/datakit. DO NOT EDIT.

`

// WriteGoFile prepends a standard file header and package clause to the
// given bytes, formats the result, and writes it to a file with the given
// name. Any error is fatal to the generator.
func WriteGoFile(filename, pkg string, b []byte) {
	w, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create file %s: %v", filename, err)
	}
	defer w.Close()
	if _, err = WriteGo(w, pkg, b); err != nil {
		log.Fatalf("error writing file %s: %v", filename, err)
	}
}

// WriteGo writes a Go file to w, prepending the standard header and the
// package clause and running the result through an imports-aware gofmt.
func WriteGo(w io.Writer, pkg string, b []byte) (n int, err error) {
	src := []byte(header)
	src = append(src, fmt.Sprintf("package %s\n\n", pkg)...)
	src = append(src, b...)
	formatted, err := imports.Process("", src, nil)
	if err != nil {
		// Print the original so the error message line numbers mean
		// something to the person debugging the generator.
		w.Write(src)
		return 0, fmt.Errorf("error formatting Go code: %v", err)
	}
	return w.Write(formatted)
}
