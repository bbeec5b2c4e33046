// Copyright 2026 The datakit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

// This program generates tables.go, the dimension pair constant table.
// With -cheader it instead prints the table in its original form, a
// C header fragment, to standard output for a build step to capture.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattsta/datakit/internal/gen"
)

var (
	outputFile = flag.String("output", "tables.go", "output file")
	cheader    = flag.Bool("cheader", false,
		"write the C enum fragment to stdout instead of generating Go")
)

const (
	maxRowWidth = 8 // a row width of 0 marks a vector
	minColWidth = 1 // columns have no zero width; the field stores y-1
	maxColWidth = 8
)

func main() {
	gen.Init()
	if *cheader {
		writeCHeader(os.Stdout)
		return
	}
	genTables()
}

// pair packs the triple exactly as the generated constants and the C
// macro do. y above 4 spills into bit 3, which the unpack accessors do
// not read.
func pair(x, y, sparse int) int {
	return x<<4 | (y-1)<<1 | sparse
}

// maxCount returns the largest count representable in width bytes.
func maxCount(width int) uint64 {
	switch {
	case width == 0:
		return 0
	case width >= 8:
		return ^uint64(0)
	}
	return 1<<(8*width) - 1
}

func genTables() {
	w := gen.NewCodeWriter()
	defer w.WriteGoFile(*outputFile, "dimension")

	w.WriteComment(`The Dense and Sparse constants enumerate every dimension pair: row
count widths 0 through 8, column count widths 1 through 8, dense
before sparse. Every pair packs to a distinct byte, but column widths
5 through 8 spill past the two-bit field ColWidth reads, so those
pairs decode with a column width of width-4.`)
	fmt.Fprintln(w, "const (")
	for x := 0; x <= maxRowWidth; x++ {
		for y := minColWidth; y <= maxColWidth; y++ {
			fmt.Fprintf(w, "\tDense%dx%d Pair = %#02x // up to %d x %d\n",
				x, y, pair(x, y, 0), maxCount(x), maxCount(y))
			fmt.Fprintf(w, "\tSparse%dx%d Pair = %#02x // up to %d x %d\n",
				x, y, pair(x, y, 1), maxCount(x), maxCount(y))
		}
	}
	fmt.Fprintln(w, ")")
	w.AddSize(9 * 8 * 2)

	w.WriteComment("pairIndex lists every generated constant, in emission order.")
	fmt.Fprintln(w, "var pairIndex = [...]Pair{")
	for x := 0; x <= maxRowWidth; x++ {
		for y := minColWidth; y <= maxColWidth; y++ {
			fmt.Fprintf(w, "\tDense%dx%d, Sparse%dx%d,\n", x, y, x, y)
		}
	}
	fmt.Fprintln(w, "}")
	w.AddSize(9 * 8 * 2)
}

// writeCHeader prints the header fragment consumed by the C encoders:
// the PAIR packing macro, the three unpacking macros, and the full enum.
func writeCHeader(w io.Writer) {
	fmt.Fprintln(w, "#define VARINT_DIMENSION_PAIR_PAIR(x, y, sparse) (((x) << 4) | ((y - 1) << 1) | (sparse))")
	fmt.Fprintln(w, `#define VARINT_DIMENSION_PAIR_WIDTH_ROW_COUNT(dim) ((dim) >> 4)
#define VARINT_DIMENSION_PAIR_WIDTH_COL_COUNT(dim) ((((dim) >> 1) & 0x03) + 1)
#define VARINT_DIMENSION_PAIR_IS_SPARSE(dim) ((dim) & 0x01)
`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "typedef enum varintDimensionPair {")
	for x := 0; x <= maxRowWidth; x++ {
		for y := minColWidth; y <= maxColWidth; y++ {
			fmt.Fprintf(w, "VARINT_DIMENSION_PAIR_DENSE_%d_%d = VARINT_DIMENSION_PAIR_PAIR(%d, %d, 0), /* up to %d x %d */\n",
				x, y, x, y, maxCount(x), maxCount(y))
			fmt.Fprintf(w, "VARINT_DIMENSION_PAIR_SPRSE_%d_%d = VARINT_DIMENSION_PAIR_PAIR(%d, %d, 1), /* up to %d x %d */\n",
				x, y, x, y, maxCount(x), maxCount(y))
		}
	}
	fmt.Fprintln(w, "} varintDimensionPair;")
}
