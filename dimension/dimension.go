// Copyright 2026 The datakit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run gen.go -output tables.go

// Package dimension describes the storage shape of matrices and vectors
// for the datakit varint encoders: how many bytes hold the row count, how
// many hold the column count, and whether the payload uses a sparse or a
// dense representation. The whole description packs into a single byte,
// the Pair, which travels with the encoded data as its header tag.
package dimension

import "fmt"

// A Pair packs a (row width, col width, sparse) triple. The row-count
// width occupies bits [7:4], the column-count width less one occupies bits
// [2:1], and bit [0] is set for a sparse representation.
//
// Columns have no zero width, so the stored column field is one-based;
// that frees bit [0] for the sparse marker. Packing column widths 5
// through 8 spills into bit [3], past the two bits ColWidth reads back,
// so each of the 144 pairs packs to a distinct byte but widths above 4
// decode as width-4. See the comment in tables.go.
type Pair uint8

// MakePair packs a row-count width (0..8), a column-count width (1..8)
// and a sparse marker into a Pair. It is an unchecked bit operation: the
// caller is responsible for keeping the widths in range.
func MakePair(rowWidth, colWidth int, sparse bool) Pair {
	s := 0
	if sparse {
		s = 1
	}
	return Pair(rowWidth<<4 | (colWidth-1)<<1 | s)
}

// RowWidth returns the number of bytes used to store the row count. A row
// width of zero means the value is a vector described by a column count
// only.
func (p Pair) RowWidth() int { return int(p >> 4) }

// ColWidth returns the number of bytes used to store the column count.
// The accessor reads only the two-bit field, so a Pair packed with a
// column width of 5 through 8 reports width-4.
func (p Pair) ColWidth() int { return int(p>>1&0x03) + 1 }

// Sparse reports whether the payload uses the sparse representation.
func (p Pair) Sparse() bool { return p&0x01 != 0 }

// WithSparse returns p with the sparse marker set to sparse.
func (p Pair) WithSparse(sparse bool) Pair {
	if sparse {
		return p | 0x01
	}
	return p &^ 0x01
}

// HeaderLen returns the number of bytes a buffer tagged with p spends on
// its dimension counts before the entry data starts.
func (p Pair) HeaderLen() int { return p.RowWidth() + p.ColWidth() }

// String returns the canonical constant name for p. Aliased column widths
// report their stored 1..4 value.
func (p Pair) String() string {
	kind := "Dense"
	if p.Sparse() {
		kind = "Sparse"
	}
	return fmt.Sprintf("%s%dx%d", kind, p.RowWidth(), p.ColWidth())
}

// MaxCount returns the largest count representable in width bytes: zero
// for a zero width, 2^64-1 for the full eight bytes.
func MaxCount(width int) uint64 {
	switch {
	case width <= 0:
		return 0
	case width >= 8:
		return ^uint64(0)
	}
	return 1<<(8*width) - 1
}

// For returns the dense Pair with the minimal widths holding the given
// counts. Zero rows describes a vector of length cols. A matrix with zero
// columns is a caller error the format has no way to signal; it produces
// a column width of zero, which no generated constant carries.
func For(rows, cols uint64) Pair {
	return MakePair(uintWidth(rows), uintWidth(cols), false)
}

// EncodeHeader writes the dimension counts at the head of dst and returns
// the dense Pair describing their widths. The row count is omitted for
// vectors (rows == 0). dst must hold at least HeaderLen bytes.
func EncodeHeader(dst []byte, rows, cols uint64) Pair {
	p := For(rows, cols)
	rw := p.RowWidth()
	if rw > 0 {
		putUint(dst, rows, rw)
	}
	putUint(dst[rw:], cols, p.ColWidth())
	return p
}

// DecodeHeader reads the dimension counts back from the head of a buffer
// tagged with p. Vectors report zero rows.
func (p Pair) DecodeHeader(src []byte) (rows, cols uint64) {
	rw := p.RowWidth()
	if rw > 0 {
		rows = getUint(src, rw)
	}
	cols = getUint(src[rw:], p.ColWidth())
	return rows, cols
}
