// Copyright 2026 The datakit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

import "math"

// Entry accessors address a matrix stored as [header][entries] in
// row-major order, where the header was written by EncodeHeader under the
// same Pair. The entry width is uniform across the matrix and travels out
// of band, like the Pair itself. Vectors (row width zero) address entries
// by column alone.

// entryOffset returns the byte offset of entry (row, col). Reading the
// column count back out of the header needs the header to be in place
// before any entry access.
func (p Pair) entryOffset(m []byte, row, col uint64, entryWidth int) int {
	start := uint64(p.HeaderLen())
	if row != 0 {
		_, cols := p.DecodeHeader(m)
		return int(start + (row*cols+col)*uint64(entryWidth))
	}
	return int(start + col*uint64(entryWidth))
}

// Uint returns the entry at (row, col) from a matrix of entryWidth-byte
// unsigned values.
func (p Pair) Uint(m []byte, row, col uint64, entryWidth int) uint64 {
	return getUint(m[p.entryOffset(m, row, col, entryWidth):], entryWidth)
}

// SetUint stores v at (row, col) in a matrix of entryWidth-byte unsigned
// values.
func (p Pair) SetUint(m []byte, row, col uint64, v uint64, entryWidth int) {
	putUint(m[p.entryOffset(m, row, col, entryWidth):], v, entryWidth)
}

// Float32 returns the entry at (row, col) from a matrix of IEEE 754
// single-precision values.
func (p Pair) Float32(m []byte, row, col uint64) float32 {
	return math.Float32frombits(uint32(p.Uint(m, row, col, 4)))
}

// SetFloat32 stores v at (row, col) in a matrix of single-precision
// values.
func (p Pair) SetFloat32(m []byte, row, col uint64, v float32) {
	p.SetUint(m, row, col, uint64(math.Float32bits(v)), 4)
}

// Float64 returns the entry at (row, col) from a matrix of IEEE 754
// double-precision values.
func (p Pair) Float64(m []byte, row, col uint64) float64 {
	return math.Float64frombits(p.Uint(m, row, col, 8))
}

// SetFloat64 stores v at (row, col) in a matrix of double-precision
// values.
func (p Pair) SetFloat64(m []byte, row, col uint64, v float64) {
	p.SetUint(m, row, col, math.Float64bits(v), 8)
}

// bitOffset locates the bit for entry (row, col) of a boolean matrix:
// bits pack row-major, LSB first within each byte, starting right after
// the header.
func (p Pair) bitOffset(m []byte, row, col uint64) (byteOff int, bit uint) {
	total := col
	if row != 0 {
		cols := getUint(m[p.RowWidth():], p.ColWidth())
		total = row*cols + col
	}
	return p.HeaderLen() + int(total/8), uint(total % 8)
}

// Bit reports the entry at (row, col) of a boolean matrix.
func (p Pair) Bit(m []byte, row, col uint64) bool {
	off, bit := p.bitOffset(m, row, col)
	return m[off]>>bit&0x01 != 0
}

// SetBit sets or clears the entry at (row, col) of a boolean matrix.
func (p Pair) SetBit(m []byte, row, col uint64, set bool) {
	off, bit := p.bitOffset(m, row, col)
	if set {
		m[off] |= 1 << bit
	} else {
		m[off] &^= 1 << bit
	}
}

// ToggleBit flips the entry at (row, col) of a boolean matrix and returns
// its previous value.
func (p Pair) ToggleBit(m []byte, row, col uint64) bool {
	off, bit := p.bitOffset(m, row, col)
	prev := m[off]>>bit&0x01 != 0
	m[off] ^= 1 << bit
	return prev
}

func entryCount(rows, cols uint64) uint64 {
	if rows == 0 {
		return cols
	}
	return rows * cols
}

// MatrixLen returns the buffer size for a matrix of the given counts with
// entryWidth-byte entries under p: the header plus every entry.
func (p Pair) MatrixLen(rows, cols uint64, entryWidth int) int {
	return p.HeaderLen() + int(entryCount(rows, cols))*entryWidth
}

// BoolMatrixLen returns the buffer size for a boolean matrix of the given
// counts under p. The bit array rounds up to a whole number of bytes
// (e.g. 10x10 = 100 bits needs 13 bytes of entry storage).
func (p Pair) BoolMatrixLen(rows, cols uint64) int {
	return p.HeaderLen() + int((entryCount(rows, cols)+7)/8)
}
