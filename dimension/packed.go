// Copyright 2026 The datakit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

// Packed is the shared-width coordinate packing: both coordinates of an
// (up to square) shape live in a single integer at four bits per level,
// row above column. It trades the per-axis widths of Pair for a smaller
// combined representation when rows and columns are of similar magnitude.
type Packed int

const (
	Packed1 Packed = iota + 1 // up to 15 x 15
	Packed2                   // up to 255 x 255
	Packed3                   // up to 4095 x 4095
	Packed4                   // up to 65535 x 65535
	Packed5                   // up to 1048575 x 1048575
	Packed6                   // up to 16777215 x 16777215
	Packed7                   // up to 268435455 x 268435455
	Packed8                   // up to 4294967295 x 4294967295

	// Levels past 8 exceed what PackSquare emits, but here are their
	// numbers:
	Packed9  // up to 68719476735 x 68719476735
	Packed10 // up to 1099511627775 x 1099511627775
	Packed11 // up to 17592186044415 x 17592186044415
	Packed12 // up to 281474976710655 x 281474976710655
)

// Packed12 would support a vector of binary entries (0,1) up to 35 TB
// (that's 281,474,976,710,655 individual elements).

// Bits returns the per-coordinate bit width of level d.
func (d Packed) Bits() int { return int(d) * 4 }

// PackSquare packs rows and cols into a single integer at the minimal
// level whose per-coordinate field holds the larger of the two. ok is
// false when even level 8 (32 bits per coordinate) cannot hold them.
func PackSquare(rows, cols uint64) (packed uint64, d Packed, ok bool) {
	max := rows
	if cols > max {
		max = cols
	}

	d = Packed1
	for max>>uint(d.Bits()) != 0 {
		d++
		if d > Packed8 {
			return 0, 0, false
		}
	}

	return rows<<uint(d.Bits()) | cols, d, true
}

// UnpackSquare splits a value packed at level d back into its
// coordinates.
func (d Packed) UnpackSquare(packed uint64) (rows, cols uint64) {
	return packed >> uint(d.Bits()), packed & (1<<uint(d.Bits()) - 1)
}
