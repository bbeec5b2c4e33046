// Copyright 2026 The datakit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

import "testing"

func TestPackedBits(t *testing.T) {
	if got := Packed1.Bits(); got != 4 {
		t.Errorf("Packed1.Bits() = %d; want 4", got)
	}
	if got := Packed8.Bits(); got != 32 {
		t.Errorf("Packed8.Bits() = %d; want 32", got)
	}
	if got := Packed12.Bits(); got != 48 {
		t.Errorf("Packed12.Bits() = %d; want 48", got)
	}
}

func TestPackSquareLevels(t *testing.T) {
	tests := []struct {
		rows, cols uint64
		want       Packed
	}{
		{0, 0, Packed1},
		{15, 15, Packed1},
		{16, 15, Packed2},
		{255, 255, Packed2},
		{256, 0, Packed3},
		{4095, 4095, Packed3},
		{65535, 65535, Packed4},
		{100000, 50, Packed5},
		{16777215, 1, Packed6},
		{268435455, 268435455, Packed7},
		{4294967295, 4294967295, Packed8},
	}
	for _, tt := range tests {
		_, d, ok := PackSquare(tt.rows, tt.cols)
		if !ok {
			t.Errorf("PackSquare(%d, %d) not ok", tt.rows, tt.cols)
			continue
		}
		if d != tt.want {
			t.Errorf("PackSquare(%d, %d) level = %d; want %d", tt.rows, tt.cols, d, tt.want)
		}
	}
}

func TestPackSquareRoundTrip(t *testing.T) {
	coords := []struct{ rows, cols uint64 }{
		{0, 0}, {1, 1}, {15, 15}, {100, 200},
		{255, 255}, {1000, 500}, {4095, 4095}, {65535, 65535},
		{100000, 50}, {50, 100000}, {4294967295, 4294967295},
	}
	for _, c := range coords {
		packed, d, ok := PackSquare(c.rows, c.cols)
		if !ok {
			t.Errorf("PackSquare(%d, %d) not ok", c.rows, c.cols)
			continue
		}
		rows, cols := d.UnpackSquare(packed)
		if rows != c.rows || cols != c.cols {
			t.Errorf("PackSquare(%d, %d) round trips to (%d, %d)", c.rows, c.cols, rows, cols)
		}
	}
}

func TestPackSquareTooLarge(t *testing.T) {
	if _, _, ok := PackSquare(1<<32, 1); ok {
		t.Error("PackSquare(2^32, 1) should not fit level 8")
	}
	if _, _, ok := PackSquare(1, ^uint64(0)); ok {
		t.Error("PackSquare(1, 2^64-1) should not fit level 8")
	}
}
