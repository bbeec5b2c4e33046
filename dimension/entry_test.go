// Copyright 2026 The datakit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

import "testing"

func TestMatrixLen(t *testing.T) {
	p := For(64, 64)
	if got := p.MatrixLen(64, 64, 1); got != 2+64*64 {
		t.Errorf("MatrixLen(64, 64, 1) = %d; want %d", got, 2+64*64)
	}
	if got := p.MatrixLen(64, 64, 3); got != 2+64*64*3 {
		t.Errorf("MatrixLen(64, 64, 3) = %d; want %d", got, 2+64*64*3)
	}

	v := For(0, 100)
	if got := v.MatrixLen(0, 100, 4); got != 1+100*4 {
		t.Errorf("vector MatrixLen(0, 100, 4) = %d; want %d", got, 1+100*4)
	}
}

func TestBoolMatrixLen(t *testing.T) {
	// 10x10 = 100 bits round up to 13 bytes of entry storage.
	p := For(10, 10)
	if got := p.BoolMatrixLen(10, 10); got != 2+13 {
		t.Errorf("BoolMatrixLen(10, 10) = %d; want %d", got, 2+13)
	}
	if got := p.BoolMatrixLen(64, 64); got != 2+64*64/8 {
		t.Errorf("BoolMatrixLen(64, 64) = %d; want %d", got, 2+64*64/8)
	}
}

// TestBoolMatrix works every position of a 64x64 boolean matrix: set,
// read back, toggle (returning the previous value), and read the cleared
// bit.
func TestBoolMatrix(t *testing.T) {
	p := For(64, 64)
	if got := p.HeaderLen(); got != 2 {
		t.Fatalf("For(64, 64).HeaderLen() = %d; want 2", got)
	}

	m := make([]byte, p.BoolMatrixLen(64, 64))
	if got := EncodeHeader(m, 64, 64); got != p {
		t.Fatalf("EncodeHeader = %#02x; want %#02x", byte(got), byte(p))
	}

	for row := uint64(0); row < 64; row++ {
		for col := uint64(0); col < 64; col++ {
			p.SetBit(m, row, col, true)
			if !p.Bit(m, row, col) {
				t.Fatalf("bit (%d, %d) not set", row, col)
			}
			if !p.ToggleBit(m, row, col) {
				t.Fatalf("toggle at (%d, %d) did not report previous value", row, col)
			}
			if p.Bit(m, row, col) {
				t.Fatalf("bit (%d, %d) still set after toggle", row, col)
			}
		}
	}
}

func TestSetBitClears(t *testing.T) {
	p := For(8, 8)
	m := make([]byte, p.BoolMatrixLen(8, 8))
	EncodeHeader(m, 8, 8)

	p.SetBit(m, 3, 5, true)
	if !p.Bit(m, 3, 5) {
		t.Fatal("bit (3, 5) not set")
	}
	p.SetBit(m, 3, 5, false)
	if p.Bit(m, 3, 5) {
		t.Fatal("bit (3, 5) not cleared")
	}
}

func TestUintMatrix(t *testing.T) {
	p := For(64, 64)
	m := make([]byte, p.MatrixLen(64, 64, 1))
	EncodeHeader(m, 64, 64)

	for row := uint64(0); row < 64; row++ {
		for col := uint64(0); col < 64; col++ {
			v := row + col
			p.SetUint(m, row, col, v, 1)
			if got := p.Uint(m, row, col, 1); got != v {
				t.Fatalf("entry (%d, %d) = %d; want %d", row, col, got, v)
			}
		}
	}
}

func TestUint24Matrix(t *testing.T) {
	p := For(64, 64)
	m := make([]byte, p.MatrixLen(64, 64, 3))
	EncodeHeader(m, 64, 64)

	for row := uint64(0); row < 64; row++ {
		for col := uint64(0); col < 64; col++ {
			v := 81944 + row + col
			p.SetUint(m, row, col, v, 3)
			if got := p.Uint(m, row, col, 3); got != v {
				t.Fatalf("entry (%d, %d) = %d; want %d", row, col, got, v)
			}
		}
	}
}

func TestFloat32Matrix(t *testing.T) {
	p := For(64, 64)
	m := make([]byte, p.MatrixLen(64, 64, 4))
	EncodeHeader(m, 64, 64)

	for row := uint64(0); row < 64; row++ {
		for col := uint64(0); col < 64; col++ {
			v := float32(row*100+col)/10 + 0.123
			p.SetFloat32(m, row, col, v)
			if got := p.Float32(m, row, col); got != v {
				t.Fatalf("entry (%d, %d) = %v; want %v", row, col, got, v)
			}
		}
	}
}

func TestFloat64Matrix(t *testing.T) {
	p := For(64, 64)
	m := make([]byte, p.MatrixLen(64, 64, 8))
	EncodeHeader(m, 64, 64)

	for row := uint64(0); row < 64; row++ {
		for col := uint64(0); col < 64; col++ {
			v := float64(row*100+col)/10 + 3.14159265358979323846
			p.SetFloat64(m, row, col, v)
			if got := p.Float64(m, row, col); got != v {
				t.Fatalf("entry (%d, %d) = %v; want %v", row, col, got, v)
			}
		}
	}
}

// TestVectorEntries addresses a vector (row width 0) by column alone.
func TestVectorEntries(t *testing.T) {
	p := For(0, 100)
	if got := p.RowWidth(); got != 0 {
		t.Fatalf("For(0, 100).RowWidth() = %d; want 0", got)
	}
	m := make([]byte, p.MatrixLen(0, 100, 2))
	EncodeHeader(m, 0, 100)

	for col := uint64(0); col < 100; col++ {
		v := col * 7
		p.SetUint(m, 0, col, v, 2)
		if got := p.Uint(m, 0, col, 2); got != v {
			t.Fatalf("vector entry %d = %d; want %d", col, got, v)
		}
	}

	rows, cols := p.DecodeHeader(m)
	if rows != 0 || cols != 100 {
		t.Fatalf("vector header decodes to (%d, %d); want (0, 100)", rows, cols)
	}
}
