// Copyright 2026 The datakit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dimension

// Fixed-width little-endian integer storage, the external-varint layout
// shared by the datakit encoders: widths run 1 through 8 bytes and every
// bit stores value payload.

func putUint(dst []byte, v uint64, width int) {
	for i := 0; i < width; i++ {
		dst[i] = byte(v >> (8 * uint(i)))
	}
}

func getUint(src []byte, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v |= uint64(src[i]) << (8 * uint(i))
	}
	return v
}

// uintWidth returns the minimal number of bytes holding v; zero for zero.
func uintWidth(v uint64) int {
	w := 0
	for ; v != 0; v >>= 8 {
		w++
	}
	return w
}
