package simd

import (
	"encoding/binary"
	"math/bits"
)

const lo8 = uint64(0x0101010101010101)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Record scanners use it to find separators. It processes 8 bytes at a time
// with the zero-byte detection formula from Hacker's Delight:
//
//  1. Broadcast needle to every byte of a uint64
//  2. XOR with 8 bytes of haystack (matching bytes become 0x00)
//  3. (v - 0x01..01) & ^v & 0x80..80 marks the zero bytes
//  4. The trailing zero count locates the first match
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	needleMask := uint64(needle) * lo8
	idx := 0

	for idx+swarSize <= n {
		xor := binary.LittleEndian.Uint64(haystack[idx:]) ^ needleMask
		if hasZero := (xor - lo8) & ^xor & hi8; hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += swarSize
	}

	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}
