package simd

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants for ASCII digit classification. With the high bit of every
// byte cleared (x <= 0x7F), adding 0x50 sets bit 7 iff x >= '0' and adding
// 0x46 sets bit 7 iff x > '9'; neither sum can carry into the next byte.
const (
	lo7      = uint64(0x7F7F7F7F7F7F7F7F)
	hi8      = uint64(0x8080808080808080)
	addZero  = uint64(0x5050505050505050)
	addNine  = uint64(0x4646464646464646)
	swarSize = 8
)

// digitBits returns 0x80 in every byte of w that holds an ASCII digit and
// zero elsewhere.
func digitBits(w uint64) uint64 {
	low := w & lo7
	geZero := low + addZero
	gtNine := low + addNine
	return geZero &^ gtNine &^ w & hi8
}

func isDigit(b byte) bool {
	return b-'0' <= 9
}

// MemchrDigit returns the index of the first ASCII digit [0-9] in haystack,
// or -1 if no digit is found.
//
// The search classifies 8 bytes per step with SWAR range checks (see
// digitBits) and falls back to a byte loop for inputs shorter than 8 bytes
// and for the tail.
//
// Example:
//
//	haystack := []byte("latency=250ms")
//	pos := simd.MemchrDigit(haystack) // returns 8
//
// Note: only ASCII digits 0-9 (bytes 0x30-0x39) match.
func MemchrDigit(haystack []byte) int {
	n := len(haystack)
	idx := 0

	for idx+swarSize <= n {
		if m := digitBits(binary.LittleEndian.Uint64(haystack[idx:])); m != 0 {
			return idx + bits.TrailingZeros64(m)/8
		}
		idx += swarSize
	}

	for ; idx < n; idx++ {
		if isDigit(haystack[idx]) {
			return idx
		}
	}
	return -1
}

// MemchrDigitAt returns the index of the first ASCII digit [0-9] at or after
// position 'at' in haystack, or -1 if no digit is found.
//
// This is equivalent to MemchrDigit(haystack[at:]) but returns the absolute
// index in the original haystack. An out-of-range 'at' returns -1.
func MemchrDigitAt(haystack []byte, at int) int {
	if at < 0 || at >= len(haystack) {
		return -1
	}

	pos := MemchrDigit(haystack[at:])
	if pos < 0 {
		return -1
	}
	return pos + at
}

// MemchrNonDigit returns the index of the first byte in haystack that is not
// an ASCII digit, or -1 if every byte is a digit. It measures digit runs of
// any length, including runs too long for a uint64.
func MemchrNonDigit(haystack []byte) int {
	n := len(haystack)
	idx := 0

	for idx+swarSize <= n {
		if m := ^digitBits(binary.LittleEndian.Uint64(haystack[idx:])) & hi8; m != 0 {
			return idx + bits.TrailingZeros64(m)/8
		}
		idx += swarSize
	}

	for ; idx < n; idx++ {
		if !isDigit(haystack[idx]) {
			return idx
		}
	}
	return -1
}

// DigitRunLen returns the length of the run of ASCII digits at the start of
// haystack.
func DigitRunLen(haystack []byte) int {
	if pos := MemchrNonDigit(haystack); pos >= 0 {
		return pos
	}
	return len(haystack)
}
