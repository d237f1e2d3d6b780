package simd

import "math/bits"

// ChunkSize is the number of bytes processed by one vector step.
const ChunkSize = 16

// DigitCount returns the number of leading lanes of v (0-16) holding ASCII
// digits '0'-'9'.
//
// Algorithm:
//  1. Subtract '0' from every lane so digits become 0-9
//  2. Bias by 0x80 and compare signed against 9+0x80 (there is no unsigned
//     byte compare), which flags every lane outside 0-9
//  3. Collect the flags with a movemask and set bit 16 so a chunk of
//     sixteen digits still yields a set bit
//  4. The trailing-zero count is the length of the digit run
func DigitCount(v Vec) int {
	return digitCount(Sub8(v, asciiZero))
}

func digitCount(values Vec) int {
	notDigit := CmpGt8(Add8(values, signBias), nineBiased)
	return bits.TrailingZeros32(MoveMask8(notDigit) | 0x10000)
}

// MaskPrefix keeps lanes 0..n-1 of v and zeroes the rest. n must be in
// [0, 16].
//
// The mask is built with a signed compare of a broadcast n against the lane
// index vector, so bytes past the logical end of an input never reach the
// digit scan.
func MaskPrefix(v Vec, n int) Vec {
	return And(v, CmpGt8(Broadcast8(byte(n)), laneIndex))
}

// ParseChunkGeneric parses the leading digit run of v using the portable
// lane operations. It returns the run's value and its length in digits.
//
// The digits are right-justified (ShiftLeft by 16-digits) so the run's last
// digit sits in lane 15 and the lanes in front are zero, then folded by four
// fixed multiply-add rounds:
//
//	bytes  d0 d1 | d2 d3 | ...  x (10, 1)          -> 8 x 2-digit groups
//	words  g0 g1 | g2 g3 | ...  x (100, 1)         -> 4 x 4-digit groups
//	pack 32 -> 16 bit (every group is <= 9999)
//	words  q0 q1 q2 q3          x (10000, 1, ...)  -> 2 x 8-digit groups
//
// and the two 8-digit halves of the low 64 bits are combined as
// high + low*10^8. Sixteen digits never exceed 10^16-1, so no overflow is
// possible inside a chunk.
func ParseChunkGeneric(v Vec) (value uint64, digits int) {
	values := Sub8(v, asciiZero)
	digits = digitCount(values)

	values = ShiftLeft(values, ChunkSize-digits)
	values = MulAddUbs(values, tens)
	values = MulAdd16(values, hundreds)
	values = PackUs32(values, values)
	values = MulAdd16(values, tenThousands)

	r := Low64(values)
	return r>>32 + (r&0xFFFFFFFF)*100000000, digits
}

// ParseChunkPrefixGeneric is ParseChunkGeneric applied to the first n lanes
// of v only.
func ParseChunkPrefixGeneric(v Vec, n int) (value uint64, digits int) {
	return ParseChunkGeneric(MaskPrefix(v, n))
}
