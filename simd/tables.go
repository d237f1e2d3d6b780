package simd

// PowersOfTen holds 10^0 through 10^19, the largest power of ten that fits
// in a uint64. Indexed by digit count when carrying a chunk into a running
// value.
var PowersOfTen = [20]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// Shuffle tables for variable lane shifts. A 16-byte window taken at a
// variable offset into either table is a PSHUFB index vector; 0x80 entries
// zero the lane.
//
// The assembly kernel addresses shiftLeftLUT directly, keep its layout.
var (
	// shiftLeftLUT[16-n:32-n] moves lane i to lane i+n.
	shiftLeftLUT = [32]byte{
		0x80, 0x80, 0x80, 0x80,
		0x80, 0x80, 0x80, 0x80,
		0x80, 0x80, 0x80, 0x80,
		0x80, 0x80, 0x80, 0x80,
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
	}

	// shiftRightLUT[n:n+16] moves lane i+n to lane i.
	shiftRightLUT = [32]byte{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15,
		0x80, 0x80, 0x80, 0x80,
		0x80, 0x80, 0x80, 0x80,
		0x80, 0x80, 0x80, 0x80,
		0x80, 0x80, 0x80, 0x80,
	}
)

// Constant vectors of the digit kernel.
var (
	laneIndex = Vec{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

	asciiZero  = Broadcast8('0')
	signBias   = Broadcast8(0x80)
	nineBiased = Broadcast8(9 + 0x80)

	// Weights of the reduction rounds. Lane 0 is the most significant
	// digit of each group.
	tens         = Repeat8(10, 1)
	hundreds     = Words([8]uint16{100, 1, 100, 1, 100, 1, 100, 1})
	tenThousands = Words([8]uint16{10000, 1, 10000, 1, 0, 0, 0, 0})
)

// ShiftLeft moves every lane n positions toward lane 15, zero-filling lanes
// 0..n-1. n must be in [0, 16].
func ShiftLeft(v Vec, n int) Vec {
	return Shuffle8(v, Vec(shiftLeftLUT[16-n:32-n]))
}

// ShiftRight moves every lane n positions toward lane 0, zero-filling lanes
// 16-n..15. n must be in [0, 16].
func ShiftRight(v Vec, n int) Vec {
	return Shuffle8(v, Vec(shiftRightLUT[n:n+16]))
}
