package simd

import "encoding/binary"

// Vec is a 128-bit vector viewed as 16 byte lanes. Lane i holds byte i of
// the memory it was loaded from.
//
// The functions in this file are portable Go renditions of the SSE2/SSSE3/
// SSE4.1 instructions the digit kernel is built from. They are used directly
// on targets without an assembly kernel and serve as the reference the
// assembly is tested against. Wider lanes (16 and 32 bit) are stored
// little-endian inside the same 16 bytes, exactly as in an XMM register.
type Vec [16]byte

// Broadcast8 returns a vector with every byte lane set to b (_mm_set1_epi8).
func Broadcast8(b byte) Vec {
	var v Vec
	for i := range v {
		v[i] = b
	}
	return v
}

// Repeat8 returns a vector whose even lanes hold lo and odd lanes hold hi.
func Repeat8(lo, hi byte) Vec {
	var v Vec
	for i := 0; i < len(v); i += 2 {
		v[i] = lo
		v[i+1] = hi
	}
	return v
}

// Words returns a vector built from eight 16-bit lanes (_mm_set_epi16 with
// the arguments in lane order).
func Words(w [8]uint16) Vec {
	var v Vec
	for i, x := range w {
		binary.LittleEndian.PutUint16(v[2*i:], x)
	}
	return v
}

// Add8 adds byte lanes with wraparound (PADDB).
func Add8(a, b Vec) Vec {
	var r Vec
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// Sub8 subtracts byte lanes with wraparound (PSUBB).
func Sub8(a, b Vec) Vec {
	var r Vec
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

// And returns the bitwise AND of a and b (PAND).
func And(a, b Vec) Vec {
	var r Vec
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

// CmpGt8 compares byte lanes as signed integers and sets a lane to 0xFF
// where a > b, 0x00 otherwise (PCMPGTB).
func CmpGt8(a, b Vec) Vec {
	var r Vec
	for i := range r {
		if int8(a[i]) > int8(b[i]) {
			r[i] = 0xFF
		}
	}
	return r
}

// MoveMask8 gathers the high bit of every byte lane into the low 16 bits of
// the result, lane 0 in bit 0 (PMOVMSKB).
func MoveMask8(v Vec) uint32 {
	var m uint32
	for i := range v {
		m |= uint32(v[i]>>7) << i
	}
	return m
}

// Shuffle8 permutes the lanes of v by idx (PSHUFB). Lane i of the result is
// v[idx[i]&15], or zero when the high bit of idx[i] is set.
func Shuffle8(v, idx Vec) Vec {
	var r Vec
	for i := range r {
		if idx[i]&0x80 == 0 {
			r[i] = v[idx[i]&0x0F]
		}
	}
	return r
}

// MulAddUbs multiplies unsigned bytes of a by signed bytes of b and adds
// adjacent products into eight signed, saturated 16-bit lanes (PMADDUBSW).
func MulAddUbs(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 8; i++ {
		lo := int32(a[2*i]) * int32(int8(b[2*i]))
		hi := int32(a[2*i+1]) * int32(int8(b[2*i+1]))
		binary.LittleEndian.PutUint16(r[2*i:], uint16(saturate16(lo+hi)))
	}
	return r
}

// MulAdd16 multiplies signed 16-bit lanes and adds adjacent products into
// four signed 32-bit lanes (PMADDWD).
func MulAdd16(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 4; i++ {
		a0 := int32(int16(binary.LittleEndian.Uint16(a[4*i:])))
		a1 := int32(int16(binary.LittleEndian.Uint16(a[4*i+2:])))
		b0 := int32(int16(binary.LittleEndian.Uint16(b[4*i:])))
		b1 := int32(int16(binary.LittleEndian.Uint16(b[4*i+2:])))
		binary.LittleEndian.PutUint32(r[4*i:], uint32(a0*b0+a1*b1))
	}
	return r
}

// PackUs32 narrows the signed 32-bit lanes of a (low half of the result)
// and b (high half) to unsigned 16 bits with saturation (PACKUSDW).
func PackUs32(a, b Vec) Vec {
	var r Vec
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint16(r[2*i:], saturateU16(int32(binary.LittleEndian.Uint32(a[4*i:]))))
		binary.LittleEndian.PutUint16(r[8+2*i:], saturateU16(int32(binary.LittleEndian.Uint32(b[4*i:]))))
	}
	return r
}

// Low64 extracts the low 64-bit lane (MOVQ).
func Low64(v Vec) uint64 {
	return binary.LittleEndian.Uint64(v[:8])
}

func saturate16(x int32) int16 {
	switch {
	case x > 32767:
		return 32767
	case x < -32768:
		return -32768
	}
	return int16(x)
}

func saturateU16(x int32) uint16 {
	switch {
	case x > 65535:
		return 65535
	case x < 0:
		return 0
	}
	return uint16(x)
}
