// Package kernel implements the vectorized ASCII decimal parser.
//
// Parse turns the leading ASCII digit run of a byte slice into a uint64 and
// the number of bytes it spans. Inputs longer than a few bytes are processed
// 16 bytes at a time:
//
//   - The first window starts at the 16-byte boundary preceding the input
//     and is shifted right by the input's misalignment, so every following
//     window is aligned in memory
//   - Each window is reduced by simd.ParseChunkPrefix (digit scan plus the
//     multiply-add tree)
//   - Windows after the first are carried into the running value as
//     value*10^digits + chunk with overflow-checked arithmetic
//
// Memory outside the input is never read: bytes of a window that fall
// before or after the addressable region are zero, and the tail mask keeps
// anything past the logical end from reaching the digit scan. Padded
// buffers give every window a straight 16-byte load.
//
// All failures collapse to (0, 0): an input without a leading digit and a
// digit run whose value exceeds 2^64-1 produce the same result.
package kernel

import (
	"math/bits"
	"unsafe"

	"github.com/coregx/coreint/simd"
)

const chunkSize = simd.ChunkSize

// Parse returns the value of the leading ASCII digit run of b and the
// number of bytes the run spans.
//
// Leading zeros count toward n but not toward value. If b does not start
// with a digit, or the run's value does not fit in a uint64, Parse returns
// (0, 0).
//
// Parse does not allocate and is safe for concurrent use.
func Parse(b []byte) (value uint64, n int) {
	return parse(newWindow(b), EngineAuto, DefaultShortInputThreshold)
}

// ParseWithConfig is Parse with an explicit configuration. An out-of-range
// ShortInputThreshold is treated as the default.
func ParseWithConfig(b []byte, cfg Config) (value uint64, n int) {
	return parse(newWindow(b), cfg.Engine, cfg.ShortInputThreshold)
}

func parse(w window, engine Engine, threshold int) (uint64, int) {
	if engine == EngineScalar {
		return ParseScalar(w.bytes())
	}
	if threshold < 1 || threshold > maxShortInputThreshold {
		threshold = DefaultShortInputThreshold
	}
	if w.n <= threshold {
		return parseShort(w.bytes())
	}
	return parseVector(w, engine == EngineLanes)
}

// parseShort is the byte loop for inputs too short to amortize a chunk
// load. len(b) must be at most 19.
func parseShort(b []byte) (value uint64, n int) {
	if len(b) == 1 {
		d := b[0] - '0'
		if d > 9 {
			return 0, 0
		}
		return uint64(d), 1
	}

	for _, c := range b {
		d := c - '0'
		if d > 9 {
			break
		}
		value = value*10 + uint64(d)
		n++
	}
	return value, n
}

// parseVector runs the chunked parse. w.n must be at least 1.
//
// generic forces the portable lane operations instead of simd.ParseChunk.
func parseVector(w window, generic bool) (uint64, int) {
	offset := w.offset()

	// First window: aligned load, then discard the lanes before the input.
	v := simd.ShiftRight(w.load(-offset), offset)
	value, i := reduce(v, min(w.n, chunkSize), generic)
	if i != chunkSize-offset {
		return value, i
	}

	// The run fills the first window. Most runs end within the next one.
	if w.n-i <= chunkSize {
		d, k := reduce(w.load(i), w.n-i, generic)
		sum, ok := carry(value, d, k)
		if !ok {
			return 0, 0
		}
		return sum, i + k
	}

	// Runs longer than 32 bytes can only be valid behind a long stretch of
	// leading zeros. Full windows until at most 16 bytes remain.
	for {
		d, k := reduce(w.load(i), chunkSize, generic)

		var ok bool
		if value, ok = carry(value, d, k); !ok {
			return 0, 0
		}
		i += k

		if k != chunkSize {
			return value, i
		}
		if w.n-i <= chunkSize {
			break
		}
	}

	d, k := reduce(w.load(i), w.n-i, generic)
	value, ok := carry(value, d, k)
	if !ok {
		return 0, 0
	}
	return value, i + k
}

// reduce parses the leading digit run of the first n lanes of v.
func reduce(v simd.Vec, n int, generic bool) (uint64, int) {
	if generic {
		return simd.ParseChunkPrefixGeneric(v, n)
	}
	return simd.ParseChunkPrefix(v, n)
}

// carry appends k digits worth d to value: value*10^k + d. It reports false
// if the result does not fit in a uint64.
func carry(value, d uint64, k int) (uint64, bool) {
	hi, lo := bits.Mul64(value, simd.PowersOfTen[k])
	if hi != 0 {
		return 0, false
	}
	sum, c := bits.Add64(lo, d, 0)
	if c != 0 {
		return 0, false
	}
	return sum, true
}

// ParseScalar is the byte-at-a-time parser with the same results as Parse.
// It checks every multiply and add for overflow and serves as the reference
// implementation and as EngineScalar.
func ParseScalar(b []byte) (value uint64, n int) {
	for _, c := range b {
		d := c - '0'
		if d > 9 {
			break
		}
		hi, lo := bits.Mul64(value, 10)
		sum, overflow := bits.Add64(lo, uint64(d), 0)
		if hi|overflow != 0 {
			return 0, 0
		}
		value = sum
		n++
	}
	return value, n
}

// window addresses the input inside the region of memory chunk loads may
// touch: the input slice itself, or the whole allocation of a Padded.
type window struct {
	region []byte
	origin int // index of input byte 0 in region
	n      int // input length
}

func newWindow(b []byte) window {
	return window{region: b, n: len(b)}
}

func (w window) bytes() []byte {
	return w.region[w.origin : w.origin+w.n]
}

// offset returns the distance of input byte 0 from the preceding 16-byte
// boundary. w.n must be at least 1.
func (w window) offset() int {
	return int(uintptr(unsafe.Pointer(&w.region[w.origin])) & (chunkSize - 1))
}

// load returns the 16 bytes starting at input position pos, which may be
// negative. Lanes outside the region are zero.
func (w window) load(pos int) simd.Vec {
	start := w.origin + pos
	if start >= 0 && start+chunkSize <= len(w.region) {
		return simd.Vec(w.region[start : start+chunkSize])
	}

	var v simd.Vec
	lo, hi := max(start, 0), min(start+chunkSize, len(w.region))
	if lo < hi {
		copy(v[lo-start:], w.region[lo:hi])
	}
	return v
}
