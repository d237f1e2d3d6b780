// Package scan locates and parses every unsigned decimal integer in a
// buffer or stream.
//
// A digit run is any maximal sequence of ASCII digits, wherever it appears:
// "id=42;t=0017" holds the runs 42 and 0017. Runs are found with the SWAR
// digit search of package simd and parsed with package kernel. Runs whose
// value does not fit in a uint64 are reported with Overflow set rather than
// dropped, so callers can count or reject them.
package scan

import (
	"github.com/coregx/coreint/kernel"
	"github.com/coregx/coreint/simd"
	"go.uber.org/zap"
)

// Number is one digit run found by a Scanner or Reader.
type Number struct {
	// Value is the run's value, 0 when Overflow is set.
	Value uint64

	// Offset is the position of the run's first byte in the input. For a
	// Reader it counts from the start of the stream.
	Offset int64

	// Len is the length of the run in bytes, leading zeros included.
	Len int

	// Overflow reports that the run's value exceeds 2^64-1.
	Overflow bool
}

// End returns the offset of the first byte after the run.
func (n Number) End() int64 {
	return n.Offset + int64(n.Len)
}

// Scanner walks the digit runs of a byte slice.
//
// Example:
//
//	s := scan.New([]byte("GET /items/17 200 5120"))
//	for s.Next() {
//	    fmt.Println(s.Number().Value)
//	}
type Scanner struct {
	buf    []byte
	pos    int
	base   int64
	config kernel.Config
	num    Number
}

// New returns a Scanner over b using the default parser configuration.
func New(b []byte) *Scanner {
	return &Scanner{buf: b, config: kernel.DefaultConfig()}
}

// NewWithConfig returns a Scanner over b using cfg to parse runs.
func NewWithConfig(b []byte, cfg kernel.Config) *Scanner {
	return &Scanner{buf: b, config: cfg}
}

// Reset makes s scan b, reporting offsets relative to base.
func (s *Scanner) Reset(b []byte, base int64) {
	s.buf = b
	s.pos = 0
	s.base = base
	s.num = Number{}
}

// Next advances to the next digit run. It returns false when the buffer
// holds no further digits.
func (s *Scanner) Next() bool {
	start := simd.MemchrDigitAt(s.buf, s.pos)
	if start < 0 {
		s.pos = len(s.buf)
		return false
	}

	rest := s.buf[start:]
	value, n := kernel.ParseWithConfig(rest, s.config)
	overflow := n == 0
	if overflow {
		n = simd.DigitRunLen(rest)
		Logger().Debug("digit run overflows uint64",
			zap.Int64("offset", s.base+int64(start)),
			zap.Int("len", n))
	}

	s.num = Number{
		Value:    value,
		Offset:   s.base + int64(start),
		Len:      n,
		Overflow: overflow,
	}
	s.pos = start + n
	return true
}

// Number returns the run found by the last call to Next.
func (s *Scanner) Number() Number {
	return s.num
}

// All returns every digit run of b.
func All(b []byte) []Number {
	var nums []Number
	s := New(b)
	for s.Next() {
		nums = append(nums, s.Number())
	}
	return nums
}
