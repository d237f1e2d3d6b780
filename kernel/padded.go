package kernel

import (
	"unsafe"

	"github.com/coregx/coreint/simd"
)

// padding is the slack kept on each side of the data in a Padded buffer.
const padding = simd.ChunkSize

// Padded holds digit text inside a larger allocation with at least 16 bytes
// of slack on both sides, so every chunk load of the parser is a straight
// 16-byte read without partial-window copies.
//
// Use it when the same text is parsed repeatedly or when the layout of the
// input must be controlled, for example to reproduce a given alignment.
// The zero value holds empty data.
type Padded struct {
	buf    []byte
	origin int
	n      int
}

// NewPadded copies data into a new padded buffer.
func NewPadded(data []byte) *Padded {
	buf := make([]byte, padding+len(data)+padding)
	copy(buf[padding:], data)
	return &Padded{buf: buf, origin: padding, n: len(data)}
}

// NewPaddedAt copies data into a new padded buffer so that the first byte
// of data sits misalign bytes past a 16-byte boundary. misalign is taken
// modulo 16.
func NewPaddedAt(data []byte, misalign int) *Padded {
	buf := make([]byte, 2*padding+len(data)+padding)

	base := int(uintptr(unsafe.Pointer(unsafe.SliceData(buf))) & (padding - 1))
	origin := padding + (misalign-base)&(padding-1)

	copy(buf[origin:], data)
	return &Padded{buf: buf, origin: origin, n: len(data)}
}

// Bytes returns the data held by p. The result aliases p and has no spare
// capacity.
func (p *Padded) Bytes() []byte {
	return p.buf[p.origin : p.origin+p.n : p.origin+p.n]
}

// Len returns the length of the data held by p.
func (p *Padded) Len() int {
	return p.n
}

// Misalignment returns the distance of the data from the preceding 16-byte
// boundary.
func (p *Padded) Misalignment() int {
	if p.buf == nil {
		return 0
	}
	return p.window().offset()
}

// Parse parses the leading digit run of the data held by p. Results are
// identical to Parse(p.Bytes()).
func (p *Padded) Parse() (value uint64, n int) {
	return parse(p.window(), EngineAuto, DefaultShortInputThreshold)
}

// ParseWithConfig is Parse with an explicit configuration.
func (p *Padded) ParseWithConfig(cfg Config) (value uint64, n int) {
	return parse(p.window(), cfg.Engine, cfg.ShortInputThreshold)
}

func (p *Padded) window() window {
	return window{region: p.buf, origin: p.origin, n: p.n}
}
