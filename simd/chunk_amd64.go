//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
var (
	// hasSSE41 indicates whether the CPU supports the SSSE3 byte shuffle and
	// multiply-add plus the SSE4.1 saturating pack the chunk kernel needs.
	// Every x86-64 CPU since Penryn (2008) qualifies.
	hasSSE41 = cpu.X86.HasSSSE3 && cpu.X86.HasSSE41

	useSSE41 = hasSSE41 && !noSIMDEnv()
)

// parseChunkSSE41 is the SSE4.1 implementation of ParseChunkPrefixGeneric.
// It is implemented in chunk_amd64.s and keeps the whole reduction in XMM
// registers.
//
//go:noescape
func parseChunkSSE41(chunk *Vec, n int) (value uint64, digits int)

// ParseChunk returns the value and length of the leading digit run of v.
//
// On AMD64 with SSE4.1 the reduction runs as a single assembly routine
// (PSHUFB, PMADDUBSW, PMADDWD, PACKUSDW). Otherwise the portable lane
// operations are used. Both produce identical results for every input.
func ParseChunk(v Vec) (value uint64, digits int) {
	if useSSE41 {
		return parseChunkSSE41(&v, ChunkSize)
	}
	return ParseChunkGeneric(v)
}

// ParseChunkPrefix is ParseChunk restricted to the first n lanes of v;
// lanes n..15 are treated as non-digits. n must be in [0, 16].
func ParseChunkPrefix(v Vec, n int) (value uint64, digits int) {
	if useSSE41 {
		return parseChunkSSE41(&v, n)
	}
	return ParseChunkPrefixGeneric(v, n)
}

// Accelerated reports whether ParseChunk runs on the assembly kernel.
func Accelerated() bool {
	return useSSE41
}

// HasSSE41 reports whether the CPU supports the instructions of the
// assembly kernel, regardless of COREINT_NO_SIMD.
func HasSSE41() bool {
	return hasSSE41
}
