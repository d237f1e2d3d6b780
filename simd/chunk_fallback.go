//go:build !amd64

package simd

// ParseChunk returns the value and length of the leading digit run of v.
//
// On non-AMD64 platforms this is the portable lane implementation; see
// ParseChunkGeneric for the algorithm.
func ParseChunk(v Vec) (value uint64, digits int) {
	return ParseChunkGeneric(v)
}

// ParseChunkPrefix is ParseChunk restricted to the first n lanes of v;
// lanes n..15 are treated as non-digits. n must be in [0, 16].
func ParseChunkPrefix(v Vec, n int) (value uint64, digits int) {
	return ParseChunkPrefixGeneric(v, n)
}

// Accelerated reports whether ParseChunk runs on an assembly kernel.
// Always false on non-AMD64 platforms.
func Accelerated() bool {
	return false
}

// HasSSE41 reports whether the CPU supports the instructions of the
// assembly kernel. Always false on non-AMD64 platforms.
func HasSSE41() bool {
	return false
}
