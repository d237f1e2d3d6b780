// Package simd provides the 128-bit lane operations and byte scanning
// primitives behind coreint's integer parser.
//
// The centrepiece is ParseChunk, which turns 16 raw bytes into the value
// and length of their leading ASCII digit run with a fixed multiply-add
// reduction tree. On x86-64 CPUs with SSE4.1 it runs as a single assembly
// routine; everywhere else (and when the COREINT_NO_SIMD environment
// variable is set) the portable Vec operations in vec.go compute the same
// result lane by lane.
//
// The package also carries SWAR (SIMD Within A Register) scanners used to
// locate digit runs in larger buffers: MemchrDigit, MemchrNonDigit and
// Memchr.
package simd

import "os"

// noSIMDEnv reports whether the COREINT_NO_SIMD environment variable
// disables the assembly kernel. Any non-empty value other than "0" counts.
func noSIMDEnv() bool {
	v := os.Getenv("COREINT_NO_SIMD")
	return v != "" && v != "0"
}
