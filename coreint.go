// Package coreint parses unsigned decimal integers out of byte buffers,
// 16 bytes per step.
//
// coreint is built for hot paths where integer parsing from text dominates
// CPU time: log and record ingestion, numeric-heavy text formats. It reads
// the leading ASCII digit run of its input and returns the value together
// with the number of bytes consumed, so callers can continue scanning right
// after the number.
//
// Basic usage:
//
//	r := coreint.Parse([]byte("8080:localhost"))
//	fmt.Println(r.Value, r.Len) // 8080 4
//
//	// Optional-value and error-style adapters
//	if v, ok := r.Option(); ok {
//	    use(v)
//	}
//	v, n, err := coreint.ParseUint64(buf) // err wraps ErrSyntax or ErrRange
//
// Advanced usage:
//
//	cfg := coreint.DefaultConfig()
//	cfg.Engine = coreint.EngineScalar
//	p, err := coreint.NewParser(cfg)
//	r := p.Parse(buf)
//
// Performance characteristics:
//   - Inputs of up to 6 bytes: plain byte loop
//   - Longer inputs: one 16-byte chunk reduction per 16 digits, SSE4.1
//     assembly on x86-64 and portable lane operations elsewhere
//   - No allocation, no shared mutable state
//
// Failures collapse to a zero Result: an input that does not start with a
// digit and a digit run whose value exceeds 2^64-1 both yield Len == 0.
// ParseUint64 tells the two apart.
package coreint

import (
	"unsafe"

	"github.com/coregx/coreint/kernel"
	"github.com/coregx/coreint/simd"
)

// Result is the outcome of parsing one digit run.
//
// Len is the number of bytes of the run, leading zeros included, and Value
// its base-10 value. Len == 0 means the input did not start with a digit or
// the value overflowed a uint64; Value is 0 in both cases.
type Result struct {
	Value uint64
	Len   int
}

// Option returns the value and true, or 0 and false if no number was
// parsed.
func (r Result) Option() (uint64, bool) {
	if r.Len == 0 {
		return 0, false
	}
	return r.Value, true
}

// Uint64 returns the value, or ErrSyntax if no number was parsed.
//
// A zero Result does not record why parsing stopped, so an overflowing run
// also reports ErrSyntax here. Use ParseUint64 to get ErrRange instead.
func (r Result) Uint64() (uint64, error) {
	if r.Len == 0 {
		return 0, ErrSyntax
	}
	return r.Value, nil
}

// Parse parses the leading ASCII digit run of b.
//
// Example:
//
//	r := coreint.Parse([]byte("000123abc"))
//	// r.Value == 123, r.Len == 6
func Parse(b []byte) Result {
	v, n := kernel.Parse(b)
	return Result{Value: v, Len: n}
}

// ParseString is like Parse but takes a string. It does not copy s.
func ParseString(s string) Result {
	return Parse(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Config controls parser dispatch. See kernel.Config.
type Config = kernel.Config

// Engine selects the chunk implementation. See kernel.Engine.
type Engine = kernel.Engine

// Engines accepted in Config.Engine.
const (
	EngineAuto   = kernel.EngineAuto
	EngineLanes  = kernel.EngineLanes
	EngineScalar = kernel.EngineScalar
)

// DefaultConfig returns the configuration used by Parse.
func DefaultConfig() Config {
	return kernel.DefaultConfig()
}

// Parser parses digit runs with a fixed configuration.
//
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	config Config
}

// NewParser returns a Parser using config, or an error if config is
// invalid.
func NewParser(config Config) (*Parser, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Parser{config: config}, nil
}

// MustNewParser is like NewParser but panics if config is invalid.
func MustNewParser(config Config) *Parser {
	p, err := NewParser(config)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse parses the leading ASCII digit run of b.
func (p *Parser) Parse(b []byte) Result {
	v, n := kernel.ParseWithConfig(b, p.config)
	return Result{Value: v, Len: n}
}

// ParseString is like Parse but takes a string. It does not copy s.
func (p *Parser) ParseString(s string) Result {
	return p.Parse(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Config returns the parser's configuration.
func (p *Parser) Config() Config {
	return p.config
}

// Implementation names the code that reduces chunks for this parser on
// the running CPU: "sse4.1", "lanes" or "scalar".
func (p *Parser) Implementation() string {
	return p.config.Implementation()
}

// Available reports whether Parse runs on the SSE4.1 assembly kernel.
// It is false on other architectures, on CPUs without SSE4.1, and when the
// COREINT_NO_SIMD environment variable is set.
func Available() bool {
	return simd.Accelerated()
}

// Implementation names the code that reduces chunks for Parse on the
// running CPU: "sse4.1" or "lanes".
func Implementation() string {
	return kernel.DefaultConfig().Implementation()
}
