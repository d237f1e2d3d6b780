package kernel

import (
	"strconv"

	"github.com/coregx/coreint/simd"
)

// Engine selects the implementation that reduces 16-byte chunks.
type Engine uint8

const (
	// EngineAuto uses the SSE4.1 assembly kernel when the CPU supports it
	// and the portable lane operations otherwise.
	EngineAuto Engine = iota

	// EngineLanes always uses the portable lane operations, even on CPUs
	// with SSE4.1. Mostly useful for tests and benchmarks.
	EngineLanes

	// EngineScalar parses one byte at a time with checked arithmetic
	// (ParseScalar). No chunk is ever loaded.
	EngineScalar

	engineCount
)

// String returns the engine name as accepted by ParseEngine.
func (e Engine) String() string {
	switch e {
	case EngineAuto:
		return "auto"
	case EngineLanes:
		return "lanes"
	case EngineScalar:
		return "scalar"
	default:
		return "Engine(" + strconv.Itoa(int(e)) + ")"
	}
}

// ParseEngine returns the Engine named s ("auto", "lanes" or "scalar").
func ParseEngine(s string) (Engine, error) {
	for e := EngineAuto; e < engineCount; e++ {
		if e.String() == s {
			return e, nil
		}
	}
	return EngineAuto, &ConfigError{
		Field:   "Engine",
		Message: "unknown engine " + strconv.Quote(s),
	}
}

// DefaultShortInputThreshold is the input length up to which the byte loop
// beats the vector path. Measured on x86-64; retune together with the
// benchmarks in bench_test.go.
const DefaultShortInputThreshold = 6

// maxShortInputThreshold keeps the unchecked byte loop overflow free:
// 10^19-1 still fits in a uint64.
const maxShortInputThreshold = 19

// Config controls how Parse dispatches between its code paths.
//
// Example:
//
//	cfg := kernel.DefaultConfig()
//	cfg.Engine = kernel.EngineLanes // skip the assembly kernel
//	value, n := kernel.ParseWithConfig(b, cfg)
type Config struct {
	// Engine selects the chunk implementation.
	// Default: EngineAuto
	Engine Engine

	// ShortInputThreshold is the largest input length parsed with the
	// plain byte loop instead of chunk loads.
	// Default: 6
	ShortInputThreshold int
}

// DefaultConfig returns the configuration used by Parse.
func DefaultConfig() Config {
	return Config{
		Engine:              EngineAuto,
		ShortInputThreshold: DefaultShortInputThreshold,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Engine: EngineAuto, EngineLanes or EngineScalar
//   - ShortInputThreshold: 1 to 19
func (c Config) Validate() error {
	if c.Engine >= engineCount {
		return &ConfigError{
			Field:   "Engine",
			Message: "unknown engine " + c.Engine.String(),
		}
	}
	if c.ShortInputThreshold < 1 || c.ShortInputThreshold > maxShortInputThreshold {
		return &ConfigError{
			Field:   "ShortInputThreshold",
			Message: "must be between 1 and 19",
		}
	}
	return nil
}

// Implementation names the code that reduces chunks under this
// configuration on the running CPU: "sse4.1", "lanes" or "scalar".
func (c Config) Implementation() string {
	switch {
	case c.Engine == EngineScalar:
		return "scalar"
	case c.Engine == EngineAuto && simd.Accelerated():
		return "sse4.1"
	default:
		return "lanes"
	}
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "coreint: invalid config: " + e.Field + ": " + e.Message
}
