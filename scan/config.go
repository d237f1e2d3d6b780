package scan

import (
	"github.com/coregx/coreint/kernel"
)

// Config controls how a Reader splits its input and parses numbers.
type Config struct {
	// Separator ends a record. Digit runs never span records.
	// Default: '\n'
	Separator byte

	// MaxRecordSize is the largest record a Reader accepts, separator
	// included. Longer records stop the Reader with ErrRecordTooLong.
	// Default: 1 MiB
	MaxRecordSize int

	// Kernel configures the integer parser.
	// Default: kernel.DefaultConfig()
	Kernel kernel.Config
}

// DefaultConfig returns a configuration for newline separated records.
func DefaultConfig() Config {
	return Config{
		Separator:     '\n',
		MaxRecordSize: 1 << 20,
		Kernel:        kernel.DefaultConfig(),
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Separator: any byte except an ASCII digit
//   - MaxRecordSize: 16 to 1 GiB
//   - Kernel: see kernel.Config.Validate
func (c Config) Validate() error {
	if c.Separator >= '0' && c.Separator <= '9' {
		return &kernel.ConfigError{
			Field:   "Separator",
			Message: "must not be a digit",
		}
	}
	if c.MaxRecordSize < 16 || c.MaxRecordSize > 1<<30 {
		return &kernel.ConfigError{
			Field:   "MaxRecordSize",
			Message: "must be between 16 and 1 GiB",
		}
	}
	return c.Kernel.Validate()
}
