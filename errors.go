package coreint

import (
	"errors"
	"strconv"

	"github.com/coregx/coreint/kernel"
	"github.com/coregx/coreint/simd"
)

// Errors reported by ParseUint64 and Result.Uint64.
var (
	// ErrSyntax indicates that the input does not start with an ASCII digit.
	ErrSyntax = errors.New("no leading digit")

	// ErrRange indicates that the digit run's value exceeds 2^64-1.
	ErrRange = errors.New("value out of range")
)

// maxQuoted caps the input echoed back in a NumError.
const maxQuoted = 32

// NumError records a failed conversion.
type NumError struct {
	Func string // the failing function (ParseUint64)
	Num  string // the input, or its digit run for ErrRange, truncated
	Err  error  // ErrSyntax or ErrRange
}

// Error implements the error interface.
func (e *NumError) Error() string {
	return "coreint." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

// Unwrap returns the underlying error, so errors.Is(err, ErrRange) works.
func (e *NumError) Unwrap() error {
	return e.Err
}

// ParseUint64 parses the leading ASCII digit run of b and returns its value
// and length.
//
// Unlike Parse it distinguishes the two failure causes: if b does not start
// with a digit the error wraps ErrSyntax and n is 0; if the run's value
// exceeds 2^64-1 the error wraps ErrRange and n is the length of the run.
func ParseUint64(b []byte) (v uint64, n int, err error) {
	v, n = kernel.Parse(b)
	if n > 0 {
		return v, n, nil
	}

	if len(b) > 0 && b[0]-'0' <= 9 {
		n = simd.DigitRunLen(b)
		return 0, n, &NumError{Func: "ParseUint64", Num: quoted(b[:n]), Err: ErrRange}
	}
	return 0, 0, &NumError{Func: "ParseUint64", Num: quoted(b), Err: ErrSyntax}
}

func quoted(b []byte) string {
	if len(b) > maxQuoted {
		return string(b[:maxQuoted]) + "..."
	}
	return string(b)
}
