package coreint

import "strconv"

// AppendPadded appends the decimal form of v to dst, left-padded with
// zeros to at least width digits, and returns the extended buffer.
//
// It is the inverse of Parse: for any Result r with r.Len > 0,
// Parse(AppendPadded(nil, r.Value, r.Len)) == r.
func AppendPadded(dst []byte, v uint64, width int) []byte {
	var buf [20]byte
	digits := strconv.AppendUint(buf[:0], v, 10)

	for i := len(digits); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}
