package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/coregx/coreint/simd"
	"go.uber.org/zap"
)

// ErrRecordTooLong is returned by Reader.Err when a record exceeds
// Config.MaxRecordSize.
var ErrRecordTooLong = errors.New("scan: record too long")

// Reader walks the digit runs of a stream, one record at a time.
//
// Records are split at Config.Separator, so a run never spans two records
// even if the separator were absent from the data between reads. Offsets
// are absolute positions in the stream.
type Reader struct {
	records *bufio.Scanner
	config  Config
	scanner Scanner

	record int   // index of the current record
	offset int64 // stream offset of the next record
	err    error
}

// NewReader returns a Reader over r, or an error if cfg is invalid.
func NewReader(r io.Reader, cfg Config) (*Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	records := bufio.NewScanner(r)
	records.Buffer(make([]byte, 0, min(cfg.MaxRecordSize, 64*1024)), cfg.MaxRecordSize)
	records.Split(SplitAt(cfg.Separator))

	return &Reader{
		records: records,
		config:  cfg,
		scanner: Scanner{config: cfg.Kernel},
		record:  -1,
	}, nil
}

// SplitAt returns a bufio.SplitFunc yielding records terminated by sep.
// The separator stays in the token, so token lengths add up to stream
// offsets. The last record may lack a separator.
func SplitAt(sep byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := simd.Memchr(data, sep); i >= 0 {
			return i + 1, data[:i+1], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}

// Next advances to the next digit run of the stream. It returns false at
// the end of the input or on error; Err reports which.
func (r *Reader) Next() bool {
	for {
		if r.scanner.Next() {
			return true
		}
		if r.err != nil || !r.records.Scan() {
			r.finish()
			return false
		}

		rec := r.records.Bytes()
		r.record++
		r.scanner.Reset(rec, r.offset)
		r.offset += int64(len(rec))
	}
}

func (r *Reader) finish() {
	if r.err != nil {
		return
	}
	err := r.records.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		Logger().Warn("record exceeds limit",
			zap.Int("record", r.record+1),
			zap.Int64("offset", r.offset),
			zap.Int("max_record_size", r.config.MaxRecordSize))
		err = fmt.Errorf("%w: record %d at offset %d exceeds %d bytes",
			ErrRecordTooLong, r.record+1, r.offset, r.config.MaxRecordSize)
	}
	r.err = err
}

// Number returns the run found by the last call to Next.
func (r *Reader) Number() Number {
	return r.scanner.Number()
}

// Record returns the zero-based index of the record holding the current
// run.
func (r *Reader) Record() int {
	return r.record
}

// Err returns the first error encountered by the Reader, or nil at a clean
// end of input.
func (r *Reader) Err() error {
	return r.err
}
