// Package fields extracts integers that follow known keys in text records,
// such as "latency_ms=250" or "bytes: 5120".
//
// All keys are searched at once with an Aho-Corasick automaton, so the cost
// of a record does not grow with the number of keys. The value after each
// key is parsed in place with coreint.ParseUint64.
package fields

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/coreint"
	"go.uber.org/zap"
)

// Errors reported by NewExtractor.
var (
	// ErrNoKeys indicates that NewExtractor was called without keys.
	ErrNoKeys = errors.New("fields: no keys")

	// ErrInvalidKey indicates an empty key or a key ending in a digit.
	ErrInvalidKey = errors.New("fields: invalid key")

	// ErrDuplicateKey indicates that a key was given twice.
	ErrDuplicateKey = errors.New("fields: duplicate key")
)

// Field is one key occurrence and the integer following it.
type Field struct {
	// Key is the matched key, exactly as passed to NewExtractor.
	Key string

	// Value is the parsed integer, 0 when Err is set.
	Value uint64

	// Offset is the position of the value's first byte in the record.
	Offset int

	// Len is the length of the value's digit run, 0 for ErrSyntax.
	Len int

	// Err is nil, or wraps coreint.ErrSyntax (no digit after the key) or
	// coreint.ErrRange (the value exceeds 2^64-1).
	Err error
}

// Extractor finds keyed integers in records.
//
// An Extractor is immutable after construction and safe for concurrent
// use.
type Extractor struct {
	auto  *ahocorasick.Automaton
	keys  []string
	index map[string]int
}

// NewExtractor builds an Extractor for keys. A key is matched only where it
// is not preceded by a letter, digit or underscore, so "id=" does not match
// inside "uid=".
func NewExtractor(keys ...string) (*Extractor, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	e := &Extractor{
		keys:  make([]string, 0, len(keys)),
		index: make(map[string]int, len(keys)),
	}
	builder := ahocorasick.NewBuilder()
	for _, k := range keys {
		if k == "" || isDigit(k[len(k)-1]) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, k)
		}
		if _, ok := e.index[k]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		e.index[k] = len(e.keys)
		e.keys = append(e.keys, k)
		builder.AddPattern([]byte(k))
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("fields: build automaton: %w", err)
	}
	e.auto = auto

	Logger().Debug("extractor built", zap.Strings("keys", e.keys))
	return e, nil
}

// MustNewExtractor is like NewExtractor but panics on error.
func MustNewExtractor(keys ...string) *Extractor {
	e, err := NewExtractor(keys...)
	if err != nil {
		panic(err)
	}
	return e
}

// Keys returns the extractor's keys in construction order.
func (e *Extractor) Keys() []string {
	return append([]string(nil), e.keys...)
}

// Contains reports whether record holds any of the keys, at a key boundary
// or not. It is a cheap pre-check before Extract.
func (e *Extractor) Contains(record []byte) bool {
	return e.auto.IsMatch(record)
}

// Extract returns every key occurrence in record with the integer that
// follows it, in record order.
func (e *Extractor) Extract(record []byte) []Field {
	return e.AppendFields(nil, record)
}

// AppendFields is like Extract but appends to dst.
func (e *Extractor) AppendFields(dst []Field, record []byte) []Field {
	at := 0
	for at < len(record) {
		m := e.auto.Find(record, at)
		if m == nil {
			break
		}
		if m.Start > 0 && isWordByte(record[m.Start-1]) {
			at = m.Start + 1
			continue
		}

		key := e.keys[e.index[string(record[m.Start:m.End])]]
		v, n, err := coreint.ParseUint64(record[m.End:])
		if err != nil {
			Logger().Debug("key without value",
				zap.String("key", key),
				zap.Int("offset", m.End),
				zap.Error(err))
		}

		dst = append(dst, Field{
			Key:    key,
			Value:  v,
			Offset: m.End,
			Len:    n,
			Err:    err,
		})
		at = m.End + n
	}
	return dst
}

// Lookup returns the first valid value for key in record.
func (e *Extractor) Lookup(record []byte, key string) (uint64, bool) {
	if _, ok := e.index[key]; !ok {
		return 0, false
	}
	for _, f := range e.Extract(record) {
		if f.Key == key && f.Err == nil {
			return f.Value, true
		}
	}
	return 0, false
}

func isDigit(b byte) bool {
	return b-'0' <= 9
}

func isWordByte(b byte) bool {
	return isDigit(b) || b == '_' || (b|0x20) >= 'a' && (b|0x20) <= 'z'
}
