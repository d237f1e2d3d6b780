package kernel

import (
	"bytes"
	"testing"
)

func TestNewPadded(t *testing.T) {
	data := []byte("000123456789012345678")
	p := NewPadded(data)

	if !bytes.Equal(p.Bytes(), data) {
		t.Fatalf("Bytes() = %q, want %q", p.Bytes(), data)
	}
	if p.Len() != len(data) {
		t.Errorf("Len() = %d, want %d", p.Len(), len(data))
	}
	if c := cap(p.Bytes()); c != len(data) {
		t.Errorf("cap(Bytes()) = %d, want %d", c, len(data))
	}

	// The copy is independent of the caller's slice.
	data[3] = 'x'
	if v, n := p.Parse(); v != 123456789012345678 || n != 21 {
		t.Errorf("Parse() = (%d, %d), want (123456789012345678, 21)", v, n)
	}
}

func TestNewPaddedAt(t *testing.T) {
	data := []byte("42")

	for _, misalign := range []int{0, 1, 7, 15, 16, 17, -1} {
		p := NewPaddedAt(data, misalign)
		want := misalign & 15
		if got := p.Misalignment(); got != want {
			t.Errorf("NewPaddedAt(_, %d).Misalignment() = %d, want %d", misalign, got, want)
		}
		if !bytes.Equal(p.Bytes(), data) {
			t.Errorf("NewPaddedAt(_, %d).Bytes() = %q", misalign, p.Bytes())
		}
	}
}

func TestPaddedZeroValue(t *testing.T) {
	var p Padded

	if p.Len() != 0 || len(p.Bytes()) != 0 {
		t.Errorf("zero Padded holds %q", p.Bytes())
	}
	if p.Misalignment() != 0 {
		t.Errorf("Misalignment() = %d, want 0", p.Misalignment())
	}
	if v, n := p.Parse(); v != 0 || n != 0 {
		t.Errorf("Parse() = (%d, %d), want (0, 0)", v, n)
	}
}
