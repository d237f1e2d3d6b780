package kernel

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// refParse is an independent reference: it measures the digit run, strips
// leading zeros and lets strconv decide whether the rest fits in 64 bits.
func refParse(b []byte) (uint64, int) {
	n := 0
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, 0
	}

	digits := strings.TrimLeft(string(b[:n]), "0")
	if digits == "" {
		return 0, n
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, 0
	}
	return v, n
}

// allConfigs returns every engine combined with short-input thresholds that
// move inputs between the byte loop and the chunk path.
func allConfigs() []Config {
	var cfgs []Config
	for _, e := range []Engine{EngineAuto, EngineLanes, EngineScalar} {
		for _, th := range []int{1, DefaultShortInputThreshold, 19} {
			cfgs = append(cfgs, Config{Engine: e, ShortInputThreshold: th})
		}
	}
	return cfgs
}

// checkParse parses input with every entry point and configuration.
func checkParse(t *testing.T, input []byte, wantValue uint64, wantLen int) {
	t.Helper()

	if v, n := Parse(input); v != wantValue || n != wantLen {
		t.Errorf("Parse(%q) = (%d, %d), want (%d, %d)", input, v, n, wantValue, wantLen)
	}
	if v, n := ParseScalar(input); v != wantValue || n != wantLen {
		t.Errorf("ParseScalar(%q) = (%d, %d), want (%d, %d)", input, v, n, wantValue, wantLen)
	}
	for _, cfg := range allConfigs() {
		if v, n := ParseWithConfig(input, cfg); v != wantValue || n != wantLen {
			t.Errorf("ParseWithConfig(%q, %+v) = (%d, %d), want (%d, %d)",
				input, cfg, v, n, wantValue, wantLen)
		}
	}
	if v, n := NewPadded(input).Parse(); v != wantValue || n != wantLen {
		t.Errorf("Padded(%q).Parse() = (%d, %d), want (%d, %d)", input, v, n, wantValue, wantLen)
	}
}

func TestParseBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value uint64
		len   int
	}{
		{"empty", "", 0, 0},
		{"zero", "0", 0, 1},
		{"single_digit", "3", 3, 1},
		{"single_non_digit", "x", 0, 0},
		{"nul_byte", "\x00", 0, 0},
		{"twenty_zeros", "00000000000000000000", 0, 20},
		{"max_uint64", "18446744073709551615", 18446744073709551615, 20},
		{"max_uint64_plus_one", "18446744073709551616", 0, 0},
		{"trailing_letters", "123abc", 123, 3},
		{"leading_letter", "a123", 0, 0},
		{"seven_digits", "1234567", 1234567, 7},
		{"six_digits", "123456", 123456, 6},
		{"sixteen_digits", "1234567890123456", 1234567890123456, 16},
		{"seventeen_digits", "12345678901234567", 12345678901234567, 17},
		{"nineteen_nines", "9999999999999999999", 9999999999999999999, 19},
		{"twenty_nines", "99999999999999999999", 0, 0},
		{"twenty_digits", "12345234562624652344", 12345234562624652344, 20},
		{"leading_zeros", "00002222221343435542", 2222221343435542, 20},
		{"twenty_one_digits", "184467440737095516150", 0, 0},
		{"max_behind_zeros", "000000000000018446744073709551615", 18446744073709551615, 33},
		{"overflow_behind_zeros", "000000000000018446744073709551616", 0, 0},
		{"digits_then_colon", "8080:host", 8080, 4},
		{"digits_then_slash", "12345678901234567/", 12345678901234567, 17},
		{"digits_then_high_byte", "1234567890\xb0", 1234567890, 10},
		{"digits_then_space_long", "42 1234567890123456789", 42, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkParse(t, []byte(tt.input), tt.value, tt.len)
		})
	}
}

// TestParseEveryLength parses a run of every length from 1 to 40 followed
// by each interesting terminator.
func TestParseEveryLength(t *testing.T) {
	const digits = "1234567890123456789"

	for length := 1; length <= 40; length++ {
		var sb strings.Builder
		// Keep the significant part at most 19 digits so the value fits.
		for sb.Len() < length-len(digits) {
			sb.WriteByte('0')
		}
		if length > len(digits) {
			sb.WriteString(digits)
		} else {
			sb.WriteString(digits[:length])
		}
		run := sb.String()

		for _, suffix := range []string{"", ",", "a", "/", ":", "\xff 99"} {
			input := []byte(run + suffix)
			wantValue, wantLen := refParse(input)
			t.Run(fmt.Sprintf("len_%d_suffix_%q", length, suffix), func(t *testing.T) {
				checkParse(t, input, wantValue, wantLen)
			})
		}
	}
}

// TestParseDifferential compares Parse with the reference on random digit
// runs of varied length and leading-zero count.
func TestParseDifferential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	lengths := []int{1, 2, 5, 6, 7, 15, 16, 17, 19, 20, 21, 31, 32, 33, 48, 64}

	for iter := 0; iter < 5000; iter++ {
		zeros := 0
		switch rng.Intn(4) {
		case 0:
			zeros = rng.Intn(300)
		case 1:
			zeros = rng.Intn(20)
		}

		digits := lengths[rng.Intn(len(lengths))]
		input := make([]byte, 0, zeros+digits+4)
		for i := 0; i < zeros; i++ {
			input = append(input, '0')
		}
		for i := 0; i < digits; i++ {
			input = append(input, byte('0'+rng.Intn(10)))
		}
		if rng.Intn(2) == 0 {
			input = append(input, "xyz"[rng.Intn(3)])
		}

		wantValue, wantLen := refParse(input)
		if v, n := Parse(input); v != wantValue || n != wantLen {
			t.Fatalf("Parse(%q) = (%d, %d), want (%d, %d)", input, v, n, wantValue, wantLen)
		}
		if v, n := ParseWithConfig(input, Config{Engine: EngineLanes}); v != wantValue || n != wantLen {
			t.Fatalf("lanes Parse(%q) = (%d, %d), want (%d, %d)", input, v, n, wantValue, wantLen)
		}
	}
}

// TestParseLongZeroRuns exercises the multi-chunk carry loop with hundreds
// of leading zeros.
func TestParseLongZeroRuns(t *testing.T) {
	tails := []struct {
		tail  string
		value uint64
		ok    bool
	}{
		{"", 0, true},
		{"1", 1, true},
		{"18446744073709551615", 18446744073709551615, true},
		{"18446744073709551616", 0, false},
		{"1000000000000000000", 1000000000000000000, true},
		{"100000000000000000000", 0, false},
	}

	for zeros := 0; zeros <= 400; zeros += 7 {
		for _, tc := range tails {
			input := []byte(strings.Repeat("0", zeros) + tc.tail + "|")
			wantLen := zeros + len(tc.tail)
			wantValue := tc.value
			if !tc.ok {
				wantLen = 0
			}
			checkParse(t, input, wantValue, wantLen)
		}
	}
}

// TestParseSliceBounds checks that bytes past len(b) never contribute, even
// when they are digits inside the same backing array.
func TestParseSliceBounds(t *testing.T) {
	backing := []byte(strings.Repeat("7", 128))

	for start := 0; start < 16; start++ {
		for length := 0; length <= 40; length++ {
			b := backing[start : start+length]
			wantValue, wantLen := refParse(b)
			if v, n := Parse(b); v != wantValue || n != wantLen {
				t.Fatalf("start %d, len %d: got (%d, %d), want (%d, %d)",
					start, length, v, n, wantValue, wantLen)
			}
		}
	}
}

// TestParseAlignment parses the same text at all 16 alignments.
func TestParseAlignment(t *testing.T) {
	inputs := []string{
		"7",
		"1234567",
		"123456789012345",
		"1234567890123456",
		"12345678901234567",
		"18446744073709551615",
		"18446744073709551616",
		"0000000000000000000000000000000000012345",
		"00000000000000000000000000000000000000000000000000000099999999999999999999",
		"98765x",
	}

	for _, in := range inputs {
		wantValue, wantLen := refParse([]byte(in))

		for misalign := 0; misalign < 16; misalign++ {
			p := NewPaddedAt([]byte(in), misalign)
			if got := p.Misalignment(); got != misalign {
				t.Fatalf("NewPaddedAt(%q, %d).Misalignment() = %d", in, misalign, got)
			}

			if v, n := p.Parse(); v != wantValue || n != wantLen {
				t.Errorf("%q at misalignment %d: Padded.Parse = (%d, %d), want (%d, %d)",
					in, misalign, v, n, wantValue, wantLen)
			}
			if v, n := Parse(p.Bytes()); v != wantValue || n != wantLen {
				t.Errorf("%q at misalignment %d: Parse = (%d, %d), want (%d, %d)",
					in, misalign, v, n, wantValue, wantLen)
			}
			if v, n := p.ParseWithConfig(Config{Engine: EngineLanes}); v != wantValue || n != wantLen {
				t.Errorf("%q at misalignment %d: lanes = (%d, %d), want (%d, %d)",
					in, misalign, v, n, wantValue, wantLen)
			}
		}
	}
}

// TestParseRoundTrip formats parsed values back with their zero padding and
// reparses them.
func TestParseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 2000; iter++ {
		v := rng.Uint64() >> uint(rng.Intn(64))
		width := len(strconv.FormatUint(v, 10)) + rng.Intn(40)
		text := fmt.Sprintf("%0*d", width, v)

		gotValue, gotLen := Parse([]byte(text))
		if gotValue != v || gotLen != width {
			t.Fatalf("Parse(%q) = (%d, %d), want (%d, %d)", text, gotValue, gotLen, v, width)
		}

		again := fmt.Sprintf("%0*d", gotLen, gotValue)
		if again != text {
			t.Fatalf("round trip of %q produced %q", text, again)
		}
	}
}

func TestCarry(t *testing.T) {
	tests := []struct {
		value, d uint64
		k        int
		want     uint64
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{0, 123, 3, 123, true},
		{1844674407370955, 1615, 4, 18446744073709551615, true},
		{1844674407370955, 1616, 4, 0, false},
		{1844674407370956, 0, 4, 0, false},
		{1, 0, 19, 10000000000000000000, true},
		{2, 0, 19, 0, false},
	}

	for _, tt := range tests {
		got, ok := carry(tt.value, tt.d, tt.k)
		if got != tt.want || ok != tt.ok {
			t.Errorf("carry(%d, %d, %d) = (%d, %v), want (%d, %v)",
				tt.value, tt.d, tt.k, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWindowLoad(t *testing.T) {
	w := window{region: []byte("abcdefghijklmnopqrstuvwxyz"), origin: 4, n: 10}

	tests := []struct {
		pos  int
		want string
	}{
		{0, "efghijklmnopqrst"},
		{-4, "abcdefghijklmnop"},
		{-8, "\x00\x00\x00\x00abcdefghijkl"},
		{12, "qrstuvwxyz\x00\x00\x00\x00\x00\x00"},
		{40, strings.Repeat("\x00", 16)},
	}

	for _, tt := range tests {
		got := w.load(tt.pos)
		if string(got[:]) != tt.want {
			t.Errorf("load(%d) = %q, want %q", tt.pos, got[:], tt.want)
		}
	}
}

func FuzzParse(f *testing.F) {
	f.Add(uint8(0), uint64(0), []byte{})
	f.Add(uint8(3), uint64(12345), []byte("abc"))
	f.Add(uint8(24), uint64(18446744073709551615), []byte("7"))
	f.Add(uint8(13), uint64(1), []byte{0xff, '0'})

	// Mirrors a number as it appears in records: leading zeros, the
	// decimal text, then an arbitrary suffix whose digits are shifted out of
	// the digit range so the run ends exactly at the number.
	f.Fuzz(func(t *testing.T, zeros uint8, number uint64, suffix []byte) {
		input := []byte(strings.Repeat("0", int(zeros)%25))
		input = strconv.AppendUint(input, number, 10)
		wantLen := len(input)

		for _, c := range suffix {
			if c >= '0' && c <= '9' {
				c += 10
			}
			input = append(input, c)
		}

		value, n := Parse(input)
		if value != number || n != wantLen {
			t.Fatalf("Parse(%q) = (%d, %d), want (%d, %d)", input, value, n, number, wantLen)
		}
		if value, n := NewPadded(input).Parse(); value != number || n != wantLen {
			t.Fatalf("Padded.Parse(%q) = (%d, %d), want (%d, %d)", input, value, n, number, wantLen)
		}
	})
}

func FuzzParseDifferential(f *testing.F) {
	f.Add([]byte("18446744073709551616"))
	f.Add([]byte("0000000000000000000000000000000001"))
	f.Add([]byte("12a"))

	f.Fuzz(func(t *testing.T, input []byte) {
		wantValue, wantLen := refParse(input)
		if v, n := Parse(input); v != wantValue || n != wantLen {
			t.Fatalf("Parse(%q) = (%d, %d), want (%d, %d)", input, v, n, wantValue, wantLen)
		}
		if v, n := ParseScalar(input); v != wantValue || n != wantLen {
			t.Fatalf("ParseScalar(%q) = (%d, %d), want (%d, %d)", input, v, n, wantValue, wantLen)
		}
	})
}
