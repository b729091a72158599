package numbers

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/db47h/decimal"
)

func TestParseDec(t *testing.T) {
	cases := []struct {
		in     string
		neg    bool
		digits string
		exp    int
	}{
		{"12345", false, "12345", 5},
		{"-12.34", true, "1234", 2},
		{"1.2345e+04", false, "12345", 5},
		{"0.004", false, "4", -2},
		{"120", false, "12", 3},
		{"0", false, "", 0},
		{"-0", true, "", 0},
		{"0.50", false, "5", 0},
	}
	for _, tc := range cases {
		d, err := parseDec(tc.in)
		if err != nil {
			t.Fatalf("parseDec(%q): %v", tc.in, err)
		}
		if d.neg != tc.neg || string(d.digits) != tc.digits || (len(tc.digits) > 0 && d.exp != tc.exp) {
			t.Errorf("parseDec(%q) = neg=%v digits=%q exp=%d, want neg=%v digits=%q exp=%d",
				tc.in, d.neg, d.digits, d.exp, tc.neg, tc.digits, tc.exp)
		}
	}

	for _, bad := range []string{"", "abc", "1.2.3", "1e", "--1"} {
		if _, err := parseDec(bad); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("parseDec(%q) err = %v, want ErrInvalidNumber", bad, err)
		}
	}
}

func TestDecFromValueKinds(t *testing.T) {
	check := func(value any, digits string, exp int, neg bool) {
		t.Helper()
		d, err := decFromValue(value)
		if err != nil {
			t.Fatalf("decFromValue(%v): %v", value, err)
		}
		if string(d.digits) != digits || d.exp != exp || d.neg != neg {
			t.Fatalf("decFromValue(%v) = digits=%q exp=%d neg=%v, want %q/%d/%v",
				value, d.digits, d.exp, d.neg, digits, exp, neg)
		}
	}

	check(int(42), "42", 2, false)
	check(int64(math.MinInt64), "9223372036854775808", 19, true)
	check(uint64(7), "7", 1, false)
	check(float64(0.1), "1", 0, false)
	check(float32(1.5), "15", 1, false)
	check("12345.6789", "123456789", 5, false)
	check(big.NewInt(-1200), "12", 4, true)
	check(big.NewFloat(0.25), "25", 0, false)
	check(decimal.NewDecimal(25, -1), "25", 1, false)

	if _, err := decFromValue(struct{}{}); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("unsupported type err = %v", err)
	}
}

func TestDecFromFloatSpecials(t *testing.T) {
	d, err := decFromValue(math.NaN())
	if err != nil || d.form != formNaN {
		t.Fatalf("NaN = %+v, %v", d, err)
	}
	d, err = decFromValue(math.Inf(-1))
	if err != nil || d.form != formInf || !d.neg {
		t.Fatalf("-Inf = %+v, %v", d, err)
	}
	// Negative zero stays a zero.
	d, err = decFromValue(math.Copysign(0, -1))
	if err != nil || !d.isZero() {
		t.Fatalf("-0 = %+v, %v", d, err)
	}
}

func TestRoundToScaleModes(t *testing.T) {
	cases := []struct {
		value string
		scale int
		mode  RoundingMode
		want  string
	}{
		{"0.125", 2, RoundHalfEven, "0.12"},
		{"0.135", 2, RoundHalfEven, "0.14"},
		{"0.125", 2, RoundHalfUp, "0.13"},
		{"0.125", 2, RoundHalfDown, "0.12"},
		{"0.129", 2, RoundDown, "0.12"},
		{"0.121", 2, RoundUp, "0.13"},
		{"0.121", 2, RoundCeiling, "0.13"},
		{"0.129", 2, RoundFloor, "0.12"},
		{"-0.121", 2, RoundCeiling, "-0.12"},
		{"-0.121", 2, RoundFloor, "-0.13"},
		{"9.999", 2, RoundHalfEven, "10"},
		{"0.0004", 2, RoundHalfEven, "0"},
		{"0.0004", 2, RoundUp, "0.01"},
	}
	for _, tc := range cases {
		d, err := parseDec(tc.value)
		if err != nil {
			t.Fatalf("parseDec(%q): %v", tc.value, err)
		}
		d.roundToScale(tc.scale, tc.mode)
		if got := decPlainString(d); got != tc.want {
			t.Errorf("round(%s, %d, %s) = %s, want %s", tc.value, tc.scale, tc.mode, got, tc.want)
		}
	}
}

func TestSnapToIncrement(t *testing.T) {
	cases := []struct {
		value string
		inc   increment
		mode  RoundingMode
		want  string
	}{
		{"1.28", increment{digits: "005", scale: 2}, RoundHalfEven, "1.3"},
		{"1.22", increment{digits: "005", scale: 2}, RoundHalfEven, "1.2"},
		{"1.125", increment{digits: "005", scale: 2}, RoundHalfEven, "1.1"},
		{"12345", increment{digits: "10"}, RoundHalfEven, "12340"},
		{"12355", increment{digits: "10"}, RoundHalfEven, "12360"},
		{"12344", increment{digits: "10"}, RoundUp, "12350"},
		{"0.73", increment{digits: "025", scale: 2}, RoundHalfEven, "0.75"},
	}
	for _, tc := range cases {
		d, err := parseDec(tc.value)
		if err != nil {
			t.Fatalf("parseDec(%q): %v", tc.value, err)
		}
		d.snapToIncrement(tc.inc, tc.mode)
		if got := decPlainString(d); got != tc.want {
			t.Errorf("snap(%s, %s/%d, %s) = %s, want %s",
				tc.value, tc.inc.digits, tc.inc.scale, tc.mode, got, tc.want)
		}
	}
}

func TestRoundSignificant(t *testing.T) {
	d, _ := parseDec("12345")
	d.roundSignificant(3, RoundHalfEven)
	if got := decPlainString(d); got != "12300" {
		t.Fatalf("sig round = %s, want 12300", got)
	}

	d, _ = parseDec("0.0012349")
	d.roundSignificant(3, RoundHalfEven)
	if got := decPlainString(d); got != "0.00123" {
		t.Fatalf("sig round = %s, want 0.00123", got)
	}
}

// decPlainString renders the canonical decimal without locale concerns, for
// assertions only.
func decPlainString(d dec) string {
	if d.isZero() {
		if d.neg {
			return "-0"
		}
		return "0"
	}
	var out []byte
	if d.neg {
		out = append(out, '-')
	}
	if d.exp <= 0 {
		out = append(out, '0', '.')
		for i := 0; i < -d.exp; i++ {
			out = append(out, '0')
		}
		out = append(out, d.digits...)
		return string(out)
	}
	if d.exp >= len(d.digits) {
		out = append(out, d.digits...)
		for i := len(d.digits); i < d.exp; i++ {
			out = append(out, '0')
		}
		return string(out)
	}
	out = append(out, d.digits[:d.exp]...)
	out = append(out, '.')
	out = append(out, d.digits[d.exp:]...)
	return string(out)
}
