package numbers

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
)

func newTestFormatter(t *testing.T) *Formatter {
	t.Helper()
	f, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestFormatScenarios(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		name  string
		value any
		opts  []FormatOption
		want  string
	}{
		{"default grouping", 12345, nil, "12,345"},
		{"french grouping", 12345, []FormatOption{WithLocale("fr")}, "12\u202f345"},
		{"spanish euro grouped", 1345.32, []FormatOption{WithLocale("es"), WithCurrency("EUR"), WithMinimumGroupingDigits(1)}, "1.345,32\u00a0€"},
		{"spanish euro default threshold", 1345.32, []FormatOption{WithLocale("es"), WithCurrency("EUR")}, "1345,32\u00a0€"},
		{"scientific pattern", 12345, []FormatOption{WithPattern("#E0")}, "1.2345E4"},
		{"accounting negative", -12345, []FormatOption{WithFormat(FormatAccounting), WithCurrency("THB")}, "(THB\u00a012,345.00)"},
		{"thai native digits", 12345, []FormatOption{WithFormat(FormatAccounting), WithCurrency("THB"), WithLocale("th"), WithNumberSystem("native")}, "฿๑๒,๓๔๕.๐๐"},
		{"half even tie", 0.125, []FormatOption{WithPattern("0.00")}, "0.12"},
		{"fraction carry", 9.999, []FormatOption{WithPattern("0.00")}, "10.00"},
		{"percent multiplies", 0.125, []FormatOption{WithFormat(FormatPercent)}, "12%"},
		{"percent rounding", 0.1256, []FormatOption{WithFormat(FormatPercent)}, "13%"},
		{"indian grouping", 1234567, []FormatOption{WithLocale("en-IN")}, "12,34,567"},
		{"german decimal comma", 1234.5, []FormatOption{WithLocale("de")}, "1.234,5"},
		{"arabic digits", 12345, []FormatOption{WithLocale("ar")}, "١٢٬٣٤٥"},
		{"value below one", 0.5, []FormatOption{WithPattern("#.##")}, "0.5"},
		{"explicit plus", 12, []FormatOption{WithPattern("+0")}, "+12"},
		{"permille", 0.5, []FormatOption{WithPattern("0‰")}, "500‰"},
		{"string input", "12345.6789", nil, "12,345.679"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.Format(tc.value, tc.opts...)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatZeroEveryNamedFormat(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		opts []FormatOption
		want string
	}{
		{nil, "0"},
		{[]FormatOption{WithFormat(FormatCurrency), WithCurrency("USD")}, "$0.00"},
		{[]FormatOption{WithFormat(FormatAccounting), WithCurrency("USD")}, "$0.00"},
		{[]FormatOption{WithFormat(FormatPercent)}, "0%"},
		{[]FormatOption{WithFormat(FormatScientific)}, "0E0"},
		{[]FormatOption{WithFormat(FormatShort)}, "0"},
		{[]FormatOption{WithFormat(FormatLong)}, "0"},
	}
	for _, tc := range cases {
		got, err := f.Format(0, tc.opts...)
		if err != nil {
			t.Fatalf("Format(0): %v", err)
		}
		if got != tc.want {
			t.Errorf("Format(0) = %q, want %q", got, tc.want)
		}
	}
}

func TestFormatSpecialValues(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(math.NaN())
	if err != nil || got != "NaN" {
		t.Fatalf("NaN = %q, %v", got, err)
	}

	got, err = f.Format(math.Inf(1))
	if err != nil || got != "∞" {
		t.Fatalf("+Inf = %q, %v", got, err)
	}

	got, err = f.Format(math.Inf(-1))
	if err != nil || got != "-∞" {
		t.Fatalf("-Inf = %q, %v", got, err)
	}

	// Negative zero counts as positive.
	got, err = f.Format(math.Copysign(0, -1))
	if err != nil || got != "0" {
		t.Fatalf("-0 = %q, %v", got, err)
	}
}

func TestFormatNegativeDerivedPattern(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(-1234.5)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "-1,234.5" {
		t.Fatalf("Format = %q", got)
	}
}

func TestFormatRoundingModeOption(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		mode RoundingMode
		want string
	}{
		{RoundHalfEven, "0.12"},
		{RoundHalfUp, "0.13"},
		{RoundHalfDown, "0.12"},
		{RoundDown, "0.12"},
		{RoundUp, "0.13"},
		{RoundCeiling, "0.13"},
		{RoundFloor, "0.12"},
	}
	for _, tc := range cases {
		got, err := f.Format(0.125, WithPattern("0.00"), WithRoundingMode(tc.mode))
		if err != nil {
			t.Fatalf("Format: %v", err)
		}
		if got != tc.want {
			t.Errorf("mode %s = %q, want %q", tc.mode, got, tc.want)
		}
	}
}

func TestFormatFractionalDigitsOverride(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(1234.5678, WithFractionalDigits(1))
	if err != nil || got != "1,234.6" {
		t.Fatalf("override = %q, %v", got, err)
	}

	// The override beats currency digits.
	got, err = f.Format(10, WithCurrency("USD"), WithFractionalDigits(0))
	if err != nil || got != "$10" {
		t.Fatalf("currency override = %q, %v", got, err)
	}

	// The override beats significant-digit constraints.
	got, err = f.Format(12345.678, WithPattern("@@@"), WithFractionalDigits(1))
	if err != nil || got != "12345.7" {
		t.Fatalf("sig override = %q, %v", got, err)
	}
}

func TestFormatSignificantDigits(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(12345, WithPattern("@@@"))
	if err != nil || got != "12300" {
		t.Fatalf("@@@ = %q, %v", got, err)
	}

	got, err = f.Format(0.5, WithPattern("@@"))
	if err != nil || got != "0.50" {
		t.Fatalf("@@ = %q, %v", got, err)
	}

	got, err = f.Format(1.2345, WithPattern("@@#"))
	if err != nil || got != "1.23" {
		t.Fatalf("@@# = %q, %v", got, err)
	}
}

func TestFormatMaximumIntegerDigits(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(1997, WithPattern("0"), WithMaximumIntegerDigits(2))
	if err != nil || got != "97" {
		t.Fatalf("maxInt = %q, %v", got, err)
	}
}

func TestFormatRoundNearest(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(12345, WithRoundNearest(10))
	if err != nil || got != "12,340" {
		t.Fatalf("nearest 10 = %q, %v", got, err)
	}

	got, err = f.Format(12355, WithRoundNearest(10))
	if err != nil || got != "12,360" {
		t.Fatalf("nearest 10 = %q, %v", got, err)
	}
}

func TestFormatPatternIncrement(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(1.28, WithPattern("0.05"))
	if err != nil || got != "1.30" {
		t.Fatalf("increment = %q, %v", got, err)
	}
}

func TestFormatEngineeringNotation(t *testing.T) {
	f := newTestFormatter(t)

	cases := []struct {
		value any
		want  string
	}{
		{12345, "12.345E3"},
		{1234567, "1.235E6"},
		{0.0001, "100E-6"},
	}
	for _, tc := range cases {
		got, err := f.Format(tc.value, WithPattern("##0.###E0"))
		if err != nil {
			t.Fatalf("Format(%v): %v", tc.value, err)
		}
		if got != tc.want {
			t.Errorf("engineering %v = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatScientificCarry(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(9.99, WithPattern("0.0E0"))
	if err != nil || got != "1.0E1" {
		t.Fatalf("carry = %q, %v", got, err)
	}
}

func TestFormatPadding(t *testing.T) {
	f := newTestFormatter(t)

	got, err := f.Format(12.34, WithPattern("*x¤#,##0.00"), WithCurrency("USD"))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "xxx$12.34" {
		t.Fatalf("padded = %q", got)
	}

	// Already wide enough: no padding.
	got, err = f.Format(123456.78, WithPattern("*x¤#,##0.00"), WithCurrency("USD"))
	if err != nil || got != "$123,456.78" {
		t.Fatalf("unpadded = %q, %v", got, err)
	}
}

func TestFormatCurrencySpacing(t *testing.T) {
	f := newTestFormatter(t)

	// Symbol-class currency sign: no separator inserted.
	got, err := f.Format(100, WithCurrency("USD"))
	if err != nil || got != "$100.00" {
		t.Fatalf("USD = %q, %v", got, err)
	}

	// Letter-edged ISO code against a digit: separator inserted.
	got, err = f.Format(5, WithPattern("¤¤0"), WithCurrency("USD"))
	if err != nil || got != "USD\u00a05.00" {
		t.Fatalf("ISO spacing = %q, %v", got, err)
	}

	// A literal separator in the pattern suppresses the insertion.
	got, err = f.Format(5, WithPattern("¤¤ 0"), WithCurrency("USD"))
	if err != nil || got != "USD 5.00" {
		t.Fatalf("literal space = %q, %v", got, err)
	}
}

func TestFormatWrapper(t *testing.T) {
	f := newTestFormatter(t)

	wrapper := func(component Component, text string) string {
		return fmt.Sprintf("<%s>%s</%s>", component, text, component)
	}
	got, err := f.Format(100, WithCurrency("USD"), WithWrapper(wrapper))
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "<currency_symbol>$</currency_symbol><number>100.00</number>"
	if got != want {
		t.Fatalf("wrapped = %q, want %q", got, want)
	}
}

func TestFormatDeterminism(t *testing.T) {
	f := newTestFormatter(t)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := f.Format(1345.32, WithLocale("es"), WithCurrency("EUR"))
			if err != nil {
				results[i] = err.Error()
				return
			}
			results[i] = out
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		if r != results[0] {
			t.Fatalf("nondeterministic output: %q vs %q", r, results[0])
		}
	}
}

func TestMustFormatPanics(t *testing.T) {
	f := newTestFormatter(t)

	defer func() {
		if recover() == nil {
			t.Fatal("MustFormat should panic on error")
		}
	}()
	f.MustFormat(1, WithLocale("zz-ZX"))
}

func TestPackageLevelFormat(t *testing.T) {
	got, err := Format(12345)
	if err != nil || got != "12,345" {
		t.Fatalf("Format = %q, %v", got, err)
	}
	if MustFormat(1, WithFormat(FormatPercent)) != "100%" {
		t.Fatal("MustFormat percent")
	}
}

func TestDigitMappingBijection(t *testing.T) {
	// Mapping localized output digits again must be the identity on the
	// Latin set and a bijection into a disjoint range for Thai.
	ascii := []byte("0123456789")
	latin := mapDigits(nil, ascii, numberSystemDigits["latn"])
	if string(latin) != "0123456789" {
		t.Fatalf("latin mapping = %q", latin)
	}
	thai := mapDigits(nil, ascii, numberSystemDigits["thai"])
	if strings.ContainsAny(string(thai), "0123456789") {
		t.Fatalf("thai digits overlap ASCII: %q", thai)
	}
}
