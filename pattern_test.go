package numbers

import (
	"errors"
	"testing"
)

func TestCompilePatternStandard(t *testing.T) {
	p, err := compilePattern("#,##0.###")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	pos := p.positive
	if pos.groupPrimary != 3 || pos.groupSecondary != 3 {
		t.Fatalf("grouping = %d/%d, want 3/3", pos.groupPrimary, pos.groupSecondary)
	}
	if pos.minInt != 1 {
		t.Fatalf("minInt = %d, want 1", pos.minInt)
	}
	if pos.minFrac != 0 || pos.maxFrac != 3 {
		t.Fatalf("frac = %d/%d, want 0/3", pos.minFrac, pos.maxFrac)
	}
	if pos.significant() || pos.scientific() {
		t.Fatal("standard pattern should be plain")
	}
	if p.explicitNegative {
		t.Fatal("no explicit negative subpattern expected")
	}
	if len(p.negative.prefix) == 0 || p.negative.prefix[0].kind != affixMinus {
		t.Fatal("derived negative should prepend a minus token")
	}
}

func TestCompilePatternIndianGrouping(t *testing.T) {
	p, err := compilePattern("#,##,##0.00")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if p.positive.groupPrimary != 3 || p.positive.groupSecondary != 2 {
		t.Fatalf("grouping = %d/%d, want 3/2", p.positive.groupPrimary, p.positive.groupSecondary)
	}
}

func TestCompilePatternAccounting(t *testing.T) {
	p, err := compilePattern("¤#,##0.00;(¤#,##0.00)")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !p.explicitNegative {
		t.Fatal("expected explicit negative subpattern")
	}
	if p.positive.currencyCount != 1 || p.negative.currencyCount != 1 {
		t.Fatalf("currency counts = %d/%d", p.positive.currencyCount, p.negative.currencyCount)
	}
	// Digit properties carry over from the positive subpattern.
	if p.negative.minFrac != 2 || p.negative.maxFrac != 2 || p.negative.groupPrimary != 3 {
		t.Fatalf("negative digit properties not inherited: %+v", p.negative)
	}
	neg := p.negative
	if len(neg.prefix) != 2 || neg.prefix[0].kind != affixLiteral || neg.prefix[0].text != "(" {
		t.Fatalf("negative prefix = %+v", neg.prefix)
	}
	if len(neg.suffix) != 1 || neg.suffix[0].text != ")" {
		t.Fatalf("negative suffix = %+v", neg.suffix)
	}
}

func TestCompilePatternScientific(t *testing.T) {
	cases := []struct {
		pattern   string
		expDigits int
		expPlus   bool
		intTotal  int
		minInt    int
	}{
		{"#E0", 1, false, 1, 0},
		{"0.###E0", 1, false, 1, 1},
		{"##0.##E0", 1, false, 3, 1},
		{"0.0E+00", 2, true, 1, 1},
	}
	for _, tc := range cases {
		p, err := compilePattern(tc.pattern)
		if err != nil {
			t.Fatalf("compile %q: %v", tc.pattern, err)
		}
		pos := p.positive
		if pos.expDigits != tc.expDigits || pos.expPlus != tc.expPlus {
			t.Errorf("%q exponent = %d/%v, want %d/%v", tc.pattern, pos.expDigits, pos.expPlus, tc.expDigits, tc.expPlus)
		}
		if pos.intTotal != tc.intTotal || pos.minInt != tc.minInt {
			t.Errorf("%q integer = %d/%d, want %d/%d", tc.pattern, pos.intTotal, pos.minInt, tc.intTotal, tc.minInt)
		}
	}
}

func TestCompilePatternSignificantDigits(t *testing.T) {
	p, err := compilePattern("@@##")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if p.positive.minSig != 2 || p.positive.maxSig != 4 {
		t.Fatalf("sig = %d/%d, want 2/4", p.positive.minSig, p.positive.maxSig)
	}
}

func TestCompilePatternRoundingIncrement(t *testing.T) {
	cases := []struct {
		pattern string
		digits  string
		scale   int
	}{
		{"#,#50", "50", 0},
		{"0.05", "005", 2},
		{"0.25", "025", 2},
	}
	for _, tc := range cases {
		p, err := compilePattern(tc.pattern)
		if err != nil {
			t.Fatalf("compile %q: %v", tc.pattern, err)
		}
		inc := p.positive.inc
		if inc.digits != tc.digits || inc.scale != tc.scale {
			t.Errorf("%q increment = %q/%d, want %q/%d", tc.pattern, inc.digits, inc.scale, tc.digits, tc.scale)
		}
	}

	p, err := compilePattern("#,##0.00")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !p.positive.inc.isZero() {
		t.Fatalf("all-zero digits should not create an increment: %+v", p.positive.inc)
	}
}

func TestCompilePatternPadding(t *testing.T) {
	p, err := compilePattern("*x#,##0.00")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	pos := p.positive
	if pos.padChar != 'x' || pos.padPos != padBeforePrefix {
		t.Fatalf("pad = %q at %d", pos.padChar, pos.padPos)
	}
	if pos.padWidth != 8 {
		t.Fatalf("padWidth = %d, want 8", pos.padWidth)
	}
}

func TestCompilePatternQuoting(t *testing.T) {
	p, err := compilePattern("'#'0")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	pre := p.positive.prefix
	if len(pre) != 1 || pre[0].kind != affixLiteral || pre[0].text != "#" {
		t.Fatalf("prefix = %+v", pre)
	}

	p, err = compilePattern("0'%' paid")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	suf := p.positive.suffix
	if len(suf) != 1 || suf[0].text != "% paid" {
		t.Fatalf("suffix = %+v", suf)
	}
	if p.positive.multiplier != 1 {
		t.Fatalf("quoted percent must not multiply, got %d", p.positive.multiplier)
	}

	p, err = compilePattern("0''")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if suf := p.positive.suffix; len(suf) != 1 || suf[0].text != "'" {
		t.Fatalf("suffix = %+v", suf)
	}
}

func TestCompilePatternErrors(t *testing.T) {
	cases := []string{
		"0.0.0",      // two decimal points
		"'abc",       // unmatched quote
		"0E",         // exponent without digits
		"0E++0",      // two exponent signs
		"0.0,0",      // grouping separator in fraction
		"@0",         // required digit with significant digits
		"0.0@",       // significant marker in fraction
		"0*",         // padding without character
		"*x*y0",      // duplicate padding
		"0;0;0",      // multiple subpattern separators
		"¤¤¤¤¤0",     // too many currency placeholders
		"",           // empty
	}
	for _, pattern := range cases {
		if _, err := compilePattern(pattern); !errors.Is(err, ErrCompile) {
			t.Errorf("compile(%q) err = %v, want ErrCompile", pattern, err)
		}
	}
}

func TestPatternRoundTrip(t *testing.T) {
	canonical := []string{
		"#,##0.###",
		"#,##,##0.00",
		"¤#,##0.00;(¤#,##0.00)",
		"#E0",
		"##0.##E0",
		"0.0E+00",
		"@@##",
		"0.05",
		"#,##0%",
		"+#,##0.0",
	}
	for _, src := range canonical {
		p, err := compilePattern(src)
		if err != nil {
			t.Fatalf("compile %q: %v", src, err)
		}
		if got := p.String(); got != src {
			t.Errorf("round trip %q = %q", src, got)
		}
	}
}

func TestPatternCacheReusesCompiles(t *testing.T) {
	cache := newPatternCache()
	first, err := cache.compile("#,##0.###")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := cache.compile("#,##0.###")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if first != second {
		t.Fatal("cache should return the same compiled pattern")
	}

	// Failures cache too.
	if _, err := cache.compile("0.0.0"); !errors.Is(err, ErrCompile) {
		t.Fatalf("err = %v", err)
	}
	if _, err := cache.compile("0.0.0"); !errors.Is(err, ErrCompile) {
		t.Fatalf("cached err = %v", err)
	}
}
