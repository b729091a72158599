package numbers

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// defaultPluralFunc evaluates CLDR cardinal rules through
// golang.org/x/text/feature/plural. The operands are the digits of the
// formatted value, so "1.00" correctly lands in a different category than
// "1" for locales that care about visible fraction digits.
func defaultPluralFunc(locale string, op PluralOperands) PluralCategory {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	form := plural.Cardinal.MatchDigits(tag, op.Digits, op.IntDigits, op.Scale)
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// pluralOperands derives the operands from a digit layout: the emitted
// integer and fraction digits with the emitted scale.
func pluralOperands(layout digitLayout) PluralOperands {
	digits := make([]byte, 0, len(layout.intDigits)+len(layout.fracDigits))
	for _, d := range layout.intDigits {
		digits = append(digits, d-'0')
	}
	for _, d := range layout.fracDigits {
		digits = append(digits, d-'0')
	}
	// Drop leading zeros of the integer part, keeping at least one
	// integer digit ("0.5" stays 0,5).
	intDigits := len(layout.intDigits)
	for intDigits > 1 && digits[0] == 0 {
		digits = digits[1:]
		intDigits--
	}
	return PluralOperands{
		Digits:    digits,
		IntDigits: intDigits,
		Scale:     len(layout.fracDigits),
		Negative:  layout.negative,
	}
}
