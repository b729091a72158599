package numbers

import (
	"unicode"
	"unicode/utf8"
)

// Symbols is the per-locale, per-number-system symbol table.
type Symbols struct {
	Decimal     string `json:"decimal" yaml:"decimal"`
	Group       string `json:"group" yaml:"group"`
	Exponential string `json:"exponential" yaml:"exponential"`
	Plus        string `json:"plus_sign" yaml:"plus_sign"`
	Minus       string `json:"minus_sign" yaml:"minus_sign"`
	Percent     string `json:"percent_sign" yaml:"percent_sign"`
	PerMille    string `json:"per_mille" yaml:"per_mille"`
	Infinity    string `json:"infinity" yaml:"infinity"`
	NaN         string `json:"nan" yaml:"nan"`

	// Currency-specific separators; empty means fall back to the plain
	// decimal and group separators.
	CurrencyDecimal string `json:"currency_decimal" yaml:"currency_decimal"`
	CurrencyGroup   string `json:"currency_group" yaml:"currency_group"`

	CurrencySpacing CurrencySpacing `json:"currency_spacing" yaml:"currency_spacing"`
}

// SpacingRule is one side of a CLDR currencySpacing element.
type SpacingRule struct {
	CurrencyMatch    string `json:"currency_match" yaml:"currency_match"`
	SurroundingMatch string `json:"surrounding_match" yaml:"surrounding_match"`
	InsertBetween    string `json:"insert_between" yaml:"insert_between"`
}

// CurrencySpacing holds the before-currency and after-currency rules.
type CurrencySpacing struct {
	Before SpacingRule `json:"before_currency" yaml:"before_currency"`
	After  SpacingRule `json:"after_currency" yaml:"after_currency"`
}

func (s *Symbols) decimalFor(currency bool) string {
	if currency && s.CurrencyDecimal != "" {
		return s.CurrencyDecimal
	}
	return s.Decimal
}

func (s *Symbols) groupFor(currency bool) string {
	if currency && s.CurrencyGroup != "" {
		return s.CurrencyGroup
	}
	return s.Group
}

// matchesSpacingSet evaluates the tiny subset of UnicodeSet syntax that
// CLDR currencySpacing data actually uses.
func matchesSpacingSet(set string, r rune) bool {
	switch set {
	case "", "[:none:]":
		return false
	case "[:digit:]":
		return unicode.IsDigit(r)
	case "[:^S:]":
		return !unicode.Is(unicode.S, r)
	case "[[:^S:]&[:^Z:]]":
		return !unicode.Is(unicode.S, r) && !unicode.Is(unicode.Z, r)
	}
	// Unknown set: fall back to the letter-class rule of TR35.
	return unicode.IsLetter(r)
}

// needsCurrencySpacing applies one spacing rule: currency side character
// against the surrounding (digit side) character.
func (rule SpacingRule) needsCurrencySpacing(currencySide, numberSide rune) bool {
	if rule.InsertBetween == "" {
		return false
	}
	return matchesSpacingSet(rule.CurrencyMatch, currencySide) &&
		matchesSpacingSet(rule.SurroundingMatch, numberSide)
}

// numberSystemDigits maps a numeric number system to the codepoint of its
// zero digit; the ten digits are consecutive codepoints.
var numberSystemDigits = map[string]rune{
	"latn":    '0',
	"arab":    '٠',
	"arabext": '۰',
	"beng":    '০',
	"deva":    '०',
	"mymr":    '၀',
	"thai":    '๐',
	"khmr":    '០',
	"laoo":    '໐',
	"tibt":    '༠',
}

// mapDigits transcribes ASCII digits into the number system's digit set.
// Latin is the identity and stays allocation-free.
func mapDigits(dst []byte, digits []byte, zero rune) []byte {
	if zero == '0' {
		return append(dst, digits...)
	}
	for _, d := range digits {
		dst = utf8.AppendRune(dst, zero+rune(d-'0'))
	}
	return dst
}
