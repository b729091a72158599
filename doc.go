// Package numbers renders integers, floats, and arbitrary-precision decimals
// into locale-aware strings following the Unicode CLDR number format rules
// (TR35 §3).
//
// The entry point is a Formatter bound to a Backend that supplies locale
// data. Formatting is a pure computation: the same value, options, and data
// always yield the same string, and a Formatter is safe for concurrent use.
//
//	f, _ := numbers.New()
//	s, _ := f.Format(12345)                                      // "12,345"
//	s, _ = f.Format(1345.32, numbers.WithLocale("es"),
//		numbers.WithCurrency("EUR"))                         // "1345,32 €"
//	s, _ = f.Format(12345, numbers.WithPattern("#E0"))           // "1.2345E4"
//
// Named formats (standard, currency, accounting, percent, scientific, short,
// long and friends) resolve through the locale's pattern table; a raw CLDR
// pattern string can be supplied instead. Compiled patterns are cached per
// Formatter.
package numbers
