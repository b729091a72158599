package numbers

import (
	"fmt"
	"sort"
)

// Backend supplies the CLDR data the engine consumes: locale tables and
// currency records. Implementations must be safe for concurrent use and
// return immutable data.
type Backend interface {
	Locale(name string) (*LocaleData, error)
	Currency(code string) (*Currency, error)
	DefaultLocale() string
}

// CompactStyle names a compact pattern table.
type CompactStyle string

const (
	CompactDecimalShort  CompactStyle = "decimal_short"
	CompactDecimalLong   CompactStyle = "decimal_long"
	CompactCurrencyShort CompactStyle = "currency_short"
	CompactCurrencyLong  CompactStyle = "currency_long"
)

// CompactEntry is one magnitude bucket of compact data.
type CompactEntry struct {
	Magnitude int                          `json:"magnitude" yaml:"magnitude"`
	Patterns  map[PluralCategory]string    `json:"patterns" yaml:"patterns"`
}

// CurrencyDisplay is locale-specific presentation data for one currency.
type CurrencyDisplay struct {
	Symbol       string                    `json:"symbol" yaml:"symbol"`
	NarrowSymbol string                    `json:"narrow_symbol" yaml:"narrow_symbol"`
	DisplayNames map[PluralCategory]string `json:"display_names" yaml:"display_names"`
}

// LocaleData is everything the engine needs for one locale.
type LocaleData struct {
	Name                  string                            `json:"name" yaml:"name"`
	DefaultNumberSystem   string                            `json:"default_number_system" yaml:"default_number_system"`
	NumberSystemAliases   map[string]string                 `json:"number_system_aliases" yaml:"number_system_aliases"`
	MinimumGroupingDigits int                               `json:"minimum_grouping_digits" yaml:"minimum_grouping_digits"`
	Symbols               map[string]*Symbols               `json:"symbols" yaml:"symbols"`
	Formats               map[string]map[FormatName]string  `json:"formats" yaml:"formats"`
	Compact               map[CompactStyle][]CompactEntry   `json:"compact" yaml:"compact"`
	Currencies            map[string]CurrencyDisplay        `json:"currencies" yaml:"currencies"`
}

// resolveNumberSystem maps a requested system (or alias such as "native" or
// "default") to a concrete system name. Any system in numberSystemDigits is
// accepted, whether or not the locale ships symbols or formats for it.
func (ld *LocaleData) resolveNumberSystem(requested string) (string, error) {
	system := requested
	if system == "" || system == "default" {
		system = ld.DefaultNumberSystem
	}
	if alias, ok := ld.NumberSystemAliases[system]; ok {
		system = alias
	}
	if _, ok := numberSystemDigits[system]; !ok {
		return "", fmt.Errorf("%w: %q for locale %q", ErrUnknownNumberSystem, requested, ld.Name)
	}
	return system, nil
}

// symbolsFor returns the symbol table for the system, falling back to the
// locale's default system table.
func (ld *LocaleData) symbolsFor(system string) (*Symbols, error) {
	if s, ok := ld.Symbols[system]; ok {
		return s, nil
	}
	if s, ok := ld.Symbols[ld.DefaultNumberSystem]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: no symbols for %q in locale %q", ErrUnknownNumberSystem, system, ld.Name)
}

// formatFor looks up a named pattern for the system, falling back to the
// default system's table.
func (ld *LocaleData) formatFor(system string, name FormatName) (string, bool) {
	if table, ok := ld.Formats[system]; ok {
		if pattern, ok := table[name]; ok {
			return pattern, true
		}
	}
	if system != ld.DefaultNumberSystem {
		if table, ok := ld.Formats[ld.DefaultNumberSystem]; ok {
			if pattern, ok := table[name]; ok {
				return pattern, true
			}
		}
	}
	return "", false
}

// Currency is a currency (or digital token) record: ISO data plus locale
// independent fallbacks. Digits and rounding follow the CLDR convention of
// expressing rounding increments in units of the final digit.
type Currency struct {
	Code         string                    `json:"code" yaml:"code"`
	Symbol       string                    `json:"symbol" yaml:"symbol"`
	NarrowSymbol string                    `json:"narrow_symbol" yaml:"narrow_symbol"`
	DisplayNames map[PluralCategory]string `json:"display_names" yaml:"display_names"`
	Digits       int                       `json:"digits" yaml:"digits"`
	Rounding     int                       `json:"rounding" yaml:"rounding"`
	CashDigits   int                       `json:"cash_digits" yaml:"cash_digits"`
	CashRounding int                       `json:"cash_rounding" yaml:"cash_rounding"`
}

// CLDRBackend serves the locale bundles compiled into the package, plus any
// bundles merged in from a Loader.
type CLDRBackend struct {
	defaultLocale string
	locales       map[string]*LocaleData
	currencies    map[string]*Currency
}

// NewCLDRBackend returns a backend over the embedded CLDR bundles.
func NewCLDRBackend() *CLDRBackend {
	return &CLDRBackend{
		defaultLocale: "en",
		locales:       cldrLocales,
		currencies:    cldrCurrencies,
	}
}

func (b *CLDRBackend) DefaultLocale() string { return b.defaultLocale }

// Locale resolves a locale by exact name first, then through its parent
// chain ("en-AU" → "en").
func (b *CLDRBackend) Locale(name string) (*LocaleData, error) {
	normalized := normalizeLocale(name)
	if normalized == "" {
		normalized = b.defaultLocale
	}
	if ld, ok := b.locales[normalized]; ok {
		return ld, nil
	}
	for _, parent := range localeParentChain(normalized) {
		if ld, ok := b.locales[parent]; ok {
			return ld, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
}

func (b *CLDRBackend) Currency(code string) (*Currency, error) {
	if c, ok := b.currencies[code]; ok {
		return c, nil
	}
	if t, ok := digitalTokens[code]; ok {
		return t.currencyRecord(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
}

// AvailableLocales lists the locales the backend has bundles for.
func (b *CLDRBackend) AvailableLocales() []string {
	names := make([]string, 0, len(b.locales))
	for name := range b.locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge installs additional locale bundles and currency records, e.g. from
// a FileLoader. Existing entries are replaced. Merge is not safe to call
// concurrently with formatting.
func (b *CLDRBackend) Merge(locales map[string]*LocaleData, currencies map[string]*Currency) {
	if len(locales) > 0 {
		merged := make(map[string]*LocaleData, len(b.locales)+len(locales))
		for name, ld := range b.locales {
			merged[name] = ld
		}
		for name, ld := range locales {
			merged[normalizeLocale(name)] = ld
		}
		b.locales = merged
	}
	if len(currencies) > 0 {
		merged := make(map[string]*Currency, len(b.currencies)+len(currencies))
		for code, c := range b.currencies {
			merged[code] = c
		}
		for code, c := range currencies {
			merged[code] = c
		}
		b.currencies = merged
	}
}

// territoryCurrencies maps a region to its tender currency, used by
// WithCurrencyFromLocale.
var territoryCurrencies = map[string]string{
	"US": "USD",
	"GB": "GBP",
	"FR": "EUR",
	"DE": "EUR",
	"ES": "EUR",
	"IT": "EUR",
	"NL": "EUR",
	"TH": "THB",
	"JP": "JPY",
	"IN": "INR",
	"CH": "CHF",
}
