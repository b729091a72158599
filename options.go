package numbers

import (
	"fmt"
	"strconv"
)

// Options captures per-call formatting intent before resolution. Zero
// values mean "use the locale default".
type Options struct {
	Locale               string
	NumberSystem         string
	Format               FormatName
	Pattern              string
	Currency             string
	CurrencyRecord       *Currency
	CurrencyDigits       CurrencyDigits
	CurrencySymbol       SymbolVariant
	CurrencySymbolString string
	RoundingMode         RoundingMode
	FractionalDigits     *int
	MaximumIntegerDigits *int
	RoundNearest         int
	MinimumGrouping      *int
	Wrapper              Wrapper

	currencyFromLocale bool
}

// FormatOption mutates Options during a Format call.
type FormatOption func(*Options) error

func WithLocale(locale string) FormatOption {
	return func(o *Options) error {
		o.Locale = locale
		return nil
	}
}

func WithNumberSystem(system string) FormatOption {
	return func(o *Options) error {
		o.NumberSystem = system
		return nil
	}
}

// WithFormat selects a named format from the locale pattern table.
func WithFormat(name FormatName) FormatOption {
	return func(o *Options) error {
		o.Format = name
		return nil
	}
}

// WithPattern formats with a raw CLDR pattern string instead of a named
// format.
func WithPattern(pattern string) FormatOption {
	return func(o *Options) error {
		o.Pattern = pattern
		return nil
	}
}

// WithCurrency binds a currency by ISO 4217 code or digital token
// identifier, and promotes the default format to the currency format.
func WithCurrency(code string) FormatOption {
	return func(o *Options) error {
		o.Currency = code
		return nil
	}
}

// WithCurrencyRecord binds a caller-supplied currency record directly,
// bypassing the backend registry.
func WithCurrencyRecord(record *Currency) FormatOption {
	return func(o *Options) error {
		if record == nil || record.Code == "" {
			return fmt.Errorf("%w: currency record without a code", ErrInvalidOption)
		}
		o.CurrencyRecord = record
		return nil
	}
}

// WithCurrencyFromLocale binds the tender currency of the locale's
// territory.
func WithCurrencyFromLocale() FormatOption {
	return func(o *Options) error {
		o.currencyFromLocale = true
		return nil
	}
}

func WithCurrencyDigits(digits CurrencyDigits) FormatOption {
	return func(o *Options) error {
		if digits > CurrencyDigitsISO {
			return fmt.Errorf("%w: currency digits %d", ErrInvalidOption, digits)
		}
		o.CurrencyDigits = digits
		return nil
	}
}

// WithCash is a deprecated alias for WithCurrencyDigits(CurrencyDigitsCash).
//
// Deprecated: use WithCurrencyDigits.
func WithCash() FormatOption {
	return WithCurrencyDigits(CurrencyDigitsCash)
}

// WithCurrencySymbol forces a symbol variant for the ¤ placeholder.
func WithCurrencySymbol(variant SymbolVariant) FormatOption {
	return func(o *Options) error {
		if variant > SymbolExplicit {
			return fmt.Errorf("%w: currency symbol variant %d", ErrInvalidOption, variant)
		}
		o.CurrencySymbol = variant
		return nil
	}
}

// WithCurrencySymbolString substitutes an explicit string for the ¤
// placeholder.
func WithCurrencySymbolString(symbol string) FormatOption {
	return func(o *Options) error {
		o.CurrencySymbol = SymbolExplicit
		o.CurrencySymbolString = symbol
		return nil
	}
}

func WithRoundingMode(mode RoundingMode) FormatOption {
	return func(o *Options) error {
		if mode > RoundFloor {
			return fmt.Errorf("%w: rounding mode %d", ErrInvalidOption, mode)
		}
		o.RoundingMode = mode
		return nil
	}
}

// WithFractionalDigits pins both minimum and maximum fraction digits,
// overriding the pattern, currency digits, and significant-digit rules.
func WithFractionalDigits(n int) FormatOption {
	return func(o *Options) error {
		if n < 0 {
			return fmt.Errorf("%w: fractional digits %d", ErrInvalidOption, n)
		}
		o.FractionalDigits = &n
		return nil
	}
}

// WithMaximumIntegerDigits truncates the integer part on the left.
func WithMaximumIntegerDigits(n int) FormatOption {
	return func(o *Options) error {
		if n < 0 {
			return fmt.Errorf("%w: maximum integer digits %d", ErrInvalidOption, n)
		}
		o.MaximumIntegerDigits = &n
		return nil
	}
}

// WithRoundNearest snaps the value to the nearest multiple of n before
// digit expansion.
func WithRoundNearest(n int) FormatOption {
	return func(o *Options) error {
		if n <= 0 {
			return fmt.Errorf("%w: round nearest %d", ErrInvalidOption, n)
		}
		o.RoundNearest = n
		return nil
	}
}

// WithMinimumGroupingDigits overrides the locale's grouping threshold
// addend. Zero means grouping applies as soon as the primary group fills.
func WithMinimumGroupingDigits(n int) FormatOption {
	return func(o *Options) error {
		if n < 0 {
			return fmt.Errorf("%w: minimum grouping digits %d", ErrInvalidOption, n)
		}
		o.MinimumGrouping = &n
		return nil
	}
}

// WithWrapper decorates every emitted component through fn.
func WithWrapper(fn Wrapper) FormatOption {
	return func(o *Options) error {
		o.Wrapper = fn
		return nil
	}
}

// resolved is the output of the options resolver: everything downstream
// components need for one call.
type resolved struct {
	localeData *LocaleData
	locale     string
	system     string
	zeroDigit  rune
	symbols    *Symbols

	pattern    *Pattern
	patternSrc string
	formatName FormatName

	currency        *boundCurrency
	currencySpacing bool

	compactStyle CompactStyle

	mode           RoundingMode
	fracOverride   *int
	maxIntOverride *int
	roundNearest   increment
	minGroup       int

	wrapper Wrapper
	plural  PluralFunc
}

func (r *resolved) currencyFormat() bool {
	return r.currency != nil &&
		(r.pattern.hasCurrency() || r.compactStyle == CompactCurrencyShort || r.compactStyle == CompactCurrencyLong)
}

// resolve validates and reconciles the caller's options against locale
// data, selecting the effective pattern.
func (f *Formatter) resolve(opts Options) (*resolved, error) {
	locale := normalizeLocale(opts.Locale)
	if locale == "" {
		locale = f.defaultLocale
	}
	ld, err := f.backend.Locale(locale)
	if err != nil {
		return nil, err
	}

	system, err := ld.resolveNumberSystem(opts.NumberSystem)
	if err != nil {
		return nil, err
	}
	symbols, err := ld.symbolsFor(system)
	if err != nil {
		return nil, err
	}

	res := &resolved{
		localeData:      ld,
		locale:          locale,
		system:          system,
		zeroDigit:       numberSystemDigits[system],
		symbols:         symbols,
		currencySpacing: true,
		mode:            opts.RoundingMode,
		fracOverride:    opts.FractionalDigits,
		maxIntOverride:  opts.MaximumIntegerDigits,
		wrapper:         opts.Wrapper,
		plural:          f.plural,
	}

	if opts.currencyFromLocale && opts.Currency == "" {
		region := localeRegion(locale)
		code, ok := territoryCurrencies[region]
		if !ok {
			return nil, fmt.Errorf("%w: no currency for territory %q", ErrUnknownCurrency, region)
		}
		opts.Currency = code
	}

	if opts.Currency != "" || opts.CurrencyRecord != nil {
		var bound *boundCurrency
		if opts.CurrencyRecord != nil {
			bound = bindCurrencyRecord(ld, opts.CurrencyRecord)
		} else {
			bound, err = resolveCurrency(f.backend, ld, opts.Currency)
			if err != nil {
				return nil, err
			}
		}
		bound.digits = opts.CurrencyDigits
		bound.symbolVariant = opts.CurrencySymbol
		bound.explicitSymbol = opts.CurrencySymbolString
		res.currency = bound
	}

	name := opts.Format
	if opts.Pattern != "" {
		if name != "" {
			return nil, fmt.Errorf("%w: both a named format and a pattern were given", ErrFormat)
		}
		res.patternSrc = opts.Pattern
	} else {
		if name == "" {
			name = FormatStandard
			if res.currency != nil {
				name = FormatCurrency
			}
		}
		name = rewriteCompactName(name, res.currency != nil)
		res.formatName = name

		lookup := name
		switch name {
		case FormatDecimalShort, FormatDecimalLong:
			res.compactStyle = CompactStyle(name)
			lookup = FormatStandard
		case FormatCurrencyShort:
			res.compactStyle = CompactCurrencyShort
			lookup = FormatCurrency
		case FormatCurrencyLong:
			res.compactStyle = CompactCurrencyLong
			lookup = FormatStandard
		}

		pattern, ok := ld.formatFor(system, lookup)
		if !ok {
			return nil, fmt.Errorf("%w: %q for locale %q and number system %q", ErrUnknownFormat, name, locale, system)
		}
		res.patternSrc = pattern
	}

	res.pattern, err = f.patterns.compile(res.patternSrc)
	if err != nil {
		return nil, err
	}

	if res.pattern.hasCurrency() && res.currency == nil {
		return nil, fmt.Errorf("%w: currency format %q requires that currency be specified", ErrFormat, res.patternSrc)
	}

	if err := f.applyAlphaVariant(res); err != nil {
		return nil, err
	}

	if opts.MinimumGrouping != nil {
		res.minGroup = *opts.MinimumGrouping
	} else {
		res.minGroup = ld.MinimumGroupingDigits
	}

	switch {
	case opts.RoundNearest > 0:
		res.roundNearest = increment{digits: strconv.Itoa(opts.RoundNearest)}
	case res.currency != nil && res.currencyFormat():
		res.roundNearest = res.currency.roundingIncrement()
	}

	return res, nil
}

// rewriteCompactName maps the :short/:long shorthands onto their decimal or
// currency variants.
func rewriteCompactName(name FormatName, hasCurrency bool) FormatName {
	switch name {
	case FormatShort:
		if hasCurrency {
			return FormatCurrencyShort
		}
		return FormatDecimalShort
	case FormatLong:
		if hasCurrency {
			return FormatCurrencyLong
		}
		return FormatDecimalLong
	}
	return name
}

// applyAlphaVariant switches :currency and :accounting to their
// alpha-next-to-number variants when a letter-edged symbol would touch the
// digits, and disables currency spacing for the switched pattern.
func (f *Formatter) applyAlphaVariant(res *resolved) error {
	if res.currency == nil {
		return nil
	}
	if res.formatName != FormatCurrency && res.formatName != FormatAccounting {
		return nil
	}
	if !res.pattern.currencyAdjacent() {
		return nil
	}

	count := res.pattern.positive.currencyCount
	symbol := res.currency.symbol(count, PluralOther)
	if !symbolIsAlpha(symbol) {
		return nil
	}

	variant := FormatCurrencyAlpha
	if res.formatName == FormatAccounting {
		variant = FormatAccountingAlpha
	}
	src, ok := res.localeData.formatFor(res.system, variant)
	if !ok {
		return nil
	}

	pattern, err := f.patterns.compile(src)
	if err != nil {
		return err
	}
	res.pattern = pattern
	res.patternSrc = src
	res.formatName = variant
	res.currencySpacing = false
	return nil
}
