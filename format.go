package numbers

import (
	"fmt"
	"sync"
)

// Formatter renders numbers against one backend. It is immutable after New
// and safe for concurrent use; compiled patterns are cached per Formatter.
type Formatter struct {
	backend       Backend
	defaultLocale string
	plural        PluralFunc
	patterns      *patternCache
}

// Option mutates a Formatter during construction.
type Option func(*Formatter) error

// WithBackend installs the CLDR data provider. The default is the backend
// over the embedded bundles.
func WithBackend(backend Backend) Option {
	return func(f *Formatter) error {
		if backend == nil {
			return fmt.Errorf("%w: nil backend", ErrInvalidOption)
		}
		f.backend = backend
		return nil
	}
}

// WithDefaultLocale sets the locale used when a call supplies none.
func WithDefaultLocale(locale string) Option {
	return func(f *Formatter) error {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			return fmt.Errorf("%w: empty default locale", ErrInvalidOption)
		}
		f.defaultLocale = normalized
		return nil
	}
}

// WithPluralFunc overrides the plural-rule evaluator used for compact
// pattern buckets and currency display names.
func WithPluralFunc(fn PluralFunc) Option {
	return func(f *Formatter) error {
		if fn == nil {
			return fmt.Errorf("%w: nil plural func", ErrInvalidOption)
		}
		f.plural = fn
		return nil
	}
}

// New builds a Formatter over the embedded CLDR backend unless options say
// otherwise.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		plural:   defaultPluralFunc,
		patterns: newPatternCache(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	if f.backend == nil {
		f.backend = NewCLDRBackend()
	}
	if f.defaultLocale == "" {
		f.defaultLocale = f.backend.DefaultLocale()
	}
	// The default locale must resolve; failing here beats failing on the
	// first Format call.
	if _, err := f.backend.Locale(f.defaultLocale); err != nil {
		return nil, err
	}
	return f, nil
}

// Format renders value according to the options. Accepted value types are
// the Go integer kinds, float32/float64, numeric strings, *big.Int,
// *big.Float, and *decimal.Decimal (github.com/db47h/decimal).
func (f *Formatter) Format(value any, opts ...FormatOption) (string, error) {
	var options Options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&options); err != nil {
			return "", err
		}
	}

	d, err := decFromValue(value)
	if err != nil {
		return "", err
	}

	res, err := f.resolve(options)
	if err != nil {
		return "", err
	}

	// Negative zero counts as positive; NaN keeps its sign bit out of
	// the subpattern choice.
	negative := d.neg && !d.isZero() && d.form != formNaN

	if res.compactStyle != "" {
		return f.formatCompact(res, d, negative)
	}
	out, _ := f.formatResolved(res, d, negative)
	return out, nil
}

// MustFormat is Format that panics on error.
func (f *Formatter) MustFormat(value any, opts ...FormatOption) string {
	out, err := f.Format(value, opts...)
	if err != nil {
		panic(err)
	}
	return out
}

// Compile parses a CLDR pattern through the formatter's cache and returns
// its immutable metadata.
func (f *Formatter) Compile(pattern string) (*Pattern, error) {
	return f.patterns.compile(pattern)
}

// formatResolved runs the decimal engine and assembler for a non-compact
// pattern, returning the digit layout for callers that need the plural
// operands.
func (f *Formatter) formatResolved(res *resolved, d dec, negative bool) (string, digitLayout) {
	sub := res.pattern.sub(negative)

	lc := layoutConstraints{
		mode:         res.mode,
		fracOverride: res.fracOverride,
		maxIntDigits: res.maxIntOverride,
		roundNearest: res.roundNearest,
	}
	if res.currency != nil && res.currencyFormat() {
		digits := res.currency.fractionDigits()
		lc.currencyFrac = &digits
	}

	layout := computeLayout(d, sub, lc)
	return assemble(res, sub, layout), layout
}

var defaultFormatter = sync.OnceValues(func() (*Formatter, error) {
	return New()
})

// Format renders value with the package default Formatter.
func Format(value any, opts ...FormatOption) (string, error) {
	f, err := defaultFormatter()
	if err != nil {
		return "", err
	}
	return f.Format(value, opts...)
}

// MustFormat is Format that panics on error.
func MustFormat(value any, opts ...FormatOption) string {
	out, err := Format(value, opts...)
	if err != nil {
		panic(err)
	}
	return out
}
