package numbers

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// PluralOperands carries the CLDR plural operands derived from a formatted
// value: Digits holds the significant decimal digits, IntDigits how many of
// them sit before the decimal point, and Scale the count of visible fraction
// digits.
type PluralOperands struct {
	Digits    []byte
	IntDigits int
	Scale     int
	Negative  bool
}

// PluralFunc selects the plural category for a value in a locale. The
// default implementation is backed by golang.org/x/text/feature/plural.
type PluralFunc func(locale string, op PluralOperands) PluralCategory

// RoundingMode selects how digits beyond the kept precision are resolved.
type RoundingMode uint8

const (
	// RoundHalfEven rounds ties to the nearest even digit (banker's
	// rounding). This is the default mode.
	RoundHalfEven RoundingMode = iota
	RoundHalfUp
	RoundHalfDown
	RoundDown
	RoundUp
	RoundCeiling
	RoundFloor
)

var roundingModeNames = map[RoundingMode]string{
	RoundHalfEven: "half_even",
	RoundHalfUp:   "half_up",
	RoundHalfDown: "half_down",
	RoundDown:     "down",
	RoundUp:       "up",
	RoundCeiling:  "ceiling",
	RoundFloor:    "floor",
}

func (m RoundingMode) String() string {
	if name, ok := roundingModeNames[m]; ok {
		return name
	}
	return "half_even"
}

// ParseRoundingMode maps a mode name to its RoundingMode value.
func ParseRoundingMode(name string) (RoundingMode, bool) {
	for mode, n := range roundingModeNames {
		if n == name {
			return mode, true
		}
	}
	return RoundHalfEven, false
}

// FormatName identifies a named format in the locale pattern table.
type FormatName string

const (
	FormatStandard             FormatName = "standard"
	FormatCurrency             FormatName = "currency"
	FormatAccounting           FormatName = "accounting"
	FormatPercent              FormatName = "percent"
	FormatScientific           FormatName = "scientific"
	FormatCurrencyNoSymbol     FormatName = "currency_no_symbol"
	FormatAccountingNoSymbol   FormatName = "accounting_no_symbol"
	FormatCurrencyAlpha        FormatName = "currency_alpha_next_to_number"
	FormatAccountingAlpha      FormatName = "accounting_alpha_next_to_number"
	FormatShort                FormatName = "short"
	FormatLong                 FormatName = "long"
	FormatDecimalShort         FormatName = "decimal_short"
	FormatDecimalLong          FormatName = "decimal_long"
	FormatCurrencyShort        FormatName = "currency_short"
	FormatCurrencyLong         FormatName = "currency_long"
)

// CurrencyDigits selects which fraction-digit and rounding data of a
// currency record applies.
type CurrencyDigits uint8

const (
	CurrencyDigitsAccounting CurrencyDigits = iota
	CurrencyDigitsCash
	CurrencyDigitsISO
)

// SymbolVariant forces a particular expansion of the ¤ placeholder.
type SymbolVariant uint8

const (
	// SymbolDefault follows the placeholder count in the pattern.
	SymbolDefault SymbolVariant = iota
	SymbolStandard
	SymbolISO
	SymbolNarrow
	// SymbolExplicit substitutes a caller-supplied string.
	SymbolExplicit
)

// Component tags each emitted span for the optional Wrapper hook.
type Component string

const (
	ComponentNumber         Component = "number"
	ComponentLiteral        Component = "literal"
	ComponentCurrencySymbol Component = "currency_symbol"
	ComponentCurrencySpace  Component = "currency_space"
	ComponentMinus          Component = "minus"
	ComponentPlus           Component = "plus"
	ComponentPercent        Component = "percent"
	ComponentPermille       Component = "permille"
	ComponentPad            Component = "pad"
)

// Wrapper decorates each emitted component, e.g. for HTML span output.
// Returning the text unchanged is the identity wrapper.
type Wrapper func(component Component, text string) string
