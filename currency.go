package numbers

import (
	"fmt"
	"strings"
	"unicode"

	xcurrency "golang.org/x/text/currency"
)

// DigitalToken is a registered crypto asset identifier with its display
// names. Tokens ride the same placeholder ladder as currencies, using the
// short name where a currency shows its symbol or ISO code.
type DigitalToken struct {
	ID        string
	ShortName string
	LongName  string
}

func (t DigitalToken) currencyRecord() *Currency {
	return &Currency{
		Code:         t.ShortName,
		Symbol:       t.ShortName,
		NarrowSymbol: t.ShortName,
		DisplayNames: map[PluralCategory]string{PluralOther: t.LongName},
		Digits:       2,
		CashDigits:   2,
	}
}

var digitalTokens = map[string]DigitalToken{
	"BTC":       {ID: "4H95J0R2X", ShortName: "BTC", LongName: "Bitcoin"},
	"4H95J0R2X": {ID: "4H95J0R2X", ShortName: "BTC", LongName: "Bitcoin"},
	"ETH":       {ID: "X9J9K872S", ShortName: "ETH", LongName: "Ethereum"},
	"X9J9K872S": {ID: "X9J9K872S", ShortName: "ETH", LongName: "Ethereum"},
}

// boundCurrency is the fully resolved currency context for one call.
type boundCurrency struct {
	record  *Currency
	display CurrencyDisplay

	symbolVariant  SymbolVariant
	explicitSymbol string

	digits CurrencyDigits
}

// resolveCurrency validates the code and merges the backend record with the
// locale's display data.
func resolveCurrency(backend Backend, ld *LocaleData, code string) (*boundCurrency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: empty currency code", ErrUnknownCurrency)
	}

	record, err := backend.Currency(code)
	if err != nil {
		// Tokens are found by the backend lookup above. A code that is
		// valid ISO 4217 but unknown to the backend returns the backend's
		// unknown-currency error; any other code gets a message saying it
		// is neither ISO 4217 nor a known token.
		if _, parseErr := xcurrency.ParseISO(code); parseErr != nil {
			return nil, fmt.Errorf("%w: %q is not ISO 4217 or a known digital token", ErrUnknownCurrency, code)
		}
		return nil, err
	}

	bound := &boundCurrency{
		record: record,
		display: CurrencyDisplay{
			Symbol:       record.Symbol,
			NarrowSymbol: record.NarrowSymbol,
			DisplayNames: record.DisplayNames,
		},
	}
	if ld != nil {
		if display, ok := ld.Currencies[record.Code]; ok {
			if display.Symbol != "" {
				bound.display.Symbol = display.Symbol
			}
			if display.NarrowSymbol != "" {
				bound.display.NarrowSymbol = display.NarrowSymbol
			}
			if len(display.DisplayNames) > 0 {
				bound.display.DisplayNames = display.DisplayNames
			}
		}
	}
	return bound, nil
}

// bindCurrencyRecord wraps a caller-supplied record, still honoring the
// locale's display overrides for its code.
func bindCurrencyRecord(ld *LocaleData, record *Currency) *boundCurrency {
	bound := &boundCurrency{
		record: record,
		display: CurrencyDisplay{
			Symbol:       record.Symbol,
			NarrowSymbol: record.NarrowSymbol,
			DisplayNames: record.DisplayNames,
		},
	}
	if bound.display.Symbol == "" {
		bound.display.Symbol = record.Code
	}
	if bound.display.NarrowSymbol == "" {
		bound.display.NarrowSymbol = bound.display.Symbol
	}
	if ld != nil {
		if display, ok := ld.Currencies[record.Code]; ok {
			if display.Symbol != "" {
				bound.display.Symbol = display.Symbol
			}
			if display.NarrowSymbol != "" {
				bound.display.NarrowSymbol = display.NarrowSymbol
			}
			if len(display.DisplayNames) > 0 {
				bound.display.DisplayNames = display.DisplayNames
			}
		}
	}
	return bound
}

// symbol expands a ¤ run of the given length: 1 symbol, 2 ISO code,
// 3 plural display name, 4 narrow symbol. A caller variant overrides the
// ladder for every run length.
func (bc *boundCurrency) symbol(placeholderCount int, category PluralCategory) string {
	switch bc.symbolVariant {
	case SymbolExplicit:
		return bc.explicitSymbol
	case SymbolISO:
		return bc.record.Code
	case SymbolNarrow:
		return bc.display.NarrowSymbol
	case SymbolStandard:
		return bc.display.Symbol
	}

	switch placeholderCount {
	case 2:
		return bc.record.Code
	case 3:
		return bc.displayName(category)
	case 4:
		return bc.display.NarrowSymbol
	default:
		return bc.display.Symbol
	}
}

func (bc *boundCurrency) displayName(category PluralCategory) string {
	names := bc.display.DisplayNames
	if name, ok := names[category]; ok {
		return name
	}
	if name, ok := names[PluralOther]; ok {
		return name
	}
	return bc.record.Code
}

// fractionDigits returns the effective fraction digit count per the digits
// selection. ISO and accounting share the accounting count.
func (bc *boundCurrency) fractionDigits() int {
	if bc.digits == CurrencyDigitsCash {
		return bc.record.CashDigits
	}
	return bc.record.Digits
}

// roundingIncrement converts the CLDR rounding value (units of the final
// digit) into a decimal increment; zero means none.
func (bc *boundCurrency) roundingIncrement() increment {
	rounding := bc.record.Rounding
	digits := bc.record.Digits
	if bc.digits == CurrencyDigitsCash {
		rounding = bc.record.CashRounding
		digits = bc.record.CashDigits
	}
	if rounding <= 0 {
		return increment{}
	}
	return increment{digits: fmt.Sprintf("%d", rounding), scale: digits}
}

// symbolIsAlpha reports whether the symbol that will be emitted starts or
// ends with a letter, which triggers the alpha-next-to-number pattern
// variants.
func symbolIsAlpha(symbol string) bool {
	if symbol == "" {
		return false
	}
	runes := []rune(symbol)
	return unicode.IsLetter(runes[0]) || unicode.IsLetter(runes[len(runes)-1])
}
