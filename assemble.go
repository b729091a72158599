package numbers

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// piece is one emitted span: the assembler builds the output as tagged
// pieces so padding can measure widths and the Wrapper hook can decorate
// each component.
type piece struct {
	comp Component
	text string
}

// assemble composes the final string for one subpattern and digit layout.
func assemble(res *resolved, sub *subpattern, layout digitLayout) string {
	category := PluralOther
	if res.currency != nil {
		category = res.plural(res.locale, pluralOperands(layout))
	}

	body := assembleBody(res, sub, layout)

	prefix := renderAffix(sub.prefix, res, category)
	suffix := renderAffix(sub.suffix, res, category)

	pieces := make([]piece, 0, len(prefix)+len(suffix)+3)
	pieces = append(pieces, prefix...)
	prefixEnd := len(pieces)

	if space, ok := spacingAfterCurrency(res, prefix, body); ok {
		pieces = append(pieces, space)
	}
	pieces = append(pieces, piece{comp: ComponentNumber, text: body})
	if space, ok := spacingBeforeCurrency(res, suffix, body); ok {
		pieces = append(pieces, space)
	}
	suffixStart := len(pieces)
	pieces = append(pieces, suffix...)

	if sub.padPos != padNone {
		pieces = applyPadding(pieces, sub, prefixEnd, suffixStart)
	}

	var b strings.Builder
	for _, p := range pieces {
		if res.wrapper != nil {
			b.WriteString(res.wrapper(p.comp, p.text))
		} else {
			b.WriteString(p.text)
		}
	}
	return b.String()
}

// assembleBody renders the digit body: grouped integer digits, fraction,
// and exponent, all mapped through the number system digit set.
func assembleBody(res *resolved, sub *subpattern, layout digitLayout) string {
	if layout.nan {
		return res.symbols.NaN
	}
	if layout.infinite {
		return res.symbols.Infinity
	}

	currencyFmt := res.currencyFormat()
	groupSep := res.symbols.groupFor(currencyFmt)
	decimalSep := res.symbols.decimalFor(currencyFmt)

	var out []byte

	ints := layout.intDigits
	grouped := sub.groupPrimary > 0 &&
		len(ints) >= sub.groupPrimary+res.minGroup &&
		!layout.scientific
	if grouped {
		secondary := sub.groupSecondary
		if secondary <= 0 {
			secondary = sub.groupPrimary
		}
		for i := range ints {
			fromEnd := len(ints) - i
			if fromEnd != len(ints) && groupBoundary(fromEnd, sub.groupPrimary, secondary) {
				out = append(out, groupSep...)
			}
			out = mapDigits(out, ints[i:i+1], res.zeroDigit)
		}
	} else {
		out = mapDigits(out, ints, res.zeroDigit)
	}

	if len(layout.fracDigits) > 0 {
		out = append(out, decimalSep...)
		out = mapDigits(out, layout.fracDigits, res.zeroDigit)
	}

	if layout.scientific {
		out = append(out, res.symbols.Exponential...)
		exponent := layout.exponent
		if exponent < 0 {
			out = append(out, res.symbols.Minus...)
			exponent = -exponent
		} else if sub.expPlus {
			out = append(out, res.symbols.Plus...)
		}
		expDigits := strconv.Itoa(exponent)
		for pad := sub.expDigits - len(expDigits); pad > 0; pad-- {
			out = mapDigits(out, []byte{'0'}, res.zeroDigit)
		}
		out = mapDigits(out, []byte(expDigits), res.zeroDigit)
	}

	return string(out)
}

func renderAffix(tokens []affixToken, res *resolved, category PluralCategory) []piece {
	if len(tokens) == 0 {
		return nil
	}
	pieces := make([]piece, 0, len(tokens))
	for _, t := range tokens {
		switch t.kind {
		case affixLiteral:
			pieces = append(pieces, piece{comp: ComponentLiteral, text: t.text})
		case affixCurrency:
			symbol := ""
			if res.currency != nil {
				symbol = res.currency.symbol(t.count, category)
			}
			pieces = append(pieces, piece{comp: ComponentCurrencySymbol, text: symbol})
		case affixPercent:
			pieces = append(pieces, piece{comp: ComponentPercent, text: res.symbols.Percent})
		case affixPermille:
			pieces = append(pieces, piece{comp: ComponentPermille, text: res.symbols.PerMille})
		case affixMinus:
			pieces = append(pieces, piece{comp: ComponentMinus, text: res.symbols.Minus})
		case affixPlus:
			pieces = append(pieces, piece{comp: ComponentPlus, text: res.symbols.Plus})
		}
	}
	return pieces
}

// spacingAfterCurrency inserts the locale's separator between a prefix
// currency symbol and the first digit when their character classes clash.
func spacingAfterCurrency(res *resolved, prefix []piece, body string) (piece, bool) {
	if !res.currencySpacing || res.currency == nil || len(prefix) == 0 || body == "" {
		return piece{}, false
	}
	last := prefix[len(prefix)-1]
	if last.comp != ComponentCurrencySymbol || last.text == "" {
		return piece{}, false
	}
	symbolEdge, _ := utf8.DecodeLastRuneInString(last.text)
	bodyEdge, _ := utf8.DecodeRuneInString(body)
	rule := res.symbols.CurrencySpacing.After
	if !rule.needsCurrencySpacing(symbolEdge, bodyEdge) {
		return piece{}, false
	}
	return piece{comp: ComponentCurrencySpace, text: rule.InsertBetween}, true
}

// spacingBeforeCurrency is the suffix-side counterpart.
func spacingBeforeCurrency(res *resolved, suffix []piece, body string) (piece, bool) {
	if !res.currencySpacing || res.currency == nil || len(suffix) == 0 || body == "" {
		return piece{}, false
	}
	first := suffix[0]
	if first.comp != ComponentCurrencySymbol || first.text == "" {
		return piece{}, false
	}
	symbolEdge, _ := utf8.DecodeRuneInString(first.text)
	bodyEdge, _ := utf8.DecodeLastRuneInString(body)
	rule := res.symbols.CurrencySpacing.Before
	if !rule.needsCurrencySpacing(symbolEdge, bodyEdge) {
		return piece{}, false
	}
	return piece{comp: ComponentCurrencySpace, text: rule.InsertBetween}, true
}

// applyPadding grows the output to the pattern's width by inserting the pad
// character at the declared position.
func applyPadding(pieces []piece, sub *subpattern, prefixEnd, suffixStart int) []piece {
	width := 0
	for _, p := range pieces {
		width += utf8.RuneCountInString(p.text)
	}
	if width >= sub.padWidth {
		return pieces
	}
	pad := piece{comp: ComponentPad, text: strings.Repeat(string(sub.padChar), sub.padWidth-width)}

	var at int
	switch sub.padPos {
	case padBeforePrefix:
		at = 0
	case padAfterPrefix:
		at = prefixEnd
	case padBeforeSuffix:
		at = suffixStart
	default: // padAfterSuffix
		at = len(pieces)
	}

	out := make([]piece, 0, len(pieces)+1)
	out = append(out, pieces[:at]...)
	out = append(out, pad)
	out = append(out, pieces[at:]...)
	return out
}
