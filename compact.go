package numbers

import (
	"fmt"
	"strings"
)

// formatCompact renders the short/long compact styles: pick the magnitude
// bucket, divide by its divisor, re-evaluate the plural category on the
// divided value, then hand off to the regular pipeline.
func (f *Formatter) formatCompact(res *resolved, d dec, negative bool) (string, error) {
	style := res.compactStyle

	if (style == CompactCurrencyShort || style == CompactCurrencyLong) && res.currency == nil {
		return "", fmt.Errorf("%w: format %q requires that currency be specified", ErrFormat, style)
	}

	if style == CompactCurrencyLong {
		return f.formatCurrencyLong(res, d, negative)
	}

	entries := res.localeData.Compact[style]
	if style == CompactCurrencyShort && len(entries) == 0 {
		entries = res.localeData.Compact[CompactDecimalShort]
	}

	magnitude := d.exp - 1
	if len(entries) == 0 || d.form != formFinite || d.isZero() || magnitude < entries[0].Magnitude {
		out, _ := f.formatResolved(res, d, negative)
		return out, nil
	}

	for attempt := 0; ; attempt++ {
		entry := entries[0]
		for _, e := range entries {
			if e.Magnitude > magnitude {
				break
			}
			entry = e
		}

		src := compactPatternFor(entry, PluralOther)
		zeros := strings.Count(src, "0")
		if src == "0" || zeros == 0 {
			// "0" marks a bucket with no compact transform.
			out, _ := f.formatResolved(res, d, negative)
			return out, nil
		}

		divided := d
		divided.shift(-(entry.Magnitude + 1 - zeros))

		sub, layout, err := f.compactLayout(res, src, divided, negative)
		if err != nil {
			return "", err
		}

		// Rounding can climb into the next bucket (999 999 → "1000K"
		// under the 5-magnitude pattern); reselect once.
		if attempt == 0 && len(layout.intDigits) > zeros {
			magnitude++
			continue
		}

		// The plural category of the rounded, divided value picks the
		// final pattern variant.
		category := res.plural(res.locale, pluralOperands(layout))
		if selected := compactPatternFor(entry, category); selected != src {
			sub, layout, err = f.compactLayout(res, selected, divided, negative)
			if err != nil {
				return "", err
			}
		}

		return assemble(res, sub, layout), nil
	}
}

func compactPatternFor(entry CompactEntry, category PluralCategory) string {
	if pattern, ok := entry.Patterns[category]; ok {
		return pattern
	}
	return entry.Patterns[PluralOther]
}

// compactLayout compiles one compact pattern and lays out the divided
// value under it.
func (f *Formatter) compactLayout(res *resolved, src string, divided dec, negative bool) (*subpattern, digitLayout, error) {
	pattern, err := f.patterns.compile(src)
	if err != nil {
		return nil, digitLayout{}, err
	}
	sub := pattern.sub(negative)
	lc := layoutConstraints{
		mode:         res.mode,
		fracOverride: res.fracOverride,
	}
	return sub, computeLayout(divided, sub, lc), nil
}

// formatCurrencyLong renders the value with the standard decimal pattern
// and suffixes the currency's pluralized display name.
func (f *Formatter) formatCurrencyLong(res *resolved, d dec, negative bool) (string, error) {
	sub := res.pattern.sub(negative)
	lc := layoutConstraints{
		mode:         res.mode,
		fracOverride: res.fracOverride,
		maxIntDigits: res.maxIntOverride,
		roundNearest: res.roundNearest,
	}
	layout := computeLayout(d, sub, lc)
	body := assemble(res, sub, layout)

	category := res.plural(res.locale, pluralOperands(layout))
	name := res.currency.displayName(category)

	if res.wrapper != nil {
		return body + res.wrapper(ComponentLiteral, " ") + res.wrapper(ComponentCurrencySymbol, name), nil
	}
	return body + " " + name, nil
}
