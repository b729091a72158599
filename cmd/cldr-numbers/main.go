package main

import (
	"flag"
	"fmt"
	"os"

	numbers "github.com/goliatone/go-cldr-numbers"
)

type cliConfig struct {
	locale   string
	system   string
	format   string
	pattern  string
	currency string
	frac     int
	cash     bool
	bundles  string
}

func main() {
	cfg := cliConfig{frac: -1}
	flag.StringVar(&cfg.locale, "locale", "", "locale tag (default backend locale)")
	flag.StringVar(&cfg.system, "number-system", "", "number system name or alias")
	flag.StringVar(&cfg.format, "format", "", "named format (standard, currency, accounting, percent, scientific, short, long, ...)")
	flag.StringVar(&cfg.pattern, "pattern", "", "raw CLDR pattern, overrides -format")
	flag.StringVar(&cfg.currency, "currency", "", "ISO 4217 currency code or digital token")
	flag.IntVar(&cfg.frac, "fractional-digits", -1, "override fraction digits (-1 keeps the pattern's)")
	flag.BoolVar(&cfg.cash, "cash", false, "use cash digits and rounding for the currency")
	flag.StringVar(&cfg.bundles, "bundle", "", "extra locale bundle file (json or yaml)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: cldr-numbers [flags] value...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var newOpts []numbers.Option
	if cfg.bundles != "" {
		newOpts = append(newOpts, numbers.WithLoader(numbers.NewFileLoader(cfg.bundles)))
	}

	formatter, err := numbers.New(newOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cldr-numbers: %v\n", err)
		os.Exit(1)
	}

	opts := buildOptions(cfg)

	exit := 0
	for _, arg := range flag.Args() {
		out, err := formatter.Format(arg, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cldr-numbers: %s: %v\n", arg, err)
			exit = 1
			continue
		}
		fmt.Println(out)
	}
	os.Exit(exit)
}

func buildOptions(cfg cliConfig) []numbers.FormatOption {
	var opts []numbers.FormatOption
	if cfg.locale != "" {
		opts = append(opts, numbers.WithLocale(cfg.locale))
	}
	if cfg.system != "" {
		opts = append(opts, numbers.WithNumberSystem(cfg.system))
	}
	if cfg.pattern != "" {
		opts = append(opts, numbers.WithPattern(cfg.pattern))
	} else if cfg.format != "" {
		opts = append(opts, numbers.WithFormat(numbers.FormatName(cfg.format)))
	}
	if cfg.currency != "" {
		opts = append(opts, numbers.WithCurrency(cfg.currency))
	}
	if cfg.frac >= 0 {
		opts = append(opts, numbers.WithFractionalDigits(cfg.frac))
	}
	if cfg.cash {
		opts = append(opts, numbers.WithCurrencyDigits(numbers.CurrencyDigitsCash))
	}
	return opts
}
