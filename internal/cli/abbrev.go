package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/numfmt/internal/config"
)

type abbrevOptions struct {
	decimals       int
	legacy         bool
	exact          bool
	negativePrefix string
	negativeSuffix string
}

func newAbbrevCommand(opts *rootOptions) *cobra.Command {
	aopts := &abbrevOptions{}

	cmd := &cobra.Command{
		Use:   "abbrev [value...]",
		Short: "abbreviates large numbers",
		Long: `
Renders each value in abbreviated form: millions, billions and trillions
are scaled and suffixed ("2.5 billion"), smaller values are grouped and
keep the requested decimals. Negative values are reported as income.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if err := aopts.apply(cmd, cfg); err != nil {
				return err
			}

			a := cfg.Abbreviator()
			log.Debugf("abbrev: decimals=%d legacy=%t exact=%t", cfg.Decimals, a.Legacy, aopts.exact)
			return run(cmd, args, cfg, log, func(v string) (string, error) {
				if aopts.exact {
					d, err := parseDecimal(v)
					if err != nil {
						return "", err
					}
					return a.FormatDecimal(d, cfg.Decimals), nil
				}
				n, err := parseFloat(v)
				if err != nil {
					return "", err
				}
				return a.Format(n, cfg.Decimals), nil
			})
		},
	}

	f := cmd.Flags()
	f.IntVarP(&aopts.decimals, "decimals", "d", 2, "decimals for values below one million")
	f.BoolVar(&aopts.legacy, "legacy", false, "keep the historical rendering of values below one")
	f.BoolVar(&aopts.exact, "exact", false, "use exact decimal arithmetic instead of float64")
	f.StringVar(&aopts.negativePrefix, "negative-prefix", "", "text placed before negative values")
	f.StringVar(&aopts.negativeSuffix, "negative-suffix", "", "text placed after negative values (default \" in income\")")
	return cmd
}

// apply overrides cfg with the flags set on cmd and validates the result.
func (o *abbrevOptions) apply(cmd *cobra.Command, cfg *config.Configuration) error {
	flags := cmd.Flags()
	if flags.Changed("decimals") {
		cfg.Decimals = o.decimals
	}
	if flags.Changed("legacy") {
		cfg.Abbreviation.Legacy = o.legacy
	}
	if flags.Changed("negative-prefix") {
		cfg.Abbreviation.NegativePrefix = &o.negativePrefix
	}
	if flags.Changed("negative-suffix") {
		cfg.Abbreviation.NegativeSuffix = &o.negativeSuffix
	}
	return config.NewInputParser().ValidateConfiguration(cfg)
}

// parseFloat parses a finite number, ignoring grouping commas.
func parseFloat(v string) (float64, error) {
	n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, v)
	}
	return n, nil
}

// parseDecimal parses an exact decimal, ignoring grouping commas.
func parseDecimal(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, v)
	}
	return d, nil
}
