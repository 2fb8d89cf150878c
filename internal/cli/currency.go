package cli

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/numfmt/internal/output"
)

func newCurrencyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "currency [value...]",
		Short: "formats amounts as US dollars",
		Long: `
Renders each value as dollars and cents with grouped thousands, e.g.
"$1,234.57". Rounding is exact and half away from zero.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return run(cmd, args, cfg, log, func(v string) (string, error) {
				d, err := parseDecimal(v)
				if err != nil {
					return "", err
				}
				return output.FormatCurrency(d), nil
			})
		},
	}
}
