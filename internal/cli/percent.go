package cli

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/numfmt/internal/output"
)

func newPercentCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "percent [value...]",
		Short: "formats values as percentages",
		Long: `
Renders each value, already expressed in percent, with two decimals and
grouped thousands, e.g. "12.35%".
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
				return output.FormatPercentage(d), nil
			})
		},
	}
}
